package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h HandlerSet) AddFriend(c *gin.Context) {
	user := currentUser(c)
	username := c.Param("username")

	if err := h.friends.Add(c.Request.Context(), user, username); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Added '%s' as friend", username)})
}

func (h HandlerSet) RemoveFriend(c *gin.Context) {
	user := currentUser(c)
	username := c.Param("username")

	if err := h.friends.Remove(c.Request.Context(), user, username); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Removed '%s' from friends", username)})
}

func (h HandlerSet) ListFriends(c *gin.Context) {
	user := currentUser(c)

	friends, err := h.friends.List(c.Request.Context(), user)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"friends": friends,
		"total":   len(friends),
	})
}
