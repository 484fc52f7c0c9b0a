package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"awkwardturtle/api/internal/apperr"
	"awkwardturtle/api/internal/models"
)

type notificationResponse struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	NotificationType string    `json:"notification_type"`
	Title            string    `json:"title"`
	Message          *string   `json:"message"`
	RelatedID        *int64    `json:"related_id"`
	IsRead           bool      `json:"is_read"`
	CreatedAt        time.Time `json:"created_at"`
}

func toNotificationResponse(n models.Notification) notificationResponse {
	return notificationResponse{
		ID:               n.ID,
		UserID:           n.UserID,
		NotificationType: string(n.Type),
		Title:            n.Title,
		Message:          n.Message,
		RelatedID:        n.RelatedID,
		IsRead:           n.IsRead,
		CreatedAt:        n.CreatedAt,
	}
}

func (h HandlerSet) ListNotifications(c *gin.Context) {
	user := currentUser(c)

	notifications, unread, err := h.notifications.List(c.Request.Context(), user)
	if err != nil {
		fail(c, err)
		return
	}

	resp := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, toNotificationResponse(n))
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": resp,
		"total":         len(resp),
		"unread":        unread,
	})
}

func (h HandlerSet) GetNotification(c *gin.Context) {
	user := currentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, apperr.Validation("Invalid notification id"))
		return
	}

	n, err := h.notifications.Get(c.Request.Context(), user, id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toNotificationResponse(n))
}

func (h HandlerSet) MarkNotificationRead(c *gin.Context) {
	user := currentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, apperr.Validation("Invalid notification id"))
		return
	}

	if err := h.notifications.MarkRead(c.Request.Context(), user, id); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Notification marked as read",
		"notification_id": id,
	})
}

func (h HandlerSet) DeleteAllNotifications(c *gin.Context) {
	user := currentUser(c)

	if err := h.notifications.DeleteAll(c.Request.Context(), user); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications deleted"})
}
