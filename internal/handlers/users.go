package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"awkwardturtle/api/internal/apperr"
)

type userStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// UpdateUserStatus mirrors the original endpoint, which carries no
// session check. Kept unauthenticated for wire compatibility.
func (h HandlerSet) UpdateUserStatus(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, apperr.Validation("Invalid user id"))
		return
	}

	var req userStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	user, err := h.auth.SetUserStatus(c.Request.Context(), userID, *req.IsActive)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
