package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"awkwardturtle/api/internal/apperr"
	"awkwardturtle/api/internal/models"
)

type sendMessageRequest struct {
	ToUserID int64  `json:"to_user_id" binding:"required,gt=0"`
	Content  string `json:"content" binding:"required,min=1,max=1000"`
}

type messageResponse struct {
	ID         int64      `json:"id"`
	SenderID   int64      `json:"sender_id"`
	ReceiverID int64      `json:"receiver_id"`
	Content    string     `json:"content"`
	IsRead     bool       `json:"is_read"`
	ReadAt     *time.Time `json:"read_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toMessageResponse(msg models.Message) messageResponse {
	return messageResponse{
		ID:         msg.ID,
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		Content:    msg.Content,
		IsRead:     msg.IsRead,
		ReadAt:     msg.ReadAt,
		CreatedAt:  msg.CreatedAt,
	}
}

func (h HandlerSet) SendMessage(c *gin.Context) {
	user := currentUser(c)

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	msg, err := h.messages.Send(c.Request.Context(), user, req.ToUserID, req.Content)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toMessageResponse(msg))
}

func (h HandlerSet) Inbox(c *gin.Context) {
	user := currentUser(c)

	messages, err := h.messages.Inbox(c.Request.Context(), user)
	if err != nil {
		fail(c, err)
		return
	}

	h.sendMessageList(c, messages)
}

func (h HandlerSet) Outbox(c *gin.Context) {
	user := currentUser(c)

	messages, err := h.messages.Outbox(c.Request.Context(), user)
	if err != nil {
		fail(c, err)
		return
	}

	h.sendMessageList(c, messages)
}

func (h HandlerSet) sendMessageList(c *gin.Context, messages []models.Message) {
	resp := make([]messageResponse, 0, len(messages))
	for _, msg := range messages {
		resp = append(resp, toMessageResponse(msg))
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": resp,
		"total":    len(resp),
	})
}

func (h HandlerSet) MarkMessageRead(c *gin.Context) {
	user := currentUser(c)

	messageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, apperr.Validation("Invalid message id"))
		return
	}

	msg, err := h.messages.MarkRead(c.Request.Context(), user, messageID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message_id": msg.ID,
		"read_at":    msg.ReadAt,
	})
}
