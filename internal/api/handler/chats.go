package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreateChatRequest struct {
	User1ID string `json:"user1_id" binding:"required"`
	User2ID string `json:"user2_id" binding:"required"`
}

// CreatePrivateChat creates (or returns) the 1-on-1 chat between two
// co-located travelers.
func (h *Handler) CreatePrivateChat(c *gin.Context) {
	var req CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chat := h.Store.CreatePrivateChat(req.User1ID, req.User2ID)
	if chat == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "travelers unknown or not at the same layover airport"})
		return
	}
	c.JSON(http.StatusCreated, chat)
}

// ListPrivateChats returns every private chat the traveler participates in,
// expired-but-unswept ones included.
func (h *Handler) ListPrivateChats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.GetPrivateChatsForUser(c.Param("id")))
}

// ListGroupChats returns the traveler's active group chats.
func (h *Handler) ListGroupChats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.GetGroupChatsForUser(c.Param("id")))
}

type KeepChatRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Keep   *bool  `json:"keep" binding:"required"`
}

// SetKeepChat records a participant's retention choice for a private chat.
// keep=false deletes the chat immediately.
func (h *Handler) SetKeepChat(c *gin.Context) {
	var req KeepChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.Store.SetKeepChat(c.Param("id"), req.UserID, *req.Keep) {
		c.JSON(http.StatusNotFound, gin.H{"error": "chat not found or requester is not a participant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type SendMessageRequest struct {
	SenderID   string `json:"sender_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
	GroupID    string `json:"group_id"`
	ReceiverID string `json:"receiver_id"`
}

// SendMessage routes a message to a group (group_id) or to the existing
// private chat with receiver_id. Exactly one target must be set.
func (h *Handler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := h.Store.SendMessage(req.SenderID, req.Content, req.GroupID, req.ReceiverID)
	if msg == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no such conversation, or sender is not a participant"})
		return
	}
	c.JSON(http.StatusCreated, msg)
}
