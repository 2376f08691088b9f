package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"xiaoyu-backend/models"
	"xiaoyu-backend/repositories"
	"xiaoyu-backend/services"
)

type ChatHandler struct {
	Repo    repositories.ChatRepository
	Service *services.ChatService
}

func NewChatHandler(repo repositories.ChatRepository, service *services.ChatService) *ChatHandler {
	return &ChatHandler{Repo: repo, Service: service}
}

// OpenSession 取回或创建当前访客的会话。
// 未登录访客首次调用会拿到 guestId，客户端存下来以后都带上
func (h *ChatHandler) OpenSession(c *gin.Context) {
	var req struct {
		GuestID  string `json:"guestId"`
		Username string `json:"username"`
	}
	c.ShouldBindJSON(&req)

	userID := c.GetString("current_user_id")
	session, guestID, err := h.Service.GetOrCreateSession(userID, req.Username, req.GuestID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"session": session}
	if userID == "" {
		resp["guestId"] = guestID
	}
	c.JSON(200, resp)
}

// ListSessions 管理端会话列表，已按最近活跃排好序
func (h *ChatHandler) ListSessions(c *gin.Context) {
	sessions := h.Repo.Sessions()
	if sessions == nil {
		sessions = []models.ChatSession{}
	}
	c.JSON(200, sessions)
}

// ListMessages 某会话的完整消息记录
func (h *ChatHandler) ListMessages(c *gin.Context) {
	msgs := h.Repo.Messages(c.Param("id"))
	if msgs == nil {
		msgs = []models.ChatMessage{}
	}
	c.JSON(200, msgs)
}

// PostMessage 发消息。sender 只认 user/admin，系统消息不走接口
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req struct {
		Sender  string `json:"sender" binding:"required"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "参数校验失败"})
		return
	}
	if req.Sender != models.SenderUser && req.Sender != models.SenderAdmin {
		c.JSON(400, gin.H{"error": "无效的发送方"})
		return
	}

	msg, err := h.Service.AppendMessage(c.Param("id"), req.Sender, req.Content)
	if err != nil {
		if errors.Is(err, services.ErrSessionClosed) {
			c.JSON(409, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, msg)
}

// MarkRead 管理端打开会话后清未读
func (h *ChatHandler) MarkRead(c *gin.Context) {
	if err := h.Service.MarkRead(c.Param("id")); err != nil {
		c.JSON(500, gin.H{"error": "操作失败"})
		return
	}
	c.JSON(200, gin.H{"message": "ok"})
}

// CloseSession 关闭会话，之后不再接收消息
func (h *ChatHandler) CloseSession(c *gin.Context) {
	if err := h.Service.CloseSession(c.Param("id")); err != nil {
		c.JSON(500, gin.H{"error": "操作失败"})
		return
	}
	c.JSON(200, gin.H{"message": "会话已关闭"})
}
