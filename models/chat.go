package models

// ChatMessage 客服消息，归属唯一的会话
type ChatMessage struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	Sender    string `json:"sender"` // user, admin, system
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // 毫秒
	IsRead    bool   `json:"isRead"`
	IsAdmin   bool   `json:"isAdmin,omitempty"`
}

// ChatSession 客服会话
type ChatSession struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"` // 真实用户 ID 或 guest-xxx
	Username    string       `json:"username"`
	UserAvatar  string       `json:"userAvatar,omitempty"`
	LastMessage *ChatMessage `json:"lastMessage,omitempty"`
	// 管理端视角的未读数：仅用户消息会累加
	UnreadCount int    `json:"unreadCount"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
	Status      string `json:"status"` // active, closed（终态）
}

// ChatSettings 客服配置
type ChatSettings struct {
	WelcomeMessage   string   `json:"welcomeMessage"`
	QuickReplies     []string `json:"quickReplies"`
	AutoReplyEnabled bool     `json:"autoReplyEnabled,omitempty"`
	AutoReplyContent string   `json:"autoReplyContent,omitempty"`
}

const (
	SenderUser   = "user"
	SenderAdmin  = "admin"
	SenderSystem = "system"

	SessionActive = "active"
	SessionClosed = "closed"
)
