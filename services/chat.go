package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"xiaoyu-backend/models"
	"xiaoyu-backend/repositories"
)

// ErrSessionClosed 会话已关闭，不再接收消息。想继续聊需要开新会话
var ErrSessionClosed = errors.New("会话已关闭")

// ErrSendFailed 对 UI 层只暴露一个笼统的发送失败；输入框内容由前端保留以便重试
var ErrSendFailed = errors.New("发送失败，请稍后重试")

// ChatService 客服会话的生命周期、消息追加、未读计数和自动回复策略
type ChatService struct {
	repo repositories.ChatRepository
	now  func() time.Time
}

func NewChatService(repo repositories.ChatRepository) *ChatService {
	return &ChatService{repo: repo, now: time.Now}
}

// GetOrCreateSession 取回该身份的活跃会话，没有则新建并注入系统欢迎语。
// 身份取 userID，未登录时取 guestID；guestID 为空时本次生成并返回，
// 由客户端持久保存后续带回（一次生成，长期复用）
func (s *ChatService) GetOrCreateSession(userID, username, guestID string) (models.ChatSession, string, error) {
	identity := userID
	if identity == "" {
		if guestID == "" {
			guestID = fmt.Sprintf("guest-%s", randBase36(9))
		}
		identity = guestID
	}

	for _, session := range s.repo.Sessions() {
		if session.UserID == identity && session.Status == models.SessionActive {
			return session, guestID, nil
		}
	}

	name := username
	if name == "" {
		tail := identity
		if len(tail) > 4 {
			tail = tail[len(tail)-4:]
		}
		name = "游客 " + tail
	}

	nowMs := s.now().UnixMilli()
	session := models.ChatSession{
		ID:        fmt.Sprintf("session-%d", nowMs),
		UserID:    identity,
		Username:  name,
		CreatedAt: nowMs,
		UpdatedAt: nowMs,
		Status:    models.SessionActive,
	}
	if err := s.repo.SaveSession(session); err != nil {
		return models.ChatSession{}, guestID, ErrSendFailed
	}

	if _, err := s.AppendMessage(session.ID, models.SenderSystem, s.repo.Settings().WelcomeMessage); err != nil {
		return models.ChatSession{}, guestID, err
	}
	session, _ = s.repo.FindSession(session.ID)
	return session, guestID, nil
}

// AppendMessage 追加一条消息并更新会话快照。
// 仅用户消息累加未读数；用户消息还会按策略触发一次自动回复
func (s *ChatService) AppendMessage(sessionID, sender, content string) (models.ChatMessage, error) {
	session, ok := s.repo.FindSession(sessionID)
	if !ok {
		return models.ChatMessage{}, ErrSendFailed
	}
	if session.Status == models.SessionClosed {
		return models.ChatMessage{}, ErrSessionClosed
	}

	nowMs := s.now().UnixMilli()
	msg := models.ChatMessage{
		ID:        fmt.Sprintf("msg-%d-%s", nowMs, randBase36(9)),
		SessionID: sessionID,
		Sender:    sender,
		Content:   content,
		Timestamp: nowMs,
		IsAdmin:   sender == models.SenderAdmin,
	}

	msgs := append(s.repo.Messages(sessionID), msg)
	if err := s.repo.SaveMessages(sessionID, msgs); err != nil {
		return models.ChatMessage{}, ErrSendFailed
	}

	session.LastMessage = &msg
	session.UpdatedAt = nowMs
	if sender == models.SenderUser {
		session.UnreadCount++
	}
	if err := s.repo.SaveSession(session); err != nil {
		return models.ChatMessage{}, ErrSendFailed
	}

	if sender == models.SenderUser {
		s.maybeAutoReply(session, msgs, msg)
	}
	return msg, nil
}

// maybeAutoReply 自动回复防刷屏：只看本次消息之前最近的一条
// 客服/系统消息，与配置文案逐字节一致就不再重复回复。
// 回复时间戳取触发消息之后，保证消息顺序稳定
func (s *ChatService) maybeAutoReply(session models.ChatSession, msgs []models.ChatMessage, trigger models.ChatMessage) {
	settings := s.repo.Settings()
	if !settings.AutoReplyEnabled || settings.AutoReplyContent == "" {
		return
	}

	var lastStaff *models.ChatMessage
	for i := len(msgs) - 2; i >= 0; i-- {
		if msgs[i].Sender == models.SenderAdmin || msgs[i].Sender == models.SenderSystem {
			lastStaff = &msgs[i]
			break
		}
	}
	if lastStaff != nil && lastStaff.Content == settings.AutoReplyContent {
		return
	}

	auto := models.ChatMessage{
		ID:        fmt.Sprintf("msg-%d-%s", trigger.Timestamp+100, randBase36(9)),
		SessionID: session.ID,
		Sender:    models.SenderAdmin,
		Content:   settings.AutoReplyContent,
		Timestamp: trigger.Timestamp + 100,
		IsAdmin:   true,
	}
	msgs = append(msgs, auto)
	if err := s.repo.SaveMessages(session.ID, msgs); err != nil {
		return
	}
	session.LastMessage = &auto
	session.UpdatedAt = auto.Timestamp
	s.repo.SaveSession(session)
}

// MarkRead 未读清零，幂等
func (s *ChatService) MarkRead(sessionID string) error {
	session, ok := s.repo.FindSession(sessionID)
	if !ok || session.UnreadCount == 0 {
		return nil
	}
	session.UnreadCount = 0
	return s.repo.SaveSession(session)
}

// CloseSession 关闭是终态；用户再来会走 GetOrCreateSession 开新会话
func (s *ChatService) CloseSession(sessionID string) error {
	session, ok := s.repo.FindSession(sessionID)
	if !ok {
		return nil
	}
	session.Status = models.SessionClosed
	session.UpdatedAt = s.now().UnixMilli()
	return s.repo.SaveSession(session)
}

const base36 = "abcdefghijklmnopqrstuvwxyz0123456789"

func randBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return string(b)
}
