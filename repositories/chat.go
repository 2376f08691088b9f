package repositories

import (
	"sort"

	"xiaoyu-backend/bus"
	"xiaoyu-backend/data"
	"xiaoyu-backend/database"
	"xiaoyu-backend/models"
)

// ChatRepository 会话、消息和客服配置。
// 每个会话的消息列表单独占一个键，会话列表按 updatedAt 倒序持久化
type ChatRepository interface {
	Sessions() []models.ChatSession
	FindSession(id string) (models.ChatSession, bool)
	SaveSession(session models.ChatSession) error

	Messages(sessionID string) []models.ChatMessage
	SaveMessages(sessionID string, msgs []models.ChatMessage) error

	Settings() models.ChatSettings
	SaveSettings(settings models.ChatSettings) error
}

type chatRepository struct {
	kv  *database.KVStore
	bus *bus.Bus
}

func NewChatRepository(kv *database.KVStore, b *bus.Bus) ChatRepository {
	return &chatRepository{kv: kv, bus: b}
}

func (r *chatRepository) Sessions() []models.ChatSession {
	return loadList[models.ChatSession](r.kv, database.KeyChatSessions)
}

func (r *chatRepository) FindSession(id string) (models.ChatSession, bool) {
	for _, s := range r.Sessions() {
		if s.ID == id {
			return s, true
		}
	}
	return models.ChatSession{}, false
}

func (r *chatRepository) SaveSession(session models.ChatSession) error {
	sessions := r.Sessions()
	replaced := false
	for i := range sessions {
		if sessions[i].ID == session.ID {
			sessions[i] = session
			replaced = true
			break
		}
	}
	if !replaced {
		sessions = append(sessions, session)
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].UpdatedAt > sessions[j].UpdatedAt
	})
	return storeList(r.kv, r.bus, database.KeyChatSessions, session.ID, sessions)
}

func (r *chatRepository) Messages(sessionID string) []models.ChatMessage {
	return loadList[models.ChatMessage](r.kv, database.ChatMessagesKey(sessionID))
}

func (r *chatRepository) SaveMessages(sessionID string, msgs []models.ChatMessage) error {
	return storeList(r.kv, r.bus, database.ChatMessagesKey(sessionID), sessionID, msgs)
}

func (r *chatRepository) Settings() models.ChatSettings {
	if settings, ok := loadObject[models.ChatSettings](r.kv, database.KeyChatSettings); ok {
		return settings
	}
	return data.DefaultChatSettings()
}

func (r *chatRepository) SaveSettings(settings models.ChatSettings) error {
	return storeObject(r.kv, r.bus, database.KeyChatSettings, settings)
}
