package models

// WSMessage 推给其他实例的失效通知。
// 只带键名，不带数据：收到后必须回源重读，不能信任通知次数
type WSMessage struct {
	Type string `json:"type"` // STORAGE_UPDATE
	Key  string `json:"key"`
	// 聊天消息键附带会话 ID，便于订阅方快速过滤
	SessionID string `json:"sessionId,omitempty"`
}
