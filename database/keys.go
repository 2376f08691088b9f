package database

// 存储键统一挂在 xiaoyu_ 命名空间下，且跨重启保持稳定
const (
	KeyPrefix = "xiaoyu_"

	KeyProducts        = "xiaoyu_products"
	KeyConfigs         = "xiaoyu_configs"
	KeySettings        = "xiaoyu_settings"
	KeyUsers           = "xiaoyu_users"
	KeyUsedItems       = "xiaoyu_used_items"
	KeyRecycleRequests = "xiaoyu_recycle_requests"
	KeyComments        = "xiaoyu_comments"
	KeyChatSettings    = "xiaoyu_chat_settings"
	KeyChatSessions    = "xiaoyu_chat_sessions"
	KeySMSLogs         = "xiaoyu_sms_logs"
	KeySystemStats     = "xiaoyu_system_stats"
	KeyAboutUsConfig   = "xiaoyu_about_us_config"
	KeyInitFlag        = "xiaoyu_init_flag"
)

// InitTag 当前数据版本标记。与存量标记不一致时触发一次迁移合并
const InitTag = "xiaoyu_init_done_v15"

// ChatMessagesKey 每个会话的消息列表单独占一个键
func ChatMessagesKey(sessionID string) string {
	return "xiaoyu_chat_msgs_" + sessionID
}

// LikesKey 每个用户的点赞集合单独占一个键
func LikesKey(userID string) string {
	return "xiaoyu_likes_" + userID
}
