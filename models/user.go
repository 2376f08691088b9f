package models

// UserItem 用户
type UserItem struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password,omitempty"` // bcrypt 哈希，接口返回时按需脱敏
	Role      string `json:"role"`               // admin, sub_admin, streamer, user
	Status    string `json:"status"`             // active, banned
	LastLogin string `json:"lastLogin,omitempty"`
	// VIP 到期时间（毫秒时间戳），0 表示非 VIP
	VIPExpireAt int64 `json:"vipExpireAt,omitempty"`

	// 邀请系统
	InviteCode    string `json:"inviteCode,omitempty"` // 专属邀请码（6位）
	InvitedBy     string `json:"invitedBy,omitempty"`  // 通过谁的邀请码注册
	InviteCount   int    `json:"inviteCount,omitempty"`
	InviteVipDays int    `json:"inviteVipDays,omitempty"` // 邀请累计获得的 VIP 天数（封顶）
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterReq struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
	InviteCode string `json:"inviteCode"`
}
