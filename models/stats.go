package models

// DailyStat 单日统计，date 形如 2026-09-01
type DailyStat struct {
	Date          string `json:"date"`
	AiGenerations int    `json:"aiGenerations"`
	NewConfigs    int    `json:"newConfigs"`
	NewUsers      int    `json:"newUsers"`
}

// SystemStats 系统统计。DailyStats 按日期追加，最多保留 30 条，
// 超出后淘汰最旧的一条
type SystemStats struct {
	TotalAiGenerations int         `json:"totalAiGenerations"`
	DailyStats         []DailyStat `json:"dailyStats"`
}

// SMSLog 单个手机号的验证码发送记录
type SMSLog struct {
	DailyCount    int    `json:"dailyCount"`
	LastDate      string `json:"lastDate"`
	LastTimestamp int64  `json:"lastTimestamp"`
}
