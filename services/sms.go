package services

import (
	"encoding/json"
	"time"

	"xiaoyu-backend/database"
	"xiaoyu-backend/models"
)

// SMSService 验证码发送的频控：60 秒冷却 + 单号每日 5 次。
// 发送记录挂在 xiaoyu_sms_logs 键下
type SMSService struct {
	kv  *database.KVStore
	now func() time.Time
}

func NewSMSService(kv *database.KVStore) *SMSService {
	return &SMSService{kv: kv, now: time.Now}
}

// CheckLimit 返回能否发送，以及拒绝原因
func (s *SMSService) CheckLimit(phone string) (bool, string) {
	logs := s.loadLogs()
	entry, ok := logs[phone]
	if !ok {
		return true, ""
	}

	nowMs := s.now().UnixMilli()
	if nowMs-entry.LastTimestamp < 60_000 {
		return false, "请求过于频繁，请 60 秒后再试"
	}

	today := s.now().Format("2006-01-02")
	if entry.LastDate == today && entry.DailyCount >= 5 {
		return false, "该手机号今日验证码发送次数已达上限 (5次)"
	}
	return true, ""
}

// LogAttempt 记录一次发送。跨天自动重置当日计数
func (s *SMSService) LogAttempt(phone string) error {
	logs := s.loadLogs()
	today := s.now().Format("2006-01-02")

	entry := logs[phone]
	if entry.LastDate != today {
		entry.DailyCount = 1
		entry.LastDate = today
	} else {
		entry.DailyCount++
	}
	entry.LastTimestamp = s.now().UnixMilli()
	logs[phone] = entry

	raw, err := json.Marshal(logs)
	if err != nil {
		return err
	}
	return s.kv.Set(database.KeySMSLogs, string(raw))
}

func (s *SMSService) loadLogs() map[string]models.SMSLog {
	logs := make(map[string]models.SMSLog)
	if raw, ok, _ := s.kv.Get(database.KeySMSLogs); ok {
		// 坏数据按空记录处理，宁可多放行不可崩
		_ = json.Unmarshal([]byte(raw), &logs)
	}
	return logs
}
