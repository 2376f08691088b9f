package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSMSCooldown(t *testing.T) {
	svc := NewSMSService(newTestKV(t))
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	now := base
	svc.now = func() time.Time { return now }

	ok, _ := svc.CheckLimit("13800138000")
	require.True(t, ok)
	require.NoError(t, svc.LogAttempt("13800138000"))

	// 60 秒内再发被拒
	now = base.Add(30 * time.Second)
	ok, reason := svc.CheckLimit("13800138000")
	require.False(t, ok)
	require.Equal(t, "请求过于频繁，请 60 秒后再试", reason)

	now = base.Add(61 * time.Second)
	ok, _ = svc.CheckLimit("13800138000")
	require.True(t, ok)

	// 其他手机号不受影响
	ok, _ = svc.CheckLimit("13900139000")
	require.True(t, ok)
}

func TestSMSDailyCap(t *testing.T) {
	svc := NewSMSService(newTestKV(t))
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	now := base
	svc.now = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		ok, _ := svc.CheckLimit("13800138000")
		require.True(t, ok, "第 %d 次应放行", i+1)
		require.NoError(t, svc.LogAttempt("13800138000"))
		now = now.Add(2 * time.Minute)
	}

	ok, reason := svc.CheckLimit("13800138000")
	require.False(t, ok)
	require.Equal(t, "该手机号今日验证码发送次数已达上限 (5次)", reason)

	// 次日计数重置
	now = base.AddDate(0, 0, 1)
	ok, _ = svc.CheckLimit("13800138000")
	require.True(t, ok)
}
