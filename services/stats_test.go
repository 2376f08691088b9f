package services

import (
	"testing"
	"time"

	"xiaoyu-backend/bus"
	"xiaoyu-backend/repositories"

	"github.com/stretchr/testify/require"
)

func newStatsFixture(t *testing.T) *StatsService {
	t.Helper()
	kv := newTestKV(t)
	return NewStatsService(repositories.NewStatsRepository(kv, bus.New(nil)))
}

func TestStatsCountersAccumulate(t *testing.T) {
	svc := newStatsFixture(t)

	require.NoError(t, svc.LogAiGeneration())
	require.NoError(t, svc.LogAiGeneration())
	require.NoError(t, svc.LogNewConfig())
	require.NoError(t, svc.LogNewUser())

	stats := svc.Get()
	require.Equal(t, 2, stats.TotalAiGenerations)
	require.Len(t, stats.DailyStats, 1)
	require.Equal(t, 2, stats.DailyStats[0].AiGenerations)
	require.Equal(t, 1, stats.DailyStats[0].NewConfigs)
	require.Equal(t, 1, stats.DailyStats[0].NewUsers)
}

func TestDailyStatsCappedAtThirtyDays(t *testing.T) {
	svc := newStatsFixture(t)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	day := 0
	svc.now = func() time.Time { return base.AddDate(0, 0, day) }

	for day = 0; day < 35; day++ {
		require.NoError(t, svc.LogNewUser())
	}

	stats := svc.Get()
	require.Len(t, stats.DailyStats, 30)
	// 淘汰的是最旧的 5 天
	require.Equal(t, "2026-01-06", stats.DailyStats[0].Date)
	require.Equal(t, "2026-02-04", stats.DailyStats[29].Date)
}
