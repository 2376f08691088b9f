package services

import (
	"time"

	"xiaoyu-backend/models"
	"xiaoyu-backend/repositories"
)

// StatsService 系统计数。每日统计按日期追加，最多保留 30 天，先进先出
type StatsService struct {
	repo repositories.StatsRepository
	now  func() time.Time
}

func NewStatsService(repo repositories.StatsRepository) *StatsService {
	return &StatsService{repo: repo, now: time.Now}
}

func (s *StatsService) Get() models.SystemStats {
	return s.repo.Get()
}

func (s *StatsService) LogAiGeneration() error {
	stats := s.repo.Get()
	daily := s.getOrCreateDailyStat(&stats)
	stats.TotalAiGenerations++
	daily.AiGenerations++
	return s.repo.Save(stats)
}

func (s *StatsService) LogNewConfig() error {
	stats := s.repo.Get()
	daily := s.getOrCreateDailyStat(&stats)
	daily.NewConfigs++
	return s.repo.Save(stats)
}

func (s *StatsService) LogNewUser() error {
	stats := s.repo.Get()
	daily := s.getOrCreateDailyStat(&stats)
	daily.NewUsers++
	return s.repo.Save(stats)
}

func (s *StatsService) getOrCreateDailyStat(stats *models.SystemStats) *models.DailyStat {
	today := s.now().Format("2006-01-02")
	for i := range stats.DailyStats {
		if stats.DailyStats[i].Date == today {
			return &stats.DailyStats[i]
		}
	}
	stats.DailyStats = append(stats.DailyStats, models.DailyStat{Date: today})
	// 日期天然按时间递增追加，淘汰队头即淘汰最旧一天
	if len(stats.DailyStats) > 30 {
		stats.DailyStats = stats.DailyStats[1:]
	}
	return &stats.DailyStats[len(stats.DailyStats)-1]
}
