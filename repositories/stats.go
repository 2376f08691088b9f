package repositories

import (
	"xiaoyu-backend/bus"
	"xiaoyu-backend/database"
	"xiaoyu-backend/models"
)

type StatsRepository interface {
	Get() models.SystemStats
	Save(stats models.SystemStats) error
}

type statsRepository struct {
	kv  *database.KVStore
	bus *bus.Bus
}

func NewStatsRepository(kv *database.KVStore, b *bus.Bus) StatsRepository {
	return &statsRepository{kv: kv, bus: b}
}

func (r *statsRepository) Get() models.SystemStats {
	stats, _ := loadObject[models.SystemStats](r.kv, database.KeySystemStats)
	if stats.DailyStats == nil {
		stats.DailyStats = []models.DailyStat{}
	}
	return stats
}

func (r *statsRepository) Save(stats models.SystemStats) error {
	return storeObject(r.kv, r.bus, database.KeySystemStats, stats)
}
