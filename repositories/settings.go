package repositories

import (
	"xiaoyu-backend/bus"
	"xiaoyu-backend/data"
	"xiaoyu-backend/database"
	"xiaoyu-backend/models"
)

// SettingsRepository 报价策略 / AI / 短信配置共用 xiaoyu_settings 一个键，
// 关于我们页面配置单独一个键。读不到时回退内置默认值
type SettingsRepository interface {
	PricingStrategy() models.PricingStrategy
	SavePricingStrategy(strategy models.PricingStrategy) error

	AISettings() models.AISettings
	SaveAISettings(settings models.AISettings) error

	SMSSettings() models.SMSSettings
	SaveSMSSettings(settings models.SMSSettings) error

	AboutUs() models.AboutUsConfig
	SaveAboutUs(cfg models.AboutUsConfig) error
}

type settingsRepository struct {
	kv  *database.KVStore
	bus *bus.Bus
}

func NewSettingsRepository(kv *database.KVStore, b *bus.Bus) SettingsRepository {
	return &settingsRepository{kv: kv, bus: b}
}

func (r *settingsRepository) load() models.StoreSettings {
	settings, _ := loadObject[models.StoreSettings](r.kv, database.KeySettings)
	return settings
}

func (r *settingsRepository) PricingStrategy() models.PricingStrategy {
	if s := r.load(); s.PricingStrategy != nil {
		return *s.PricingStrategy
	}
	return data.DefaultStrategy()
}

func (r *settingsRepository) SavePricingStrategy(strategy models.PricingStrategy) error {
	s := r.load()
	s.PricingStrategy = &strategy
	return storeObject(r.kv, r.bus, database.KeySettings, s)
}

func (r *settingsRepository) AISettings() models.AISettings {
	if s := r.load(); s.AISettings != nil {
		return *s.AISettings
	}
	return models.AISettings{Provider: "deepseek"}
}

func (r *settingsRepository) SaveAISettings(settings models.AISettings) error {
	s := r.load()
	s.AISettings = &settings
	return storeObject(r.kv, r.bus, database.KeySettings, s)
}

func (r *settingsRepository) SMSSettings() models.SMSSettings {
	if s := r.load(); s.SMSSettings != nil {
		return *s.SMSSettings
	}
	return data.DefaultSMSSettings()
}

func (r *settingsRepository) SaveSMSSettings(settings models.SMSSettings) error {
	s := r.load()
	s.SMSSettings = &settings
	return storeObject(r.kv, r.bus, database.KeySettings, s)
}

func (r *settingsRepository) AboutUs() models.AboutUsConfig {
	if cfg, ok := loadObject[models.AboutUsConfig](r.kv, database.KeyAboutUsConfig); ok {
		return cfg
	}
	return data.DefaultAboutUs()
}

func (r *settingsRepository) SaveAboutUs(cfg models.AboutUsConfig) error {
	return storeObject(r.kv, r.bus, database.KeyAboutUsConfig, cfg)
}
