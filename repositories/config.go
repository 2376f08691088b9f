package repositories

import (
	"time"

	"xiaoyu-backend/bus"
	"xiaoyu-backend/database"
	"xiaoyu-backend/models"
	"xiaoyu-backend/utils"
)

type ConfigRepository interface {
	List() []models.ConfigItem
	FindByID(id string) (models.ConfigItem, bool)
	// Upsert 对缺少流水号的新配置单分配年度流水号，已有流水号永不改写
	Upsert(item models.ConfigItem) (models.ConfigItem, error)
	Delete(id string) error
	Published() []models.ConfigItem
	AddView(id string) error
	AdjustLikes(id string, delta int) error
}

type configRepository struct {
	kv  *database.KVStore
	bus *bus.Bus
	now func() time.Time
}

func NewConfigRepository(kv *database.KVStore, b *bus.Bus) ConfigRepository {
	return &configRepository{kv: kv, bus: b, now: time.Now}
}

func (r *configRepository) List() []models.ConfigItem {
	return loadList[models.ConfigItem](r.kv, database.KeyConfigs)
}

func (r *configRepository) FindByID(id string) (models.ConfigItem, bool) {
	for _, item := range r.List() {
		if item.ID == id {
			return item, true
		}
	}
	return models.ConfigItem{}, false
}

func (r *configRepository) Upsert(item models.ConfigItem) (models.ConfigItem, error) {
	items := r.List()

	if item.SerialNumber == "" {
		serials := make([]string, 0, len(items))
		for _, c := range items {
			serials = append(serials, c.SerialNumber)
		}
		item.SerialNumber = utils.NextSerialNumber(serials, r.now().Year())
	}

	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			// 流水号分配后不可变，忽略调用方带来的改动
			if items[i].SerialNumber != "" {
				item.SerialNumber = items[i].SerialNumber
			}
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	if err := storeList(r.kv, r.bus, database.KeyConfigs, "", items); err != nil {
		return models.ConfigItem{}, err
	}
	return item, nil
}

func (r *configRepository) Delete(id string) error {
	items := r.List()
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return storeList(r.kv, r.bus, database.KeyConfigs, "", kept)
}

func (r *configRepository) Published() []models.ConfigItem {
	var published []models.ConfigItem
	for _, item := range r.List() {
		if item.Status == "published" {
			published = append(published, item)
		}
	}
	return published
}

func (r *configRepository) AddView(id string) error {
	return r.adjust(id, func(c *models.ConfigItem) { c.Views++ })
}

func (r *configRepository) AdjustLikes(id string, delta int) error {
	return r.adjust(id, func(c *models.ConfigItem) {
		c.Likes += delta
		if c.Likes < 0 {
			c.Likes = 0
		}
	})
}

func (r *configRepository) adjust(id string, apply func(*models.ConfigItem)) error {
	items := r.List()
	for i := range items {
		if items[i].ID == id {
			apply(&items[i])
			return storeList(r.kv, r.bus, database.KeyConfigs, "", items)
		}
	}
	return nil
}
