package repositories

import (
	"xiaoyu-backend/bus"
	"xiaoyu-backend/database"
	"xiaoyu-backend/models"
)

type ProductRepository interface {
	List() []models.HardwareItem
	FindByID(id string) (models.HardwareItem, bool)
	Upsert(item models.HardwareItem) error
	Delete(id string) error
	// 前台只展示上架商品
	Active() []models.HardwareItem
}

type productRepository struct {
	kv  *database.KVStore
	bus *bus.Bus
}

func NewProductRepository(kv *database.KVStore, b *bus.Bus) ProductRepository {
	return &productRepository{kv: kv, bus: b}
}

func (r *productRepository) List() []models.HardwareItem {
	return loadList[models.HardwareItem](r.kv, database.KeyProducts)
}

func (r *productRepository) FindByID(id string) (models.HardwareItem, bool) {
	for _, item := range r.List() {
		if item.ID == id {
			return item, true
		}
	}
	return models.HardwareItem{}, false
}

func (r *productRepository) Upsert(item models.HardwareItem) error {
	items := r.List()
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return storeList(r.kv, r.bus, database.KeyProducts, "", items)
}

func (r *productRepository) Delete(id string) error {
	items := r.List()
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return storeList(r.kv, r.bus, database.KeyProducts, "", kept)
}

func (r *productRepository) Active() []models.HardwareItem {
	var active []models.HardwareItem
	for _, item := range r.List() {
		if item.Status == "active" {
			active = append(active, item)
		}
	}
	return active
}
