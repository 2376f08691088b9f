package repositories

import (
	"time"

	"xiaoyu-backend/bus"
	"xiaoyu-backend/database"
	"xiaoyu-backend/models"
)

type UsedRepository interface {
	List() []models.UsedItem
	FindByID(id string) (models.UsedItem, bool)
	Upsert(item models.UsedItem) error
	Delete(id string) error
	MarkSold(id string) error
	Published() []models.UsedItem
}

type usedRepository struct {
	kv  *database.KVStore
	bus *bus.Bus
}

func NewUsedRepository(kv *database.KVStore, b *bus.Bus) UsedRepository {
	return &usedRepository{kv: kv, bus: b}
}

func (r *usedRepository) List() []models.UsedItem {
	return loadList[models.UsedItem](r.kv, database.KeyUsedItems)
}

func (r *usedRepository) FindByID(id string) (models.UsedItem, bool) {
	for _, item := range r.List() {
		if item.ID == id {
			return item, true
		}
	}
	return models.UsedItem{}, false
}

func (r *usedRepository) Upsert(item models.UsedItem) error {
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
	return storeList(r.kv, r.bus, database.KeyUsedItems, "", items)
}

func (r *usedRepository) Delete(id string) error {
	items := r.List()
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return storeList(r.kv, r.bus, database.KeyUsedItems, "", kept)
}

func (r *usedRepository) MarkSold(id string) error {
	items := r.List()
	for i := range items {
		if items[i].ID == id {
			items[i].Status = "sold"
			items[i].SoldAt = time.Now().UnixMilli()
			return storeList(r.kv, r.bus, database.KeyUsedItems, "", items)
		}
	}
	return nil
}

func (r *usedRepository) Published() []models.UsedItem {
	var published []models.UsedItem
	for _, item := range r.List() {
		if item.Status == "published" {
			published = append(published, item)
		}
	}
	return published
}
