package repositories

import (
	"xiaoyu-backend/bus"
	"xiaoyu-backend/database"
	"xiaoyu-backend/models"
)

type RecycleRepository interface {
	List() []models.RecycleRequest
	Upsert(req models.RecycleRequest) error
	Delete(id string) error
	MarkRead(id string) error
	UnreadCount() int
}

type recycleRepository struct {
	kv  *database.KVStore
	bus *bus.Bus
}

func NewRecycleRepository(kv *database.KVStore, b *bus.Bus) RecycleRepository {
	return &recycleRepository{kv: kv, bus: b}
}

func (r *recycleRepository) List() []models.RecycleRequest {
	return loadList[models.RecycleRequest](r.kv, database.KeyRecycleRequests)
}

func (r *recycleRepository) Upsert(req models.RecycleRequest) error {
	items := r.List()
	replaced := false
	for i := range items {
		if items[i].ID == req.ID {
			items[i] = req
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, req)
	}
	return storeList(r.kv, r.bus, database.KeyRecycleRequests, "", items)
}

func (r *recycleRepository) Delete(id string) error {
	items := r.List()
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return storeList(r.kv, r.bus, database.KeyRecycleRequests, "", kept)
}

func (r *recycleRepository) MarkRead(id string) error {
	items := r.List()
	for i := range items {
		if items[i].ID == id {
			items[i].IsRead = true
			return storeList(r.kv, r.bus, database.KeyRecycleRequests, "", items)
		}
	}
	return nil
}

func (r *recycleRepository) UnreadCount() int {
	count := 0
	for _, item := range r.List() {
		if !item.IsRead {
			count++
		}
	}
	return count
}
