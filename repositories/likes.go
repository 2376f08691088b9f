package repositories

import (
	"xiaoyu-backend/bus"
	"xiaoyu-backend/database"
)

// LikesRepository 每个用户的点赞集合，按用户各占一个键
type LikesRepository interface {
	Get(userID string) []string
	// Toggle 返回切换后的点赞状态
	Toggle(userID, configID string) (bool, error)
}

type likesRepository struct {
	kv  *database.KVStore
	bus *bus.Bus
}

func NewLikesRepository(kv *database.KVStore, b *bus.Bus) LikesRepository {
	return &likesRepository{kv: kv, bus: b}
}

func (r *likesRepository) Get(userID string) []string {
	return loadList[string](r.kv, database.LikesKey(userID))
}

func (r *likesRepository) Toggle(userID, configID string) (bool, error) {
	likes := r.Get(userID)
	for i, id := range likes {
		if id == configID {
			likes = append(likes[:i], likes[i+1:]...)
			return false, storeList(r.kv, r.bus, database.LikesKey(userID), "", likes)
		}
	}
	likes = append(likes, configID)
	return true, storeList(r.kv, r.bus, database.LikesKey(userID), "", likes)
}
