package repositories

import (
	"xiaoyu-backend/bus"
	"xiaoyu-backend/database"
	"xiaoyu-backend/models"
)

type CommentRepository interface {
	List() []models.CommentItem
	// ForConfig 只返回指定配置单下状态为 active 的评论
	ForConfig(configID string) []models.CommentItem
	Save(comment models.CommentItem) error
	Delete(id string) error
}

type commentRepository struct {
	kv  *database.KVStore
	bus *bus.Bus
}

func NewCommentRepository(kv *database.KVStore, b *bus.Bus) CommentRepository {
	return &commentRepository{kv: kv, bus: b}
}

func (r *commentRepository) List() []models.CommentItem {
	return loadList[models.CommentItem](r.kv, database.KeyComments)
}

func (r *commentRepository) ForConfig(configID string) []models.CommentItem {
	var matched []models.CommentItem
	for _, c := range r.List() {
		if c.ConfigID == configID && c.Status == "active" {
			matched = append(matched, c)
		}
	}
	return matched
}

func (r *commentRepository) Save(comment models.CommentItem) error {
	all := r.List()
	for i := range all {
		if all[i].ID == comment.ID {
			all[i] = comment
			return storeList(r.kv, r.bus, database.KeyComments, "", all)
		}
	}
	// 新评论插到最前，管理端按时间倒序展示
	all = append([]models.CommentItem{comment}, all...)
	return storeList(r.kv, r.bus, database.KeyComments, "", all)
}

func (r *commentRepository) Delete(id string) error {
	all := r.List()
	kept := all[:0]
	for _, c := range all {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return storeList(r.kv, r.bus, database.KeyComments, "", kept)
}
