package repositories

import (
	"strings"

	"xiaoyu-backend/bus"
	"xiaoyu-backend/database"
	"xiaoyu-backend/models"
)

type UserRepository interface {
	List() []models.UserItem
	FindByID(id string) (models.UserItem, bool)
	FindByUsername(username string) (models.UserItem, bool)
	// FindByInviteCode 大小写不敏感，只接受 6 位邀请码
	FindByInviteCode(code string) (models.UserItem, bool)
	FindByRole(role string) []models.UserItem
	Upsert(user models.UserItem) error
	Delete(id string) error
}

type userRepository struct {
	kv  *database.KVStore
	bus *bus.Bus
}

func NewUserRepository(kv *database.KVStore, b *bus.Bus) UserRepository {
	return &userRepository{kv: kv, bus: b}
}

func (r *userRepository) List() []models.UserItem {
	return loadList[models.UserItem](r.kv, database.KeyUsers)
}

func (r *userRepository) FindByID(id string) (models.UserItem, bool) {
	for _, u := range r.List() {
		if u.ID == id {
			return u, true
		}
	}
	return models.UserItem{}, false
}

func (r *userRepository) FindByUsername(username string) (models.UserItem, bool) {
	for _, u := range r.List() {
		if u.Username == username {
			return u, true
		}
	}
	return models.UserItem{}, false
}

func (r *userRepository) FindByInviteCode(code string) (models.UserItem, bool) {
	if len(code) != 6 {
		return models.UserItem{}, false
	}
	for _, u := range r.List() {
		if u.InviteCode != "" && strings.EqualFold(u.InviteCode, code) {
			return u, true
		}
	}
	return models.UserItem{}, false
}

func (r *userRepository) FindByRole(role string) []models.UserItem {
	var matched []models.UserItem
	for _, u := range r.List() {
		if u.Role == role {
			matched = append(matched, u)
		}
	}
	return matched
}

func (r *userRepository) Upsert(user models.UserItem) error {
	users := r.List()
	replaced := false
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, user)
	}
	return storeList(r.kv, r.bus, database.KeyUsers, "", users)
}

func (r *userRepository) Delete(id string) error {
	users := r.List()
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return storeList(r.kv, r.bus, database.KeyUsers, "", kept)
}
