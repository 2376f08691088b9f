package database

import (
	"errors"
	"log"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrCapacityExceeded 写入会超出容量上限，本次写入整体丢弃
var ErrCapacityExceeded = errors.New("本地存储空间已满")

// KVEntry 字符串键值对，localStorage 的服务端版本
type KVEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (KVEntry) TableName() string { return "kv_entries" }

// KVStore 带容量上限的键值适配器。
// Set 失败时不产生半写状态；容量告警只向运维面板报一次
type KVStore struct {
	db       *gorm.DB
	maxBytes int64
	warnOnce sync.Once
}

func NewKVStore(db *gorm.DB, maxBytes int64) *KVStore {
	return &KVStore{db: db, maxBytes: maxBytes}
}

// Get 读取键，缺失返回 ok=false 而不是错误
func (s *KVStore) Get(key string) (string, bool, error) {
	var entry KVEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set 写入键。超出容量上限时返回 ErrCapacityExceeded，数据保持原样
func (s *KVStore) Set(key, value string) error {
	if s.maxBytes > 0 {
		used, err := s.usedBytes()
		if err != nil {
			return err
		}
		var old KVEntry
		if err := s.db.First(&old, "key = ?", key).Error; err == nil {
			used -= int64(len(old.Key) + len(old.Value))
		}
		if used+int64(len(key)+len(value)) > s.maxBytes {
			s.warnOnce.Do(func() {
				log.Printf("⚠️ 本地存储空间已满，写入 %s 被丢弃。请清理数据或调大 storage.max_bytes", key)
			})
			return ErrCapacityExceeded
		}
	}

	entry := KVEntry{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

func (s *KVStore) Delete(key string) error {
	return s.db.Delete(&KVEntry{}, "key = ?", key).Error
}

// Keys 按写入顺序返回指定前缀的所有键
func (s *KVStore) Keys(prefix string) ([]string, error) {
	var keys []string
	err := s.db.Model(&KVEntry{}).
		Where("key LIKE ?", prefix+"%").
		Order("rowid").
		Pluck("key", &keys).Error
	return keys, err
}

func (s *KVStore) usedBytes() (int64, error) {
	var total int64
	err := s.db.Model(&KVEntry{}).
		Select("COALESCE(SUM(LENGTH(key) + LENGTH(value)), 0)").
		Scan(&total).Error
	return total, err
}
