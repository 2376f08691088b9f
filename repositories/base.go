// Package repositories 每个集合一个门面，整个集合 JSON 编码后占用一个存储键。
// 读坏数据一律降级为空集合；每次写成功后在总线上发布该键的失效事件。
// Upsert 按 ID 查找，找到则整条替换，调用方自行读-改-写（最后写入者赢）
package repositories

import (
	"encoding/json"

	"xiaoyu-backend/bus"
	"xiaoyu-backend/database"
)

func loadList[T any](kv *database.KVStore, key string) []T {
	raw, ok, err := kv.Get(key)
	if err != nil || !ok {
		return nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// 数据损坏按空集合处理，应用保持可用
		return nil
	}
	return items
}

func storeList[T any](kv *database.KVStore, b *bus.Bus, key, sessionID string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := kv.Set(key, string(raw)); err != nil {
		return err
	}
	b.Publish(bus.Event{Key: key, SessionID: sessionID})
	return nil
}

func loadObject[T any](kv *database.KVStore, key string) (T, bool) {
	var zero T
	raw, ok, err := kv.Get(key)
	if err != nil || !ok {
		return zero, false
	}
	var obj T
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return zero, false
	}
	return obj, true
}

func storeObject[T any](kv *database.KVStore, b *bus.Bus, key string, obj T) error {
	raw, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	if err := kv.Set(key, string(raw)); err != nil {
		return err
	}
	b.Publish(bus.Event{Key: key})
	return nil
}
