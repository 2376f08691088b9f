package database

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T, maxBytes int64) *KVStore {
	t.Helper()
	// 每个用例独立的内存库，避免互相污染
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := InitDB(dsn)
	require.NoError(t, err)
	return NewKVStore(db, maxBytes)
}

func TestKVSetGetDelete(t *testing.T) {
	kv := newTestKV(t, 0)

	_, ok, err := kv.Get("xiaoyu_missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, kv.Set("xiaoyu_products", `[{"id":"hw-1"}]`))
	val, ok, err := kv.Get("xiaoyu_products")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"hw-1"}]`, val)

	// 覆盖写
	require.NoError(t, kv.Set("xiaoyu_products", `[]`))
	val, ok, _ = kv.Get("xiaoyu_products")
	require.True(t, ok)
	require.Equal(t, `[]`, val)

	require.NoError(t, kv.Delete("xiaoyu_products"))
	_, ok, err = kv.Get("xiaoyu_products")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestKVKeysByPrefix(t *testing.T) {
	kv := newTestKV(t, 0)

	require.NoError(t, kv.Set("xiaoyu_users", "[]"))
	require.NoError(t, kv.Set("xiaoyu_configs", "[]"))
	require.NoError(t, kv.Set("other_key", "x"))

	keys, err := kv.Keys(KeyPrefix)
	require.NoError(t, err)
	require.Equal(t, []string{"xiaoyu_users", "xiaoyu_configs"}, keys)
}

func TestKVCapacityExceeded(t *testing.T) {
	kv := newTestKV(t, 64)

	require.NoError(t, kv.Set("a", strings.Repeat("x", 40)))

	// 再写入会超限，原数据保持不变
	err := kv.Set("b", strings.Repeat("y", 40))
	require.ErrorIs(t, err, ErrCapacityExceeded)
	_, ok, _ := kv.Get("b")
	require.False(t, ok)

	val, ok, _ := kv.Get("a")
	require.True(t, ok)
	require.Len(t, val, 40)
}

func TestKVCapacityCountsReplacedValueOnce(t *testing.T) {
	kv := newTestKV(t, 64)

	require.NoError(t, kv.Set("a", strings.Repeat("x", 50)))
	// 覆盖同一个键时旧值腾出的空间要算进去
	require.NoError(t, kv.Set("a", strings.Repeat("y", 60)))

	val, ok, _ := kv.Get("a")
	require.True(t, ok)
	require.Equal(t, strings.Repeat("y", 60), val)
}
