package database

import (
	"encoding/json"
	"testing"

	"xiaoyu-backend/data"
	"xiaoyu-backend/models"

	"github.com/stretchr/testify/require"
)

func loadUsers(t *testing.T, kv *KVStore) []models.UserItem {
	t.Helper()
	raw, ok, err := kv.Get(KeyUsers)
	require.NoError(t, err)
	require.True(t, ok)
	var users []models.UserItem
	require.NoError(t, json.Unmarshal([]byte(raw), &users))
	return users
}

func TestSeedFreshStore(t *testing.T) {
	kv := newTestKV(t, 0)
	Seed(kv)

	marker, ok, _ := kv.Get(KeyInitFlag)
	require.True(t, ok)
	require.Equal(t, InitTag, marker)

	users := loadUsers(t, kv)
	require.Len(t, users, len(data.DefaultAccounts()))

	// 密码必须是哈希，不落明文
	for _, u := range users {
		require.NotEqual(t, "admin123", u.Password)
		require.NotEmpty(t, u.Password)
	}

	raw, ok, _ := kv.Get(KeyProducts)
	require.True(t, ok)
	var products []models.HardwareItem
	require.NoError(t, json.Unmarshal([]byte(raw), &products))
	require.NotEmpty(t, products)
}

func TestSeedIsIdempotent(t *testing.T) {
	kv := newTestKV(t, 0)
	Seed(kv)
	first := loadUsers(t, kv)

	Seed(kv)
	second := loadUsers(t, kv)
	require.Equal(t, first, second)
}

func TestSeedDoesNotOverwriteUserData(t *testing.T) {
	kv := newTestKV(t, 0)

	custom := []models.HardwareItem{{ID: "hw-mine", Brand: "Custom", Status: "active"}}
	raw, _ := json.Marshal(custom)
	require.NoError(t, kv.Set(KeyProducts, string(raw)))

	Seed(kv)

	got, ok, _ := kv.Get(KeyProducts)
	require.True(t, ok)
	var products []models.HardwareItem
	require.NoError(t, json.Unmarshal([]byte(got), &products))
	require.Len(t, products, 1)
	require.Equal(t, "hw-mine", products[0].ID)
}

func TestSeedMergesBundledConfigs(t *testing.T) {
	kv := newTestKV(t, 0)

	samples := data.SampleConfigs()
	require.NotEmpty(t, samples)

	// 存量条目与内置条目同 ID：内置字段覆盖，存量独有字段保留
	existing := []map[string]interface{}{
		{"id": samples[0].ID, "title": "用户改过的标题", "customNote": "保留我"},
		{"id": "cfg-user-own", "title": "用户自建"},
	}
	raw, _ := json.Marshal(existing)
	require.NoError(t, kv.Set(KeyConfigs, string(raw)))

	Seed(kv)

	got, _, _ := kv.Get(KeyConfigs)
	var merged []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(got), &merged))

	byID := make(map[string]map[string]interface{})
	for _, m := range merged {
		byID[m["id"].(string)] = m
	}

	require.Equal(t, samples[0].Title, byID[samples[0].ID]["title"])
	require.Equal(t, "保留我", byID[samples[0].ID]["customNote"])
	require.Contains(t, byID, "cfg-user-own")
	// 其余内置条目全部补齐
	for _, s := range samples {
		require.Contains(t, byID, s.ID)
	}
}

func TestSeedRemovesLegacyDuplicateAdmin(t *testing.T) {
	kv := newTestKV(t, 0)

	legacy := []models.UserItem{
		{ID: "u-old-admin", Username: data.LegacyAdminName, Role: "admin"},
		{ID: "u-keep", Username: "someone", Role: "user", Status: "active"},
	}
	raw, _ := json.Marshal(legacy)
	require.NoError(t, kv.Set(KeyUsers, string(raw)))

	Seed(kv)

	users := loadUsers(t, kv)
	adminCount := 0
	for _, u := range users {
		if u.Username == data.LegacyAdminName {
			adminCount++
			require.Equal(t, data.AdminID, u.ID)
		}
	}
	require.Equal(t, 1, adminCount)
}
