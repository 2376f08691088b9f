package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"xiaoyu-backend/bus"
	"xiaoyu-backend/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newStorageFixture(t *testing.T) (*gin.Engine, *database.KVStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.InitDB(dsn)
	require.NoError(t, err)
	kv := database.NewKVStore(db, 0)

	h := NewStorageHandler(kv, bus.New(nil))
	r := gin.New()
	r.GET("/storage/export", h.Export)
	r.POST("/storage/import", h.Import)
	return r, kv
}

func httpDo(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExportImportRoundTrip(t *testing.T) {
	r, kv := newStorageFixture(t)

	require.NoError(t, kv.Set("xiaoyu_products", `[{"id":"hw-1"}]`))
	require.NoError(t, kv.Set("xiaoyu_users", `[{"id":"u-1"}]`))

	w := httpDo(r, "GET", "/storage/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dump map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dump))
	require.Len(t, dump, 2)
	require.Equal(t, `[{"id":"hw-1"}]`, dump["xiaoyu_products"])

	// 清空后导入，逐键还原
	require.NoError(t, kv.Delete("xiaoyu_products"))
	require.NoError(t, kv.Delete("xiaoyu_users"))

	w = httpDo(r, "POST", "/storage/import", dump)
	require.Equal(t, http.StatusOK, w.Code)

	val, ok, _ := kv.Get("xiaoyu_products")
	require.True(t, ok)
	require.Equal(t, `[{"id":"hw-1"}]`, val)
	val, ok, _ = kv.Get("xiaoyu_users")
	require.True(t, ok)
	require.Equal(t, `[{"id":"u-1"}]`, val)
}

func TestImportSkipsForeignKeys(t *testing.T) {
	r, kv := newStorageFixture(t)

	dump := map[string]string{
		"xiaoyu_users": `[]`,
		"evil_key":     `x`,
	}
	w := httpDo(r, "POST", "/storage/import", dump)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Restored int `json:"restored"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Restored)

	_, ok, _ := kv.Get("evil_key")
	require.False(t, ok)
}

func TestImportRejectsMalformedBody(t *testing.T) {
	r, _ := newStorageFixture(t)

	req := httptest.NewRequest("POST", "/storage/import", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
