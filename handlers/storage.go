package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"xiaoyu-backend/bus"
	"xiaoyu-backend/database"
)

// StorageHandler 全量数据的导出与恢复，管理端备份用
type StorageHandler struct {
	KV  *database.KVStore
	Bus *bus.Bus
}

func NewStorageHandler(kv *database.KVStore, b *bus.Bus) *StorageHandler {
	return &StorageHandler{KV: kv, Bus: b}
}

// Export 导出命名空间下所有键的原始值，平铺成 键→JSON 字符串。
// 值不做解析，导入时原样写回即可完整还原
func (h *StorageHandler) Export(c *gin.Context) {
	keys, err := h.KV.Keys(database.KeyPrefix)
	if err != nil {
		c.JSON(500, gin.H{"error": "导出失败"})
		return
	}

	dump := make(map[string]string, len(keys))
	for _, key := range keys {
		if raw, ok, _ := h.KV.Get(key); ok {
			dump[key] = raw
		}
	}
	c.JSON(200, dump)
}

// Import 从导出的快照恢复。逐键原样写回，写完按键广播失效，
// 所有打开的实例重新拉取
func (h *StorageHandler) Import(c *gin.Context) {
	var dump map[string]string
	if err := c.ShouldBindJSON(&dump); err != nil {
		c.JSON(400, gin.H{"error": "无效的备份文件"})
		return
	}

	restored := 0
	for key, value := range dump {
		// 只认自己命名空间下的键，防止备份文件混入脏键
		if !strings.HasPrefix(key, database.KeyPrefix) {
			continue
		}
		if err := h.KV.Set(key, value); err != nil {
			c.JSON(500, gin.H{"error": "恢复失败: " + err.Error()})
			return
		}
		h.Bus.Publish(bus.Event{Key: key})
		restored++
	}
	c.JSON(200, gin.H{"message": "恢复完成", "restored": restored})
}
