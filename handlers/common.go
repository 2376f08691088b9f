package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"xiaoyu-backend/database"
)

// saveError 写失败的统一响应。容量超限单独给 507，
// 让管理端能提示清理数据而不是笼统报错
func saveError(c *gin.Context, err error) {
	if errors.Is(err, database.ErrCapacityExceeded) {
		c.JSON(507, gin.H{"error": err.Error()})
		return
	}
	c.JSON(500, gin.H{"error": "保存失败"})
}
