package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"xiaoyu-backend/models"
	"xiaoyu-backend/repositories"
)

type UsedHandler struct {
	Repo    repositories.UsedRepository
	Recycle repositories.RecycleRepository
}

func NewUsedHandler(repo repositories.UsedRepository, recycle repositories.RecycleRepository) *UsedHandler {
	return &UsedHandler{Repo: repo, Recycle: recycle}
}

// ListUsed 前台二手列表，只给已发布的；已售超过 3 天的隐藏
func (h *UsedHandler) ListUsed(c *gin.Context) {
	cutoff := time.Now().AddDate(0, 0, -3).UnixMilli()
	var visible []models.UsedItem
	for _, item := range h.Repo.List() {
		if item.Status == "published" || (item.Status == "sold" && item.SoldAt > cutoff) {
			visible = append(visible, item)
		}
	}
	c.JSON(200, visible)
}

// ListAllUsed 管理端二手列表，含待审核和已下架
func (h *UsedHandler) ListAllUsed(c *gin.Context) {
	c.JSON(200, h.Repo.List())
}

// GetUsed 二手详情
func (h *UsedHandler) GetUsed(c *gin.Context) {
	item, ok := h.Repo.FindByID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"error": "商品不存在"})
		return
	}
	c.JSON(200, item)
}

// SaveUsed 发布或更新二手商品。个人闲置先进 pending 等审核
func (h *UsedHandler) SaveUsed(c *gin.Context) {
	var item models.UsedItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(400, gin.H{"error": "无效的数据格式"})
		return
	}
	if item.ID == "" {
		item.ID = "used-" + uuid.NewString()
		item.CreatedAt = time.Now().UnixMilli()
	}
	if err := h.Repo.Upsert(item); err != nil {
		saveError(c, err)
		return
	}
	c.JSON(200, item)
}

// MarkSold 标记已售，记录时间供前台做 3 天淡出
func (h *UsedHandler) MarkSold(c *gin.Context) {
	if err := h.Repo.MarkSold(c.Param("id")); err != nil {
		c.JSON(500, gin.H{"error": "操作失败"})
		return
	}
	c.JSON(200, gin.H{"message": "已标记为售出"})
}

// DeleteUsed 删除二手商品
func (h *UsedHandler) DeleteUsed(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		c.JSON(500, gin.H{"error": "删除失败"})
		return
	}
	c.JSON(200, gin.H{"message": "删除成功"})
}

// SubmitRecycle 提交硬件回收请求
func (h *UsedHandler) SubmitRecycle(c *gin.Context) {
	var req models.RecycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "无效的数据格式"})
		return
	}
	if req.ID == "" {
		req.ID = "rec-" + uuid.NewString()
		req.CreatedAt = time.Now().Format("2006-01-02 15:04:05")
	}
	req.Status = "pending"
	req.IsRead = false
	if err := h.Recycle.Upsert(req); err != nil {
		c.JSON(500, gin.H{"error": "提交失败"})
		return
	}
	c.JSON(200, req)
}

// ListRecycle 管理端回收请求列表，顺带给未读数做角标
func (h *UsedHandler) ListRecycle(c *gin.Context) {
	c.JSON(200, gin.H{
		"requests":    h.Recycle.List(),
		"unreadCount": h.Recycle.UnreadCount(),
	})
}

// MarkRecycleRead 标记回收请求已读
func (h *UsedHandler) MarkRecycleRead(c *gin.Context) {
	if err := h.Recycle.MarkRead(c.Param("id")); err != nil {
		c.JSON(500, gin.H{"error": "操作失败"})
		return
	}
	c.JSON(200, gin.H{"message": "ok"})
}

// UpdateRecycle 管理端更新回收请求（改状态、备注等）
func (h *UsedHandler) UpdateRecycle(c *gin.Context) {
	var req models.RecycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "无效的数据格式"})
		return
	}
	if err := h.Recycle.Upsert(req); err != nil {
		saveError(c, err)
		return
	}
	c.JSON(200, req)
}

// DeleteRecycle 删除回收请求
func (h *UsedHandler) DeleteRecycle(c *gin.Context) {
	if err := h.Recycle.Delete(c.Param("id")); err != nil {
		c.JSON(500, gin.H{"error": "删除失败"})
		return
	}
	c.JSON(200, gin.H{"message": "删除成功"})
}
