package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"xiaoyu-backend/models"
	"xiaoyu-backend/repositories"
	"xiaoyu-backend/services"
)

type ConfigHandler struct {
	Repo  repositories.ConfigRepository
	Likes repositories.LikesRepository
	stats *services.StatsService
}

func NewConfigHandler(repo repositories.ConfigRepository, likes repositories.LikesRepository, stats *services.StatsService) *ConfigHandler {
	return &ConfigHandler{Repo: repo, Likes: likes, stats: stats}
}

// ListConfigs 前台配置单广场，只给已发布的
func (h *ConfigHandler) ListConfigs(c *gin.Context) {
	c.JSON(200, h.Repo.Published())
}

// ListAllConfigs 管理端配置单列表
func (h *ConfigHandler) ListAllConfigs(c *gin.Context) {
	c.JSON(200, h.Repo.List())
}

// GetConfig 详情页，访问即计一次浏览
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	id := c.Param("id")
	item, ok := h.Repo.FindByID(id)
	if !ok {
		c.JSON(404, gin.H{"error": "配置单不存在"})
		return
	}
	h.Repo.AddView(id)
	item.Views++
	c.JSON(200, item)
}

// SaveConfig 新建或更新配置单。新建时由仓储分配年度流水号
func (h *ConfigHandler) SaveConfig(c *gin.Context) {
	var item models.ConfigItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(400, gin.H{"error": "无效的数据格式"})
		return
	}

	isNew := item.ID == ""
	if isNew {
		item.ID = fmt.Sprintf("cfg-%d", time.Now().UnixMilli())
		item.CreatedAt = time.Now().Format("2006-01-02 15:04:05")
	}

	saved, err := h.Repo.Upsert(item)
	if err != nil {
		saveError(c, err)
		return
	}
	if isNew {
		h.stats.LogNewConfig()
	}
	c.JSON(200, saved)
}

// DeleteConfig 删除配置单
func (h *ConfigHandler) DeleteConfig(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		c.JSON(500, gin.H{"error": "删除失败"})
		return
	}
	c.JSON(200, gin.H{"message": "删除成功"})
}

// ToggleLike 点赞/取消点赞，点赞数与用户点赞集合一起变
func (h *ConfigHandler) ToggleLike(c *gin.Context) {
	configID := c.Param("id")
	userID := c.GetString("current_user_id")

	if _, ok := h.Repo.FindByID(configID); !ok {
		c.JSON(404, gin.H{"error": "配置单不存在"})
		return
	}

	liked, err := h.Likes.Toggle(userID, configID)
	if err != nil {
		c.JSON(500, gin.H{"error": "操作失败"})
		return
	}
	delta := 1
	if !liked {
		delta = -1
	}
	h.Repo.AdjustLikes(configID, delta)
	c.JSON(200, gin.H{"liked": liked})
}

// MyLikes 当前用户点过赞的配置单 ID 集合
func (h *ConfigHandler) MyLikes(c *gin.Context) {
	userID := c.GetString("current_user_id")
	likes := h.Likes.Get(userID)
	if likes == nil {
		likes = []string{}
	}
	c.JSON(200, likes)
}
