package handlers

import (
	"github.com/gin-gonic/gin"

	"xiaoyu-backend/models"
	"xiaoyu-backend/repositories"
)

type ProductHandler struct {
	Repo repositories.ProductRepository
}

func NewProductHandler(repo repositories.ProductRepository) *ProductHandler {
	return &ProductHandler{Repo: repo}
}

// ListProducts 前台硬件列表，只给上架商品
func (h *ProductHandler) ListProducts(c *gin.Context) {
	c.JSON(200, h.Repo.Active())
}

// ListAllProducts 管理端硬件列表，含下架和草稿
func (h *ProductHandler) ListAllProducts(c *gin.Context) {
	c.JSON(200, h.Repo.List())
}

// GetProduct 单个硬件详情
func (h *ProductHandler) GetProduct(c *gin.Context) {
	item, ok := h.Repo.FindByID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"error": "硬件不存在"})
		return
	}
	c.JSON(200, item)
}

// SaveProduct 新建或整条覆盖
func (h *ProductHandler) SaveProduct(c *gin.Context) {
	var item models.HardwareItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(400, gin.H{"error": "无效的数据格式"})
		return
	}
	if item.ID == "" {
		c.JSON(400, gin.H{"error": "缺少硬件 ID"})
		return
	}
	if err := h.Repo.Upsert(item); err != nil {
		saveError(c, err)
		return
	}
	c.JSON(200, item)
}

// DeleteProduct 删除硬件
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		c.JSON(500, gin.H{"error": "删除失败"})
		return
	}
	c.JSON(200, gin.H{"message": "删除成功"})
}
