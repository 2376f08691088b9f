package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"xiaoyu-backend/models"
	"xiaoyu-backend/repositories"
)

type CommentHandler struct {
	Repo repositories.CommentRepository
}

func NewCommentHandler(repo repositories.CommentRepository) *CommentHandler {
	return &CommentHandler{Repo: repo}
}

// ListComments 某配置单下的可见评论
func (h *CommentHandler) ListComments(c *gin.Context) {
	c.JSON(200, h.Repo.ForConfig(c.Param("id")))
}

// ListAllComments 管理端全量评论，含隐藏的
func (h *CommentHandler) ListAllComments(c *gin.Context) {
	c.JSON(200, h.Repo.List())
}

// PostComment 发表评论
func (h *CommentHandler) PostComment(c *gin.Context) {
	var comment models.CommentItem
	if err := c.ShouldBindJSON(&comment); err != nil {
		c.JSON(400, gin.H{"error": "无效的数据格式"})
		return
	}
	if comment.Content == "" {
		c.JSON(400, gin.H{"error": "评论内容不能为空"})
		return
	}

	comment.ID = fmt.Sprintf("cmt-%d", time.Now().UnixMilli())
	comment.UserID = c.GetString("current_user_id")
	comment.CreatedAt = time.Now().Format("2006-01-02 15:04:05")
	comment.Status = "active"

	if err := h.Repo.Save(comment); err != nil {
		c.JSON(500, gin.H{"error": "发表失败"})
		return
	}
	c.JSON(200, comment)
}

// UpdateComment 管理端改评论状态（隐藏/恢复）
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var comment models.CommentItem
	if err := c.ShouldBindJSON(&comment); err != nil {
		c.JSON(400, gin.H{"error": "无效的数据格式"})
		return
	}
	if err := h.Repo.Save(comment); err != nil {
		saveError(c, err)
		return
	}
	c.JSON(200, comment)
}

// DeleteComment 删除评论
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		c.JSON(500, gin.H{"error": "删除失败"})
		return
	}
	c.JSON(200, gin.H{"message": "删除成功"})
}
