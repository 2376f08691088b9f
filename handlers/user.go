package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"xiaoyu-backend/models"
	"xiaoyu-backend/repositories"
)

type UserHandler struct {
	Repo repositories.UserRepository
}

func NewUserHandler(repo repositories.UserRepository) *UserHandler {
	return &UserHandler{Repo: repo}
}

// ListUsers 管理端用户列表，密码哈希不出接口
func (h *UserHandler) ListUsers(c *gin.Context) {
	users := h.Repo.List()
	for i := range users {
		users[i].Password = ""
	}
	c.JSON(200, users)
}

// SaveUser 管理端改用户资料。带了新密码就重新哈希，否则保留原哈希
func (h *UserHandler) SaveUser(c *gin.Context) {
	var user models.UserItem
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(400, gin.H{"error": "无效的数据格式"})
		return
	}

	existing, ok := h.Repo.FindByID(user.ID)
	if !ok {
		c.JSON(404, gin.H{"error": "用户不存在"})
		return
	}
	if user.Password == "" {
		user.Password = existing.Password
	} else {
		hashed, _ := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		user.Password = string(hashed)
	}

	if err := h.Repo.Upsert(user); err != nil {
		saveError(c, err)
		return
	}
	user.Password = ""
	c.JSON(200, user)
}

// DeleteUser 删除用户
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		c.JSON(500, gin.H{"error": "删除失败"})
		return
	}
	c.JSON(200, gin.H{"message": "删除成功"})
}
