package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"xiaoyu-backend/config"
	"xiaoyu-backend/models"
	"xiaoyu-backend/repositories"
	"xiaoyu-backend/services"
	"xiaoyu-backend/utils"
)

type AuthHandler struct {
	users    repositories.UserRepository
	referral *services.ReferralService
	stats    *services.StatsService
	cfg      config.AuthConfig
}

func NewAuthHandler(users repositories.UserRepository, referral *services.ReferralService, stats *services.StatsService, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{users: users, referral: referral, stats: stats, cfg: cfg}
}

// Register 注册。可携带邀请码，邀请奖励发给邀请人；
// 邀请码无效或额度用尽不阻断注册，原因随响应带回
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "参数校验失败"})
		return
	}

	if _, exists := h.users.FindByUsername(req.Username); exists {
		c.JSON(409, gin.H{"error": "用户名已存在"})
		return
	}

	// 密码哈希
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	user := models.UserItem{
		ID:       fmt.Sprintf("u-%d", time.Now().UnixMilli()),
		Username: req.Username,
		Password: string(hashedPassword),
		Role:     "user",
		Status:   "active",
	}

	var inviteResult *services.ReferralResult
	if req.InviteCode != "" {
		if inviter, ok := h.referral.FindUserByInviteCode(req.InviteCode); ok {
			result, err := h.referral.ProcessReferral(inviter.ID)
			if err != nil {
				c.JSON(500, gin.H{"error": "注册失败"})
				return
			}
			if result.Success {
				user.InvitedBy = inviter.ID
			}
			inviteResult = &result
		} else {
			inviteResult = &services.ReferralResult{Success: false, Message: "邀请人不存在"}
		}
	}

	if err := h.users.Upsert(user); err != nil {
		c.JSON(500, gin.H{"error": "注册失败"})
		return
	}
	h.stats.LogNewUser()

	resp := gin.H{"message": "注册成功", "userId": user.ID}
	if inviteResult != nil {
		resp["invite"] = inviteResult
	}
	c.JSON(200, resp)
}

// Login 登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "输入不合法"})
		return
	}

	user, ok := h.users.FindByUsername(req.Username)
	if !ok {
		c.JSON(401, gin.H{"error": "用户不存在"})
		return
	}
	if user.Status == "banned" {
		c.JSON(403, gin.H{"error": "账号已被封禁"})
		return
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(401, gin.H{"error": "密码错误"})
		return
	}

	user.LastLogin = time.Now().Format("2006-01-02 15:04:05")
	h.users.Upsert(user)

	// 签发 Token
	token, _ := utils.GenerateToken(user.ID, user.Role, h.cfg)
	user.Password = ""
	c.JSON(200, gin.H{
		"token": token,
		"user":  user,
	})
}

// MyInviteCode 取当前用户的专属邀请码，首次访问时生成
func (h *AuthHandler) MyInviteCode(c *gin.Context) {
	userID := c.GetString("current_user_id")
	code, err := h.referral.EnsureInviteCode(userID)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"inviteCode": code})
}
