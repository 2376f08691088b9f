package handlers

import (
	"github.com/gin-gonic/gin"

	"xiaoyu-backend/models"
	"xiaoyu-backend/repositories"
	"xiaoyu-backend/services"
)

type SettingsHandler struct {
	Repo repositories.SettingsRepository
	Chat repositories.ChatRepository
	SMS  *services.SMSService
}

func NewSettingsHandler(repo repositories.SettingsRepository, chat repositories.ChatRepository, sms *services.SMSService) *SettingsHandler {
	return &SettingsHandler{Repo: repo, Chat: chat, SMS: sms}
}

// GetPricingStrategy 报价策略（服务费率 + 折扣档位）
func (h *SettingsHandler) GetPricingStrategy(c *gin.Context) {
	c.JSON(200, h.Repo.PricingStrategy())
}

func (h *SettingsHandler) SavePricingStrategy(c *gin.Context) {
	var strategy models.PricingStrategy
	if err := c.ShouldBindJSON(&strategy); err != nil {
		c.JSON(400, gin.H{"error": "无效的数据格式"})
		return
	}
	if err := h.Repo.SavePricingStrategy(strategy); err != nil {
		saveError(c, err)
		return
	}
	c.JSON(200, strategy)
}

// GetAISettings AI 装机助手配置，密钥只在管理端接口出现
func (h *SettingsHandler) GetAISettings(c *gin.Context) {
	c.JSON(200, h.Repo.AISettings())
}

func (h *SettingsHandler) SaveAISettings(c *gin.Context) {
	var settings models.AISettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(400, gin.H{"error": "无效的数据格式"})
		return
	}
	if err := h.Repo.SaveAISettings(settings); err != nil {
		saveError(c, err)
		return
	}
	c.JSON(200, settings)
}

// GetSMSSettings 短信配置
func (h *SettingsHandler) GetSMSSettings(c *gin.Context) {
	c.JSON(200, h.Repo.SMSSettings())
}

func (h *SettingsHandler) SaveSMSSettings(c *gin.Context) {
	var settings models.SMSSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(400, gin.H{"error": "无效的数据格式"})
		return
	}
	if err := h.Repo.SaveSMSSettings(settings); err != nil {
		saveError(c, err)
		return
	}
	c.JSON(200, settings)
}

// SendSMSCode 发验证码，先过频控再记账
func (h *SettingsHandler) SendSMSCode(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "手机号不能为空"})
		return
	}

	if ok, reason := h.SMS.CheckLimit(req.Phone); !ok {
		c.JSON(429, gin.H{"error": reason})
		return
	}
	if err := h.SMS.LogAttempt(req.Phone); err != nil {
		c.JSON(500, gin.H{"error": "发送失败"})
		return
	}
	// 实际下发走配置的短信服务商，mock 模式下只记账
	c.JSON(200, gin.H{"message": "验证码已发送"})
}

// GetAboutUs 关于我们页面配置
func (h *SettingsHandler) GetAboutUs(c *gin.Context) {
	c.JSON(200, h.Repo.AboutUs())
}

func (h *SettingsHandler) SaveAboutUs(c *gin.Context) {
	var cfg models.AboutUsConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(400, gin.H{"error": "无效的数据格式"})
		return
	}
	if err := h.Repo.SaveAboutUs(cfg); err != nil {
		saveError(c, err)
		return
	}
	c.JSON(200, cfg)
}

// GetChatSettings 客服配置（欢迎语、快捷回复、自动回复）
func (h *SettingsHandler) GetChatSettings(c *gin.Context) {
	c.JSON(200, h.Chat.Settings())
}

func (h *SettingsHandler) SaveChatSettings(c *gin.Context) {
	var settings models.ChatSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(400, gin.H{"error": "无效的数据格式"})
		return
	}
	if err := h.Chat.SaveSettings(settings); err != nil {
		saveError(c, err)
		return
	}
	c.JSON(200, settings)
}
