package handlers

import (
	"github.com/gin-gonic/gin"

	"xiaoyu-backend/services"
)

type StatsHandler struct {
	Service *services.StatsService
}

func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{Service: service}
}

// GetStats 管理端仪表盘数据
func (h *StatsHandler) GetStats(c *gin.Context) {
	c.JSON(200, h.Service.Get())
}

// LogAiGeneration AI 装机调用计数，由前台在生成成功后上报
func (h *StatsHandler) LogAiGeneration(c *gin.Context) {
	if err := h.Service.LogAiGeneration(); err != nil {
		c.JSON(500, gin.H{"error": "记录失败"})
		return
	}
	c.JSON(200, gin.H{"message": "ok"})
}
