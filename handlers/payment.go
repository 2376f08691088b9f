package handlers

import (
	"log"
	"sync"

	"github.com/gin-gonic/gin"

	"xiaoyu-backend/services"
)

// PaymentHandler 支付查单与后台轮询。VIP 在订单确认支付后一次性延期
type PaymentHandler struct {
	Poller   *services.PaymentPoller
	Referral *services.ReferralService

	mu      sync.Mutex
	watches map[string]func()
}

func NewPaymentHandler(poller *services.PaymentPoller, referral *services.ReferralService) *PaymentHandler {
	return &PaymentHandler{
		Poller:   poller,
		Referral: referral,
		watches:  make(map[string]func()),
	}
}

// QueryOrder 查一次订单状态
func (h *PaymentHandler) QueryOrder(c *gin.Context) {
	order, err := h.Poller.QueryOrderStatus(c.Param("id"))
	if err != nil {
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, order)
}

// WatchOrder 对订单开启后台轮询。支付成功给当前用户延 VIP，
// 同一订单重复开启会先取消旧的轮询，保证只延一次
func (h *PaymentHandler) WatchOrder(c *gin.Context) {
	var req struct {
		VipDays int `json:"vipDays" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "参数校验失败"})
		return
	}

	orderID := c.Param("id")
	userID := c.GetString("current_user_id")

	h.mu.Lock()
	if old, ok := h.watches[orderID]; ok {
		old()
	}
	cancel := h.Poller.PollOrderStatus(orderID,
		func(order *services.OrderInfo) {
			if err := h.Referral.ExtendVIP(userID, req.VipDays); err != nil {
				log.Printf("❌ 订单 %s 已支付但 VIP 延期失败: %v", orderID, err)
			}
			h.forget(orderID)
		},
		func(reason string) {
			log.Printf("⚠️ 订单 %s 支付未完成: %s", orderID, reason)
			h.forget(orderID)
		},
	)
	h.watches[orderID] = cancel
	h.mu.Unlock()

	c.JSON(202, gin.H{"message": "已开始监控支付结果", "orderId": orderID})
}

// CancelWatch 用户关掉支付页时停止轮询
func (h *PaymentHandler) CancelWatch(c *gin.Context) {
	orderID := c.Param("id")
	h.mu.Lock()
	if cancel, ok := h.watches[orderID]; ok {
		cancel()
		delete(h.watches, orderID)
	}
	h.mu.Unlock()
	c.JSON(200, gin.H{"message": "已停止监控"})
}

func (h *PaymentHandler) forget(orderID string) {
	h.mu.Lock()
	delete(h.watches, orderID)
	h.mu.Unlock()
}
