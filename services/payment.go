package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"xiaoyu-backend/config"
)

// OrderInfo 支付网关侧的订单快照
type OrderInfo struct {
	OrderID   string  `json:"orderId"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
	PayMethod string  `json:"payMethod"`
	CreatedAt int64   `json:"createdAt"`
	PaidAt    int64   `json:"paidAt,omitempty"`
}

type orderStatusResp struct {
	Success bool       `json:"success"`
	Order   *OrderInfo `json:"order"`
}

// PaymentPoller 支付结果轮询状态机。网关没有回调，只能轮询：
// 固定间隔查单，paid/failed 为终态，超过总时限按超时失败处理
type PaymentPoller struct {
	BaseURL  string
	Interval time.Duration
	Timeout  time.Duration
	Client   *http.Client
}

func NewPaymentPoller(cfg config.PaymentConfig) *PaymentPoller {
	return &PaymentPoller{
		BaseURL:  cfg.BaseURL,
		Interval: cfg.PollInterval(),
		Timeout:  cfg.PollTimeout(),
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// QueryOrderStatus 查一次订单。网络错误和网关侧 success=false 都返回 error，
// 由轮询层决定是继续等还是放弃
func (p *PaymentPoller) QueryOrderStatus(orderID string) (*OrderInfo, error) {
	url := fmt.Sprintf("%s/order/%s", p.BaseURL, orderID)
	resp, err := p.Client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("查询订单失败: HTTP %d", resp.StatusCode)
	}

	var body orderStatusResp
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if !body.Success || body.Order == nil {
		return nil, fmt.Errorf("查询订单失败: 订单 %s 不存在", orderID)
	}
	return body.Order, nil
}

// PollOrderStatus 后台轮询直到订单出终态或超时，回调至多触发一次。
// 返回取消函数；取消后不会再有任何回调。
// 单次查询出错不算失败，下一轮继续查
func (p *PaymentPoller) PollOrderStatus(orderID string, onPaid func(*OrderInfo), onFailed func(reason string)) (cancel func()) {
	stop := make(chan struct{})
	var once sync.Once
	cancel = func() {
		once.Do(func() { close(stop) })
	}

	go func() {
		deadline := time.After(p.Timeout)
		ticker := time.NewTicker(p.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-deadline:
				log.Printf("⚠️ 订单 %s 支付轮询超时", orderID)
				onFailed("支付超时")
				return
			case <-ticker.C:
				order, err := p.QueryOrderStatus(orderID)
				if err != nil {
					log.Printf("⚠️ 订单 %s 查询失败，下一轮重试: %v", orderID, err)
					continue
				}
				switch order.Status {
				case "paid":
					// 终态回调前再确认一次未被取消，避免取消与到账竞争
					select {
					case <-stop:
					default:
						log.Printf("✅ 订单 %s 支付成功", orderID)
						onPaid(order)
					}
					return
				case "failed":
					select {
					case <-stop:
					default:
						onFailed("支付失败")
					}
					return
				}
			}
		}
	}()
	return cancel
}
