// Package bus 变更通知总线：同进程订阅 + 跨实例失效广播
package bus

import (
	"strings"
	"sync"

	"xiaoyu-backend/database"
	"xiaoyu-backend/models"
)

// Event 某个存储键发生了写入。只是脏信号，订阅方需要自行回源重读
type Event struct {
	Key       string
	SessionID string
}

// Bus 两条独立通道：
//  1. 同进程：按键订阅的 channel 扇出，写入完成后立即投递；
//  2. 跨实例：通过 Hub 把键名推给其他打开的实例（不含写入方自身的订阅之外的数据）。
//
// 投递顺序不保证，通知可能被合并，订阅方永远以重读结果为准
type Bus struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
	hub  *Hub
}

func New(hub *Hub) *Bus {
	return &Bus{
		subs: make(map[string]map[chan Event]struct{}),
		hub:  hub,
	}
}

// Subscribe 订阅某个存储键。返回的取消函数必须在订阅方退出时调用，
// 否则 channel 泄漏（这是正确性要求，不是优化）
func (b *Bus) Subscribe(key string) (<-chan Event, func()) {
	ch := make(chan Event, 16)
	b.mu.Lock()
	if b.subs[key] == nil {
		b.subs[key] = make(map[chan Event]struct{})
	}
	b.subs[key][ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if set, ok := b.subs[key]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(b.subs, key)
			}
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish 写入完成后调用。慢订阅方不阻塞发布：队列满了就丢，
// 订阅方下次收到任何事件时重读即可拿到最新状态
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	for ch := range b.subs[evt.Key] {
		select {
		case ch <- evt:
		default:
		}
	}
	b.mu.RUnlock()

	if b.hub != nil {
		msg := models.WSMessage{Type: "STORAGE_UPDATE", Key: evt.Key}
		if strings.HasPrefix(evt.Key, database.KeyPrefix+"chat_msgs_") {
			msg.SessionID = evt.SessionID
		}
		b.hub.Broadcast(msg)
	}
}
