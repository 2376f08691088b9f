package services

import (
	"sync"
	"time"
)

// Poller 固定间隔的兜底轮询任务。推送通道（事件/WS）才是主路径，
// 轮询只保证最终能刷到，绝不承担亚秒级时效
type Poller struct {
	interval time.Duration
	task     func()
	stop     chan struct{}
	once     sync.Once
}

func NewPoller(interval time.Duration, task func()) *Poller {
	return &Poller{
		interval: interval,
		task:     task,
		stop:     make(chan struct{}),
	}
}

func (p *Poller) Start() {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				p.task()
			}
		}
	}()
}

// Stop 幂等。持有方退出时必须调用，定时器泄漏是正确性问题
func (p *Poller) Stop() {
	p.once.Do(func() { close(p.stop) })
}
