package bus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSubscribeReceivesPublish(t *testing.T) {
	b := New(nil)
	ch, cancel := b.Subscribe("xiaoyu_products")
	defer cancel()

	b.Publish(Event{Key: "xiaoyu_products"})

	select {
	case evt := <-ch:
		require.Equal(t, "xiaoyu_products", evt.Key)
	case <-time.After(time.Second):
		t.Fatal("未收到事件")
	}
}

func TestSubscribeOnlyMatchingKey(t *testing.T) {
	b := New(nil)
	ch, cancel := b.Subscribe("xiaoyu_products")
	defer cancel()

	b.Publish(Event{Key: "xiaoyu_users"})

	select {
	case evt := <-ch:
		t.Fatalf("收到了不相关的事件: %v", evt)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	b := New(nil)
	ch, cancel := b.Subscribe("xiaoyu_products")
	cancel()

	b.Publish(Event{Key: "xiaoyu_products"})

	select {
	case evt := <-ch:
		t.Fatalf("取消后仍收到事件: %v", evt)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestPublishDoesNotBlockOnSlowSubscriber(t *testing.T) {
	b := New(nil)
	_, cancel := b.Subscribe("xiaoyu_configs")
	defer cancel()

	// 无人消费，远超队列容量也不能卡住发布方
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			b.Publish(Event{Key: "xiaoyu_configs"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("发布被慢订阅方阻塞")
	}
}

func TestMultipleSubscribersFanOut(t *testing.T) {
	b := New(nil)
	ch1, cancel1 := b.Subscribe("xiaoyu_users")
	defer cancel1()
	ch2, cancel2 := b.Subscribe("xiaoyu_users")
	defer cancel2()

	b.Publish(Event{Key: "xiaoyu_users"})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case evt := <-ch:
			require.Equal(t, "xiaoyu_users", evt.Key)
		case <-time.After(time.Second):
			t.Fatal("订阅方未收到事件")
		}
	}
}
