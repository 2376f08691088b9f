package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newPaymentServer(t *testing.T, status func(calls int64) string) (*httptest.Server, *int64) {
	t.Helper()
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"success":true,"order":{"orderId":"ord-1","status":%q,"amount":99,"payMethod":"alipay","createdAt":1}}`, status(n))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newTestPoller(baseURL string, timeout time.Duration) *PaymentPoller {
	return &PaymentPoller{
		BaseURL:  baseURL,
		Interval: 10 * time.Millisecond,
		Timeout:  timeout,
		Client:   http.DefaultClient,
	}
}

func TestQueryOrderStatus(t *testing.T) {
	srv, _ := newPaymentServer(t, func(int64) string { return "pending" })
	p := newTestPoller(srv.URL, time.Second)

	order, err := p.QueryOrderStatus("ord-1")
	require.NoError(t, err)
	require.Equal(t, "ord-1", order.OrderID)
	require.Equal(t, "pending", order.Status)
	require.Equal(t, 99.0, order.Amount)
}

func TestQueryOrderStatusNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success":false}`)
	}))
	t.Cleanup(srv.Close)
	p := newTestPoller(srv.URL, time.Second)

	_, err := p.QueryOrderStatus("ord-missing")
	require.Error(t, err)
}

func TestPollOrderStatusPaidOnce(t *testing.T) {
	// 前两轮 pending，第三轮 paid
	srv, calls := newPaymentServer(t, func(n int64) string {
		if n < 3 {
			return "pending"
		}
		return "paid"
	})
	p := newTestPoller(srv.URL, time.Second)

	paid := make(chan *OrderInfo, 4)
	failed := make(chan string, 4)
	p.PollOrderStatus("ord-1",
		func(o *OrderInfo) { paid <- o },
		func(reason string) { failed <- reason },
	)

	select {
	case order := <-paid:
		require.Equal(t, "paid", order.Status)
	case reason := <-failed:
		t.Fatalf("不应失败: %s", reason)
	case <-time.After(time.Second):
		t.Fatal("等待支付成功回调超时")
	}

	// 终态之后不再查单也不再回调
	settled := atomic.LoadInt64(calls)
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, settled, atomic.LoadInt64(calls))
	require.Empty(t, paid)
	require.Empty(t, failed)
}

func TestPollOrderStatusFailed(t *testing.T) {
	srv, _ := newPaymentServer(t, func(int64) string { return "failed" })
	p := newTestPoller(srv.URL, time.Second)

	failed := make(chan string, 1)
	p.PollOrderStatus("ord-1", func(*OrderInfo) { t.Error("不应成功") }, func(reason string) { failed <- reason })

	select {
	case reason := <-failed:
		require.Equal(t, "支付失败", reason)
	case <-time.After(time.Second):
		t.Fatal("等待失败回调超时")
	}
}

func TestPollOrderStatusTimeout(t *testing.T) {
	srv, _ := newPaymentServer(t, func(int64) string { return "pending" })
	p := newTestPoller(srv.URL, 80*time.Millisecond)

	failed := make(chan string, 1)
	p.PollOrderStatus("ord-1", func(*OrderInfo) { t.Error("不应成功") }, func(reason string) { failed <- reason })

	select {
	case reason := <-failed:
		require.Equal(t, "支付超时", reason)
	case <-time.After(time.Second):
		t.Fatal("等待超时回调超时")
	}
}

func TestPollOrderStatusCancel(t *testing.T) {
	srv, _ := newPaymentServer(t, func(int64) string { return "pending" })
	p := newTestPoller(srv.URL, 100*time.Millisecond)

	cancel := p.PollOrderStatus("ord-1",
		func(*OrderInfo) { t.Error("取消后不应回调") },
		func(string) { t.Error("取消后不应回调") },
	)
	cancel()
	cancel() // 重复取消安全

	// 等过超时点，确认没有任何回调
	time.Sleep(200 * time.Millisecond)
}

func TestPollKeepsGoingOnQueryError(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(&calls, 1)
		if n < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success":true,"order":{"orderId":"ord-1","status":"paid","amount":99,"payMethod":"wechat","createdAt":1}}`)
	}))
	t.Cleanup(srv.Close)
	p := newTestPoller(srv.URL, time.Second)

	paid := make(chan *OrderInfo, 1)
	p.PollOrderStatus("ord-1", func(o *OrderInfo) { paid <- o }, func(reason string) { t.Errorf("不应失败: %s", reason) })

	select {
	case <-paid:
	case <-time.After(time.Second):
		t.Fatal("查询错误后应继续轮询直至成功")
	}
}
