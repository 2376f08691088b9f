package bus

import (
	"encoding/json"
	"log"

	"xiaoyu-backend/models"

	"github.com/gorilla/websocket"
)

// Client 是连接与 Hub 之间的桥梁
type Client struct {
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte // 每个实例独立的待发送队列
}

// Hub 维护所有在线实例（等价于打开的多个标签页），
// 把存储键失效通知广播出去
type Hub struct {
	Clients    map[*Client]bool
	broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Clients:    make(map[*Client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
			log.Println("📱 新实例已接入失效通知通道")
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				log.Println("👋 实例已断开")
			}
		case message := <-h.broadcast:
			// 异步分发，不被慢客户端拖住
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.Clients, client)
				}
			}
		}
	}
}

func (h *Hub) Broadcast(payload models.WSMessage) {
	message, _ := json.Marshal(payload)
	select {
	case h.broadcast <- message:
	default:
		// 队列满或 Hub 未启动（如单测）时丢弃：跨实例通知本就允许合并，
		// 消费方以回源重读为准
	}
}

// --- Client 相关方法 ---

func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()
	// 只监听心跳和客户端关闭信号，通知通道是单向的
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) WritePump() {
	defer c.Conn.Close()
	for message := range c.Send {
		c.Conn.WriteMessage(websocket.TextMessage, message)
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
