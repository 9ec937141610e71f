package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"phone_store/config"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

// Kênh Redis cho feed đơn hàng của back-office. Mỗi node sub kênh này
// và fan-out tới các WS client của mình, nên chạy nhiều node vẫn đủ event.
const orderFeedChannel = "orders:feed"

var (
	wsRedis = redis.NewClient(&redis.Options{
		Addr: config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
	})

	wsClients = make(map[*websocket.Conn]bool)
	wsMu      sync.Mutex
)

// BroadcastOrderEvent đẩy event đơn hàng lên Redis, gọi sau khi đặt/đổi trạng thái
func BroadcastOrderEvent(event string, payload interface{}) {
	msg, err := json.Marshal(map[string]interface{}{
		"event": event,
		"data":  payload,
	})
	if err != nil {
		log.Printf("Lỗi marshal event đơn hàng: %v", err)
		return
	}
	if err := wsRedis.Publish(context.Background(), orderFeedChannel, msg).Err(); err != nil {
		log.Printf("Lỗi publish event đơn hàng: %v", err)
	}
}

// OrderFeedConnection WS cho màn hình đơn hàng của nhân viên
func OrderFeedConnection(c *websocket.Conn) {
	// Khi WS disconnect → xoá client
	defer func() {
		wsMu.Lock()
		delete(wsClients, c)
		wsMu.Unlock()
		c.Close()
	}()

	wsMu.Lock()
	wsClients[c] = true
	wsMu.Unlock()

	pubsub := wsRedis.Subscribe(context.Background(), orderFeedChannel)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		wsMu.Lock()
		for conn := range wsClients {
			// Nếu client lỗi → xoá
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(wsClients, conn)
			}
		}
		wsMu.Unlock()
	}
}
