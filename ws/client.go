package ws

import (
	"encoding/json"
	"sync"

	"gigwork_backend/internal/logger"

	"github.com/gorilla/websocket"
)

// IncomingMessage - управляющее сообщение от клиента.
// {"type": "join", "user_id": "..."} привязывает подключение к пользователю.
type IncomingMessage struct {
	Type   string `json:"type"`
	UserID string `json:"user_id"`
}

type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan any

	Manager *Manager

	closeOnce sync.Once
}

func (c *Client) closeSend() {
	c.closeOnce.Do(func() {
		close(c.Send)
	})
}

func (c *Client) readPump() {
	defer func() {
		c.Manager.Leave(c)
		c.Conn.Close()
	}()

	for {
		_, msgBytes, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("ws read error", "error", err.Error())
			}
			break
		}

		var msg IncomingMessage
		if err := json.Unmarshal(msgBytes, &msg); err != nil {
			logger.Debug("ws failed to parse message", "error", err.Error())
			continue
		}

		c.handleMessage(msg)
	}
}

func (c *Client) writePump() {
	for msg := range c.Send {
		if err := c.Conn.WriteJSON(msg); err != nil {
			logger.Debug("ws write error", "error", err.Error())
			break
		}
	}
	c.Conn.Close()
}

// Централизованный обработчик управляющих сообщений
func (c *Client) handleMessage(msg IncomingMessage) {
	switch msg.Type {

	case "join":
		if msg.UserID == "" {
			logger.Debug("ws join without user_id ignored")
			return
		}
		if c.UserID != "" {
			// Подключение уже привязано; повторный join игнорируем
			logger.Debug("ws duplicate join ignored", "user_id", c.UserID)
			return
		}
		c.Manager.Join(msg.UserID, c)

	default:
		logger.Debug("ws unhandled message type", "type", msg.Type)
	}
}
