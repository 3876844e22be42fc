package ws

import (
	"net/http"

	"gigwork_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // В продакшн добавьте проверку origin
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type Handler struct {
	Manager        *Manager
	SendBufferSize int
}

func NewHandler(manager *Manager, sendBufferSize int) *Handler {
	if sendBufferSize <= 0 {
		sendBufferSize = 256
	}
	return &Handler{
		Manager:        manager,
		SendBufferSize: sendBufferSize,
	}
}

// ServeWS обновляет HTTP-соединение до websocket. Подключение не привязано
// к пользователю, пока клиент не пришлет {"type":"join","user_id":...};
// до этого момента оно ничего не получает.
func (h *Handler) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("ws upgrade error", "error", err.Error())
		return
	}

	client := &Client{
		Conn:    conn,
		Send:    make(chan any, h.SendBufferSize), // Буферизованный канал
		Manager: h.Manager,
	}

	go client.readPump()
	go client.writePump()
}
