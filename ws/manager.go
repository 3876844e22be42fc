package ws

import (
	"sync"

	"gigwork_backend/internal/logger"
)

// Manager - реестр присутствия: user ID -> множество живых подключений.
// Состояние чисто in-memory и advisory: после рестарта процесса
// пользователи просто получают только durable-уведомления.
type Manager struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (manager *Manager) Run() {
	for {
		select {
		case client := <-manager.register:
			manager.add(client)

		case client := <-manager.unregister:
			manager.remove(client)
		}
	}
}

// Join регистрирует подключение за пользователем. У пользователя может
// быть несколько подключений одновременно (вкладки, устройства).
func (manager *Manager) Join(userID string, client *Client) {
	client.UserID = userID
	manager.register <- client
}

// Leave снимает подключение. Повторный вызов и неизвестное подключение -
// no-op, не ошибка.
func (manager *Manager) Leave(client *Client) {
	manager.unregister <- client
}

func (manager *Manager) add(client *Client) {
	if client.UserID == "" {
		return
	}

	manager.mu.Lock()
	set, ok := manager.clients[client.UserID]
	if !ok {
		set = make(map[*Client]struct{})
		manager.clients[client.UserID] = set
	}
	set[client] = struct{}{}
	total := len(set)
	manager.mu.Unlock()

	logger.Info("ws client joined", "user_id", client.UserID, "connections", total)
}

func (manager *Manager) remove(client *Client) {
	manager.mu.Lock()
	if set, ok := manager.clients[client.UserID]; ok {
		if _, member := set[client]; member {
			delete(set, client)
			if len(set) == 0 {
				delete(manager.clients, client.UserID)
			}
			logger.Info("ws client left", "user_id", client.UserID, "connections", len(set))
		}
	}
	manager.mu.Unlock()

	// Закрытие канала идемпотентно: remove безопасно вызывать повторно
	// и для подключений, которые так и не сделали join.
	client.closeSend()
}

// SendToUser отправляет событие во все подключения пользователя.
// Неблокирующая отправка: подключение с переполненным буфером отключается.
func (manager *Manager) SendToUser(userID string, event any) {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	for client := range manager.clients[userID] {
		select {
		case client.Send <- event:
			// Сообщение отправлено
		default:
			// Канал заполнен, клиент отключается
			go func(c *Client) {
				manager.unregister <- c
			}(client)
			logger.Warn("ws client dropped due to full send channel", "user_id", userID)
		}
	}
}

// ConnectionsFor возвращает количество живых подключений пользователя.
func (manager *Manager) ConnectionsFor(userID string) int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return len(manager.clients[userID])
}

// IsUserOnline проверяет, есть ли у пользователя хоть одно подключение.
func (manager *Manager) IsUserOnline(userID string) bool {
	return manager.ConnectionsFor(userID) > 0
}
