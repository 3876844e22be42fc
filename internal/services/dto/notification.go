package dto

import "gigwork_backend/internal/models"

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
}

// NotificationEvent - транзиентное событие для live-push по websocket.
// Формат повторяет серверное сообщение оригинального socket.io API.
type NotificationEvent struct {
	Type    string                   `json:"type"` // всегда "notification"
	Payload NotificationEventPayload `json:"payload"`
}

type NotificationEventPayload struct {
	Type         models.NotificationType `json:"type"`
	Message      string                  `json:"message"`
	RelatedGigID string                  `json:"related_gig_id,omitempty"`
}
