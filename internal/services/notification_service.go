package services

import (
	"context"
	"errors"

	"gigwork_backend/internal/logger"
	"gigwork_backend/internal/models"
	"gigwork_backend/internal/repositories"
	"gigwork_backend/internal/services/dto"
	"gigwork_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Pusher - live-канал доставки. Реализуется ws-хабом; пустой срез
// подключений у пользователя - не ошибка, durable-запись уже есть.
type Pusher interface {
	SendToUser(userID string, event any)
}

type NotificationService interface {
	// Notify сначала сохраняет уведомление (источник истины), затем
	// best-effort пушит его во все живые подключения получателя.
	Notify(ctx context.Context, userID string, notificationType models.NotificationType, message, relatedGigID string) (string, error)

	GetUserNotifications(ctx context.Context, userID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) error
	MarkAllAsRead(ctx context.Context, userID string) error
	GetUnreadCount(ctx context.Context, userID string) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	pusher           Pusher
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, pusher Pusher) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		pusher:           pusher,
	}
}

func (s *notificationService) Notify(ctx context.Context, userID string, notificationType models.NotificationType, message, relatedGigID string) (string, error) {
	notification := &models.Notification{
		UserID:  userID,
		Type:    notificationType,
		Message: message,
		IsRead:  false,
	}
	if relatedGigID != "" {
		notification.RelatedGigID = &relatedGigID
	}

	// 1. Durable-запись. Ошибка здесь возвращается вызывающему, но
	// коммит найма она уже не трогает.
	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeDatabaseError, "notification", "Failed to persist notification", 500)
	}

	// 2. Live-push. Fire-and-forget: пользователь без подключений
	// прочитает уведомление из списка.
	if s.pusher != nil {
		s.pusher.SendToUser(userID, dto.NotificationEvent{
			Type: "notification",
			Payload: dto.NotificationEventPayload{
				Type:         notification.Type,
				Message:      notification.Message,
				RelatedGigID: relatedGigID,
			},
		})
	}

	logger.CtxDebug(ctx, "notification dispatched",
		"notification_id", notification.ID,
		"recipient_id", userID,
		"type", string(notificationType),
	)

	return notification.ID, nil
}

func (s *notificationService) GetUserNotifications(ctx context.Context, userID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error) {
	notifications, total, err := s.notificationRepo.FindUserNotifications(ctx, userID, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	page := criteria.Page
	if page <= 0 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// MarkAsRead идемпотентен: повторный вызов для прочитанного
// уведомления успешен и ничего не меняет.
func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID string) error {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return apperrors.InternalError(err)
	}

	if notification.UserID != userID {
		return apperrors.ErrNotNotificationOwner
	}

	if err := s.notificationRepo.MarkAsRead(ctx, notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(ctx, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) GetUnreadCount(ctx context.Context, userID string) (int64, error) {
	count, err := s.notificationRepo.GetUnreadCount(ctx, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
