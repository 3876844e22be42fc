package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gigwork_backend/internal/models"
	"gigwork_backend/internal/repositories"
	"gigwork_backend/internal/services/dto"
	"gigwork_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_PersistsAndPushes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.createUser(t, "recipient")
	owner := env.createUser(t, "owner")
	gig := env.createGig(t, owner.ID, models.GigStatusOpen)

	id, err := env.notificationService.Notify(ctx, user.ID, models.NotificationTypeInfo, "hello", gig.ID)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// Durable-запись
	stored := env.listNotifications(t, user.ID)
	require.Len(t, stored, 1)
	assert.Equal(t, id, stored[0].ID)
	assert.Equal(t, models.NotificationTypeInfo, stored[0].Type)
	assert.Equal(t, "hello", stored[0].Message)
	assert.False(t, stored[0].IsRead)
	require.NotNil(t, stored[0].RelatedGigID)
	assert.Equal(t, gig.ID, *stored[0].RelatedGigID)

	// Live-push с тем же содержимым
	events := env.pusher.eventsFor(user.ID)
	require.Len(t, events, 1)
	event, ok := events[0].(dto.NotificationEvent)
	require.True(t, ok)
	assert.Equal(t, "notification", event.Type)
	assert.Equal(t, "hello", event.Payload.Message)
	assert.Equal(t, gig.ID, event.Payload.RelatedGigID)
}

func TestNotify_WithoutRelatedGig(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "recipient")

	_, err := env.notificationService.Notify(context.Background(), user.ID, models.NotificationTypeInfo, "news", "")
	require.NoError(t, err)

	stored := env.listNotifications(t, user.ID)
	require.Len(t, stored, 1)
	assert.Nil(t, stored[0].RelatedGigID)
}

func TestNotify_NilPusherStillPersists(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "recipient")

	// Сервис без live-канала: durable-запись обязана появиться всё равно
	svc := NewNotificationService(env.notificationRepo, nil)
	_, err := svc.Notify(context.Background(), user.ID, models.NotificationTypeInfo, "offline delivery", "")
	require.NoError(t, err)
	require.Len(t, env.listNotifications(t, user.ID), 1)
}

func TestGetUserNotifications_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "recipient")

	for _, msg := range []string{"first", "second", "third"} {
		_, err := env.notificationService.Notify(ctx, user.ID, models.NotificationTypeInfo, msg, "")
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond) // различимые created_at
	}

	resp, err := env.notificationService.GetUserNotifications(ctx, user.ID, repositories.NotificationCriteria{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Total)
	require.Len(t, resp.Notifications, 3)
	assert.Equal(t, "third", resp.Notifications[0].Message)
	assert.Equal(t, "first", resp.Notifications[2].Message)
}

func TestGetUserNotifications_UnreadOnlyAndPaging(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "recipient")

	var firstID string
	for i, msg := range []string{"a", "b", "c"} {
		id, err := env.notificationService.Notify(ctx, user.ID, models.NotificationTypeInfo, msg, "")
		require.NoError(t, err)
		if i == 0 {
			firstID = id
		}
		time.Sleep(2 * time.Millisecond)
	}
	require.NoError(t, env.notificationService.MarkAsRead(ctx, user.ID, firstID))

	resp, err := env.notificationService.GetUserNotifications(ctx, user.ID, repositories.NotificationCriteria{UnreadOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)

	resp, err = env.notificationService.GetUserNotifications(ctx, user.ID, repositories.NotificationCriteria{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Total)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "a", resp.Notifications[0].Message)
}

func TestMarkAsRead_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "recipient")

	id, err := env.notificationService.Notify(ctx, user.ID, models.NotificationTypeInfo, "read me", "")
	require.NoError(t, err)

	require.NoError(t, env.notificationService.MarkAsRead(ctx, user.ID, id))

	stored := env.listNotifications(t, user.ID)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].IsRead)
	require.NotNil(t, stored[0].ReadAt)
	firstReadAt := *stored[0].ReadAt

	// Повторное прочтение - успех, read_at не двигается
	require.NoError(t, env.notificationService.MarkAsRead(ctx, user.ID, id))
	stored = env.listNotifications(t, user.ID)
	require.NotNil(t, stored[0].ReadAt)
	assert.True(t, stored[0].ReadAt.Equal(firstReadAt))
}

func TestMarkAsRead_ForbiddenForOtherUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "recipient")
	stranger := env.createUser(t, "stranger")

	id, err := env.notificationService.Notify(ctx, owner.ID, models.NotificationTypeInfo, "private", "")
	require.NoError(t, err)

	err = env.notificationService.MarkAsRead(ctx, stranger.ID, id)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	stored := env.listNotifications(t, owner.ID)
	assert.False(t, stored[0].IsRead)
}

func TestMarkAsRead_NotFound(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "recipient")

	err := env.notificationService.MarkAsRead(context.Background(), user.ID, "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestMarkAllAsReadAndUnreadCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "recipient")
	other := env.createUser(t, "other")

	for i := 0; i < 3; i++ {
		_, err := env.notificationService.Notify(ctx, user.ID, models.NotificationTypeInfo, "msg", "")
		require.NoError(t, err)
	}
	_, err := env.notificationService.Notify(ctx, other.ID, models.NotificationTypeInfo, "someone else", "")
	require.NoError(t, err)

	count, err := env.notificationService.GetUnreadCount(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, env.notificationService.MarkAllAsRead(ctx, user.ID))

	count, err = env.notificationService.GetUnreadCount(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// Чужие уведомления не задеты
	count, err = env.notificationService.GetUnreadCount(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
