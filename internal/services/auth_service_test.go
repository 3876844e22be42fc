package services

import (
	"context"
	"errors"
	"testing"

	"gigwork_backend/internal/auth"
	"gigwork_backend/internal/services/dto"
	"gigwork_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registered, err := env.authService.Register(ctx, &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@test.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.AccessToken)
	assert.Equal(t, "alice@test.com", registered.User.Email)

	// Токен содержит id пользователя
	claims, err := auth.ParseToken(registered.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)

	logged, err := env.authService.Login(ctx, &dto.LoginRequest{
		Email:    "alice@test.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, logged.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := &dto.RegisterRequest{Name: "Alice", Email: "alice@test.com", Password: "supersecret1"}
	_, err := env.authService.Register(ctx, req)
	require.NoError(t, err)

	_, err = env.authService.Register(ctx, req)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.authService.Register(ctx, &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@test.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)

	// Неверный пароль и несуществующий email дают одинаковый ответ
	for _, req := range []*dto.LoginRequest{
		{Email: "alice@test.com", Password: "wrongpassword"},
		{Email: "nobody@test.com", Password: "supersecret1"},
	} {
		_, err := env.authService.Login(ctx, req)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
	}
}
