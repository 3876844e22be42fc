package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"gigwork_backend/internal/config"
	"gigwork_backend/internal/models"
	"gigwork_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	// Тестам не нужен config.yaml: задаем конфиг напрямую
	config.AppConfig = &config.Config{}
	config.AppConfig.Server.Env = "development"
	config.AppConfig.JWT.Secret = "test-secret"
	config.AppConfig.JWT.TTL = 60
}

// newTestDB поднимает изолированную in-memory sqlite БД на тест.
// Один коннект: хватает для сериализации параллельных транзакций найма.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Gig{},
		&models.Bid{},
		&models.Notification{},
	))

	return db
}

// fakePusher записывает все live-push события для проверок.
type fakePusher struct {
	mu     sync.Mutex
	events map[string][]any // userID -> события
}

func newFakePusher() *fakePusher {
	return &fakePusher{events: make(map[string][]any)}
}

func (p *fakePusher) SendToUser(userID string, event any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events[userID] = append(p.events[userID], event)
}

func (p *fakePusher) eventsFor(userID string) []any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]any(nil), p.events[userID]...)
}

// testEnv собирает полный сервисный стек поверх тестовой БД.
type testEnv struct {
	db                  *gorm.DB
	pusher              *fakePusher
	userRepo            *repositories.UserRepository
	gigRepo             *repositories.GigRepository
	bidRepo             *repositories.BidRepository
	notificationRepo    repositories.NotificationRepository
	authService         *AuthService
	gigService          *GigService
	bidService          *BidService
	hireService         *HireService
	notificationService NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	pusher := newFakePusher()

	userRepo := repositories.NewUserRepository(db)
	gigRepo := repositories.NewGigRepository(db)
	bidRepo := repositories.NewBidRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	notificationService := NewNotificationService(notificationRepo, pusher)

	return &testEnv{
		db:                  db,
		pusher:              pusher,
		userRepo:            userRepo,
		gigRepo:             gigRepo,
		bidRepo:             bidRepo,
		notificationRepo:    notificationRepo,
		authService:         NewAuthService(userRepo),
		gigService:          NewGigService(gigRepo),
		bidService:          NewBidService(bidRepo, gigRepo),
		hireService:         NewHireService(db, gigRepo, bidRepo, notificationService),
		notificationService: notificationService,
	}
}

// --- Seed-хелперы ---

func (env *testEnv) createUser(t *testing.T, name string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s_%s@test.com", name, uuid.NewString()[:8]),
		PasswordHash: "$2a$10$test", // в этих тестах пароль не проверяется
	}
	require.NoError(t, env.userRepo.Create(context.Background(), user))
	return user
}

func (env *testEnv) createGig(t *testing.T, ownerID string, status models.GigStatus) *models.Gig {
	t.Helper()
	gig := &models.Gig{
		OwnerID:     ownerID,
		Title:       "Landing page",
		Description: "Build a landing page",
		Budget:      500,
		Status:      status,
	}
	require.NoError(t, env.gigRepo.Create(context.Background(), gig))
	return gig
}

func (env *testEnv) createBid(t *testing.T, gigID, freelancerID string, status models.BidStatus) *models.Bid {
	t.Helper()
	bid := &models.Bid{
		GigID:        gigID,
		FreelancerID: freelancerID,
		Message:      "I can do this",
		Amount:       450,
		Status:       status,
	}
	require.NoError(t, env.bidRepo.Create(context.Background(), bid))
	return bid
}

func (env *testEnv) reloadGig(t *testing.T, id string) *models.Gig {
	t.Helper()
	gig, err := env.gigRepo.FindByID(context.Background(), id)
	require.NoError(t, err)
	return gig
}

func (env *testEnv) reloadBid(t *testing.T, id string) *models.Bid {
	t.Helper()
	bid, err := env.bidRepo.FindByID(context.Background(), id)
	require.NoError(t, err)
	return bid
}

func (env *testEnv) listNotifications(t *testing.T, userID string) []models.Notification {
	t.Helper()
	notifications, _, err := env.notificationRepo.FindUserNotifications(
		context.Background(), userID, repositories.NotificationCriteria{},
	)
	require.NoError(t, err)
	return notifications
}
