package app

import (
	"fmt"

	"gigwork_backend/database"
	"gigwork_backend/internal/config"
	"gigwork_backend/internal/handlers"
	"gigwork_backend/internal/logger"
	"gigwork_backend/internal/middleware"
	"gigwork_backend/internal/repositories"
	"gigwork_backend/internal/routes"
	"gigwork_backend/internal/services"
	"gigwork_backend/internal/validator"
	"gigwork_backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// 1. Инициализируем WebSocket-хаб (реестр присутствия)
	wsManager := ws.NewManager()
	go wsManager.Run()
	wsHandler := ws.NewHandler(wsManager, cfg.WS.SendBufferSize)

	// 2. Инициализируем сервисы
	serviceContainer := initializeServices(gormDB, wsManager)

	// 3. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 4. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	// 5. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return ginRouter
}

func initializeServices(gormDB *gorm.DB, pusher services.Pusher) *services.ServiceContainer {
	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository(gormDB)
	gigRepo := repositories.NewGigRepository(gormDB)
	bidRepo := repositories.NewBidRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)

	// --- Инициализация сервисов ---
	authService := services.NewAuthService(userRepo)
	gigService := services.NewGigService(gigRepo)
	bidService := services.NewBidService(bidRepo, gigRepo)
	notificationService := services.NewNotificationService(notificationRepo, pusher)
	hireService := services.NewHireService(gormDB, gigRepo, bidRepo, notificationService)

	return &services.ServiceContainer{
		AuthService:         authService,
		GigService:          gigService,
		BidService:          bidService,
		HireService:         hireService,
		NotificationService: notificationService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService),
		GigHandler:          handlers.NewGigHandler(baseHandler, services.GigService),
		BidHandler:          handlers.NewBidHandler(baseHandler, services.BidService, services.HireService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowOrigin))
	router.Use(middleware.DBMiddleware(db))
	return router
}
