package services

// ServiceContainer собирает все сервисы приложения для передачи в хэндлеры.
type ServiceContainer struct {
	AuthService         *AuthService
	GigService          *GigService
	BidService          *BidService
	HireService         *HireService
	NotificationService NotificationService
}
