package handlers

// AppHandlers собирает все HTTP-хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	GigHandler          *GigHandler
	BidHandler          *BidHandler
	NotificationHandler *NotificationHandler
}
