package validator

import (
	"log"

	"gigwork_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {

	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться, так как это критическая ошибка.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// Правила, основанные на 'statuses.go'
	mustRegister("is-gig-status", validateGigStatus)
	mustRegister("is-bid-status", validateBidStatus)
	mustRegister("is-notification-type", validateNotificationType)
}

// --- Функции валидации ---

func validateGigStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' обрабатывает пустые
	}
	switch models.GigStatus(value) {
	case models.GigStatusOpen, models.GigStatusAssigned, models.GigStatusCompleted:
		return true
	default:
		return false
	}
}

func validateBidStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.BidStatus(value) {
	case models.BidStatusPending, models.BidStatusHired, models.BidStatusRejected:
		return true
	default:
		return false
	}
}

func validateNotificationType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.NotificationType(value) {
	case models.NotificationTypeHired, models.NotificationTypeRejected, models.NotificationTypeInfo:
		return true
	default:
		return false
	}
}
