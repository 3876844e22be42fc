package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// =========================================================================
// Фабричные ФУНКЦИИ (Используются для оборачивания ошибок, напр. из репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error, domain string) *AppError {
	return Wrap(err, CodeNotFound, domain, "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (Для частых, статичных ошибок)
// =========================================================================

// ErrGigNotFound - целевой гиг не существует
var ErrGigNotFound = New(
	CodeNotFound,
	"gig",
	"Gig not found",
	http.StatusNotFound,
)

// ErrBidNotFound - целевая заявка не существует
var ErrBidNotFound = New(
	CodeNotFound,
	"bid",
	"Bid not found",
	http.StatusNotFound,
)

// ErrNotificationNotFound - уведомление не существует
var ErrNotificationNotFound = New(
	CodeNotFound,
	"notification",
	"Notification not found",
	http.StatusNotFound,
)

// ErrNotGigOwner - действие разрешено только владельцу гига
var ErrNotGigOwner = New(
	CodeForbidden,
	"gig",
	"Only the gig owner may perform this action",
	http.StatusForbidden,
)

// ErrNotNotificationOwner - чужое уведомление читать/править нельзя
var ErrNotNotificationOwner = New(
	CodeForbidden,
	"notification",
	"Notification belongs to another user",
	http.StatusForbidden,
)

// ErrGigNotOpen - гиг уже назначен или завершен. Это ОЖИДАЕМЫЙ исход гонки
// двух параллельных наймов, а не баг: проигравший вызов получает именно её.
var ErrGigNotOpen = New(
	CodeConflict,
	"gig",
	"Gig is no longer open",
	http.StatusConflict,
)

// ErrOwnBid - владелец не может откликаться на собственный гиг
var ErrOwnBid = New(
	CodeInvalidOperation,
	"bid",
	"Owner cannot bid on their own gig",
	http.StatusBadRequest,
)

// ErrDuplicateBid - по одному отклику на гиг от фрилансера
var ErrDuplicateBid = New(
	CodeAlreadyExists,
	"bid",
	"You have already placed a bid on this gig",
	http.StatusBadRequest,
)
