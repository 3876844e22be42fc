package models

type GigStatus string
type BidStatus string
type NotificationType string

const (
	GigStatusOpen      GigStatus = "open"
	GigStatusAssigned  GigStatus = "assigned"
	GigStatusCompleted GigStatus = "completed"

	BidStatusPending  BidStatus = "pending"
	BidStatusHired    BidStatus = "hired"
	BidStatusRejected BidStatus = "rejected"

	NotificationTypeHired    NotificationType = "hired"
	NotificationTypeRejected NotificationType = "rejected"
	NotificationTypeInfo     NotificationType = "info"
)
