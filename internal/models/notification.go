package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID       string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Type         NotificationType `gorm:"type:varchar(20);not null;default:'info'" json:"type"`
	Message      string           `gorm:"not null" json:"message"`
	RelatedGigID *string          `gorm:"type:uuid;index" json:"related_gig_id,omitempty"`
	Data         datatypes.JSON   `gorm:"type:jsonb" json:"data,omitempty"` // {"bid_id": "...", "amount": ...}
	IsRead       bool             `gorm:"default:false" json:"is_read"`
	ReadAt       *time.Time       `json:"read_at,omitempty"`
}
