package models

import (
	"time"
)

// BaseModel - общие поля всех моделей. ID выдают репозитории (uuid),
// чтобы не зависеть от серверных DEFAULT конкретной СУБД.
type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
