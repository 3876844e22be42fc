package models

type Gig struct {
	BaseModel
	OwnerID     string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Budget      float64   `gorm:"not null" json:"budget"`
	Status      GigStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`

	// Relations
	Bids []Bid `gorm:"foreignKey:GigID" json:"-"`
}
