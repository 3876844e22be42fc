package models

type Bid struct {
	BaseModel
	GigID        string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_bids_gig_freelancer" json:"gig_id"`
	FreelancerID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_bids_gig_freelancer" json:"freelancer_id"`
	Message      string    `json:"message"`
	Amount       float64   `gorm:"not null" json:"amount"`
	Status       BidStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}
