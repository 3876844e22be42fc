package dto

import "gigwork_backend/internal/models"

type PlaceBidRequest struct {
	GigID   string  `json:"gig_id" validate:"required,uuid4"`
	Message string  `json:"message" validate:"max=2000"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
}

// HireResult - итог успешного найма: выигравшая заявка и заявки,
// отклоненные именно этим вызовом.
type HireResult struct {
	HiredBid     *models.Bid  `json:"hired_bid"`
	RejectedBids []models.Bid `json:"rejected_bids"`
}
