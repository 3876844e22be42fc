package dto

type CreateGigRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=200"`
	Description string  `json:"description" validate:"max=5000"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
}
