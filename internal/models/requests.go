package models

type RegisterRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type LoginRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type TopupRequest struct {
	UserID string  `json:"user_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type PlaceBetRequest struct {
	UserID     string         `json:"user_id" binding:"required"`
	Stake      float64        `json:"stake" binding:"required,gt=0"`
	Selections []BetSelection `json:"selections"`
}
