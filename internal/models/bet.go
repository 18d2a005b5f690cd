package models

import (
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Market string

const (
	MarketHomeWin Market = "home_win"
	MarketDraw    Market = "draw"
	MarketAwayWin Market = "away_win"
)

type BetStatus string

const (
	BetStatusPending BetStatus = "pending"
	BetStatusWon     BetStatus = "won"
	BetStatusLost    BetStatus = "lost"
	BetStatusVoid    BetStatus = "void"
)

// BetSelection is one leg of a bet with the odds fixed at placement time.
type BetSelection struct {
	MatchID     string  `bson:"match_id" json:"match_id"`
	Market      Market  `bson:"market" json:"market"`
	Odds        float64 `bson:"odds" json:"odds"`
	Description string  `bson:"description" json:"description"`
}

type Bet struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"user_id" json:"user_id"`
	Stake           float64            `bson:"stake" json:"stake"`
	Selections      []BetSelection     `bson:"selections" json:"selections"`
	PotentialReturn float64            `bson:"potential_return" json:"potential_return"`
	Status          BetStatus          `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

// PotentialReturn multiplies the stake by every selection's odds, validating
// odds left to right. Any selection priced at 1.0 or below stops the
// accumulation there.
func PotentialReturn(stake float64, selections []BetSelection) (float64, error) {
	totalOdds := 1.0
	for _, s := range selections {
		if s.Odds <= 1.0 {
			return 0, fmt.Errorf("invalid odds %.2f for match %s", s.Odds, s.MatchID)
		}
		totalOdds *= s.Odds
	}
	return Round2(stake * totalOdds), nil
}

// Round2 rounds to two decimal places, the resolution of every monetary
// amount in the system.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
