package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Sport string

const (
	SportFootball   Sport = "football"
	SportBasketball Sport = "basketball"
	SportTennis     Sport = "tennis"
)

type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusLive      MatchStatus = "live"
	MatchStatusFinished  MatchStatus = "finished"
)

// MatchOdds holds the offered decimal odds per outcome. An outcome the
// bookmaker does not offer is left nil, never zero.
type MatchOdds struct {
	HomeWin *float64 `bson:"home_win,omitempty" json:"home_win,omitempty"`
	Draw    *float64 `bson:"draw,omitempty" json:"draw,omitempty"`
	AwayWin *float64 `bson:"away_win,omitempty" json:"away_win,omitempty"`
}

type Match struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Sport     Sport              `bson:"sport" json:"sport"`
	League    string             `bson:"league" json:"league"`
	HomeTeam  string             `bson:"home_team" json:"home_team"`
	AwayTeam  string             `bson:"away_team" json:"away_team"`
	StartTime *time.Time         `bson:"start_time" json:"start_time"`
	Status    MatchStatus        `bson:"status" json:"status"`
	Odds      MatchOdds          `bson:"odds" json:"odds"`
	CreatedAt time.Time          `bson:"created_at" json:"-"`
	UpdatedAt time.Time          `bson:"updated_at" json:"-"`
}

func Odds(v float64) *float64 {
	return &v
}
