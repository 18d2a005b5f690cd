package models_test

import (
	"testing"

	"yehagerbet-backend/internal/models"
)

func TestPotentialReturn(t *testing.T) {
	selections := []models.BetSelection{
		{MatchID: "m1", Market: models.MarketHomeWin, Odds: 2.0, Description: "Saint George to win"},
		{MatchID: "m2", Market: models.MarketDraw, Odds: 1.5, Description: "Draw"},
	}

	got, err := models.PotentialReturn(10, selections)
	if err != nil {
		t.Fatalf("PotentialReturn failed: %v", err)
	}
	if got != 30.0 {
		t.Errorf("Expected potential return 30.0, got %v", got)
	}
}

func TestPotentialReturnRounds(t *testing.T) {
	selections := []models.BetSelection{
		{MatchID: "m1", Market: models.MarketHomeWin, Odds: 1.85},
		{MatchID: "m2", Market: models.MarketAwayWin, Odds: 3.4},
	}

	// 10 * 1.85 * 3.4 = 62.899999... and must come back as 62.9
	got, err := models.PotentialReturn(10, selections)
	if err != nil {
		t.Fatalf("PotentialReturn failed: %v", err)
	}
	if got != 62.9 {
		t.Errorf("Expected potential return 62.9, got %v", got)
	}
}

func TestPotentialReturnRejectsLowOdds(t *testing.T) {
	selections := []models.BetSelection{
		{MatchID: "m1", Market: models.MarketHomeWin, Odds: 2.0},
		{MatchID: "m2", Market: models.MarketDraw, Odds: 1.0},
		{MatchID: "m3", Market: models.MarketAwayWin, Odds: 3.0},
	}

	if _, err := models.PotentialReturn(10, selections); err == nil {
		t.Error("Odds of 1.0 should fail validation")
	}
}

func TestRound2(t *testing.T) {
	if got := models.Round2(62.899999999999999); got != 62.9 {
		t.Errorf("Expected 62.9, got %v", got)
	}
	if got := models.Round2(5.678); got != 5.68 {
		t.Errorf("Expected 5.68, got %v", got)
	}
}

func TestNewUserDefaults(t *testing.T) {
	user := models.NewUser("Abebe", "+251911000000")

	if user.Balance != 0 {
		t.Errorf("Expected zero starting balance, got %v", user.Balance)
	}
	if !user.IsActive {
		t.Error("New user should be active")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("New user should be timestamped")
	}
}
