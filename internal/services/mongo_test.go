package services_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"

	"yehagerbet-backend/internal/config"
	"yehagerbet-backend/internal/models"
	"yehagerbet-backend/internal/services"
)

func setupTestService(t *testing.T) *services.MongoService {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		url = "mongodb://localhost:27017"
	}

	cfg := &config.Config{
		DatabaseURL:  url,
		DatabaseName: "yehagerbet_test",
	}

	svc := services.NewMongoService(cfg, zap.NewNop())
	if !svc.Available() {
		t.Skipf("MongoDB not available at %s", url)
	}
	t.Cleanup(func() { svc.Close() })

	return svc
}

func uniquePhone() string {
	return fmt.Sprintf("+2519%010d", time.Now().UnixNano()%1e10)
}

func TestUnavailableService(t *testing.T) {
	svc := services.NewMongoService(&config.Config{}, zap.NewNop())
	if svc.Available() {
		t.Fatal("Service with no connection string should not be available")
	}

	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, "Abebe", "+251911000000"); err != services.ErrDatabaseUnavailable {
		t.Errorf("Expected ErrDatabaseUnavailable, got %v", err)
	}
	if _, err := svc.TopUp(ctx, "abc", 10); err != services.ErrDatabaseUnavailable {
		t.Errorf("Expected ErrDatabaseUnavailable, got %v", err)
	}
	if _, err := svc.ListMatches(ctx); err != services.ErrDatabaseUnavailable {
		t.Errorf("Expected ErrDatabaseUnavailable, got %v", err)
	}

	// Bootstrap is a no-op without a database, never an error.
	if err := svc.EnsureIndexes(ctx); err != nil {
		t.Errorf("EnsureIndexes should no-op: %v", err)
	}
	if err := svc.SeedMatches(ctx); err != nil {
		t.Errorf("SeedMatches should no-op: %v", err)
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	phone := uniquePhone()

	first, err := svc.CreateUser(ctx, "Abebe", phone)
	if err != nil {
		t.Fatalf("First registration failed: %v", err)
	}
	if first.Balance != 0 {
		t.Errorf("Expected zero starting balance, got %v", first.Balance)
	}

	if _, err := svc.CreateUser(ctx, "Kebede", phone); err != services.ErrPhoneTaken {
		t.Errorf("Expected ErrPhoneTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	phone := uniquePhone()

	if _, err := svc.FindUserByPhone(ctx, phone); err != services.ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound for unknown phone, got %v", err)
	}

	created, err := svc.CreateUser(ctx, "Abebe", phone)
	if err != nil {
		t.Fatalf("Registration failed: %v", err)
	}
	if _, err := svc.TopUp(ctx, created.ID.Hex(), 40); err != nil {
		t.Fatalf("TopUp failed: %v", err)
	}

	user, err := svc.FindUserByPhone(ctx, phone)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Balance != 40 {
		t.Errorf("Expected stored balance 40, got %v", user.Balance)
	}
}

func TestTopupLedger(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "Abebe", uniquePhone())
	if err != nil {
		t.Fatalf("Registration failed: %v", err)
	}
	userID := user.ID.Hex()

	if _, err := svc.TopUp(ctx, userID, 50); err != nil {
		t.Fatalf("First topup failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond) // distinct created_at for ordering
	balance, err := svc.TopUp(ctx, userID, 25)
	if err != nil {
		t.Fatalf("Second topup failed: %v", err)
	}
	if balance != 75 {
		t.Errorf("Expected balance 75, got %v", balance)
	}

	items, err := svc.ListTransactions(ctx, userID, 20)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 ledger rows, got %d", len(items))
	}
	if items[0].BalanceAfter != 75 || items[1].BalanceAfter != 50 {
		t.Errorf("Expected balance_after 75 then 50, got %v then %v",
			items[0].BalanceAfter, items[1].BalanceAfter)
	}

	var sum float64
	for _, tx := range items {
		sum += tx.Amount
	}
	if sum != balance {
		t.Errorf("Ledger amounts sum to %v, balance is %v", sum, balance)
	}
}

func TestTopupUnknownUser(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	if _, err := svc.TopUp(ctx, "not-an-id", 10); err != services.ErrInvalidUserID {
		t.Errorf("Expected ErrInvalidUserID, got %v", err)
	}
	if _, err := svc.TopUp(ctx, "65f000000000000000000000", 10); err != services.ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestPlaceBet(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "Abebe", uniquePhone())
	if err != nil {
		t.Fatalf("Registration failed: %v", err)
	}
	userID := user.ID.Hex()
	if _, err := svc.TopUp(ctx, userID, 100); err != nil {
		t.Fatalf("TopUp failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	result, err := svc.PlaceBet(ctx, &models.PlaceBetRequest{
		UserID: userID,
		Stake:  10,
		Selections: []models.BetSelection{
			{MatchID: "m1", Market: models.MarketHomeWin, Odds: 2.0, Description: "Saint George to win"},
			{MatchID: "m2", Market: models.MarketDraw, Odds: 1.5, Description: "Draw"},
		},
	})
	if err != nil {
		t.Fatalf("PlaceBet failed: %v", err)
	}

	if result.PotentialReturn != 30.0 {
		t.Errorf("Expected potential return 30.0, got %v", result.PotentialReturn)
	}
	if result.Balance != 90 {
		t.Errorf("Expected balance 90 after stake deduction, got %v", result.Balance)
	}

	bets, err := svc.ListBets(ctx, userID)
	if err != nil {
		t.Fatalf("ListBets failed: %v", err)
	}
	if len(bets) != 1 {
		t.Fatalf("Expected 1 bet, got %d", len(bets))
	}
	if bets[0].Status != models.BetStatusPending {
		t.Errorf("Expected pending bet, got %s", bets[0].Status)
	}
	if bets[0].ID.Hex() != result.BetID {
		t.Errorf("Bet id mismatch: %s vs %s", bets[0].ID.Hex(), result.BetID)
	}

	items, err := svc.ListTransactions(ctx, userID, 1)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 row with limit 1, got %d", len(items))
	}
	tx := items[0]
	if tx.Type != models.TransactionTypeBetPlace {
		t.Errorf("Expected bet_place transaction, got %s", tx.Type)
	}
	if tx.Amount != -10 {
		t.Errorf("Expected amount -10, got %v", tx.Amount)
	}
	if tx.Reference == nil || *tx.Reference != result.BetID {
		t.Errorf("Expected reference %s, got %v", result.BetID, tx.Reference)
	}
}

func TestPlaceBetRejectedNoSideEffects(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "Abebe", uniquePhone())
	if err != nil {
		t.Fatalf("Registration failed: %v", err)
	}
	userID := user.ID.Hex()
	if _, err := svc.TopUp(ctx, userID, 50); err != nil {
		t.Fatalf("TopUp failed: %v", err)
	}

	cases := []struct {
		name    string
		req     *models.PlaceBetRequest
		wantErr error
	}{
		{
			name:    "empty selections",
			req:     &models.PlaceBetRequest{UserID: userID, Stake: 10},
			wantErr: services.ErrNoSelections,
		},
		{
			name: "odds at 1.0",
			req: &models.PlaceBetRequest{
				UserID: userID,
				Stake:  10,
				Selections: []models.BetSelection{
					{MatchID: "m1", Market: models.MarketHomeWin, Odds: 1.0},
				},
			},
			wantErr: services.ErrInvalidOdds,
		},
		{
			name: "stake over balance",
			req: &models.PlaceBetRequest{
				UserID: userID,
				Stake:  500,
				Selections: []models.BetSelection{
					{MatchID: "m1", Market: models.MarketHomeWin, Odds: 2.0},
				},
			},
			wantErr: services.ErrInsufficientBalance,
		},
	}

	for _, tc := range cases {
		if _, err := svc.PlaceBet(ctx, tc.req); err != tc.wantErr {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}

	// All-or-nothing: no bet, no ledger row, no balance change.
	bets, err := svc.ListBets(ctx, userID)
	if err != nil {
		t.Fatalf("ListBets failed: %v", err)
	}
	if len(bets) != 0 {
		t.Errorf("Rejected bets should leave no bet rows, found %d", len(bets))
	}

	items, err := svc.ListTransactions(ctx, userID, 20)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("Expected only the topup ledger row, found %d", len(items))
	}

	current, err := svc.GetUser(ctx, userID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if current.Balance != 50 {
		t.Errorf("Expected untouched balance 50, got %v", current.Balance)
	}
}

func TestSeedMatchesRunsOnce(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	if err := svc.SeedMatches(ctx); err != nil {
		t.Fatalf("First seed failed: %v", err)
	}
	before, err := svc.ListMatches(ctx)
	if err != nil {
		t.Fatalf("ListMatches failed: %v", err)
	}
	if len(before) == 0 {
		t.Fatal("Seeding into an empty collection should insert matches")
	}

	if err := svc.SeedMatches(ctx); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}
	after, err := svc.ListMatches(ctx)
	if err != nil {
		t.Fatalf("ListMatches failed: %v", err)
	}
	if len(after) != len(before) {
		t.Errorf("Second seed inserted %d extra matches", len(after)-len(before))
	}
}

func TestEnsureIndexes(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	if err := svc.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}
	// idempotent
	if err := svc.EnsureIndexes(ctx); err != nil {
		t.Fatalf("Repeated EnsureIndexes failed: %v", err)
	}
}
