package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"yehagerbet-backend/internal/models"
)

type PlaceBetResult struct {
	BetID           string
	PotentialReturn float64
	Balance         float64
}

// PlaceBet validates the slip, deducts the stake, and writes the bet and
// its ledger row. All validation happens before any write, so a rejected
// slip leaves nothing behind. The deduction is a conditional atomic update
// guarded on balance >= stake; a concurrent bet that drains the balance
// first makes the guard fail and the request is rejected like any other
// insufficient-balance case.
func (s *MongoService) PlaceBet(ctx context.Context, req *models.PlaceBetRequest) (*PlaceBetResult, error) {
	if s.db == nil {
		return nil, ErrDatabaseUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	var user models.User
	err = s.collection(ColUser).FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if len(req.Selections) == 0 {
		return nil, ErrNoSelections
	}

	potentialReturn, err := models.PotentialReturn(req.Stake, req.Selections)
	if err != nil {
		return nil, ErrInvalidOdds
	}

	if user.Balance < req.Stake {
		return nil, ErrInsufficientBalance
	}

	now := time.Now().UTC()
	var updated models.User
	err = s.collection(ColUser).FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "balance": bson.M{"$gte": req.Stake}},
		bson.M{
			"$inc": bson.M{"balance": -req.Stake},
			"$set": bson.M{"updated_at": now},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrInsufficientBalance
	}
	if err != nil {
		return nil, err
	}
	newBalance := models.Round2(updated.Balance)

	bet := &models.Bet{
		UserID:          req.UserID,
		Stake:           req.Stake,
		Selections:      req.Selections,
		PotentialReturn: potentialReturn,
		Status:          models.BetStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	res, err := s.collection(ColBet).InsertOne(ctx, bet)
	if err != nil {
		return nil, err
	}
	betID := res.InsertedID.(primitive.ObjectID).Hex()

	tx := &models.WalletTransaction{
		UserID:       req.UserID,
		Type:         models.TransactionTypeBetPlace,
		Amount:       -req.Stake,
		BalanceAfter: newBalance,
		Reference:    &betID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.collection(ColWalletTransaction).InsertOne(ctx, tx); err != nil {
		s.log.Error("bet ledger insert failed",
			zap.String("user_id", req.UserID), zap.String("bet_id", betID), zap.Error(err))
		return nil, err
	}

	return &PlaceBetResult{
		BetID:           betID,
		PotentialReturn: potentialReturn,
		Balance:         newBalance,
	}, nil
}

// ListBets returns all of the user's bets, most recent first.
func (s *MongoService) ListBets(ctx context.Context, userID string) ([]models.Bet, error) {
	if s.db == nil {
		return nil, ErrDatabaseUnavailable
	}

	cur, err := s.collection(ColBet).Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}

	items := []models.Bet{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
