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

// TopUp credits the user's balance and appends the matching ledger row.
// The credit is a single-document atomic $inc, so two concurrent top-ups
// cannot lose an update.
func (s *MongoService) TopUp(ctx context.Context, userID string, amount float64) (float64, error) {
	if s.db == nil {
		return 0, ErrDatabaseUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return 0, ErrInvalidUserID
	}

	now := time.Now().UTC()
	var updated models.User
	err = s.collection(ColUser).FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$inc": bson.M{"balance": amount},
			"$set": bson.M{"updated_at": now},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, err
	}

	tx := &models.WalletTransaction{
		UserID:       userID,
		Type:         models.TransactionTypeTopup,
		Amount:       amount,
		BalanceAfter: updated.Balance,
		Reference:    nil,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.collection(ColWalletTransaction).InsertOne(ctx, tx); err != nil {
		s.log.Error("topup ledger insert failed",
			zap.String("user_id", userID), zap.Error(err))
		return 0, err
	}

	return updated.Balance, nil
}

// ListTransactions returns the user's ledger rows, most recent first. An
// unknown user simply has no rows. The limit is passed through as given.
func (s *MongoService) ListTransactions(ctx context.Context, userID string, limit int64) ([]models.WalletTransaction, error) {
	if s.db == nil {
		return nil, ErrDatabaseUnavailable
	}

	cur, err := s.collection(ColWalletTransaction).Find(ctx,
		bson.M{"user_id": userID},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}

	items := []models.WalletTransaction{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
