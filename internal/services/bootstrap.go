package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"yehagerbet-backend/internal/models"
)

// EnsureIndexes builds the indexes every handler relies on: the unique
// phone index backing registration, and the sort indexes behind match,
// bet, and transaction listings. Safe to run on every startup.
func (s *MongoService) EnsureIndexes(ctx context.Context) error {
	if s.db == nil {
		return nil
	}

	_, err := s.collection(ColUser).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = s.collection(ColMatch).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "start_time", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = s.collection(ColBet).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return err
	}

	_, err = s.collection(ColWalletTransaction).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

// SeedMatches inserts the fixed sample fixtures, only when the match
// collection is empty. Not guarded against concurrent startups.
func (s *MongoService) SeedMatches(ctx context.Context) error {
	if s.db == nil {
		return nil
	}

	count, err := s.collection(ColMatch).CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	kickoff := now.Truncate(time.Second)

	samples := []interface{}{
		&models.Match{
			Sport:     models.SportFootball,
			League:    "Ethiopian Premier League",
			HomeTeam:  "Saint George",
			AwayTeam:  "Buna",
			StartTime: &kickoff,
			Status:    models.MatchStatusScheduled,
			Odds: models.MatchOdds{
				HomeWin: models.Odds(1.85),
				Draw:    models.Odds(3.2),
				AwayWin: models.Odds(3.9),
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		&models.Match{
			Sport:     models.SportFootball,
			League:    "Ethiopian Premier League",
			HomeTeam:  "Fasil Kenema",
			AwayTeam:  "Wolaita Dicha",
			StartTime: &kickoff,
			Status:    models.MatchStatusScheduled,
			Odds: models.MatchOdds{
				HomeWin: models.Odds(2.1),
				Draw:    models.Odds(3.0),
				AwayWin: models.Odds(3.4),
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		&models.Match{
			Sport:     models.SportBasketball,
			League:    "Ethiopia Cup",
			HomeTeam:  "Addis Lions",
			AwayTeam:  "Hawassa Hawks",
			StartTime: &kickoff,
			Status:    models.MatchStatusScheduled,
			Odds: models.MatchOdds{
				HomeWin: models.Odds(1.7),
				AwayWin: models.Odds(2.2),
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if _, err := s.collection(ColMatch).InsertMany(ctx, samples); err != nil {
		return err
	}
	s.log.Info("seeded sample matches", zap.Int("count", len(samples)))
	return nil
}
