package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"yehagerbet-backend/internal/models"
)

// ListMatches returns every match, soonest kick-off first.
func (s *MongoService) ListMatches(ctx context.Context) ([]models.Match, error) {
	if s.db == nil {
		return nil, ErrDatabaseUnavailable
	}

	cur, err := s.collection(ColMatch).Find(ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	items := []models.Match{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
