package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"yehagerbet-backend/internal/config"
)

// MongoService owns the database handle and every collection operation.
// It is constructed once at startup and shared by all handlers. When the
// connection string is missing or the server is unreachable the service
// still constructs, with db left nil; every operation then returns
// ErrDatabaseUnavailable and /test reports the degraded state.
type MongoService struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.Logger
}

func NewMongoService(cfg *config.Config, log *zap.Logger) *MongoService {
	s := &MongoService{log: log}

	if cfg.DatabaseURL == "" || cfg.DatabaseName == "" {
		log.Warn("DATABASE_URL or DATABASE_NAME not set, running without database")
		return s
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err == nil {
		err = client.Ping(ctx, nil)
	}
	if err != nil {
		log.Warn("mongodb unreachable, running without database", zap.Error(err))
		return s
	}

	s.client = client
	s.db = client.Database(cfg.DatabaseName)
	return s
}

func (s *MongoService) Available() bool {
	return s.db != nil
}

func (s *MongoService) Close() error {
	if s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *MongoService) Ping(ctx context.Context) error {
	if s.client == nil {
		return ErrDatabaseUnavailable
	}
	return s.client.Ping(ctx, nil)
}

// CollectionNames lists the collections present in the database, for the
// /test diagnostic endpoint.
func (s *MongoService) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrDatabaseUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *MongoService) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}
