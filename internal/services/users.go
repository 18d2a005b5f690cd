package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"yehagerbet-backend/internal/models"
)

// CreateUser registers a new user with a zero balance. The phone number is
// the login identifier and must be unique; a duplicate fails with
// ErrPhoneTaken whether caught by the lookup or by the unique index.
func (s *MongoService) CreateUser(ctx context.Context, name, phone string) (*models.User, error) {
	if s.db == nil {
		return nil, ErrDatabaseUnavailable
	}

	err := s.collection(ColUser).FindOne(ctx, bson.M{"phone": phone}).Err()
	if err == nil {
		return nil, ErrPhoneTaken
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	user := models.NewUser(name, phone)
	res, err := s.collection(ColUser).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrPhoneTaken
		}
		return nil, err
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (s *MongoService) FindUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	if s.db == nil {
		return nil, ErrDatabaseUnavailable
	}

	var user models.User
	err := s.collection(ColUser).FindOne(ctx, bson.M{"phone": phone}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	if s.db == nil {
		return nil, ErrDatabaseUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(userID)
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
	return &user, nil
}
