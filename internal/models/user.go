package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"user_id"`
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone" json:"phone"`
	Balance   float64            `bson:"balance" json:"balance"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

func NewUser(name, phone string) *User {
	now := time.Now().UTC()
	return &User{
		Name:      name,
		Phone:     phone,
		Balance:   0,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
