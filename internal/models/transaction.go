package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransactionType string

const (
	TransactionTypeTopup      TransactionType = "topup"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeBetPlace   TransactionType = "bet_place"
	TransactionTypeBetPayout  TransactionType = "bet_payout"
)

// WalletTransaction is one append-only ledger row per balance-affecting
// event. Amount is signed: positive credits, negative debits. BalanceAfter
// is a snapshot taken when the row is written, never recomputed.
type WalletTransaction struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"user_id" json:"user_id"`
	Type         TransactionType    `bson:"type" json:"type"`
	Amount       float64            `bson:"amount" json:"amount"`
	BalanceAfter float64            `bson:"balance_after" json:"balance_after"`
	Reference    *string            `bson:"reference" json:"reference"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
