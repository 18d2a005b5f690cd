package services

// Collection names. One collection per entity, named after the entity in
// lowercase.
const (
	ColUser              = "user"
	ColMatch             = "match"
	ColBet               = "bet"
	ColWalletTransaction = "wallettransaction"
)
