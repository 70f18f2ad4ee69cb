package models

import "time"

// TransactionType says which direction money moved.
type TransactionType string

const (
	DepositTransaction  TransactionType = "deposit"
	WithdrawTransaction TransactionType = "withdraw"
)

// Transaction is the audit row written alongside every deposit and
// withdrawal. BalanceAfter snapshots the balance inside the same database
// transaction that moved it.
type Transaction struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       uint            `gorm:"index" json:"user_id"`
	Type         TransactionType `json:"type"`
	Amount       float64         `json:"amount"` // always positive; Type carries the sign
	BalanceAfter float64         `json:"balance_after"`
	CreatedAt    time.Time       `json:"created_at"`
}
