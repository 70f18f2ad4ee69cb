package ledger

import (
	"errors"

	"casino-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUnknownUser       = errors.New("ledger: unknown user")
	ErrInsufficientFunds = errors.New("ledger: insufficient funds")
)

// Store is the gorm-backed account ledger. Each balance update runs in its
// own transaction with a row lock, so concurrent settlements against the same
// user cannot race.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetBalance(user string) (float64, error) {
	var u models.User
	if err := s.db.Where("username = ?", user).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUnknownUser
		}
		return 0, err
	}
	return u.Balance, nil
}

// UpdateBalance applies delta to the user's balance. It returns false, nil
// when the delta would leave the balance negative; nothing is written then.
func (s *Store) UpdateBalance(user string, delta float64) (bool, error) {
	applied := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("username = ?", user).First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownUser
			}
			return err
		}
		if u.Balance+delta < 0 {
			return nil
		}
		u.Balance += delta
		applied = true
		return tx.Save(&u).Error
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

// Deposit credits the user and records a transaction row. Returns the new
// balance.
func (s *Store) Deposit(user string, amount float64) (float64, error) {
	return s.transact(user, amount, models.DepositTransaction)
}

// Withdraw debits the user and records a transaction row. Returns the new
// balance, or ErrInsufficientFunds without writing anything.
func (s *Store) Withdraw(user string, amount float64) (float64, error) {
	return s.transact(user, -amount, models.WithdrawTransaction)
}

func (s *Store) transact(user string, delta float64, kind models.TransactionType) (float64, error) {
	var after float64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("username = ?", user).First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownUser
			}
			return err
		}
		if u.Balance+delta < 0 {
			return ErrInsufficientFunds
		}
		u.Balance += delta
		if err := tx.Save(&u).Error; err != nil {
			return err
		}
		after = u.Balance
		amount := delta
		if amount < 0 {
			amount = -amount
		}
		return tx.Create(&models.Transaction{
			UserID:       u.ID,
			Type:         kind,
			Amount:       amount,
			BalanceAfter: u.Balance,
		}).Error
	})
	if err != nil {
		return 0, err
	}
	return after, nil
}
