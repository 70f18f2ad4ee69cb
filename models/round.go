package models

import (
	"time"

	"gorm.io/datatypes"
)

// RoundRecord is an audit row written whenever a session's round resolves.
type RoundRecord struct {
	ID        uint   `gorm:"primaryKey"`
	GameType  string `gorm:"index"` // blackjack | craps | poker | roulette | slots
	SessionID string `gorm:"index"`
	Stage     string
	StateJSON datatypes.JSON // final dict representation of the round
	CreatedAt time.Time
}
