package services

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"casino-backend/models"
	"casino-backend/utils/logger"
)

// RoundRecorder writes an audit row for every resolved round. Recording is
// best effort: with no database configured it is a no-op, and a failed
// insert never disturbs the game.
type RoundRecorder struct {
	db *gorm.DB
}

func NewRoundRecorder(db *gorm.DB) *RoundRecorder {
	return &RoundRecorder{db: db}
}

func (r *RoundRecorder) Record(gameType string, sessionID uuid.UUID, stage string, state map[string]any) {
	if r == nil || r.db == nil {
		return
	}
	blob, err := json.Marshal(state)
	if err != nil {
		logger.Errorf("round record: marshal %s state: %v", gameType, err)
		return
	}
	record := models.RoundRecord{
		GameType:  gameType,
		SessionID: sessionID.String(),
		Stage:     stage,
		StateJSON: datatypes.JSON(blob),
	}
	// Insert off the session goroutine so a slow database cannot stall play.
	go func() {
		if err := r.db.Create(&record).Error; err != nil {
			logger.Errorf("round record: insert %s/%s: %v", gameType, sessionID, err)
		}
	}()
}
