package services

import (
	"encoding/json"

	"casino-backend/games"
	"casino-backend/games/slots"
	"casino-backend/session"
)

// NewSlotsUpdater wires the slots message vocabulary to the game.
func NewSlotsUpdater(ledger games.Ledger, recorder *RoundRecorder) *Updater {
	u := &Updater{gameType: "slots", ledger: ledger, recorder: recorder}
	u.handlers = map[string]HandlerFunc{
		"load_game":            u.loadGame,
		"request_user_balance": u.requestUserBalance,
		"place_bet":            u.slotsPlaceBet,
		"play_slots":           u.slotsPlay,
	}
	return u
}

func (u *Updater) slotsPlaceBet(s *session.Session, env Envelope) (*Response, error) {
	var payload struct {
		Bet float64 `json:"bet"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, errBadPayload
	}
	if !s.Game.(*slots.Game).RecordBet(env.User, payload.Bet) {
		return nil, nil
	}
	return update(s), nil
}

func (u *Updater) slotsPlay(s *session.Session, env Envelope) (*Response, error) {
	if err := s.Game.(*slots.Game).Play(env.User); err != nil {
		return nil, err
	}
	// Slots never leaves its betting stage, so record each spin here.
	u.recorder.Record(u.gameType, env.SessionID, "spin", s.Game.State(""))
	return update(s), nil
}
