package services

import (
	"encoding/json"

	"casino-backend/games"
	"casino-backend/games/poker"
	"casino-backend/session"
)

// NewPokerUpdater wires the poker message vocabulary to the game.
func NewPokerUpdater(ledger games.Ledger, recorder *RoundRecorder) *Updater {
	u := &Updater{gameType: "poker", ledger: ledger, recorder: recorder}
	u.handlers = map[string]HandlerFunc{
		"load_game":            u.loadGame,
		"request_user_balance": u.requestUserBalance,
		"ready_up":             u.pokerReadyUp,
		"place_action":         u.pokerPlaceAction,
	}
	return u
}

func (u *Updater) pokerReadyUp(s *session.Session, env Envelope) (*Response, error) {
	var payload struct {
		Ready bool `json:"ready"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, errBadPayload
	}
	if !s.Game.(*poker.Game).ReadyUp(env.User, payload.Ready) {
		return nil, nil
	}
	return update(s), nil
}

func (u *Updater) pokerPlaceAction(s *session.Session, env Envelope) (*Response, error) {
	var payload struct {
		Action string  `json:"action"`
		Amount float64 `json:"amount"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, errBadPayload
	}
	if !s.Game.(*poker.Game).Action(env.User, payload.Action, payload.Amount) {
		return nil, nil
	}
	return update(s), nil
}
