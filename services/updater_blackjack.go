package services

import (
	"encoding/json"
	"errors"

	"casino-backend/games"
	"casino-backend/games/blackjack"
	"casino-backend/session"
)

var errBadPayload = errors.New("malformed message data")

// NewBlackjackUpdater wires the blackjack message vocabulary to the game.
func NewBlackjackUpdater(ledger games.Ledger, recorder *RoundRecorder) *Updater {
	u := &Updater{gameType: "blackjack", ledger: ledger, recorder: recorder}
	u.handlers = map[string]HandlerFunc{
		"load_game":            u.loadGame,
		"request_user_balance": u.requestUserBalance,
		"place_bet":            u.blackjackPlaceBet,
		"ready_up":             u.blackjackReadyUp,
		"action":               u.blackjackAction,
	}
	return u
}

func (u *Updater) blackjackPlaceBet(s *session.Session, env Envelope) (*Response, error) {
	var payload struct {
		Bet float64 `json:"bet"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, errBadPayload
	}
	if !s.Game.(*blackjack.Game).RecordBet(env.User, payload.Bet) {
		return nil, nil
	}
	return update(s), nil
}

func (u *Updater) blackjackReadyUp(s *session.Session, env Envelope) (*Response, error) {
	var payload struct {
		Ready bool `json:"ready"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, errBadPayload
	}
	if !s.Game.(*blackjack.Game).ReadyUp(env.User, payload.Ready) {
		return nil, nil
	}
	return update(s), nil
}

func (u *Updater) blackjackAction(s *session.Session, env Envelope) (*Response, error) {
	var payload struct {
		Move string `json:"move"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, errBadPayload
	}
	if !s.Game.(*blackjack.Game).Action(env.User, payload.Move) {
		return nil, nil
	}
	return update(s), nil
}
