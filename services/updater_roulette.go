package services

import (
	"encoding/json"

	"casino-backend/games"
	"casino-backend/games/roulette"
	"casino-backend/session"
)

// NewRouletteUpdater wires the roulette message vocabulary to the game.
func NewRouletteUpdater(ledger games.Ledger, recorder *RoundRecorder) *Updater {
	u := &Updater{gameType: "roulette", ledger: ledger, recorder: recorder}
	u.handlers = map[string]HandlerFunc{
		"load_game":            u.loadGame,
		"request_user_balance": u.requestUserBalance,
		"place_bet":            u.roulettePlaceBet,
		"play":                 u.roulettePlay,
	}
	return u
}

func (u *Updater) roulettePlaceBet(s *session.Session, env Envelope) (*Response, error) {
	var payload struct {
		Amount float64       `json:"amount"`
		Bet    *roulette.Bet `json:"bet"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, errBadPayload
	}
	if err := s.Game.(*roulette.Game).RecordBet(env.User, payload.Amount, payload.Bet); err != nil {
		return nil, err
	}
	return update(s), nil
}

func (u *Updater) roulettePlay(s *session.Session, env Envelope) (*Response, error) {
	if !s.Game.(*roulette.Game).StartRound() {
		return nil, nil
	}
	return update(s), nil
}
