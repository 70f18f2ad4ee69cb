package services

import (
	"encoding/json"

	"casino-backend/games"
	"casino-backend/games/craps"
	"casino-backend/session"
)

// NewCrapsUpdater wires the craps message vocabulary to the game. The three
// ready messages share one handler; the table advances whichever waiting
// stage it is in.
func NewCrapsUpdater(ledger games.Ledger, recorder *RoundRecorder) *Updater {
	u := &Updater{gameType: "craps", ledger: ledger, recorder: recorder}
	u.handlers = map[string]HandlerFunc{
		"load_game":            u.loadGame,
		"request_user_balance": u.requestUserBalance,
		"ready1":               u.crapsReadyUp,
		"ready2":               u.crapsReadyUp,
		"ready_up":             u.crapsReadyUp,
		"place_bet1":           u.crapsLineBet,
		"place_bet2":           u.crapsComeBet,
		"come_out_roll":        u.crapsComeOutRoll,
		"point_roll":           u.crapsPointRoll,
	}
	return u
}

type crapsBetPayload struct {
	BetType   string  `json:"bet_type"`
	BetAmount float64 `json:"bet_amount"`
}

func (u *Updater) crapsReadyUp(s *session.Session, env Envelope) (*Response, error) {
	var payload struct {
		Ready bool `json:"ready"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, errBadPayload
	}
	if !s.Game.(*craps.Game).ReadyUp(env.User, payload.Ready) {
		return nil, nil
	}
	return update(s), nil
}

func (u *Updater) crapsLineBet(s *session.Session, env Envelope) (*Response, error) {
	var payload crapsBetPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, errBadPayload
	}
	if err := s.Game.(*craps.Game).PlaceLineBet(env.User, payload.BetType, payload.BetAmount); err != nil {
		return nil, err
	}
	return update(s), nil
}

func (u *Updater) crapsComeBet(s *session.Session, env Envelope) (*Response, error) {
	var payload crapsBetPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, errBadPayload
	}
	if err := s.Game.(*craps.Game).PlaceComeBet(env.User, payload.BetType, payload.BetAmount); err != nil {
		return nil, err
	}
	return update(s), nil
}

func (u *Updater) crapsComeOutRoll(s *session.Session, env Envelope) (*Response, error) {
	if !s.Game.(*craps.Game).RollComeOut(env.User) {
		return nil, nil
	}
	return update(s), nil
}

func (u *Updater) crapsPointRoll(s *session.Session, env Envelope) (*Response, error) {
	if !s.Game.(*craps.Game).RollPoint(env.User) {
		return nil, nil
	}
	return update(s), nil
}
