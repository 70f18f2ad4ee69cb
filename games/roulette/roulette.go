package roulette

import (
	"errors"

	"casino-backend/games"
	"casino-backend/utils/logger"
)

var (
	ErrInvalidBet        = errors.New("roulette: invalid bet")
	ErrInsufficientFunds = errors.New("roulette: insufficient funds")
)

// Game is a roulette table. Once every seated player has a valid bet down
// the wheel arms itself; a play message then spins it and settles everyone
// in one pass.
type Game struct {
	ledger  games.Ledger
	players games.Set
	amounts map[string]float64
	bets    map[string]*Bet
	payouts map[string]float64
	wheel   *Wheel
}

func New(ledger games.Ledger) *Game {
	return &Game{
		ledger:  ledger,
		players: games.NewSet(),
		amounts: make(map[string]float64),
		bets:    make(map[string]*Bet),
		payouts: make(map[string]float64),
		wheel:   NewWheel(),
	}
}

func (g *Game) Stage() string { return g.wheel.Stage() }

func (g *Game) AddPlayer(player string) {
	g.players.Add(player)
}

func (g *Game) RemovePlayer(player string) {
	g.players.Remove(player)
	delete(g.amounts, player)
	delete(g.bets, player)
	delete(g.payouts, player)
	g.checkReady()
}

func (g *Game) HasPlayer(player string) bool { return g.players.Has(player) }

func (g *Game) PlayerCount() int { return g.players.Len() }

// RecordBet validates and stores a wager. A bet placed after a spin resolves
// starts the next cycle with a fresh wheel. The balance is checked up front;
// the actual ledger movement is the net applied at spin time.
func (g *Game) RecordBet(player string, amount float64, bet *Bet) error {
	if !g.players.Has(player) {
		return ErrInvalidBet
	}
	if g.wheel.Stage() == StageEnding {
		g.reset()
	}
	if amount <= 0 || bet == nil || !Validate(bet) {
		return ErrInvalidBet
	}
	balance, err := g.ledger.GetBalance(player)
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrInsufficientFunds
	}
	g.amounts[player] = amount
	g.bets[player] = bet
	g.checkReady()
	return nil
}

func (g *Game) checkReady() {
	if g.wheel.Stage() != StageBetting || g.players.Len() == 0 {
		return
	}
	for player := range g.players {
		if g.bets[player] == nil || g.amounts[player] <= 0 {
			return
		}
	}
	g.wheel.stage = StageReady
}

// StartRound spins the armed wheel and settles every bet: each player's
// ledger moves by payout minus stake, so a losing bet costs exactly the
// wager. Reports whether a spin happened.
func (g *Game) StartRound() bool {
	if !g.wheel.Spin() {
		return false
	}
	result := g.wheel.Result()
	for player, bet := range g.bets {
		amount := g.amounts[player]
		payout := Payout(result, amount, bet)
		g.payouts[player] = payout
		net := payout - amount
		if net == 0 {
			continue
		}
		applied, err := g.ledger.UpdateBalance(player, net)
		if err != nil || !applied {
			logger.Errorf("roulette: settle %v for %s: applied=%v err=%v", net, player, applied, err)
		}
	}
	return true
}

func (g *Game) reset() {
	g.wheel = NewWheel()
	g.amounts = make(map[string]float64)
	g.bets = make(map[string]*Bet)
	g.payouts = make(map[string]float64)
}

func (g *Game) State(viewer string) map[string]any {
	players := make([]map[string]any, 0, g.players.Len())
	for _, player := range g.players.Members() {
		entry := map[string]any{
			"player": player,
			"amount": g.amounts[player],
			"payout": g.payouts[player],
		}
		if bet := g.bets[player]; bet != nil {
			entry["bet"] = bet
		}
		players = append(players, entry)
	}
	return map[string]any{
		"stage":   g.Stage(),
		"players": players,
		"wheel":   g.wheel.state(),
	}
}
