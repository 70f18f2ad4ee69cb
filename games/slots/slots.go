package slots

import (
	"errors"
	"math/rand"
	"time"

	"casino-backend/games"
)

var (
	ErrNoBet             = errors.New("slots: no bet placed")
	ErrInsufficientFunds = errors.New("slots: insufficient funds")
)

var symbols = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "$", "*", "X"}

// Game is a single-seat slot machine. One player spins at a time; each spin
// draws a round multiplier and three symbols and settles the net against the
// ledger immediately.
type Game struct {
	ledger     games.Ledger
	rng        *rand.Rand
	players    games.Set
	bet        float64
	multiplier int
	reels      []string
	lastPayout float64
	spun       bool
}

func New(ledger games.Ledger) *Game {
	return &Game{
		ledger:  ledger,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		players: games.NewSet(),
	}
}

func (g *Game) Stage() string { return "betting" }

// AddPlayer seats the player. The machine has one seat; later joiners are
// turned away until it frees up.
func (g *Game) AddPlayer(player string) {
	if g.players.Len() > 0 && !g.players.Has(player) {
		return
	}
	g.players.Add(player)
}

// RemovePlayer frees the seat and resets the machine for the next occupant.
func (g *Game) RemovePlayer(player string) {
	if !g.players.Has(player) {
		return
	}
	g.players.Remove(player)
	g.bet = 0
	g.multiplier = 0
	g.reels = nil
	g.lastPayout = 0
	g.spun = false
}

func (g *Game) HasPlayer(player string) bool { return g.players.Has(player) }

func (g *Game) PlayerCount() int { return g.players.Len() }

// RecordBet sets the stake for the next spin.
func (g *Game) RecordBet(player string, amount float64) bool {
	if !g.players.Has(player) || amount < 0 {
		return false
	}
	g.bet = amount
	return true
}

// Play runs one spin for the player and settles payout minus bet against
// the ledger. The balance must cover the stake before the reels move.
func (g *Game) Play(player string) error {
	if !g.players.Has(player) || g.bet <= 0 {
		return ErrNoBet
	}
	balance, err := g.ledger.GetBalance(player)
	if err != nil {
		return err
	}
	if balance < g.bet {
		return ErrInsufficientFunds
	}

	g.multiplier = drawMultiplier(g.rng)
	g.reels = drawReels(g.rng)
	g.lastPayout = payoutFor(g.reels, g.bet, g.multiplier)
	g.spun = true

	net := g.lastPayout - g.bet
	if net != 0 {
		if _, err := g.ledger.UpdateBalance(player, net); err != nil {
			return err
		}
	}
	return nil
}

// drawMultiplier samples the skewed round multiplier: 1x three times out of
// four, 5x one time in a hundred.
func drawMultiplier(rng *rand.Rand) int {
	roll := rng.Float64()
	switch {
	case roll < 0.75:
		return 1
	case roll < 0.90:
		return 2
	case roll < 0.97:
		return 3
	case roll < 0.99:
		return 4
	default:
		return 5
	}
}

func drawReels(rng *rand.Rand) []string {
	reels := make([]string, 3)
	for i := range reels {
		reels[i] = symbols[rng.Intn(len(symbols))]
	}
	return reels
}

// payoutFor computes the gross return for a spin. Any X forfeits the stake
// outright; otherwise matching-symbol multipliers accumulate and scale by
// the round multiplier.
func payoutFor(reels []string, bet float64, multiplier int) float64 {
	counts := make(map[string]int)
	for _, s := range reels {
		if s == "X" {
			return 0
		}
		counts[s]++
	}

	acc := 0.0
	for symbol, n := range counts {
		switch symbol {
		case "$":
			switch n {
			case 1:
				acc += 2
			case 2:
				acc += 10
			case 3:
				acc += 100
			}
		case "*":
			switch n {
			case 2:
				acc += 20
			case 3:
				acc += 50
			}
		default:
			switch n {
			case 2:
				acc += 5
			case 3:
				acc += 20
			}
		}
	}
	return bet * acc * float64(multiplier)
}

func (g *Game) State(viewer string) map[string]any {
	state := map[string]any{
		"stage":   g.Stage(),
		"players": g.players.Members(),
		"bet":     g.bet,
	}
	if g.spun {
		state["multiplier"] = g.multiplier
		state["reels"] = g.reels
		state["payout"] = g.lastPayout
	}
	return state
}
