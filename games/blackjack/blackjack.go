package blackjack

import (
	"casino-backend/cards"
	"casino-backend/games"
	"casino-backend/utils/logger"
)

const (
	StageBetting = "betting"
	StageDealing = "dealing"
	StageEnding  = "ending"
)

const (
	numDecks    = 2
	reshuffleAt = 0.25
)

// Game is a multiplayer blackjack table. Players bet during the betting
// stage; once everyone readies up the bets are debited and a round is dealt.
// Anyone who joins mid-round waits in the waiting room until the next reset.
type Game struct {
	ledger  games.Ledger
	pack    *cards.Pack
	players games.Set
	waiting games.Set
	bets    map[string]float64
	ready   map[string]bool
	round   *Round
}

func New(ledger games.Ledger) *Game {
	return &Game{
		ledger:  ledger,
		pack:    cards.NewPack(numDecks, reshuffleAt),
		players: games.NewSet(),
		waiting: games.NewSet(),
		bets:    make(map[string]float64),
		ready:   make(map[string]bool),
	}
}

func (g *Game) Stage() string {
	if g.round == nil {
		return StageBetting
	}
	return g.round.Stage()
}

func (g *Game) AddPlayer(player string) {
	if g.players.Has(player) || g.waiting.Has(player) {
		return
	}
	if g.Stage() != StageBetting {
		g.waiting.Add(player)
		return
	}
	g.players.Add(player)
	g.bets[player] = 0
	g.ready[player] = false
}

func (g *Game) RemovePlayer(player string) {
	g.waiting.Remove(player)
	if !g.players.Has(player) {
		return
	}
	g.players.Remove(player)
	delete(g.bets, player)
	delete(g.ready, player)
	if g.round != nil {
		g.round.removePlayer(player)
	}
	if g.players.Len() == 0 {
		g.reset()
		return
	}
	g.checkStage()
}

func (g *Game) HasPlayer(player string) bool {
	return g.players.Has(player) || g.waiting.Has(player)
}

func (g *Game) PlayerCount() int {
	return g.players.Len() + g.waiting.Len()
}

// RecordBet stores the player's wager for the next round. The balance is not
// touched until the whole table readies up. Reports whether the wager was
// accepted.
func (g *Game) RecordBet(player string, amount float64) bool {
	if !g.players.Has(player) || g.Stage() != StageBetting || amount < 0 {
		return false
	}
	g.bets[player] = amount
	return true
}

// ReadyUp flips the player's ready flag and advances the table when everyone
// agrees.
func (g *Game) ReadyUp(player string, ready bool) bool {
	if _, ok := g.ready[player]; !ok {
		return false
	}
	g.ready[player] = ready
	g.checkStage()
	return true
}

// Action forwards a hit or stay to the running round.
func (g *Game) Action(player, move string) bool {
	if g.round == nil {
		return false
	}
	return g.round.Action(player, move)
}

func (g *Game) allReady() bool {
	if len(g.ready) == 0 {
		return false
	}
	for _, r := range g.ready {
		if !r {
			return false
		}
	}
	return true
}

func (g *Game) checkStage() {
	if !g.allReady() {
		return
	}
	switch g.Stage() {
	case StageEnding:
		g.reset()
	case StageBetting:
		g.debitBets()
		g.startRound()
	case StageDealing:
		// Readying up mid-deal counts as standing pat.
		g.round.checkDealerTurn()
	}
}

// debitBets charges every wager up front. A debit that fails (or errors)
// zeroes that player's wager so the round deals them a free hand.
func (g *Game) debitBets() {
	for player, bet := range g.bets {
		if bet == 0 {
			continue
		}
		ok, err := g.ledger.UpdateBalance(player, -bet)
		if err != nil {
			logger.Errorf("blackjack: debit %v from %s: %v", bet, player, err)
		}
		if err != nil || !ok {
			g.bets[player] = 0
		}
	}
}

func (g *Game) startRound() {
	for player := range g.ready {
		g.ready[player] = false
	}
	g.round = newRound(g)
}

func (g *Game) reset() {
	g.round = nil
	for _, player := range g.waiting.Members() {
		g.players.Add(player)
		g.waiting.Remove(player)
	}
	g.bets = make(map[string]float64)
	g.ready = make(map[string]bool)
	for player := range g.players {
		g.bets[player] = 0
		g.ready[player] = false
	}
}

func (g *Game) State(viewer string) map[string]any {
	players := make([]map[string]any, 0, g.players.Len())
	for _, player := range g.players.Members() {
		players = append(players, map[string]any{
			"player": player,
			"bet":    g.bets[player],
			"ready":  g.ready[player],
		})
	}
	state := map[string]any{
		"stage":        g.Stage(),
		"players":      players,
		"waiting_room": g.waiting.Members(),
	}
	if g.round != nil {
		state["round"] = g.round.state()
	}
	return state
}
