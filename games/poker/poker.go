package poker

import (
	"sort"

	"casino-backend/cards"
	"casino-backend/games"
)

const (
	StageWaiting = "waiting"
	StagePlaying = "playing"
	StageEnding  = "ending"
)

// Game is a hold'em table with one persistent deck. A hand needs at least
// two seated players; the deck rebuilds and reshuffles between hands.
type Game struct {
	ledger  games.Ledger
	deck    *cards.Deck
	players games.Set
	ready   map[string]bool
	round   *Round
}

func New(ledger games.Ledger) *Game {
	return &Game{
		ledger:  ledger,
		deck:    cards.NewDeck(),
		players: games.NewSet(),
		ready:   make(map[string]bool),
	}
}

func (g *Game) Stage() string {
	switch {
	case g.round == nil:
		return StageWaiting
	case g.round.over:
		return StageEnding
	default:
		return StagePlaying
	}
}

func (g *Game) AddPlayer(player string) {
	if g.players.Has(player) {
		return
	}
	g.players.Add(player)
	g.ready[player] = false
}

func (g *Game) RemovePlayer(player string) {
	if !g.players.Has(player) {
		return
	}
	g.players.Remove(player)
	delete(g.ready, player)
	if g.players.Len() == 0 {
		g.round = nil
		return
	}
	if g.round != nil {
		g.round.removePlayer(player)
	}
	g.checkNextHand()
}

func (g *Game) HasPlayer(player string) bool { return g.players.Has(player) }

func (g *Game) PlayerCount() int { return g.players.Len() }

// Action forwards a betting action to the running hand. Reports whether the
// action was legal and applied.
func (g *Game) Action(player, action string, amount float64) bool {
	if g.round == nil || !g.players.Has(player) {
		return false
	}
	return g.round.Action(player, action, amount)
}

// ReadyUp flips the player's ready flag; when the whole table is ready a new
// hand is dealt.
func (g *Game) ReadyUp(player string, ready bool) bool {
	if _, ok := g.ready[player]; !ok {
		return false
	}
	g.ready[player] = ready
	g.checkNextHand()
	return true
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

func (g *Game) checkNextHand() {
	if !g.allReady() || g.players.Len() < 2 {
		return
	}
	if g.round != nil && !g.round.over {
		return
	}
	for player := range g.ready {
		g.ready[player] = false
	}
	g.deck.Build()
	g.deck.Shuffle()
	g.round = newRound(g, g.players.Members())
}

func (g *Game) State(viewer string) map[string]any {
	state := map[string]any{
		"stage":         g.Stage(),
		"players_ready": g.readyList(),
	}
	if g.round == nil {
		return state
	}
	r := g.round

	names := make([]string, 0, len(r.hands))
	for player := range r.hands {
		names = append(names, player)
	}
	sort.Strings(names)

	hands := make([]map[string]any, 0, len(names))
	for _, player := range names {
		hand := r.hands[player]
		entry := map[string]any{
			"player":  player,
			"stake":   hand.stake,
			"folded":  hand.folded,
			"outcome": hand.outcome,
		}
		// Hole cards stay hidden from everyone else until showdown.
		if player == viewer || r.over {
			entry["cards"] = cards.Strings(hand.cards)
		} else {
			entry["cards"] = []string{cards.Back, cards.Back}
		}
		if player == viewer {
			if balance, err := g.ledger.GetBalance(player); err == nil {
				entry["balance"] = balance
			}
		}
		hands = append(hands, entry)
	}

	turn := ""
	if len(r.queue) > 0 {
		turn = r.queue[0]
	}
	state["round"] = map[string]any{
		"board":         cards.Strings(r.board),
		"pot":           r.pot,
		"price_to_call": r.priceToCall,
		"turn":          turn,
		"last_raiser":   r.lastRaiser,
		"winners":       r.winners,
		"hands":         hands,
	}
	return state
}

func (g *Game) readyList() []map[string]any {
	out := make([]map[string]any, 0, g.players.Len())
	for _, player := range g.players.Members() {
		out = append(out, map[string]any{
			"player": player,
			"ready":  g.ready[player],
		})
	}
	return out
}
