package poker

import (
	"sort"

	"casino-backend/cards"
	"casino-backend/utils/logger"
)

const (
	ActionBet   = "bet"
	ActionCall  = "call"
	ActionCheck = "check"
	ActionFold  = "fold"
)

// playerHand is one seat's state for the current hand. The stake is the
// amount committed this street; stakes sweep into the pot when betting
// closes.
type playerHand struct {
	cards   []cards.Card
	stake   float64
	folded  bool
	outcome string
}

// Round is one hand of hold'em. The queue is the rotating turn order with
// the acting player at the head; betting closes when action returns to the
// last raiser.
type Round struct {
	game        *Game
	hands       map[string]*playerHand
	queue       []string
	lastRaiser  string
	board       []cards.Card
	pot         float64
	priceToCall float64
	winners     []string
	over        bool
}

func newRound(g *Game, seats []string) *Round {
	r := &Round{
		game:  g,
		hands: make(map[string]*playerHand),
		queue: append([]string(nil), seats...),
	}
	for _, player := range seats {
		r.hands[player] = &playerHand{cards: g.deck.DealN(2)}
	}
	if len(r.queue) > 0 {
		r.lastRaiser = r.queue[0]
	}
	return r
}

// Action applies a bet, call, check, or fold for the player at the head of
// the queue. Out-of-turn and illegal actions are no-ops.
func (r *Round) Action(player, action string, amount float64) bool {
	if r.over || len(r.queue) == 0 || r.queue[0] != player {
		return false
	}
	hand := r.hands[player]
	switch action {
	case ActionBet:
		if amount <= r.priceToCall {
			return false
		}
		increment := amount - hand.stake
		if !r.debit(player, increment) {
			return false
		}
		hand.stake = amount
		r.priceToCall = amount
		r.lastRaiser = player
		r.rotate()
	case ActionCall, ActionCheck:
		gap := r.priceToCall - hand.stake
		if gap > 0 && !r.debit(player, gap) {
			return false
		}
		hand.stake = r.priceToCall
		r.rotate()
	case ActionFold:
		hand.folded = true
		hand.outcome = "Folded"
		r.queue = r.queue[1:]
	default:
		return false
	}
	r.checkStreet()
	return true
}

func (r *Round) debit(player string, amount float64) bool {
	ok, err := r.game.ledger.UpdateBalance(player, -amount)
	if err != nil {
		logger.Errorf("poker: debit %v from %s: %v", amount, player, err)
		return false
	}
	return ok
}

func (r *Round) rotate() {
	r.queue = append(r.queue[1:], r.queue[0])
}

func (r *Round) checkStreet() {
	if r.over {
		return
	}
	if len(r.queue) == 1 {
		r.sweepStakes()
		r.payWinners(r.queue[:1])
		return
	}
	if len(r.queue) > 0 && r.queue[0] == r.lastRaiser {
		r.sweepStakes()
		r.advanceBoard()
	}
}

func (r *Round) sweepStakes() {
	for _, hand := range r.hands {
		r.pot += hand.stake
		hand.stake = 0
	}
	r.priceToCall = 0
}

// advanceBoard deals the next street, or runs the showdown once the river
// betting has closed.
func (r *Round) advanceBoard() {
	switch len(r.board) {
	case 0:
		r.board = append(r.board, r.game.deck.DealN(3)...)
	case 3, 4:
		r.board = append(r.board, r.game.deck.Deal())
	case 5:
		r.showdown()
	}
}

func (r *Round) showdown() {
	var best int64 = -1
	winners := []string{}
	for _, player := range r.queue {
		hand := r.hands[player]
		name, score := Evaluate(append(append([]cards.Card(nil), hand.cards...), r.board...))
		hand.outcome = name
		switch {
		case score > best:
			best = score
			winners = []string{player}
		case score == best:
			winners = append(winners, player)
		}
	}
	r.payWinners(winners)
}

// payWinners splits the pot evenly and ends the hand.
func (r *Round) payWinners(winners []string) {
	r.winners = append([]string(nil), winners...)
	sort.Strings(r.winners)
	share := r.pot / float64(len(winners))
	for _, player := range winners {
		if _, err := r.game.ledger.UpdateBalance(player, share); err != nil {
			logger.Errorf("poker: payout %v to %s: %v", share, player, err)
		}
	}
	r.over = true
}

// removePlayer folds the departing seat. When the departing player was the
// last raiser, closure tracking moves to the previous seat in turn order and
// the call price snaps to that seat's stake.
func (r *Round) removePlayer(player string) {
	hand, ok := r.hands[player]
	if !ok || r.over {
		return
	}
	idx := -1
	for i, p := range r.queue {
		if p == player {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	if r.lastRaiser == player && len(r.queue) > 1 {
		prev := r.queue[(idx-1+len(r.queue))%len(r.queue)]
		r.lastRaiser = prev
		r.priceToCall = r.hands[prev].stake
	}
	r.queue = append(r.queue[:idx], r.queue[idx+1:]...)
	hand.folded = true
	hand.outcome = "Left"
	r.checkStreet()
}
