package blackjack

import (
	"sort"

	"casino-backend/cards"
	"casino-backend/utils/logger"
)

const (
	OutcomePlayerBust = "Player Bust"
	OutcomeBlackjack  = "Blackjack"
	OutcomeDealerBust = "Dealer Bust"
	OutcomeWin        = "Win"
	OutcomePush       = "Push"
	OutcomeLoss       = "Loss"
)

const dealerStandsAt = 17

// Hand is a set of dealt cards with a blackjack total.
type Hand struct {
	Cards   []cards.Card
	Outcome string
}

// Value downgrades soft aces from 11 to 1 until the total fits under 21.
func (h *Hand) Value() int {
	total := 0
	aces := 0
	for _, c := range h.Cards {
		total += c.BlackjackValue()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// Hit adds a card and reports whether the hand is finished (21 or bust).
func (h *Hand) Hit(c cards.Card) bool {
	h.Cards = append(h.Cards, c)
	return h.Value() >= 21
}

func (h *Hand) isBlackjack() bool {
	return len(h.Cards) == 2 && h.Value() == 21
}

// Round owns the dealt hands for one deal of the shoe. The player ready map
// doubles as the "done acting" flag: once every seated player is ready the
// dealer plays out and the bets settle.
type Round struct {
	game   *Game
	hands  map[string]*Hand
	dealer *Hand
	over   bool
}

func newRound(g *Game) *Round {
	r := &Round{
		game:   g,
		hands:  make(map[string]*Hand),
		dealer: &Hand{},
	}
	seats := g.players.Members()
	for _, player := range seats {
		r.hands[player] = &Hand{}
	}
	for i := 0; i < 2; i++ {
		for _, player := range seats {
			r.hands[player].Cards = append(r.hands[player].Cards, g.pack.Deal())
		}
		r.dealer.Cards = append(r.dealer.Cards, g.pack.Deal())
	}
	for player, hand := range r.hands {
		if hand.Value() == 21 {
			g.ready[player] = true
		}
	}
	r.checkDealerTurn()
	return r
}

func (r *Round) Stage() string {
	if r.over {
		return StageEnding
	}
	return StageDealing
}

// Action applies a hit or stay for the player at any time during the deal.
// Players already marked ready (21 or bust) are ignored.
func (r *Round) Action(player, move string) bool {
	if r.over {
		return false
	}
	hand, ok := r.hands[player]
	if !ok || r.game.ready[player] {
		return false
	}
	switch move {
	case "hit":
		if hand.Hit(r.game.pack.Deal()) {
			r.makeReady(player)
		}
		return true
	case "stay":
		r.makeReady(player)
		return true
	}
	return false
}

func (r *Round) makeReady(player string) {
	r.game.ready[player] = true
	r.checkDealerTurn()
}

func (r *Round) removePlayer(player string) {
	delete(r.hands, player)
	r.checkDealerTurn()
}

func (r *Round) checkDealerTurn() {
	if r.over || !r.game.allReady() {
		return
	}
	for player := range r.game.ready {
		r.game.ready[player] = false
	}
	r.playDealer()
}

func (r *Round) playDealer() {
	for r.dealer.Value() < dealerStandsAt {
		r.dealer.Cards = append(r.dealer.Cards, r.game.pack.Deal())
	}
	r.settle()
	r.game.pack.CheckReshuffle()
	r.over = true
}

// settle fixes each hand's outcome against the dealer and pays the ledger.
// Bust loses even when the dealer also busts; a two-card 21 beats any dealer
// total.
func (r *Round) settle() {
	dealerValue := r.dealer.Value()
	dealerBust := dealerValue > 21
	for player, hand := range r.hands {
		value := hand.Value()
		switch {
		case value > 21:
			hand.Outcome = OutcomePlayerBust
		case hand.isBlackjack():
			hand.Outcome = OutcomeBlackjack
		case dealerBust:
			hand.Outcome = OutcomeDealerBust
		case value > dealerValue:
			hand.Outcome = OutcomeWin
		case value == dealerValue:
			hand.Outcome = OutcomePush
		default:
			hand.Outcome = OutcomeLoss
		}
		r.payout(player, hand.Outcome)
	}
}

func (r *Round) payout(player, outcome string) {
	bet := r.game.bets[player]
	if bet == 0 {
		return
	}
	amount := bet * payoutMultiplier(outcome)
	if amount == 0 {
		return
	}
	if _, err := r.game.ledger.UpdateBalance(player, amount); err != nil {
		logger.Errorf("blackjack: payout %v to %s: %v", amount, player, err)
	}
}

// payoutMultiplier is against the already-debited bet, so a push returns 1x
// and a plain win returns 2x.
func payoutMultiplier(outcome string) float64 {
	switch outcome {
	case OutcomeBlackjack:
		return 2.5
	case OutcomeWin, OutcomeDealerBust:
		return 2
	case OutcomePush:
		return 1
	default:
		return 0
	}
}

func (r *Round) state() map[string]any {
	names := make([]string, 0, len(r.hands))
	for player := range r.hands {
		names = append(names, player)
	}
	sort.Strings(names)

	hands := make([]map[string]any, 0, len(names))
	for _, player := range names {
		hand := r.hands[player]
		hands = append(hands, map[string]any{
			"player":  player,
			"cards":   cards.Strings(hand.Cards),
			"value":   hand.Value(),
			"outcome": hand.Outcome,
		})
	}

	dealer := map[string]any{}
	if r.over {
		dealer["cards"] = cards.Strings(r.dealer.Cards)
		dealer["value"] = r.dealer.Value()
	} else {
		// Hole card stays hidden until the dealer plays.
		shown := []string{cards.Back}
		for _, c := range r.dealer.Cards[1:] {
			shown = append(shown, c.String())
		}
		dealer["cards"] = shown
		dealer["value"] = 0
	}

	return map[string]any{
		"stage":  r.Stage(),
		"hands":  hands,
		"dealer": dealer,
	}
}
