package poker

import (
	"testing"

	"casino-backend/cards"
	"casino-backend/ledger"
)

func cs(specs ...string) []cards.Card {
	out := make([]cards.Card, len(specs))
	for i, s := range specs {
		out[i] = cards.Card{Rank: s[:len(s)-1], Suit: cards.Suit(s[len(s)-1:])}
	}
	return out
}

func TestRankingCategories(t *testing.T) {
	cases := []struct {
		name  string
		hand  []string
		wants string
	}{
		{"straight flush", []string{"9S", "8S", "7S", "6S", "5S"}, "Straight Flush"},
		{"four of a kind", []string{"9S", "9H", "9D", "9C", "5S"}, "Four of a Kind"},
		{"full house", []string{"9S", "9H", "9D", "5C", "5S"}, "Full House"},
		{"flush", []string{"AS", "KS", "QS", "JS", "9S"}, "Flush"},
		{"straight", []string{"9S", "8H", "7D", "6C", "5S"}, "Straight"},
		{"wheel straight", []string{"AS", "2H", "3D", "4C", "5S"}, "Straight"},
		{"three of a kind", []string{"9S", "9H", "9D", "6C", "5S"}, "Three of a Kind"},
		{"two pair", []string{"9S", "9H", "5D", "5C", "KS"}, "Two Pair"},
		{"one pair", []string{"9S", "9H", "5D", "6C", "KS"}, "One Pair"},
		{"high card", []string{"9S", "8H", "5D", "3C", "KS"}, "High Card"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			name, _ := Evaluate(cs(c.hand...))
			if name != c.wants {
				t.Errorf("Evaluate(%v) = %q, want %q", c.hand, name, c.wants)
			}
		})
	}
}

func TestRankingOrdering(t *testing.T) {
	_, quads := Evaluate(cs("9S", "9H", "9D", "9C", "5S"))
	_, fullHouse := Evaluate(cs("AS", "AH", "AD", "KC", "KS"))
	if quads <= fullHouse {
		t.Errorf("quads %d does not outrank full house %d", quads, fullHouse)
	}

	_, highFlush := Evaluate(cs("AS", "KS", "QS", "JS", "9S"))
	_, lowFlush := Evaluate(cs("KS", "QS", "JS", "9S", "8S"))
	if highFlush <= lowFlush {
		t.Errorf("ace-high flush %d does not outrank king-high flush %d", highFlush, lowFlush)
	}

	_, wheel := Evaluate(cs("AS", "2H", "3D", "4C", "5S"))
	_, sixHigh := Evaluate(cs("2H", "3D", "4C", "5S", "6D"))
	if wheel >= sixHigh {
		t.Errorf("wheel %d does not rank below six-high straight %d", wheel, sixHigh)
	}
}

func TestBestOfSevenUsesBoard(t *testing.T) {
	// Hole cards add nothing; the board plays as a king-high straight.
	name, _ := Evaluate(cs("2S", "3H", "9H", "10C", "JC", "QD", "KD"))
	if name != "Straight" {
		t.Errorf("Evaluate = %q, want Straight", name)
	}
}

func seatTwo(t *testing.T, stacked []string) (*Game, *ledger.Memory) {
	t.Helper()
	lg := ledger.NewMemory()
	lg.SetBalance("ada", 100)
	lg.SetBalance("bob", 100)
	g := New(lg)
	g.AddPlayer("ada")
	g.AddPlayer("bob")
	if stacked != nil {
		loaded := make([]cards.Card, len(stacked))
		deal := cs(stacked...)
		for i := range deal {
			loaded[len(deal)-1-i] = deal[i]
		}
		g.deck.Load(loaded)
	}
	g.round = newRound(g, []string{"ada", "bob"})
	return g, lg
}

func TestPotSweepsAfterStreet(t *testing.T) {
	lg := ledger.NewMemory()
	for _, p := range []string{"ada", "bob", "cleo"} {
		lg.SetBalance(p, 100)
	}
	g := New(lg)
	g.AddPlayer("ada")
	g.AddPlayer("bob")
	g.AddPlayer("cleo")
	g.round = newRound(g, []string{"ada", "bob", "cleo"})
	r := g.round

	r.Action("ada", ActionCheck, 0)
	r.Action("bob", ActionBet, 20)
	r.Action("cleo", ActionCall, 0)
	r.Action("ada", ActionCall, 0)

	if r.pot != 60 {
		t.Errorf("pot = %v, want 60", r.pot)
	}
	for player, hand := range r.hands {
		if hand.stake != 0 {
			t.Errorf("%s stake = %v after sweep, want 0", player, hand.stake)
		}
	}
	if len(r.board) != 3 {
		t.Errorf("board has %d cards after first street, want 3", len(r.board))
	}
	if r.priceToCall != 0 {
		t.Errorf("price to call = %v after sweep, want 0", r.priceToCall)
	}
}

func TestBetMustExceedPriceToCall(t *testing.T) {
	g, lg := seatTwo(t, nil)
	r := g.round

	r.Action("ada", ActionBet, 20)
	r.Action("bob", ActionBet, 20) // not a raise, ignored
	if r.queue[0] != "bob" {
		t.Fatal("illegal bet advanced the turn")
	}
	if bal, _ := lg.GetBalance("bob"); bal != 100 {
		t.Errorf("bob balance = %v after rejected bet, want 100", bal)
	}
	r.Action("bob", ActionBet, 40)
	if r.priceToCall != 40 || r.lastRaiser != "bob" {
		t.Errorf("price=%v raiser=%q after raise, want 40/bob", r.priceToCall, r.lastRaiser)
	}
}

func TestFoldToOneWinsPotImmediately(t *testing.T) {
	g, lg := seatTwo(t, nil)
	r := g.round

	r.Action("ada", ActionBet, 20)
	r.Action("bob", ActionFold, 0)

	if !r.over {
		t.Fatal("hand not over after fold to one")
	}
	if len(r.winners) != 1 || r.winners[0] != "ada" {
		t.Fatalf("winners = %v, want [ada]", r.winners)
	}
	if bal, _ := lg.GetBalance("ada"); bal != 100 {
		t.Errorf("ada balance = %v, want her bet returned as the pot", bal)
	}
	if bal, _ := lg.GetBalance("bob"); bal != 100 {
		t.Errorf("bob balance = %v, want untouched 100", bal)
	}
}

func TestInsufficientBetIsSilentNoOp(t *testing.T) {
	g, lg := seatTwo(t, nil)
	lg.SetBalance("ada", 5)
	r := g.round

	r.Action("ada", ActionBet, 50)
	if r.queue[0] != "ada" || r.priceToCall != 0 {
		t.Fatal("unfunded bet mutated the hand")
	}
	if bal, _ := lg.GetBalance("ada"); bal != 5 {
		t.Errorf("ada balance = %v, want 5", bal)
	}
}

func TestShowdownSplitsTiedPot(t *testing.T) {
	g, lg := seatTwo(t, []string{
		"2S", "3H", // ada
		"2D", "3C", // bob
		"10C", "JC", "QD", // flop
		"KD", // turn
		"9H", // river
	})
	r := g.round

	r.Action("ada", ActionBet, 10)
	r.Action("bob", ActionCall, 0)
	for i := 0; i < 3; i++ {
		r.Action("ada", ActionCheck, 0)
		r.Action("bob", ActionCheck, 0)
	}

	if !r.over {
		t.Fatal("hand not over after river betting closed")
	}
	if len(r.winners) != 2 {
		t.Fatalf("winners = %v, want a split", r.winners)
	}
	for _, p := range []string{"ada", "bob"} {
		if bal, _ := lg.GetBalance(p); bal != 100 {
			t.Errorf("%s balance = %v, want 100 after even split", p, bal)
		}
	}
	if r.hands["ada"].outcome != "Straight" {
		t.Errorf("ada outcome = %q, want Straight", r.hands["ada"].outcome)
	}
}

func TestLastRaiserRemovalTransfersTracking(t *testing.T) {
	lg := ledger.NewMemory()
	for _, p := range []string{"ada", "bob", "cleo"} {
		lg.SetBalance(p, 100)
	}
	g := New(lg)
	g.AddPlayer("ada")
	g.AddPlayer("bob")
	g.AddPlayer("cleo")
	g.round = newRound(g, []string{"ada", "bob", "cleo"})
	r := g.round

	r.Action("ada", ActionBet, 20)
	r.Action("bob", ActionCall, 0)
	r.removePlayer("ada")

	if r.lastRaiser != "cleo" {
		t.Errorf("last raiser = %q, want cleo", r.lastRaiser)
	}
	// Tracking moved to cleo with a zero stake, so the street closed at once.
	if r.pot != 40 {
		t.Errorf("pot = %v, want 40", r.pot)
	}
	if len(r.board) != 3 {
		t.Errorf("board has %d cards, want 3", len(r.board))
	}
}

func TestHoleCardsHiddenFromOthers(t *testing.T) {
	g, _ := seatTwo(t, nil)

	state := g.State("bob")
	hands := state["round"].(map[string]any)["hands"].([]map[string]any)
	for _, h := range hands {
		shown := h["cards"].([]string)
		if h["player"] == "ada" {
			if shown[0] != cards.Back || shown[1] != cards.Back {
				t.Errorf("ada's hole cards visible to bob: %v", shown)
			}
		} else if shown[0] == cards.Back {
			t.Error("bob cannot see his own cards")
		}
	}
}

func TestNewHandNeedsTwoPlayers(t *testing.T) {
	g := New(ledger.NewMemory())
	g.AddPlayer("ada")
	g.ReadyUp("ada", true)
	if g.round != nil {
		t.Fatal("hand dealt with one player")
	}
	g.AddPlayer("bob")
	g.ReadyUp("bob", true)
	if g.round == nil {
		t.Fatal("hand not dealt with two ready players")
	}
}
