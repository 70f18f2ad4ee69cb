package roulette

import (
	"testing"

	"casino-backend/ledger"
)

func TestValidateShapes(t *testing.T) {
	cases := []struct {
		name string
		bet  Bet
		want bool
	}{
		{"single in range", Bet{Type: "single", Nums: []string{"17"}}, true},
		{"single double zero", Bet{Type: "single", Nums: []string{"00"}}, true},
		{"single out of range", Bet{Type: "single", Nums: []string{"37"}}, false},
		{"single too many nums", Bet{Type: "single", Nums: []string{"1", "2"}}, false},
		{"split across row", Bet{Type: "split", Nums: []string{"14", "17"}}, true},
		{"split along row", Bet{Type: "split", Nums: []string{"16", "17"}}, true},
		{"split zero one", Bet{Type: "split", Nums: []string{"0", "1"}}, true},
		{"split double zero three", Bet{Type: "split", Nums: []string{"00", "3"}}, true},
		{"split not adjacent", Bet{Type: "split", Nums: []string{"14", "20"}}, false},
		{"trio with zero", Bet{Type: "trio", Nums: []string{"0", "1", "2"}}, true},
		{"trio with double zero", Bet{Type: "trio", Nums: []string{"00", "2", "3"}}, true},
		{"trio without zero", Bet{Type: "trio", Nums: []string{"1", "2", "3"}}, false},
		{"street from row head", Bet{Type: "street", Nums: []string{"4", "5", "6"}}, true},
		{"street off row", Bet{Type: "street", Nums: []string{"5", "6", "7"}}, false},
		{"corner square", Bet{Type: "corner", Nums: []string{"5", "6", "8", "9"}}, true},
		{"corner not square", Bet{Type: "corner", Nums: []string{"5", "6", "7", "8"}}, false},
		{"double street", Bet{Type: "double", Nums: []string{"4", "5", "6", "7", "8", "9"}}, true},
		{"double off row", Bet{Type: "double", Nums: []string{"5", "6", "7", "8", "9", "10"}}, false},
		{"dozen selector", Bet{Type: "dozen", Nums: []string{"2"}}, true},
		{"dozen out of range", Bet{Type: "dozen", Nums: []string{"4"}}, false},
		{"column selector", Bet{Type: "column", Nums: []string{"3"}}, true},
		{"color red", Bet{Type: "color", Nums: []string{"r"}}, true},
		{"color nonsense", Bet{Type: "color", Nums: []string{"x"}}, false},
		{"odd needs no nums", Bet{Type: "odd"}, true},
		{"unknown type", Bet{Type: "lucky"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Validate(&c.bet); got != c.want {
				t.Errorf("Validate(%+v) = %v, want %v", c.bet, got, c.want)
			}
		})
	}
}

func TestIsWinner(t *testing.T) {
	cases := []struct {
		name   string
		result string
		bet    Bet
		want   bool
	}{
		{"odd seventeen", "17", Bet{Type: "odd"}, true},
		{"odd eighteen", "18", Bet{Type: "odd"}, false},
		{"odd zero never", "0", Bet{Type: "odd"}, false},
		{"even double zero never", "00", Bet{Type: "even"}, false},
		{"single hit", "17", Bet{Type: "single", Nums: []string{"17"}}, true},
		{"single miss", "18", Bet{Type: "single", Nums: []string{"17"}}, false},
		{"low eighteen", "18", Bet{Type: "low"}, true},
		{"high nineteen", "19", Bet{Type: "high"}, true},
		{"red pocket", "32", Bet{Type: "color", Nums: []string{"r"}}, true},
		{"black pocket", "33", Bet{Type: "color", Nums: []string{"b"}}, true},
		{"zero is not red", "0", Bet{Type: "color", Nums: []string{"r"}}, false},
		{"column one", "34", Bet{Type: "column", Nums: []string{"1"}}, true},
		{"column three", "33", Bet{Type: "column", Nums: []string{"3"}}, true},
		{"column miss", "33", Bet{Type: "column", Nums: []string{"1"}}, false},
		{"second dozen low edge", "13", Bet{Type: "dozen", Nums: []string{"2"}}, true},
		{"second dozen high edge", "24", Bet{Type: "dozen", Nums: []string{"2"}}, true},
		{"second dozen miss", "25", Bet{Type: "dozen", Nums: []string{"2"}}, false},
		{"basket double zero", "00", Bet{Type: "basket"}, true},
		{"basket three", "3", Bet{Type: "basket"}, true},
		{"basket four", "4", Bet{Type: "basket"}, false},
		{"snake hit", "23", Bet{Type: "snake"}, true},
		{"snake miss", "22", Bet{Type: "snake"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsWinner(c.result, &c.bet); got != c.want {
				t.Errorf("IsWinner(%q, %+v) = %v, want %v", c.result, c.bet, got, c.want)
			}
		})
	}
}

func TestSinglePayoutIs36x(t *testing.T) {
	bet := &Bet{Type: "single", Nums: []string{"17"}}
	if got := Payout("17", 2.5, bet); got != 90 {
		t.Errorf("Payout = %v, want 90", got)
	}
	if got := Payout("18", 2.5, bet); got != 0 {
		t.Errorf("Payout on miss = %v, want 0", got)
	}
}

func TestBetCycle(t *testing.T) {
	lg := ledger.NewMemory()
	lg.SetBalance("ada", 100)
	lg.SetBalance("bob", 100)
	g := New(lg)
	g.AddPlayer("ada")
	g.AddPlayer("bob")

	if err := g.RecordBet("ada", 10, &Bet{Type: "odd"}); err != nil {
		t.Fatal(err)
	}
	if g.Stage() != StageBetting {
		t.Fatalf("stage = %q with one bet down, want betting", g.Stage())
	}
	if g.StartRound() {
		t.Fatal("wheel spun before all bets were down")
	}
	if err := g.RecordBet("bob", 10, &Bet{Type: "even"}); err != nil {
		t.Fatal(err)
	}
	if g.Stage() != StageReady {
		t.Fatalf("stage = %q with all bets down, want ready", g.Stage())
	}

	if !g.StartRound() {
		t.Fatal("armed wheel did not spin")
	}
	if g.Stage() != StageEnding {
		t.Fatalf("stage = %q after spin, want ending", g.Stage())
	}

	// Exactly one of the two opposite bets can win; on a zero both lose.
	adaBal, _ := lg.GetBalance("ada")
	bobBal, _ := lg.GetBalance("bob")
	total := adaBal + bobBal
	if total != 200 && total != 180 {
		t.Errorf("combined balance = %v, want 200 (one side won) or 180 (zero)", total)
	}

	// A new bet after the spin starts a fresh cycle.
	if err := g.RecordBet("ada", 5, &Bet{Type: "low"}); err != nil {
		t.Fatal(err)
	}
	if g.Stage() != StageBetting {
		t.Fatalf("stage = %q after post-spin bet, want betting", g.Stage())
	}
	if g.amounts["bob"] != 0 {
		t.Error("bob's stale bet survived the reset")
	}
}

func TestRecordBetRejections(t *testing.T) {
	lg := ledger.NewMemory()
	lg.SetBalance("ada", 20)
	g := New(lg)
	g.AddPlayer("ada")

	if err := g.RecordBet("ada", 10, &Bet{Type: "split", Nums: []string{"14", "20"}}); err != ErrInvalidBet {
		t.Errorf("bad shape: err = %v, want ErrInvalidBet", err)
	}
	if err := g.RecordBet("ada", 50, &Bet{Type: "odd"}); err != ErrInsufficientFunds {
		t.Errorf("over balance: err = %v, want ErrInsufficientFunds", err)
	}
	if g.Stage() != StageBetting || g.amounts["ada"] != 0 {
		t.Error("rejected bet mutated table state")
	}
}
