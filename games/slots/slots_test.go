package slots

import (
	"math/rand"
	"testing"

	"casino-backend/ledger"
)

func TestAnyXForfeitsBet(t *testing.T) {
	cases := [][]string{
		{"X", "7", "7"},
		{"$", "X", "$"},
		{"X", "X", "X"},
		{"*", "*", "X"},
	}
	for _, reels := range cases {
		for m := 1; m <= 5; m++ {
			if got := payoutFor(reels, 10, m); got != 0 {
				t.Errorf("payoutFor(%v, 10, %d) = %v, want 0", reels, m, got)
			}
		}
	}
}

func TestPaytable(t *testing.T) {
	cases := []struct {
		reels []string
		mult  int
		want  float64 // for a bet of 10
	}{
		{[]string{"7", "7", "2"}, 1, 50},    // digit pair x5
		{[]string{"7", "7", "7"}, 1, 200},   // digit triple x20
		{[]string{"$", "1", "2"}, 1, 20},    // one dollar x2
		{[]string{"$", "$", "2"}, 1, 100},   // two dollars x10
		{[]string{"$", "$", "$"}, 1, 1000},  // three dollars x100
		{[]string{"*", "*", "2"}, 1, 200},   // two stars x20
		{[]string{"*", "*", "*"}, 1, 500},   // three stars x50
		{[]string{"1", "2", "3"}, 1, 0},     // nothing matches
		{[]string{"7", "7", "2"}, 3, 150},   // round multiplier scales
		{[]string{"$", "7", "7"}, 2, 140},   // dollar and pair stack
	}
	for _, c := range cases {
		if got := payoutFor(c.reels, 10, c.mult); got != c.want {
			t.Errorf("payoutFor(%v, 10, %d) = %v, want %v", c.reels, c.mult, got, c.want)
		}
	}
}

func TestMultiplierRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		m := drawMultiplier(rng)
		if m < 1 || m > 5 {
			t.Fatalf("multiplier %d out of range", m)
		}
	}
}

func TestSingleSeat(t *testing.T) {
	lg := ledger.NewMemory()
	lg.SetBalance("ada", 100)
	lg.SetBalance("bob", 100)
	g := New(lg)

	g.AddPlayer("ada")
	g.AddPlayer("bob")
	if g.HasPlayer("bob") {
		t.Fatal("second player took an occupied seat")
	}
	if g.PlayerCount() != 1 {
		t.Fatalf("PlayerCount = %d, want 1", g.PlayerCount())
	}

	g.RecordBet("ada", 10)
	if g.RecordBet("bob", 25) {
		t.Error("bystander recorded a bet")
	}
	if g.bet != 10 {
		t.Errorf("bet = %v after bystander attempt, want 10", g.bet)
	}

	g.RemovePlayer("ada")
	if g.bet != 0 || g.spun || g.reels != nil {
		t.Error("machine state survived the seat changing hands")
	}
	g.AddPlayer("bob")
	if !g.HasPlayer("bob") {
		t.Error("freed seat refused the next player")
	}
}

func TestPlayRequiresFundedBet(t *testing.T) {
	lg := ledger.NewMemory()
	lg.SetBalance("ada", 5)
	g := New(lg)
	g.AddPlayer("ada")

	if err := g.Play("ada"); err != ErrNoBet {
		t.Errorf("play without bet: err = %v, want ErrNoBet", err)
	}
	g.RecordBet("ada", 10)
	if err := g.Play("ada"); err != ErrInsufficientFunds {
		t.Errorf("play over balance: err = %v, want ErrInsufficientFunds", err)
	}
	if bal, _ := lg.GetBalance("ada"); bal != 5 {
		t.Errorf("balance = %v after rejected spins, want 5", bal)
	}
}

func TestPlaySettlesNet(t *testing.T) {
	lg := ledger.NewMemory()
	lg.SetBalance("ada", 100)
	g := New(lg)
	g.AddPlayer("ada")
	g.RecordBet("ada", 10)

	if err := g.Play("ada"); err != nil {
		t.Fatal(err)
	}
	bal, _ := lg.GetBalance("ada")
	if want := 100 + g.lastPayout - 10; bal != want {
		t.Errorf("balance = %v, want %v", bal, want)
	}
	if g.multiplier < 1 || g.multiplier > 5 {
		t.Errorf("multiplier = %d, want 1..5", g.multiplier)
	}
	if len(g.reels) != 3 {
		t.Errorf("reels = %v, want 3 symbols", g.reels)
	}
}
