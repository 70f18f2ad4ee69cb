package cards

import "testing"

func TestCardString(t *testing.T) {
	cases := []struct {
		card Card
		want string
	}{
		{Card{Rank: "A", Suit: Spades}, "AS"},
		{Card{Rank: "10", Suit: Hearts}, "10H"},
		{Card{Rank: "Q", Suit: Clubs}, "QC"},
	}
	for _, c := range cases {
		if got := c.card.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestBlackjackValue(t *testing.T) {
	if v := (Card{Rank: "A", Suit: Spades}).BlackjackValue(); v != 11 {
		t.Errorf("ace = %d, want 11", v)
	}
	if v := (Card{Rank: "K", Suit: Spades}).BlackjackValue(); v != 10 {
		t.Errorf("king = %d, want 10", v)
	}
	if v := (Card{Rank: "7", Suit: Spades}).BlackjackValue(); v != 7 {
		t.Errorf("seven = %d, want 7", v)
	}
}

func TestPokerValue(t *testing.T) {
	if v := (Card{Rank: "A", Suit: Spades}).PokerValue(); v != 14 {
		t.Errorf("ace = %d, want 14", v)
	}
	if v := (Card{Rank: "J", Suit: Spades}).PokerValue(); v != 11 {
		t.Errorf("jack = %d, want 11", v)
	}
	if v := (Card{Rank: "2", Suit: Spades}).PokerValue(); v != 2 {
		t.Errorf("deuce = %d, want 2", v)
	}
}

func TestDeckDealsAllCardsOnce(t *testing.T) {
	d := NewDeck()
	seen := make(map[string]bool)
	for i := 0; i < 52; i++ {
		c := d.Deal()
		if seen[c.String()] {
			t.Fatalf("card %s dealt twice", c)
		}
		seen[c.String()] = true
	}
	if len(seen) != 52 {
		t.Fatalf("dealt %d distinct cards, want 52", len(seen))
	}
}

func TestDeckRebuildsWhenEmpty(t *testing.T) {
	d := NewDeck()
	d.DealN(52)
	if d.Len() != 0 {
		t.Fatalf("deck not empty after dealing 52")
	}
	c := d.Deal()
	if c.Rank == "" {
		t.Fatal("deal from exhausted deck returned zero card")
	}
	if d.Len() != 51 {
		t.Fatalf("deck has %d cards after rebuild deal, want 51", d.Len())
	}
}

func TestPackReshuffleThreshold(t *testing.T) {
	p := NewPack(2, 0.25)
	if p.Remaining() != 104 {
		t.Fatalf("pack has %d cards, want 104", p.Remaining())
	}
	for i := 0; i < 70; i++ {
		p.Deal()
	}
	if p.CheckReshuffle() {
		t.Fatal("reshuffled with 34 of 104 cards remaining")
	}
	for i := 0; i < 10; i++ {
		p.Deal()
	}
	if !p.CheckReshuffle() {
		t.Fatal("no reshuffle with 24 of 104 cards remaining")
	}
	if p.Remaining() != 104 {
		t.Fatalf("pack has %d cards after reshuffle, want 104", p.Remaining())
	}
}
