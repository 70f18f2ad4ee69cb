package cards

import (
	"math/rand"
	"time"
)

type Suit string

const (
	Spades   Suit = "S"
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
)

var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

var Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Back is the wire representation of a face-down card.
const Back = "2B"

type Card struct {
	Rank string
	Suit Suit
}

func (c Card) String() string {
	return c.Rank + string(c.Suit)
}

func (c Card) IsAce() bool { return c.Rank == "A" }

// BlackjackValue counts aces as 11. Hands downgrade soft aces themselves.
func (c Card) BlackjackValue() int {
	switch c.Rank {
	case "A":
		return 11
	case "J", "Q", "K":
		return 10
	default:
		return rankIndex(c.Rank) + 1
	}
}

// PokerValue ranks aces high (14).
func (c Card) PokerValue() int {
	switch c.Rank {
	case "A":
		return 14
	case "J":
		return 11
	case "Q":
		return 12
	case "K":
		return 13
	default:
		return rankIndex(c.Rank) + 1
	}
}

func rankIndex(rank string) int {
	for i, r := range Ranks {
		if r == rank {
			return i
		}
	}
	return 0
}

// Strings renders a hand in wire form, e.g. ["AS", "10H"].
func Strings(cs []Card) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

// Deck is a single 52-card deck. Poker rebuilds it between hands.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

func NewDeck() *Deck {
	d := &Deck{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	d.Build()
	d.Shuffle()
	return d
}

// Build replaces the contents with a full ordered deck.
func (d *Deck) Build() {
	d.cards = d.cards[:0]
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Len() int { return len(d.cards) }

// Load replaces the deck contents. The last card is dealt first.
func (d *Deck) Load(cs []Card) {
	d.cards = append(d.cards[:0], cs...)
}

// Deal removes and returns the top card, rebuilding the deck if it ran out.
func (d *Deck) Deal() Card {
	if len(d.cards) == 0 {
		d.Build()
		d.Shuffle()
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c
}

func (d *Deck) DealN(n int) []Card {
	out := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, d.Deal())
	}
	return out
}

// Pack is a multi-deck blackjack shoe. It deals until a reshuffle check finds
// fewer than reshuffleAt of the total cards remaining.
type Pack struct {
	decks       int
	reshuffleAt float64
	cards       []Card
	rng         *rand.Rand
}

func NewPack(decks int, reshuffleAt float64) *Pack {
	if decks < 1 {
		decks = 1
	}
	p := &Pack{
		decks:       decks,
		reshuffleAt: reshuffleAt,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	p.fill()
	return p
}

func (p *Pack) fill() {
	p.cards = p.cards[:0]
	for i := 0; i < p.decks; i++ {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				p.cards = append(p.cards, Card{Rank: rank, Suit: suit})
			}
		}
	}
	p.rng.Shuffle(len(p.cards), func(i, j int) {
		p.cards[i], p.cards[j] = p.cards[j], p.cards[i]
	})
}

func (p *Pack) Remaining() int { return len(p.cards) }

// Load replaces the shoe contents. The last card is dealt first.
func (p *Pack) Load(cs []Card) {
	p.cards = append(p.cards[:0], cs...)
}

func (p *Pack) Deal() Card {
	if len(p.cards) == 0 {
		p.fill()
	}
	c := p.cards[len(p.cards)-1]
	p.cards = p.cards[:len(p.cards)-1]
	return c
}

// CheckReshuffle refills the shoe when it has run low. Called between rounds
// so a reshuffle never lands mid-hand.
func (p *Pack) CheckReshuffle() bool {
	total := p.decks * len(Suits) * len(Ranks)
	if float64(len(p.cards)) < float64(total)*p.reshuffleAt {
		p.fill()
		return true
	}
	return false
}
