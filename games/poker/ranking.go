package poker

import (
	"sort"

	"casino-backend/cards"
)

// Hand categories, strongest first. The category digit leads the score so
// any straight flush outranks any four of a kind, and so on down.
const (
	catStraightFlush = 9
	catFourOfAKind   = 8
	catFullHouse     = 7
	catFlush         = 6
	catStraight      = 5
	catThreeOfAKind  = 4
	catTwoPair       = 3
	catOnePair       = 2
	catHighCard      = 1
)

var categoryNames = map[int]string{
	catStraightFlush: "Straight Flush",
	catFourOfAKind:   "Four of a Kind",
	catFullHouse:     "Full House",
	catFlush:         "Flush",
	catStraight:      "Straight",
	catThreeOfAKind:  "Three of a Kind",
	catTwoPair:       "Two Pair",
	catOnePair:       "One Pair",
	catHighCard:      "High Card",
}

// Evaluate scores the best five-card hand out of the given cards (hole cards
// plus board, up to seven). The score packs the category digit followed by
// five two-digit kicker ranks, so hands compare by plain integer ordering.
func Evaluate(cs []cards.Card) (string, int64) {
	counts := make(map[int]int)
	suits := make(map[cards.Suit][]int)
	for _, c := range cs {
		v := c.PokerValue()
		counts[v]++
		suits[c.Suit] = append(suits[c.Suit], v)
	}

	if high, ok := bestStraightFlush(suits); ok {
		return categoryNames[catStraightFlush], score(catStraightFlush, straightKickers(high))
	}
	if quad, ok := groupOf(counts, 4); ok {
		kickers := append([]int{quad, quad, quad, quad}, topKickers(counts, 1, quad)...)
		return categoryNames[catFourOfAKind], score(catFourOfAKind, kickers)
	}
	if trip, pair, ok := fullHouse(counts); ok {
		return categoryNames[catFullHouse], score(catFullHouse, []int{trip, trip, trip, pair, pair})
	}
	if kickers, ok := bestFlush(suits); ok {
		return categoryNames[catFlush], score(catFlush, kickers)
	}
	if high, ok := bestStraight(values(counts)); ok {
		return categoryNames[catStraight], score(catStraight, straightKickers(high))
	}
	if trip, ok := groupOf(counts, 3); ok {
		kickers := append([]int{trip, trip, trip}, topKickers(counts, 2, trip)...)
		return categoryNames[catThreeOfAKind], score(catThreeOfAKind, kickers)
	}
	if high, low, ok := twoPair(counts); ok {
		kickers := append([]int{high, high, low, low}, topKickers(counts, 1, high, low)...)
		return categoryNames[catTwoPair], score(catTwoPair, kickers)
	}
	if pair, ok := groupOf(counts, 2); ok {
		kickers := append([]int{pair, pair}, topKickers(counts, 3, pair)...)
		return categoryNames[catOnePair], score(catOnePair, kickers)
	}
	return categoryNames[catHighCard], score(catHighCard, topKickers(counts, 5))
}

// score packs category and kickers into one comparable integer:
// category * 10^10 + five zero-padded two-digit ranks.
func score(category int, kickers []int) int64 {
	v := int64(category)
	for i := 0; i < 5; i++ {
		k := 0
		if i < len(kickers) {
			k = kickers[i]
		}
		v = v*100 + int64(k)
	}
	return v
}

// straightKickers lists the five ranks of a straight topped by high. A wheel
// (high 5) bottoms out at the low ace.
func straightKickers(high int) []int {
	ks := make([]int, 5)
	for i := range ks {
		ks[i] = high - i
	}
	if high == 5 {
		ks[4] = 1
	}
	return ks
}

func values(counts map[int]int) []int {
	vs := make([]int, 0, len(counts))
	for v := range counts {
		vs = append(vs, v)
	}
	return vs
}

// bestStraight finds the highest run of five consecutive distinct ranks,
// counting the ace as both 14 and 1.
func bestStraight(vs []int) (int, bool) {
	present := make(map[int]bool, len(vs)+1)
	for _, v := range vs {
		present[v] = true
		if v == 14 {
			present[1] = true
		}
	}
	for high := 14; high >= 5; high-- {
		run := true
		for v := high; v > high-5; v-- {
			if !present[v] {
				run = false
				break
			}
		}
		if run {
			return high, true
		}
	}
	return 0, false
}

func bestStraightFlush(suits map[cards.Suit][]int) (int, bool) {
	best := 0
	for _, vs := range suits {
		if len(vs) < 5 {
			continue
		}
		if high, ok := bestStraight(vs); ok && high > best {
			best = high
		}
	}
	return best, best > 0
}

// bestFlush returns the top five ranks of the longest suited group.
func bestFlush(suits map[cards.Suit][]int) ([]int, bool) {
	for _, vs := range suits {
		if len(vs) < 5 {
			continue
		}
		sorted := append([]int(nil), vs...)
		sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
		return sorted[:5], true
	}
	return nil, false
}

// groupOf returns the highest rank appearing at least n times.
func groupOf(counts map[int]int, n int) (int, bool) {
	best := 0
	for v, c := range counts {
		if c >= n && v > best {
			best = v
		}
	}
	return best, best > 0
}

func fullHouse(counts map[int]int) (int, int, bool) {
	trip, ok := groupOf(counts, 3)
	if !ok {
		return 0, 0, false
	}
	pair := 0
	for v, c := range counts {
		if v != trip && c >= 2 && v > pair {
			pair = v
		}
	}
	if pair == 0 {
		return 0, 0, false
	}
	return trip, pair, true
}

func twoPair(counts map[int]int) (int, int, bool) {
	pairs := []int{}
	for v, c := range counts {
		if c >= 2 {
			pairs = append(pairs, v)
		}
	}
	if len(pairs) < 2 {
		return 0, 0, false
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pairs)))
	return pairs[0], pairs[1], true
}

// topKickers returns the n highest ranks not in the excluded set.
func topKickers(counts map[int]int, n int, exclude ...int) []int {
	skip := make(map[int]bool, len(exclude))
	for _, v := range exclude {
		skip[v] = true
	}
	vs := []int{}
	for v := range counts {
		if !skip[v] {
			vs = append(vs, v)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(vs)))
	if len(vs) > n {
		vs = vs[:n]
	}
	return vs
}
