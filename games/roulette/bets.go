package roulette

import "strconv"

// Bet is one wager specification. Inside bets carry the covered numbers;
// column, dozen, and color carry a single selector value.
type Bet struct {
	Type string   `json:"type"`
	Nums []string `json:"nums,omitempty"`
}

// Payout multipliers to 1. A winning bet returns (multiplier + 1) times the
// stake.
var multipliers = map[string]float64{
	"single": 35,
	"split":  17,
	"trio":   11,
	"street": 11,
	"corner": 8,
	"double": 5,
	"basket": 6,
	"snake":  2,
	"column": 2,
	"dozen":  2,
	"color":  1,
	"even":   1,
	"odd":    1,
	"low":    1,
	"high":   1,
}

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

var snakeNumbers = map[string]bool{
	"1": true, "5": true, "9": true, "12": true, "14": true, "16": true,
	"19": true, "23": true, "27": true, "30": true, "32": true, "34": true,
}

// ColorOf maps a pocket to r, b, or g for the zeroes.
func ColorOf(pocket string) string {
	n, ok := pocketValue(pocket)
	if !ok || n == 0 {
		return "g"
	}
	if redNumbers[n] {
		return "r"
	}
	return "b"
}

// pocketValue parses a pocket label. "00" maps to -1 so it never collides
// with "0".
func pocketValue(pocket string) (int, bool) {
	if pocket == "00" {
		return -1, true
	}
	n, err := strconv.Atoi(pocket)
	if err != nil || n < 0 || n > 36 {
		return 0, false
	}
	return n, true
}

func isRowHead(n int) bool {
	return n >= 1 && n <= 34 && (n-1)%3 == 0
}

// Validate checks a bet's shape against the per-type rules. Bets with a bad
// shape are rejected before any state or balance changes.
func Validate(b *Bet) bool {
	checker, ok := checkers[b.Type]
	if !ok {
		return false
	}
	return checker(b.Nums)
}

var checkers = map[string]func([]string) bool{
	"single": checkSingle,
	"split":  checkSplit,
	"trio":   checkTrio,
	"street": checkStreet,
	"corner": checkCorner,
	"double": checkDouble,
	"dozen":  checkGroupSelector,
	"column": checkGroupSelector,
	"color":  checkColor,
	"even":   checkNone,
	"odd":    checkNone,
	"low":    checkNone,
	"high":   checkNone,
	"basket": checkNone,
	"snake":  checkNone,
}

func checkNone([]string) bool { return true }

func checkSingle(nums []string) bool {
	if len(nums) != 1 {
		return false
	}
	_, ok := pocketValue(nums[0])
	return ok
}

func checkSplit(nums []string) bool {
	vals, ok := pocketValues(nums, 2)
	if !ok {
		return false
	}
	a, b := vals[0], vals[1]
	if a > b {
		a, b = b, a
	}
	switch a {
	case -1: // 00 sits over 2 and 3
		return b == 2 || b == 3
	case 0:
		return b == 1 || b == 2
	}
	diff := b - a
	return diff == 1 || diff == 3
}

func checkTrio(nums []string) bool {
	vals, ok := pocketValues(nums, 3)
	if !ok {
		return false
	}
	has := func(v int) bool {
		return vals[0] == v || vals[1] == v || vals[2] == v
	}
	if has(-1) {
		return has(2) && has(3)
	}
	if has(0) {
		return has(1) && has(2)
	}
	return false
}

func checkStreet(nums []string) bool {
	vals, ok := sortedPockets(nums, 3)
	if !ok {
		return false
	}
	return isRowHead(vals[0]) && vals[1] == vals[0]+1 && vals[2] == vals[0]+2
}

func checkCorner(nums []string) bool {
	vals, ok := sortedPockets(nums, 4)
	if !ok {
		return false
	}
	low := vals[0]
	if low < 1 || low%3 == 0 || low+4 > 36 {
		return false
	}
	return vals[1] == low+1 && vals[2] == low+3 && vals[3] == low+4
}

func checkDouble(nums []string) bool {
	vals, ok := sortedPockets(nums, 6)
	if !ok {
		return false
	}
	if !isRowHead(vals[0]) || vals[0]+5 > 36 {
		return false
	}
	for i := 1; i < 6; i++ {
		if vals[i] != vals[0]+i {
			return false
		}
	}
	return true
}

func checkGroupSelector(nums []string) bool {
	if len(nums) != 1 {
		return false
	}
	n, err := strconv.Atoi(nums[0])
	return err == nil && n >= 1 && n <= 3
}

func checkColor(nums []string) bool {
	return len(nums) == 1 && (nums[0] == "r" || nums[0] == "b")
}

func pocketValues(nums []string, want int) ([]int, bool) {
	if len(nums) != want {
		return nil, false
	}
	vals := make([]int, want)
	for i, s := range nums {
		v, ok := pocketValue(s)
		if !ok {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}

// sortedPockets parses and sorts, rejecting the zeroes (inside row bets
// never include them).
func sortedPockets(nums []string, want int) ([]int, bool) {
	vals, ok := pocketValues(nums, want)
	if !ok {
		return nil, false
	}
	for _, v := range vals {
		if v < 1 {
			return nil, false
		}
	}
	for i := 1; i < len(vals); i++ {
		for j := i; j > 0 && vals[j] < vals[j-1]; j-- {
			vals[j], vals[j-1] = vals[j-1], vals[j]
		}
	}
	return vals, true
}

// IsWinner reports whether the spun pocket pays the bet.
func IsWinner(result string, b *Bet) bool {
	n, ok := pocketValue(result)
	if !ok {
		return false
	}
	switch b.Type {
	case "single", "split", "trio", "street", "corner", "double":
		for _, s := range b.Nums {
			if s == result {
				return true
			}
		}
		return false
	case "basket":
		return result == "00" || n >= 0 && n <= 3
	case "snake":
		return snakeNumbers[result]
	case "column":
		if n < 1 || len(b.Nums) != 1 {
			return false
		}
		col, err := strconv.Atoi(b.Nums[0])
		if err != nil {
			return false
		}
		return n%3 == col%3
	case "dozen":
		if n < 1 || len(b.Nums) != 1 {
			return false
		}
		d, err := strconv.Atoi(b.Nums[0])
		if err != nil {
			return false
		}
		return n > (d-1)*12 && n <= d*12
	case "color":
		return n >= 1 && len(b.Nums) == 1 && ColorOf(result) == b.Nums[0]
	case "even":
		return n >= 1 && n%2 == 0
	case "odd":
		return n >= 1 && n%2 == 1
	case "low":
		return n >= 1 && n <= 18
	case "high":
		return n >= 19 && n <= 36
	}
	return false
}

// Payout returns the gross return for a stake on bet b given the spun
// result: stake times multiplier plus the stake back on a win, zero on a
// loss.
func Payout(result string, amount float64, b *Bet) float64 {
	if !IsWinner(result, b) {
		return 0
	}
	return (multipliers[b.Type] + 1) * amount
}
