package games

import "sort"

// Ledger is the engine's view of the external account store. Every debit and
// payout path goes through it. Implementations must apply each update
// atomically per user.
type Ledger interface {
	GetBalance(user string) (float64, error)
	// UpdateBalance applies delta to the user's balance and reports whether
	// the update was applied. It returns false, nil when the delta would
	// drive the balance negative; the balance is unchanged in that case.
	UpdateBalance(user string, delta float64) (bool, error)
}

// Game is the contract every table game exposes to the session layer. All
// methods are called from the owning session's goroutine, so implementations
// need no internal locking.
type Game interface {
	AddPlayer(player string)
	RemovePlayer(player string)
	HasPlayer(player string) bool
	// PlayerCount includes players queued in a waiting room.
	PlayerCount() int
	Stage() string
	// State returns the JSON-ready representation of the game as seen by
	// viewer. Games with hidden information (poker hole cards) redact
	// everything viewer is not allowed to see.
	State(viewer string) map[string]any
}

// Set holds player identifiers.
type Set map[string]struct{}

func NewSet() Set { return make(Set) }

func (s Set) Add(member string)      { s[member] = struct{}{} }
func (s Set) Remove(member string)   { delete(s, member) }
func (s Set) Has(member string) bool { _, ok := s[member]; return ok }
func (s Set) Len() int               { return len(s) }

// Members returns the set sorted, for stable JSON output.
func (s Set) Members() []string {
	members := make([]string, 0, len(s))
	for m := range s {
		members = append(members, m)
	}
	sort.Strings(members)
	return members
}
