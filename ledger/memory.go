package ledger

import "sync"

// Memory is an in-process ledger used by tests and local development. Unknown
// users start at a zero balance.
type Memory struct {
	mu       sync.Mutex
	balances map[string]float64
}

func NewMemory() *Memory {
	return &Memory{balances: make(map[string]float64)}
}

// SetBalance seeds a user's balance.
func (m *Memory) SetBalance(user string, balance float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[user] = balance
}

func (m *Memory) GetBalance(user string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[user], nil
}

func (m *Memory) UpdateBalance(user string, delta float64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.balances[user]+delta < 0 {
		return false, nil
	}
	m.balances[user] += delta
	return true, nil
}
