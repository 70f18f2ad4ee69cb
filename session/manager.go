package session

import (
	"sync"

	"github.com/google/uuid"

	"casino-backend/games"
)

// Manager is the registry of live sessions for one game type. It is
// constructed once at startup and injected wherever sessions are needed.
type Manager struct {
	gameType string
	factory  func() games.Game

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewManager(gameType string, factory func() games.Game) *Manager {
	return &Manager{
		gameType: gameType,
		factory:  factory,
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (m *Manager) GameType() string { return m.gameType }

// Create allocates a session with a fresh game instance and returns its id.
func (m *Manager) Create() uuid.UUID {
	id := uuid.New()
	s := newSession(id, m.factory())
	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return id
}

// Get returns the session or nil.
func (m *Manager) Get(id uuid.UUID) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

func (m *Manager) Exists(id uuid.UUID) bool {
	return m.Get(id) != nil
}

// Delete removes and stops the session, returning it, or nil if absent.
// Idempotent.
func (m *Manager) Delete(id uuid.UUID) *Session {
	m.mu.Lock()
	s := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if s != nil {
		s.close()
	}
	return s
}

// List maps each live session id to its player count.
func (m *Manager) List() map[string]int {
	m.mu.RLock()
	snapshot := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		snapshot = append(snapshot, s)
	}
	m.mu.RUnlock()

	out := make(map[string]int, len(snapshot))
	for _, s := range snapshot {
		out[s.ID.String()] = s.playerCount()
	}
	return out
}

// RegisterUser seats the player in the session's game.
func (m *Manager) RegisterUser(id uuid.UUID, player string) bool {
	s := m.Get(id)
	if s == nil {
		return false
	}
	return s.Do(func() { s.Game.AddPlayer(player) })
}

// RemoveUser removes the player from the session's game.
func (m *Manager) RemoveUser(id uuid.UUID, player string) bool {
	s := m.Get(id)
	if s == nil {
		return false
	}
	return s.Do(func() { s.Game.RemovePlayer(player) })
}
