package session

import (
	"github.com/google/uuid"

	"casino-backend/games"
)

// Subscriber is one live connection delivering messages to a user.
type Subscriber interface {
	User() string
	Send(message []byte)
	Close()
}

// Session owns one game instance and its connected players. All game
// mutations run on the session's own goroutine: callers enqueue closures via
// Do, so two players acting in the same instant can never interleave inside
// the state machine.
type Session struct {
	ID   uuid.UUID
	Game games.Game

	subs   map[string]Subscriber
	limbo  games.Set
	ops    chan func()
	closed chan struct{}
}

func newSession(id uuid.UUID, game games.Game) *Session {
	s := &Session{
		ID:     id,
		Game:   game,
		subs:   make(map[string]Subscriber),
		limbo:  games.NewSet(),
		ops:    make(chan func(), 64),
		closed: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Session) run() {
	for {
		select {
		case op := <-s.ops:
			op()
		case <-s.closed:
			return
		}
	}
}

// Do enqueues op to run on the session goroutine. Reports false if the
// session has been closed. The closed channel is checked first so a closed
// session never wins the race against the buffered op channel.
func (s *Session) Do(op func()) bool {
	select {
	case <-s.closed:
		return false
	default:
	}
	select {
	case s.ops <- op:
		return true
	case <-s.closed:
		return false
	}
}

func (s *Session) close() {
	select {
	case <-s.closed:
	default:
		close(s.closed)
	}
}

// Subscribe registers the connection for its user. A reconnect replaces and
// closes the stale connection. Call from the session goroutine.
func (s *Session) Subscribe(sub Subscriber) {
	if old, ok := s.subs[sub.User()]; ok && old != sub {
		old.Close()
	}
	s.subs[sub.User()] = sub
}

// Unsubscribe removes the connection if it is still the user's current one.
// Reports whether it was; a replaced connection gets false and must not
// touch the user's seat.
func (s *Session) Unsubscribe(sub Subscriber) bool {
	if current, ok := s.subs[sub.User()]; ok && current == sub {
		delete(s.subs, sub.User())
		return true
	}
	return false
}

func (s *Session) SubscriberCount() int { return len(s.subs) }

// Empty reports whether nobody is connected or mid-reconnect.
func (s *Session) Empty() bool {
	return len(s.subs) == 0 && s.limbo.Len() == 0
}

// AddToLimbo parks a user so their next disconnect does not tear the
// session down. Used around page-transition reconnects.
func (s *Session) AddToLimbo(user string) { s.limbo.Add(user) }

func (s *Session) RemoveFromLimbo(user string) { s.limbo.Remove(user) }

func (s *Session) InLimbo(user string) bool { return s.limbo.Has(user) }

// Broadcast sends a per-viewer rendering to every subscriber. Render runs
// once per recipient so hidden information stays hidden.
func (s *Session) Broadcast(render func(viewer string) []byte) {
	for user, sub := range s.subs {
		if msg := render(user); msg != nil {
			sub.Send(msg)
		}
	}
}

// Reply sends to a single user's connection only.
func (s *Session) Reply(user string, message []byte) {
	if sub, ok := s.subs[user]; ok {
		sub.Send(message)
	}
}

// playerCount asks the session goroutine for the live player count.
func (s *Session) playerCount() int {
	ch := make(chan int, 1)
	if !s.Do(func() { ch <- s.Game.PlayerCount() }) {
		return 0
	}
	select {
	case n := <-ch:
		return n
	case <-s.closed:
		return 0
	}
}
