package services

import (
	"encoding/json"

	"github.com/google/uuid"

	"casino-backend/games"
	"casino-backend/session"
	"casino-backend/utils/logger"
)

// Envelope is one inbound client message, augmented with the acting user
// and session before routing.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`

	User      string    `json:"-"`
	SessionID uuid.UUID `json:"-"`
}

// Response describes what to send back after a handler runs. Render is
// called once per recipient so per-viewer redaction (hidden cards) happens
// at serialization time. A nil Response sends nothing.
type Response struct {
	Type      string
	GroupSend bool
	Render    func(viewer string) map[string]any
}

// HandlerFunc runs on the session goroutine with exclusive access to the
// game state.
type HandlerFunc func(s *session.Session, env Envelope) (*Response, error)

// Updater routes one game type's message vocabulary to its handlers.
type Updater struct {
	gameType string
	ledger   games.Ledger
	recorder *RoundRecorder
	handlers map[string]HandlerFunc
}

// endStages are the stages whose entry marks a resolved round worth
// recording.
var endStages = map[string]bool{
	"ending":    true,
	"game-over": true,
}

// Handle dispatches one envelope. Must be called from the session goroutine.
func (u *Updater) Handle(s *session.Session, env Envelope) {
	handler, ok := u.handlers[env.Type]
	if !ok {
		logger.Warnf("%s: unknown message type %q from %s", u.gameType, env.Type, env.User)
		s.Reply(env.User, marshal(map[string]any{
			"type":  "error",
			"error": "unknown message type",
			"user":  env.User,
		}))
		return
	}

	stageBefore := s.Game.Stage()
	resp, err := handler(s, env)
	if err != nil {
		s.Reply(env.User, marshal(map[string]any{
			"type":  "error",
			"error": err.Error(),
			"user":  env.User,
		}))
		return
	}

	stageAfter := s.Game.Stage()
	if u.recorder != nil && stageAfter != stageBefore && endStages[stageAfter] {
		u.recorder.Record(u.gameType, env.SessionID, stageAfter, s.Game.State(""))
	}

	if resp == nil {
		return
	}
	if resp.GroupSend {
		s.Broadcast(func(viewer string) []byte {
			return marshal(map[string]any{
				"type": resp.Type,
				"data": resp.Render(viewer),
				"user": viewer,
			})
		})
		return
	}
	s.Reply(env.User, marshal(map[string]any{
		"type": resp.Type,
		"data": resp.Render(env.User),
		"user": env.User,
	}))
}

// BroadcastState pushes a full game snapshot to everyone in the session.
// Used on connect and disconnect. Must run on the session goroutine.
func (u *Updater) BroadcastState(s *session.Session, msgType string) {
	s.Broadcast(func(viewer string) []byte {
		return marshal(map[string]any{
			"type": msgType,
			"data": s.Game.State(viewer),
			"user": viewer,
		})
	})
}

func marshal(v map[string]any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Errorf("marshal outbound message: %v", err)
		return nil
	}
	return b
}

// update is the standard all-players response carrying the fresh game
// state.
func update(s *session.Session) *Response {
	return &Response{
		Type:      "update",
		GroupSend: true,
		Render:    s.Game.State,
	}
}

// loadGame answers a client's explicit request for the current state.
func (u *Updater) loadGame(s *session.Session, env Envelope) (*Response, error) {
	return &Response{Type: "load_game", Render: s.Game.State}, nil
}

// requestUserBalance replies to the asking connection only.
func (u *Updater) requestUserBalance(s *session.Session, env Envelope) (*Response, error) {
	balance, err := u.ledger.GetBalance(env.User)
	if err != nil {
		return nil, err
	}
	return &Response{
		Type: "user_balance",
		Render: func(string) map[string]any {
			return map[string]any{"balance": balance}
		},
	}, nil
}
