package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"casino-backend/session"
	"casino-backend/utils/logger"
)

// Client is one websocket connection bound to a user in a session. Inbound
// messages are parsed on the read pump and handed to the session goroutine;
// outbound messages queue on the send channel and flush on the write pump.
type Client struct {
	user    string
	sess    *session.Session
	mgr     *session.Manager
	updater *Updater
	conn    *websocket.Conn
	send    chan []byte

	mu     sync.Mutex
	closed bool
}

func newClient(user string, sess *session.Session, mgr *session.Manager, updater *Updater, conn *websocket.Conn) *Client {
	return &Client{
		user:    user,
		sess:    sess,
		mgr:     mgr,
		updater: updater,
		conn:    conn,
		send:    make(chan []byte, 32),
	}
}

func (c *Client) User() string { return c.user }

// Send queues a message without blocking the session goroutine. A full
// buffer drops the message; the client can always request a fresh state.
func (c *Client) Send(message []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- message:
	default:
		logger.Warnf("[client %s] send buffer full, dropping message", c.user)
	}
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
	if c.conn != nil {
		c.conn.Close()
	}
}

func (c *Client) readPump() {
	defer func() {
		c.disconnect()
		c.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Infof("[client %s] disconnected", c.user)
			} else {
				logger.Warnf("[client %s] read error: %v", c.user, err)
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(message, &env); err != nil {
			// A corrupt payload closes this connection only.
			logger.Warnf("[client %s] corrupt payload: %v", c.user, err)
			return
		}
		env.User = c.user
		env.SessionID = c.sess.ID
		c.sess.Do(func() { c.updater.Handle(c.sess, env) })
	}
}

// disconnect runs the leave protocol: a user parked in limbo is mid
// reconnect and leaves no trace; otherwise the player is removed and either
// the session dies with its last player or everyone else sees the new
// roster. A connection that was already replaced by a reconnect owns
// nothing and must leave the seat alone.
func (c *Client) disconnect() {
	c.sess.Do(func() {
		if !c.sess.Unsubscribe(c) {
			return
		}
		if c.sess.InLimbo(c.user) {
			return
		}
		c.sess.Game.RemovePlayer(c.user)
		if c.sess.Empty() {
			c.mgr.Delete(c.sess.ID)
			return
		}
		c.updater.BroadcastState(c.sess, "load_game")
	})
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warnf("[client %s] write error: %v", c.user, err)
			return
		}
	}
}
