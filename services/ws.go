package services

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"casino-backend/games"
	"casino-backend/session"
	"casino-backend/utils/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// GameService bundles one game type's session registry and message router.
type GameService struct {
	Type    string
	Manager *session.Manager
	Updater *Updater
	Ledger  games.Ledger
}

func NewGameService(gameType string, mgr *session.Manager, updater *Updater, ledger games.Ledger) *GameService {
	return &GameService{Type: gameType, Manager: mgr, Updater: updater, Ledger: ledger}
}

// HandleWebSocket upgrades /ws/:game/:session_id?username=... and joins the
// user to the session. The fresh roster broadcasts to every connection.
func (gs *GameService) HandleWebSocket(c *gin.Context) {
	sid, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}
	sess := gs.Manager.Get(sid)
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	user := c.Query("username")
	if user == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username required"})
		return
	}
	if _, err := gs.Ledger.GetBalance(user); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Errorf("%s: websocket upgrade for %s: %v", gs.Type, user, err)
		return
	}

	client := newClient(user, sess, gs.Manager, gs.Updater, conn)
	joined := sess.Do(func() {
		sess.RemoveFromLimbo(user)
		sess.Subscribe(client)
		sess.Game.AddPlayer(user)
		gs.Updater.BroadcastState(sess, "load_game")
	})
	if !joined {
		conn.Close()
		return
	}
	go client.writePump()
	go client.readPump()
	logger.Infof("%s: %s joined session %s", gs.Type, user, sid)
}
