package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"casino-backend/services"
)

// SessionController exposes the per-game session registries over REST.
// Joining and leaving happen through the websocket lifecycle; the join
// endpoint only parks a user in limbo so a page transition does not tear the
// session down.
type SessionController struct {
	Services map[string]*services.GameService
}

func NewSessionController(svcs map[string]*services.GameService) *SessionController {
	return &SessionController{Services: svcs}
}

func (sc *SessionController) service(c *gin.Context) *services.GameService {
	svc, ok := sc.Services[c.Param("game")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown game"})
		return nil
	}
	return svc
}

// CreateSession handles POST /api/:game/sessions
func (sc *SessionController) CreateSession(c *gin.Context) {
	svc := sc.service(c)
	if svc == nil {
		return
	}
	id := svc.Manager.Create()
	c.JSON(http.StatusCreated, gin.H{"session_id": id.String()})
}

// ListSessions handles GET /api/:game/sessions
func (sc *SessionController) ListSessions(c *gin.Context) {
	svc := sc.service(c)
	if svc == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": svc.Manager.List()})
}

// JoinSession handles GET /api/:game/sessions/:session_id/join
func (sc *SessionController) JoinSession(c *gin.Context) {
	svc := sc.service(c)
	if svc == nil {
		return
	}
	sid, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}
	sess := svc.Manager.Get(sid)
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	user := c.Query("username")
	if user == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username required"})
		return
	}
	sess.Do(func() { sess.AddToLimbo(user) })
	c.JSON(http.StatusOK, gin.H{"session_id": sid.String()})
}
