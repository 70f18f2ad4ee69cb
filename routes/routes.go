package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casino-backend/controllers"
	"casino-backend/services"
)

// SetupRoutes wires the REST surface and the websocket endpoint.
func SetupRoutes(
	r *gin.Engine,
	users *controllers.UserController,
	funds *controllers.FundsController,
	sessions *controllers.SessionController,
	gameServices map[string]*services.GameService,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/users", users.RegisterUser)
		api.GET("/users/:username", users.GetUser)
		api.POST("/deposit", funds.Deposit)
		api.POST("/withdraw", funds.Withdraw)

		api.POST("/:game/sessions", sessions.CreateSession)
		api.GET("/:game/sessions", sessions.ListSessions)
		api.GET("/:game/sessions/:session_id/join", sessions.JoinSession)
	}

	r.GET("/ws/:game/:session_id", func(c *gin.Context) {
		svc, ok := gameServices[c.Param("game")]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown game"})
			return
		}
		svc.HandleWebSocket(c)
	})
}
