package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"casino-backend/config"
	"casino-backend/controllers"
	"casino-backend/games"
	"casino-backend/games/blackjack"
	"casino-backend/games/craps"
	"casino-backend/games/poker"
	"casino-backend/games/roulette"
	"casino-backend/games/slots"
	"casino-backend/ledger"
	"casino-backend/routes"
	"casino-backend/services"
	"casino-backend/session"
	"casino-backend/utils/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warnf("no .env file found, relying on environment")
	}

	db := config.SetupDatabase()
	store := ledger.NewStore(db)
	recorder := services.NewRoundRecorder(db)

	gameServices := buildGameServices(store, recorder)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	routes.SetupRoutes(
		r,
		controllers.NewUserController(db),
		controllers.NewFundsController(store),
		controllers.NewSessionController(gameServices),
		gameServices,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Infof("casino backend listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		logger.Log.Fatalf("server exited: %v", err)
	}
}

// buildGameServices constructs one registry and message router per game
// type, all sharing the ledger and round recorder.
func buildGameServices(store *ledger.Store, recorder *services.RoundRecorder) map[string]*services.GameService {
	factories := map[string]func() games.Game{
		"blackjack": func() games.Game { return blackjack.New(store) },
		"craps":     func() games.Game { return craps.New(store) },
		"poker":     func() games.Game { return poker.New(store) },
		"roulette":  func() games.Game { return roulette.New(store) },
		"slots":     func() games.Game { return slots.New(store) },
	}
	updaters := map[string]*services.Updater{
		"blackjack": services.NewBlackjackUpdater(store, recorder),
		"craps":     services.NewCrapsUpdater(store, recorder),
		"poker":     services.NewPokerUpdater(store, recorder),
		"roulette":  services.NewRouletteUpdater(store, recorder),
		"slots":     services.NewSlotsUpdater(store, recorder),
	}

	out := make(map[string]*services.GameService, len(factories))
	for gameType, factory := range factories {
		mgr := session.NewManager(gameType, factory)
		out[gameType] = services.NewGameService(gameType, mgr, updaters[gameType], store)
	}
	return out
}
