package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/codele-game/codele-go/internal/api/handler"
	"github.com/codele-game/codele-go/internal/api/middleware"
	"github.com/codele-game/codele-go/internal/dependencies/clock"
	"github.com/codele-game/codele-go/internal/services/auth"
	"github.com/codele-game/codele-go/internal/services/leaderboard"
	"github.com/codele-game/codele-go/internal/services/puzzle"
	"github.com/codele-game/codele-go/internal/services/stats"
	"github.com/codele-game/codele-go/internal/services/submission"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger              *slog.Logger
	Clock               clock.Clock
	PuzzleService       *puzzle.Service
	SubmissionProcessor *submission.Processor
	LeaderboardService  *leaderboard.Service
	StatsReporter       *stats.Reporter
	AuthService         *auth.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	puzzleHandler := handler.NewPuzzleHandler(cfg.PuzzleService)
	gameHandler := handler.NewGameHandler(cfg.SubmissionProcessor)
	playerHandler := handler.NewPlayerHandler(cfg.StatsReporter)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService, cfg.Clock)
	authHandler := handler.NewAuthHandler(cfg.AuthService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Puzzle routes
	api.HandleFunc("/puzzle/today", puzzleHandler.GetToday).Methods(http.MethodGet)
	api.HandleFunc("/puzzle/yesterday", puzzleHandler.GetYesterday).Methods(http.MethodGet)

	// Game submission
	api.HandleFunc("/game/submit", gameHandler.Submit).Methods(http.MethodPost)

	// Player stats; /me requires auth, lookup by id does not
	me := api.PathPrefix("/players/me").Subrouter()
	me.Use(authMiddleware)
	me.HandleFunc("/stats", playerHandler.GetMyStats).Methods(http.MethodGet)
	api.HandleFunc("/players/{playerId}/stats", playerHandler.GetStats).Methods(http.MethodGet)

	// Leaderboards
	api.HandleFunc("/leaderboard/{kind}", leaderboardHandler.GetBoard).Methods(http.MethodGet)

	// Auth routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
