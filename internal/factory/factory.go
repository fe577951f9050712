package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/codele-game/codele-go/internal/dependencies/clock"
	"github.com/codele-game/codele-go/internal/services/auth"
	"github.com/codele-game/codele-go/internal/services/leaderboard"
	"github.com/codele-game/codele-go/internal/services/puzzle"
	"github.com/codele-game/codele-go/internal/services/stats"
	"github.com/codele-game/codele-go/internal/services/submission"
	"github.com/codele-game/codele-go/internal/storage"
	"github.com/codele-game/codele-go/internal/storage/memory"
	redisstorage "github.com/codele-game/codele-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	PuzzleService       *puzzle.Service
	SubmissionProcessor *submission.Processor
	LeaderboardService  *leaderboard.Service
	StatsReporter       *stats.Reporter
	AuthService         *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	authCfg := cfg.AuthConfig
	if authCfg.TokenSecret == "" {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, authCfg auth.Config, logger *slog.Logger) *App {
	puzzleService := puzzle.New(store, clk, logger)
	leaderboardService := leaderboard.New(store, clk, logger)
	submissionProcessor := submission.NewProcessor(store, leaderboardService, clk, logger)
	statsReporter := stats.NewReporter(store)
	authService := auth.New(store, clk, authCfg, logger)

	return &App{
		Storage:             store,
		Clock:               clk,
		PuzzleService:       puzzleService,
		SubmissionProcessor: submissionProcessor,
		LeaderboardService:  leaderboardService,
		StatsReporter:       statsReporter,
		AuthService:         authService,
	}
}
