package storage

import (
	"context"

	"github.com/codele-game/codele-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Puzzle operations
	SavePuzzle(ctx context.Context, puzzle *model.DailyPuzzle) error
	GetPuzzle(ctx context.Context, date model.Date) (*model.DailyPuzzle, error)

	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)

	// Credentials operations
	SaveCredentials(ctx context.Context, creds *model.Credentials) error
	GetCredentials(ctx context.Context, playerID model.PlayerID) (*model.Credentials, error)
	GetCredentialsByUsername(ctx context.Context, username string) (*model.Credentials, error)
	GetCredentialsByEmail(ctx context.Context, email string) (*model.Credentials, error)

	// Leaderboard operations
	SaveLeaderboard(ctx context.Context, board *model.Leaderboard) error
	GetLeaderboard(ctx context.Context, date model.Date, kind model.BoardKind) (*model.Leaderboard, error)
}
