package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/codele-game/codele-go/internal/model"
	"github.com/codele-game/codele-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Every record is stored as a JSON document under its own key; reads and
// writes are single round trips with no cross-record transactions, so
// concurrent read-modify-write cycles on the same record are last-write-wins.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Puzzle operations

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.DailyPuzzle) error {
	data, err := json.Marshal(puzzle)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, puzzleKey(puzzle.Date), data, s.cfg.PuzzleTTL).Err()
}

func (s *Storage) GetPuzzle(ctx context.Context, date model.Date) (*model.DailyPuzzle, error) {
	data, err := s.client.Get(ctx, puzzleKey(date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPuzzleNotFound
		}
		return nil, err
	}

	var puzzle model.DailyPuzzle
	if err := json.Unmarshal(data, &puzzle); err != nil {
		return nil, err
	}
	return &puzzle, nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, playerKey(player.ID), data, 0).Err()
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// Credentials operations

func (s *Storage) SaveCredentials(ctx context.Context, creds *model.Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}

	// Pipeline the document write with its index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, credentialsKey(creds.PlayerID), data, 0)
	pipe.Set(ctx, usernameIndexKey(creds.Username), string(creds.PlayerID), 0)
	if creds.Email != "" {
		pipe.Set(ctx, emailIndexKey(creds.Email), string(creds.PlayerID), 0)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetCredentials(ctx context.Context, playerID model.PlayerID) (*model.Credentials, error) {
	data, err := s.client.Get(ctx, credentialsKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCredentialsNotFound
		}
		return nil, err
	}

	var creds model.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func (s *Storage) GetCredentialsByUsername(ctx context.Context, username string) (*model.Credentials, error) {
	playerID, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCredentialsNotFound
		}
		return nil, err
	}

	return s.GetCredentials(ctx, model.PlayerID(playerID))
}

func (s *Storage) GetCredentialsByEmail(ctx context.Context, email string) (*model.Credentials, error) {
	playerID, err := s.client.Get(ctx, emailIndexKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCredentialsNotFound
		}
		return nil, err
	}

	return s.GetCredentials(ctx, model.PlayerID(playerID))
}

// Leaderboard operations

func (s *Storage) SaveLeaderboard(ctx context.Context, board *model.Leaderboard) error {
	data, err := json.Marshal(board)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, boardKey(board.Date, board.Kind), data, 0).Err()
}

func (s *Storage) GetLeaderboard(ctx context.Context, date model.Date, kind model.BoardKind) (*model.Leaderboard, error) {
	data, err := s.client.Get(ctx, boardKey(date, kind)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrBoardNotFound
		}
		return nil, err
	}

	var board model.Leaderboard
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, err
	}
	return &board, nil
}
