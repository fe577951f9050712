package memory

import (
	"context"
	"sync"

	"github.com/codele-game/codele-go/internal/model"
	"github.com/codele-game/codele-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	puzzles       map[model.Date]*model.DailyPuzzle
	players       map[model.PlayerID]*model.Player
	credentials   map[model.PlayerID]*model.Credentials
	usernameIndex map[string]model.PlayerID
	emailIndex    map[string]model.PlayerID
	boards        map[boardKey]*model.Leaderboard
}

type boardKey struct {
	date model.Date
	kind model.BoardKind
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		puzzles:       make(map[model.Date]*model.DailyPuzzle),
		players:       make(map[model.PlayerID]*model.Player),
		credentials:   make(map[model.PlayerID]*model.Credentials),
		usernameIndex: make(map[string]model.PlayerID),
		emailIndex:    make(map[string]model.PlayerID),
		boards:        make(map[boardKey]*model.Leaderboard),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Puzzle operations

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.DailyPuzzle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles[puzzle.Date] = puzzle
	return nil
}

func (s *Storage) GetPuzzle(ctx context.Context, date model.Date) (*model.DailyPuzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	puzzle, ok := s.puzzles[date]
	if !ok {
		return nil, model.ErrPuzzleNotFound
	}
	return puzzle, nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

// Credentials operations

func (s *Storage) SaveCredentials(ctx context.Context, creds *model.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[creds.PlayerID] = creds
	s.usernameIndex[creds.Username] = creds.PlayerID
	if creds.Email != "" {
		s.emailIndex[creds.Email] = creds.PlayerID
	}
	return nil
}

func (s *Storage) GetCredentials(ctx context.Context, playerID model.PlayerID) (*model.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	creds, ok := s.credentials[playerID]
	if !ok {
		return nil, model.ErrCredentialsNotFound
	}
	return creds, nil
}

func (s *Storage) GetCredentialsByUsername(ctx context.Context, username string) (*model.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	playerID, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrCredentialsNotFound
	}
	creds, ok := s.credentials[playerID]
	if !ok {
		return nil, model.ErrCredentialsNotFound
	}
	return creds, nil
}

func (s *Storage) GetCredentialsByEmail(ctx context.Context, email string) (*model.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	playerID, ok := s.emailIndex[email]
	if !ok {
		return nil, model.ErrCredentialsNotFound
	}
	creds, ok := s.credentials[playerID]
	if !ok {
		return nil, model.ErrCredentialsNotFound
	}
	return creds, nil
}

// Leaderboard operations

func (s *Storage) SaveLeaderboard(ctx context.Context, board *model.Leaderboard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[boardKey{date: board.Date, kind: board.Kind}] = board
	return nil
}

func (s *Storage) GetLeaderboard(ctx context.Context, date model.Date, kind model.BoardKind) (*model.Leaderboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	board, ok := s.boards[boardKey{date: date, kind: kind}]
	if !ok {
		return nil, model.ErrBoardNotFound
	}
	return board, nil
}
