package puzzle

import (
	"context"
	"errors"
	"log/slog"

	"github.com/codele-game/codele-go/internal/codegen"
	"github.com/codele-game/codele-go/internal/dependencies/clock"
	"github.com/codele-game/codele-go/internal/model"
	"github.com/codele-game/codele-go/internal/storage"
)

// Service provides access to daily puzzles, creating them lazily on first read
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new puzzle service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Get retrieves the puzzle for a date without creating it
func (s *Service) Get(ctx context.Context, date model.Date) (*model.DailyPuzzle, error) {
	return s.storage.GetPuzzle(ctx, date)
}

// GetOrCreate retrieves the puzzle for a date, generating and persisting it on
// a miss. Generation is deterministic in the date string, so concurrent
// first-reads racing on the create produce identical solutions; the aggregates
// are zeroed either way and the duplicate write is harmless (last-write-wins).
func (s *Service) GetOrCreate(ctx context.Context, date model.Date, allowDuplicates bool) (*model.DailyPuzzle, error) {
	existing, err := s.storage.GetPuzzle(ctx, date)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrPuzzleNotFound) {
		return nil, err
	}

	solution := codegen.Generate(string(date), allowDuplicates)
	puzzle := model.NewDailyPuzzle(date, solution, allowDuplicates, s.clock.Now())

	if err := s.storage.SavePuzzle(ctx, puzzle); err != nil {
		return nil, err
	}

	s.logger.Info("puzzle created",
		slog.String("date", string(date)),
		slog.Bool("duplicates", allowDuplicates),
	)

	return puzzle, nil
}

// Today returns the puzzle for the current UTC date, creating it if needed
func (s *Service) Today(ctx context.Context, allowDuplicates bool) (*model.DailyPuzzle, error) {
	return s.GetOrCreate(ctx, model.DateOf(s.clock.Now()), allowDuplicates)
}

// Yesterday returns the puzzle for the previous UTC date, or
// model.ErrPuzzleNotFound when nobody ever requested it.
func (s *Service) Yesterday(ctx context.Context) (*model.DailyPuzzle, error) {
	return s.Get(ctx, model.DateOf(s.clock.Now()).Prev())
}
