package leaderboard

import (
	"context"
	"errors"
	"log/slog"

	"github.com/codele-game/codele-go/internal/dependencies/clock"
	"github.com/codele-game/codele-go/internal/model"
	"github.com/codele-game/codele-go/internal/storage"
)

// AnonymousName is shown for players who never registered a username
const AnonymousName = "Anonymous"

// Service maintains the bounded, sorted leaderboards
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new leaderboard service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Score converts a win into a leaderboard score. Strictly decreasing in both
// guesses and time; not clamped, so very slow wins can score negative.
func Score(guesses, timeMs int) float64 {
	return 1000 - float64(guesses)*100 - float64(timeMs)/10
}

// RecordWin inserts a winning submission into the daily board for date,
// creating the board on first win of the day.
func (s *Service) RecordWin(ctx context.Context, date model.Date, player *model.Player, guesses, timeMs int) error {
	board, err := s.storage.GetLeaderboard(ctx, date, model.BoardKindDaily)
	if err != nil {
		if !errors.Is(err, model.ErrBoardNotFound) {
			return err
		}
		board = model.NewLeaderboard(date, model.BoardKindDaily)
	}

	username := player.Username
	if username == "" {
		username = AnonymousName
	}

	board.Insert(model.BoardEntry{
		PlayerID: player.ID,
		Username: username,
		Score:    Score(guesses, timeMs),
		TimeMs:   timeMs,
		Guesses:  guesses,
	})
	board.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveLeaderboard(ctx, board); err != nil {
		return err
	}

	s.logger.Info("leaderboard updated",
		slog.String("date", string(date)),
		slog.String("player_id", string(player.ID)),
		slog.Int("entries", len(board.Entries)),
	)

	return nil
}

// GetBoard returns the board for (date, kind). A board that was never
// created reads as empty rather than as an error.
func (s *Service) GetBoard(ctx context.Context, date model.Date, kind model.BoardKind) (*model.Leaderboard, error) {
	board, err := s.storage.GetLeaderboard(ctx, date, kind)
	if err != nil {
		if errors.Is(err, model.ErrBoardNotFound) {
			return model.NewLeaderboard(date, kind), nil
		}
		return nil, err
	}
	return board, nil
}
