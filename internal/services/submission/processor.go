package submission

import (
	"context"
	"errors"
	"log/slog"

	"github.com/codele-game/codele-go/internal/dependencies/clock"
	"github.com/codele-game/codele-go/internal/model"
	"github.com/codele-game/codele-go/internal/services/leaderboard"
	"github.com/codele-game/codele-go/internal/storage"
)

// Submission is one finished game attempt reported by a client
type Submission struct {
	PlayerID model.PlayerID
	Date     model.Date
	Won      bool
	Guesses  int
	TimeMs   int
	Attempts [][]int
}

// Result carries the state updated by a submission
type Result struct {
	Stats  model.PlayerStats
	Puzzle *model.DailyPuzzle
}

// Processor applies finished games to player stats, puzzle aggregates and
// leaderboards. One submission per (player, date); validation happens before
// any write so a rejected submission leaves no partial mutation behind.
type Processor struct {
	storage     storage.Storage
	leaderboard *leaderboard.Service
	clock       clock.Clock
	logger      *slog.Logger
}

// NewProcessor creates a new submission processor
func NewProcessor(storage storage.Storage, leaderboard *leaderboard.Service, clock clock.Clock, logger *slog.Logger) *Processor {
	return &Processor{
		storage:     storage,
		leaderboard: leaderboard,
		clock:       clock,
		logger:      logger,
	}
}

// Submit processes one finished game.
// Fails with model.ErrPuzzleNotFound when no puzzle exists for the date and
// with model.ErrAlreadyPlayed when the player already has a game entry for
// it. On a win the daily leaderboard is updated as the final step.
func (p *Processor) Submit(ctx context.Context, sub Submission) (*Result, error) {
	puzzle, err := p.storage.GetPuzzle(ctx, sub.Date)
	if err != nil {
		return nil, err
	}

	now := p.clock.Now()

	player, err := p.storage.GetPlayer(ctx, sub.PlayerID)
	if err != nil {
		if !errors.Is(err, model.ErrPlayerNotFound) {
			return nil, err
		}
		player = model.NewPlayer(sub.PlayerID, now)
	}

	if player.HasPlayed(sub.Date) {
		return nil, model.ErrAlreadyPlayed
	}

	player.RecordGame(model.GameRecord{
		Date:     sub.Date,
		Won:      sub.Won,
		Guesses:  sub.Guesses,
		TimeMs:   sub.TimeMs,
		Attempts: sub.Attempts,
	}, now)

	if err := p.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	puzzle.RecordPlay(player.ID, sub.Won, sub.Guesses, sub.TimeMs)

	if err := p.storage.SavePuzzle(ctx, puzzle); err != nil {
		return nil, err
	}

	if sub.Won {
		if err := p.leaderboard.RecordWin(ctx, sub.Date, player, sub.Guesses, sub.TimeMs); err != nil {
			return nil, err
		}
	}

	p.logger.Info("submission processed",
		slog.String("player_id", string(sub.PlayerID)),
		slog.String("date", string(sub.Date)),
		slog.Bool("won", sub.Won),
		slog.Int("guesses", sub.Guesses),
		slog.Int("time_ms", sub.TimeMs),
	)

	return &Result{
		Stats:  player.Stats,
		Puzzle: puzzle,
	}, nil
}
