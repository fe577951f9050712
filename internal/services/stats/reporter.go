package stats

import (
	"context"
	"errors"
	"math"

	"github.com/codele-game/codele-go/internal/model"
	"github.com/codele-game/codele-go/internal/storage"
)

// PlayerSummary is the display-ready view of a player's raw counters
type PlayerSummary struct {
	GamesPlayed   int        `json:"games_played"`
	GamesWon      int        `json:"games_won"`
	WinRate       int        `json:"win_rate"`
	CurrentStreak int        `json:"current_streak"`
	MaxStreak     int        `json:"max_streak"`
	AvgGuesses    float64    `json:"avg_guesses"`
	FastestTime   int        `json:"fastest_time,omitempty"`
	LastPlayDate  model.Date `json:"last_play_date,omitempty"`
}

// Summarize derives display aggregates from raw stats. Pure; never mutates.
func Summarize(s model.PlayerStats) PlayerSummary {
	var winRate int
	if s.GamesPlayed > 0 {
		winRate = int(math.Round(float64(s.GamesWon) / float64(s.GamesPlayed) * 100))
	}

	var avgGuesses float64
	if s.GamesWon > 0 {
		avgGuesses = math.Round(float64(s.TotalGuesses)/float64(s.GamesWon)*10) / 10
	}

	return PlayerSummary{
		GamesPlayed:   s.GamesPlayed,
		GamesWon:      s.GamesWon,
		WinRate:       winRate,
		CurrentStreak: s.CurrentStreak,
		MaxStreak:     s.MaxStreak,
		AvgGuesses:    avgGuesses,
		FastestTime:   s.FastestTime,
		LastPlayDate:  s.LastPlayDate,
	}
}

// Reporter resolves player summaries from storage. Query-only.
type Reporter struct {
	storage storage.Storage
}

// NewReporter creates a new stats reporter
func NewReporter(storage storage.Storage) *Reporter {
	return &Reporter{storage: storage}
}

// PlayerSummary returns the derived stats for a player. Unknown players get
// a zeroed summary rather than an error.
func (r *Reporter) PlayerSummary(ctx context.Context, id model.PlayerID) (PlayerSummary, error) {
	player, err := r.storage.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return PlayerSummary{}, nil
		}
		return PlayerSummary{}, err
	}
	return Summarize(player.Stats), nil
}
