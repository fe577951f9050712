package response

import (
	"github.com/codele-game/codele-go/internal/model"
	"github.com/codele-game/codele-go/internal/services/auth"
	"github.com/codele-game/codele-go/internal/services/stats"
)

// Puzzle represents a daily puzzle in API responses. Solution is only
// populated for past puzzles; the current day's puzzle never exposes it.
type Puzzle struct {
	Date             string  `json:"date"`
	Solution         []int   `json:"solution,omitempty"`
	Duplicates       bool    `json:"duplicates"`
	TotalPlayers     int     `json:"total_players"`
	CompletedPlayers int     `json:"completed_players"`
	AverageGuesses   float64 `json:"average_guesses"`
	FastestTime      int     `json:"fastest_time,omitempty"`
	FastestPlayer    string  `json:"fastest_player,omitempty"`
}

// PuzzleFromModel converts a model.DailyPuzzle, optionally revealing the solution
func PuzzleFromModel(p *model.DailyPuzzle, revealSolution bool) Puzzle {
	resp := Puzzle{
		Date:             string(p.Date),
		Duplicates:       p.Duplicates,
		TotalPlayers:     p.TotalPlayers,
		CompletedPlayers: p.CompletedPlayers,
		AverageGuesses:   p.AverageGuesses,
		FastestTime:      p.FastestTime,
		FastestPlayer:    string(p.FastestPlayer),
	}
	if revealSolution {
		resp.Solution = p.Solution
	}
	return resp
}

// PlayerStats represents derived player statistics
type PlayerStats struct {
	GamesPlayed   int     `json:"games_played"`
	GamesWon      int     `json:"games_won"`
	WinRate       int     `json:"win_rate"`
	CurrentStreak int     `json:"current_streak"`
	MaxStreak     int     `json:"max_streak"`
	AvgGuesses    float64 `json:"avg_guesses"`
	FastestTime   int     `json:"fastest_time,omitempty"`
	LastPlayDate  string  `json:"last_play_date,omitempty"`
}

// PlayerStatsFromSummary converts a stats.PlayerSummary
func PlayerStatsFromSummary(s stats.PlayerSummary) PlayerStats {
	return PlayerStats{
		GamesPlayed:   s.GamesPlayed,
		GamesWon:      s.GamesWon,
		WinRate:       s.WinRate,
		CurrentStreak: s.CurrentStreak,
		MaxStreak:     s.MaxStreak,
		AvgGuesses:    s.AvgGuesses,
		FastestTime:   s.FastestTime,
		LastPlayDate:  string(s.LastPlayDate),
	}
}

// SubmitResponse is the response after submitting a game
type SubmitResponse struct {
	Success    bool        `json:"success"`
	Stats      PlayerStats `json:"stats"`
	TodayStats Puzzle      `json:"today_stats"`
}

// BoardEntry represents a ranked leaderboard entry
type BoardEntry struct {
	Rank     int     `json:"rank"`
	PlayerID string  `json:"player_id"`
	Username string  `json:"username"`
	Score    float64 `json:"score"`
	TimeMs   int     `json:"time_ms"`
	Guesses  int     `json:"guesses"`
}

// Leaderboard represents a leaderboard in API responses
type Leaderboard struct {
	Date    string       `json:"date"`
	Kind    string       `json:"kind"`
	Entries []BoardEntry `json:"entries"`
}

// LeaderboardFromModel converts a model.Leaderboard
func LeaderboardFromModel(b *model.Leaderboard) Leaderboard {
	entries := make([]BoardEntry, len(b.Entries))
	for i, e := range b.Entries {
		entries[i] = BoardEntry{
			Rank:     i + 1,
			PlayerID: string(e.PlayerID),
			Username: e.Username,
			Score:    e.Score,
			TimeMs:   e.TimeMs,
			Guesses:  e.Guesses,
		}
	}
	return Leaderboard{
		Date:    string(b.Date),
		Kind:    string(b.Kind),
		Entries: entries,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	PlayerID string `json:"player_id"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Token:    s.Token,
		Username: s.Username,
		PlayerID: string(s.PlayerID),
	}
}
