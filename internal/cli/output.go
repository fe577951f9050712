package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Puzzle:
		o.printPuzzle(v)
	case PlayerStats:
		o.printPlayerStats(v)
	case SubmitResult:
		o.printSubmitResult(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case AuthResult:
		o.printAuthResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Puzzle response type (matches API)
type Puzzle struct {
	Date             string  `json:"date"`
	Solution         []int   `json:"solution,omitempty"`
	Duplicates       bool    `json:"duplicates"`
	TotalPlayers     int     `json:"total_players"`
	CompletedPlayers int     `json:"completed_players"`
	AverageGuesses   float64 `json:"average_guesses"`
	FastestTime      int     `json:"fastest_time"`
}

// PlayerStats response type
type PlayerStats struct {
	GamesPlayed   int     `json:"games_played"`
	GamesWon      int     `json:"games_won"`
	WinRate       int     `json:"win_rate"`
	CurrentStreak int     `json:"current_streak"`
	MaxStreak     int     `json:"max_streak"`
	AvgGuesses    float64 `json:"avg_guesses"`
	FastestTime   int     `json:"fastest_time"`
	LastPlayDate  string  `json:"last_play_date"`
}

// SubmitResult response type
type SubmitResult struct {
	Success    bool        `json:"success"`
	Stats      PlayerStats `json:"stats"`
	TodayStats Puzzle      `json:"today_stats"`
}

// BoardEntry response type
type BoardEntry struct {
	Rank     int     `json:"rank"`
	PlayerID string  `json:"player_id"`
	Username string  `json:"username"`
	Score    float64 `json:"score"`
	TimeMs   int     `json:"time_ms"`
	Guesses  int     `json:"guesses"`
}

// Leaderboard response type
type Leaderboard struct {
	Date    string       `json:"date"`
	Kind    string       `json:"kind"`
	Entries []BoardEntry `json:"entries"`
}

// AuthResult response type
type AuthResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	PlayerID string `json:"player_id"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPuzzle(p Puzzle) {
	fmt.Printf("Puzzle for %s\n", p.Date)
	if len(p.Solution) > 0 {
		fmt.Printf("  Solution:   %s\n", joinInts(p.Solution))
	}
	fmt.Printf("  Duplicates: %t\n", p.Duplicates)
	fmt.Printf("  Players:    %d played, %d solved\n", p.TotalPlayers, p.CompletedPlayers)
	if p.CompletedPlayers > 0 {
		fmt.Printf("  Avg guesses: %.2f\n", p.AverageGuesses)
		fmt.Printf("  Fastest:     %dms\n", p.FastestTime)
	}
}

func (o *Output) printPlayerStats(s PlayerStats) {
	fmt.Println("Player stats")
	fmt.Printf("  Played:         %d\n", s.GamesPlayed)
	fmt.Printf("  Won:            %d (%d%%)\n", s.GamesWon, s.WinRate)
	fmt.Printf("  Current streak: %d\n", s.CurrentStreak)
	fmt.Printf("  Max streak:     %d\n", s.MaxStreak)
	fmt.Printf("  Avg guesses:    %.1f\n", s.AvgGuesses)
	if s.FastestTime > 0 {
		fmt.Printf("  Fastest win:    %dms\n", s.FastestTime)
	}
	if s.LastPlayDate != "" {
		fmt.Printf("  Last played:    %s\n", s.LastPlayDate)
	}
}

func (o *Output) printSubmitResult(r SubmitResult) {
	fmt.Println("Game recorded")
	o.printPlayerStats(r.Stats)
	o.printPuzzle(r.TodayStats)
}

func (o *Output) printLeaderboard(l Leaderboard) {
	fmt.Printf("%s leaderboard for %s\n", l.Kind, l.Date)
	if len(l.Entries) == 0 {
		fmt.Println("  (no entries)")
		return
	}
	for _, e := range l.Entries {
		fmt.Printf("  %3d. %-20s %8.1f  %d guesses  %dms\n",
			e.Rank, e.Username, e.Score, e.Guesses, e.TimeMs)
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("Logged in as %s (%s)\n", a.Username, a.PlayerID)
	fmt.Println("Token saved")
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Server status: %s\n", h.Status)
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, " ")
}
