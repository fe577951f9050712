package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// PlayerStats holds the raw per-player counters. Display values (win rate,
// average guesses) are derived by the stats reporter, never stored.
type PlayerStats struct {
	GamesPlayed   int `json:"games_played"`
	GamesWon      int `json:"games_won"`
	CurrentStreak int `json:"current_streak"`
	MaxStreak     int `json:"max_streak"`

	// TotalGuesses accumulates guesses of won games only
	TotalGuesses int  `json:"total_guesses"`
	LastPlayDate Date `json:"last_play_date,omitempty"`

	// FastestTime is the fastest winning time in milliseconds, 0 when unset
	FastestTime int `json:"fastest_time,omitempty"`
}

// GameRecord is one entry in a player's game history, at most one per date
type GameRecord struct {
	Date     Date    `json:"date"`
	Won      bool    `json:"won"`
	Guesses  int     `json:"guesses"`
	TimeMs   int     `json:"time_ms"`
	Attempts [][]int `json:"attempts,omitempty"`
}

// Player represents a game participant. Created lazily on first submission or
// registration; Username is set once the player registers.
type Player struct {
	ID       PlayerID     `json:"id"`
	Username string       `json:"username,omitempty"`
	Stats    PlayerStats  `json:"stats"`
	Games    []GameRecord `json:"games"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPlayer creates a player with zeroed stats and empty history
func NewPlayer(id PlayerID, now time.Time) *Player {
	return &Player{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasPlayed reports whether the player already has a game entry for date
func (p *Player) HasPlayed(date Date) bool {
	for _, g := range p.Games {
		if g.Date == date {
			return true
		}
	}
	return false
}

// RecordGame applies one finished game to the player's stats and history.
// The caller must have checked HasPlayed first; the streak rules are:
// a win extends the streak only when the previous play was the calendar day
// immediately before date, otherwise it starts a new streak of 1; a loss
// resets the current streak to 0 and leaves MaxStreak untouched.
func (p *Player) RecordGame(rec GameRecord, now time.Time) {
	p.Stats.GamesPlayed++

	if rec.Won {
		p.Stats.GamesWon++
		p.Stats.TotalGuesses += rec.Guesses

		if p.Stats.LastPlayDate == rec.Date.Prev() {
			p.Stats.CurrentStreak++
		} else {
			p.Stats.CurrentStreak = 1
		}
		if p.Stats.CurrentStreak > p.Stats.MaxStreak {
			p.Stats.MaxStreak = p.Stats.CurrentStreak
		}

		if p.Stats.FastestTime == 0 || rec.TimeMs < p.Stats.FastestTime {
			p.Stats.FastestTime = rec.TimeMs
		}
	} else {
		p.Stats.CurrentStreak = 0
	}

	p.Stats.LastPlayDate = rec.Date
	p.Games = append(p.Games, rec)
	p.UpdatedAt = now
}

// Credentials holds a registered player's login data.
// Stored separately from Player so the password hash never travels with
// game state.
type Credentials struct {
	PlayerID     PlayerID  `json:"player_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
