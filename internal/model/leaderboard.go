package model

import (
	"sort"
	"time"
)

// BoardKind selects which leaderboard a date maps to
type BoardKind string

const (
	BoardKindDaily   BoardKind = "daily"
	BoardKindWeekly  BoardKind = "weekly"
	BoardKindAllTime BoardKind = "all-time"
)

// MaxBoardEntries caps every leaderboard; the lowest score is evicted first
const MaxBoardEntries = 100

// ParseBoardKind validates a leaderboard kind string
func ParseBoardKind(s string) (BoardKind, error) {
	switch BoardKind(s) {
	case BoardKindDaily, BoardKindWeekly, BoardKindAllTime:
		return BoardKind(s), nil
	}
	return "", ErrInvalidBoardKind
}

// BoardEntry is a single ranked entry on a leaderboard
type BoardEntry struct {
	PlayerID PlayerID `json:"player_id"`
	Username string   `json:"username"`
	Score    float64  `json:"score"`
	TimeMs   int      `json:"time_ms"`
	Guesses  int      `json:"guesses"`
}

// Leaderboard holds the ranked entries for one (date, kind) pair.
// Entries are sorted by score descending at all times; ties keep insertion
// order.
type Leaderboard struct {
	Date    Date         `json:"date"`
	Kind    BoardKind    `json:"kind"`
	Entries []BoardEntry `json:"entries"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewLeaderboard creates an empty board for the given date and kind
func NewLeaderboard(date Date, kind BoardKind) *Leaderboard {
	return &Leaderboard{
		Date:    date,
		Kind:    kind,
		Entries: []BoardEntry{},
	}
}

// Insert adds an entry, re-sorts descending by score and truncates to the
// entry cap. The sort is stable so equal scores rank in insertion order.
func (b *Leaderboard) Insert(e BoardEntry) {
	b.Entries = append(b.Entries, e)
	sort.SliceStable(b.Entries, func(i, j int) bool {
		return b.Entries[i].Score > b.Entries[j].Score
	})
	if len(b.Entries) > MaxBoardEntries {
		b.Entries = b.Entries[:MaxBoardEntries]
	}
}
