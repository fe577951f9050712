package model

import "time"

// DateLayout is the calendar date format used as the puzzle key
const DateLayout = "2006-01-02"

// Date is an ISO calendar date (YYYY-MM-DD). Puzzles, game records and daily
// leaderboards are all keyed by Date.
type Date string

// DateOf returns the Date for the given instant in UTC.
func DateOf(t time.Time) Date {
	return Date(t.UTC().Format(DateLayout))
}

// ParseDate validates a date string and returns it as a Date.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", ErrInvalidDate
	}
	return Date(s), nil
}

// Prev returns the calendar day immediately preceding d.
// Returns the empty Date if d is not a valid date.
func (d Date) Prev() Date {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return ""
	}
	return Date(t.AddDate(0, 0, -1).Format(DateLayout))
}

// Valid reports whether d is a well-formed calendar date.
func (d Date) Valid() bool {
	_, err := time.Parse(DateLayout, string(d))
	return err == nil
}
