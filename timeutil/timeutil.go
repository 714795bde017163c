// Package timeutil provides calendar arithmetic on time.Time values.
// Every function respects the location of its argument.
package timeutil

import (
	"math"
	"time"
)

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// StartOfWeek returns the start of the day of the most recent
// weekStart on or before t.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	diff := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -diff)
}

// SameDay reports whether a and b fall on the same calendar day in
// a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the number of calendar days from a to b,
// negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	start := StartOfDay(a)
	end := StartOfDay(b.In(a.Location()))
	// rounding absorbs DST days that are 23 or 25 hours long
	return int(math.Round(end.Sub(start).Hours() / 24))
}

// Age returns the number of whole years from birth to at.
func Age(birth, at time.Time) int {
	at = at.In(birth.Location())
	years := at.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(at) {
		years--
	}
	return years
}
