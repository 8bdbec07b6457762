// Package timewindow provides UTC calendar windows used to filter
// financial records by date. Windows are plain values and are never
// mutated after construction.
package timewindow

import (
	"fmt"
	"time"
)

// Kind selects the calendar granularity of a window.
type Kind string

const (
	KindMonth Kind = "month"
	KindYear  Kind = "year"
	KindDay   Kind = "day"
)

// Window is an inclusive UTC date range. End is the last nanosecond of the
// final calendar day, never midnight of the next period: a record stamped
// at 23:59:59.999999999 on the last day belongs to this window.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window, boundaries included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// For returns the window of the given kind containing ref, computed in UTC
// regardless of ref's location.
func For(kind Kind, ref time.Time) (Window, error) {
	switch kind {
	case KindMonth:
		return MonthOf(ref), nil
	case KindYear:
		return YearOf(ref), nil
	case KindDay:
		return DayOf(ref), nil
	}
	return Window{}, fmt.Errorf("unknown window kind %q", kind)
}

// MonthOf returns the calendar month containing ref.
func MonthOf(ref time.Time) Window {
	ref = ref.UTC()
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: lastInstant(start.AddDate(0, 1, -1))}
}

// YearOf returns the calendar year containing ref.
func YearOf(ref time.Time) Window {
	ref = ref.UTC()
	start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: lastInstant(time.Date(ref.Year(), time.December, 31, 0, 0, 0, 0, time.UTC))}
}

// DayOf returns the calendar day containing ref.
func DayOf(ref time.Time) Window {
	ref = ref.UTC()
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: lastInstant(start)}
}

// StartOfDay returns midnight UTC of the day containing ref.
func StartOfDay(ref time.Time) time.Time {
	ref = ref.UTC()
	return time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseReference parses an optional RFC 3339 reference instant. An empty
// string means "now".
func ParseReference(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference instant %q: %w", s, err)
	}
	return t.UTC(), nil
}

func lastInstant(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999999999, time.UTC)
}
