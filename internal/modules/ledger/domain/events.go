package domain

import "time"

// FocusSession is a completed, immutable focus session event. DurationMin is
// whole minutes elapsed and is the sole source of currency accrual; zero is
// legal.
type FocusSession struct {
	ID          int64
	UserID      string
	StartedAt   time.Time
	EndedAt     time.Time
	Theme       Theme
	TaskLabel   string
	DurationMin int
	Stage       Stage
	Scores      Scores
}

// Purchase is an immutable spend event against the focus balance.
type Purchase struct {
	ID       int64
	UserID   string
	At       time.Time
	ItemName string
	Cost     int
}

// Snapshot is the daily status record. At most one exists per (user, day);
// recording again the same day replaces the earlier one.
type Snapshot struct {
	UserID string
	Day    time.Time
	Scores Scores
}

// DayOf truncates t to its calendar day in t's location.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
