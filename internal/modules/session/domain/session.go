package domain

import "time"

// ActiveSession is the single in-flight focus session a user may hold. It is
// transient: nothing reaches the event log until completion, and an abandoned
// session is simply discarded.
type ActiveSession struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Theme     string    `json:"theme"`
	TaskLabel string    `json:"task_label"`
	Stage     string    `json:"stage"`
	StartedAt time.Time `json:"started_at"`
}

// Elapsed is a display-ready split of time spent in the running session.
type Elapsed struct {
	Total   time.Duration
	Minutes int
	Seconds int
}

// ElapsedSince splits now-start into whole minutes and leftover seconds.
// Negative elapsed (clock skew) clamps to zero.
func ElapsedSince(start, now time.Time) Elapsed {
	total := now.Sub(start)
	if total < 0 {
		total = 0
	}
	secs := int(total.Seconds())
	return Elapsed{Total: total, Minutes: secs / 60, Seconds: secs % 60}
}

// DurationMinutes is the currency-bearing whole-minute duration of a
// completed session: floor(elapsed seconds / 60), never negative.
func DurationMinutes(start, end time.Time) int {
	secs := int(end.Sub(start).Seconds())
	if secs < 0 {
		return 0
	}
	return secs / 60
}
