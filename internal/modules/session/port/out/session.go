package out

import (
	"context"
	"time"

	"lifeos/internal/modules/session/domain"
)

// ActiveSessionStore persists the one transient active session per user so a
// running timer survives process restarts of the display layer. Load returns
// apperrors.ErrNoActiveSession when the user is idle.
type ActiveSessionStore interface {
	SaveActive(ctx context.Context, session domain.ActiveSession) error
	LoadActive(ctx context.Context, userID string) (domain.ActiveSession, error)
	ClearActive(ctx context.Context, userID string) error
}

// CompletedScores mirrors the ledger's five-dimension record without
// importing across module boundaries.
type CompletedScores struct {
	Emotion    float64
	Cognition  float64
	Awareness  float64
	Motivation float64
	Social     float64
}

// CompletedSession is the immutable event handed to the ledger on completion.
type CompletedSession struct {
	UserID      string
	StartedAt   time.Time
	EndedAt     time.Time
	Theme       string
	TaskLabel   string
	Stage       string
	DurationMin int
	Scores      CompletedScores
}

// Ledger is the session module's narrow view of the event log: a single
// append when a session completes.
type Ledger interface {
	AppendCompleted(ctx context.Context, session CompletedSession) (int64, error)
}
