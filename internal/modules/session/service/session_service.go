package service

import (
	"context"
	"fmt"

	"lifeos/internal/modules/session/domain"
	sessionout "lifeos/internal/modules/session/port/out"
	"lifeos/internal/platform/clock"
	apperrors "lifeos/internal/platform/errors"
	"lifeos/internal/platform/id"
)

// SessionService builds the transient active session and the completed event.
// Validation of theme and stage keys happens at the ledger on append; the
// service enforces the inputs the state machine itself owns.
type SessionService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewSessionService(clk clock.Clock, idGen id.Generator) *SessionService {
	return &SessionService{clock: clk, idGen: idGen}
}

func (s *SessionService) Start(_ context.Context, userID, theme, taskLabel, stage string) (domain.ActiveSession, error) {
	if userID == "" {
		return domain.ActiveSession{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	if taskLabel == "" {
		return domain.ActiveSession{}, fmt.Errorf("%w: task label is required", apperrors.ErrInvalidInput)
	}
	return domain.ActiveSession{
		SessionID: s.idGen.New(),
		UserID:    userID,
		Theme:     theme,
		TaskLabel: taskLabel,
		Stage:     stage,
		StartedAt: s.clock.Now(),
	}, nil
}

func (s *SessionService) Elapsed(active domain.ActiveSession) domain.Elapsed {
	return domain.ElapsedSince(active.StartedAt, s.clock.Now())
}

// Complete turns the active session into the completed-event payload. Zero
// minutes is legal.
func (s *SessionService) Complete(ctx context.Context, active domain.ActiveSession, scores sessionout.CompletedScores, ledger sessionout.Ledger) (sessionout.CompletedSession, int64, error) {
	endedAt := s.clock.Now()
	completed := sessionout.CompletedSession{
		UserID:      active.UserID,
		StartedAt:   active.StartedAt,
		EndedAt:     endedAt,
		Theme:       active.Theme,
		TaskLabel:   active.TaskLabel,
		Stage:       active.Stage,
		DurationMin: domain.DurationMinutes(active.StartedAt, endedAt),
		Scores:      scores,
	}
	eventID, err := ledger.AppendCompleted(ctx, completed)
	if err != nil {
		return sessionout.CompletedSession{}, 0, err
	}
	return completed, eventID, nil
}
