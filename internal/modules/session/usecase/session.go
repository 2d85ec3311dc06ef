package usecase

import (
	"context"
	"errors"
	"fmt"

	ledgerdomain "lifeos/internal/modules/ledger/domain"
	"lifeos/internal/modules/session/dto"
	sessionin "lifeos/internal/modules/session/port/in"
	sessionout "lifeos/internal/modules/session/port/out"
	"lifeos/internal/modules/session/service"
	apperrors "lifeos/internal/platform/errors"
)

type Interactor struct {
	svc         *service.SessionService
	ledger      sessionout.Ledger
	activeStore sessionout.ActiveSessionStore
}

func NewInteractor(svc *service.SessionService, ledger sessionout.Ledger, activeStore sessionout.ActiveSessionStore) sessionin.Usecase {
	return &Interactor{svc: svc, ledger: ledger, activeStore: activeStore}
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error) {
	_, err := i.activeStore.LoadActive(ctx, input.UserID)
	if err == nil {
		return dto.StartOutput{}, apperrors.ErrSessionRunning
	}
	if !errors.Is(err, apperrors.ErrNoActiveSession) {
		return dto.StartOutput{}, err
	}

	// the ledger re-validates on append; reject bad keys before the timer
	// starts rather than at completion
	if err := validateKeys(input.Theme, input.Stage); err != nil {
		return dto.StartOutput{}, err
	}
	active, err := i.svc.Start(ctx, input.UserID, input.Theme, input.TaskLabel, input.Stage)
	if err != nil {
		return dto.StartOutput{}, err
	}
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return dto.StartOutput{}, err
	}
	return dto.StartOutput{
		SessionID: active.SessionID,
		Theme:     active.Theme,
		TaskLabel: active.TaskLabel,
		Stage:     active.Stage,
		StartedAt: active.StartedAt,
	}, nil
}

func (i *Interactor) Elapsed(ctx context.Context, userID string) (dto.ElapsedOutput, error) {
	active, err := i.activeStore.LoadActive(ctx, userID)
	if err != nil {
		return dto.ElapsedOutput{}, err
	}
	elapsed := i.svc.Elapsed(active)
	return dto.ElapsedOutput{
		SessionID: active.SessionID,
		TaskLabel: active.TaskLabel,
		Theme:     active.Theme,
		Minutes:   elapsed.Minutes,
		Seconds:   elapsed.Seconds,
	}, nil
}

func (i *Interactor) Complete(ctx context.Context, input dto.CompleteInput) (dto.CompleteOutput, error) {
	active, err := i.activeStore.LoadActive(ctx, input.UserID)
	if err != nil {
		return dto.CompleteOutput{}, err
	}

	scores := sessionout.CompletedScores{
		Emotion:    input.Scores.Emotion,
		Cognition:  input.Scores.Cognition,
		Awareness:  input.Scores.Awareness,
		Motivation: input.Scores.Motivation,
		Social:     input.Scores.Social,
	}
	completed, eventID, err := i.svc.Complete(ctx, active, scores, i.ledger)
	if err != nil {
		return dto.CompleteOutput{}, err
	}
	if err := i.activeStore.ClearActive(ctx, input.UserID); err != nil {
		return dto.CompleteOutput{}, err
	}
	return dto.CompleteOutput{
		EventID:     eventID,
		Theme:       completed.Theme,
		TaskLabel:   completed.TaskLabel,
		Stage:       completed.Stage,
		StartedAt:   completed.StartedAt,
		EndedAt:     completed.EndedAt,
		DurationMin: completed.DurationMin,
	}, nil
}

// Abandon discards the running session without recording anything; the
// elapsed time is deliberately lost.
func (i *Interactor) Abandon(ctx context.Context, userID string) error {
	if _, err := i.activeStore.LoadActive(ctx, userID); err != nil {
		return err
	}
	return i.activeStore.ClearActive(ctx, userID)
}

func (i *Interactor) GetActive(ctx context.Context, userID string) (dto.ActiveSessionOutput, error) {
	active, err := i.activeStore.LoadActive(ctx, userID)
	if err != nil {
		return dto.ActiveSessionOutput{}, err
	}
	return dto.ActiveSessionOutput{
		SessionID: active.SessionID,
		Theme:     active.Theme,
		TaskLabel: active.TaskLabel,
		Stage:     active.Stage,
		StartedAt: active.StartedAt,
	}, nil
}

func validateKeys(theme, stage string) error {
	if !ledgerdomain.ValidTheme(ledgerdomain.Theme(theme)) {
		return fmt.Errorf("%w: unknown theme %q", apperrors.ErrInvalidInput, theme)
	}
	if !ledgerdomain.ValidStage(ledgerdomain.Stage(stage)) {
		return fmt.Errorf("%w: unknown stage %q", apperrors.ErrInvalidInput, stage)
	}
	return nil
}
