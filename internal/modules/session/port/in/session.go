package in

import (
	"context"

	"lifeos/internal/modules/session/dto"
)

// Usecase is the session state machine: Idle -> Running -> Idle, at most one
// running session per user.
type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Elapsed(ctx context.Context, userID string) (dto.ElapsedOutput, error)
	Complete(ctx context.Context, input dto.CompleteInput) (dto.CompleteOutput, error)
	Abandon(ctx context.Context, userID string) error
	GetActive(ctx context.Context, userID string) (dto.ActiveSessionOutput, error)
}
