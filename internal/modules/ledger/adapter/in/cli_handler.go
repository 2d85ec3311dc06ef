package in

import (
	"context"

	"lifeos/internal/modules/ledger/dto"
	ledgerin "lifeos/internal/modules/ledger/port/in"
)

type CLIHandler struct {
	usecase ledgerin.Usecase
}

func NewCLIHandler(usecase ledgerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) RecordSnapshot(ctx context.Context, userID string, emotion, cognition, awareness, motivation, social float64) (dto.SnapshotOutput, error) {
	return h.usecase.RecordSnapshot(ctx, dto.RecordSnapshotInput{
		UserID: userID,
		Scores: dto.ScoresInput{
			Emotion:    emotion,
			Cognition:  cognition,
			Awareness:  awareness,
			Motivation: motivation,
			Social:     social,
		},
	})
}

func (h CLIHandler) FinanceStatus(ctx context.Context, userID string) (dto.FinanceOutput, error) {
	return h.usecase.FinanceStatus(ctx, userID)
}

func (h CLIHandler) ThemeStats(ctx context.Context, userID string) ([]dto.ThemeStatOutput, error) {
	return h.usecase.ThemeStats(ctx, userID)
}

func (h CLIHandler) TodayFocusedMinutes(ctx context.Context, userID string) (int, error) {
	return h.usecase.TodayFocusedMinutes(ctx, userID)
}

func (h CLIHandler) RecentSessions(ctx context.Context, userID string, limit int) ([]dto.SessionOutput, error) {
	return h.usecase.RecentSessions(ctx, userID, limit)
}

func (h CLIHandler) Achievements(ctx context.Context, userID string) ([]dto.BadgeOutput, error) {
	return h.usecase.Achievements(ctx, userID)
}

func (h CLIHandler) ListSnapshots(ctx context.Context, userID string) ([]dto.SnapshotOutput, error) {
	return h.usecase.ListSnapshots(ctx, userID)
}
