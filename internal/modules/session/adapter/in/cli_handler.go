package in

import (
	"context"

	"lifeos/internal/modules/session/dto"
	sessionin "lifeos/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, userID, theme, taskLabel, stage string) (dto.StartOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{UserID: userID, Theme: theme, TaskLabel: taskLabel, Stage: stage})
}

func (h CLIHandler) Elapsed(ctx context.Context, userID string) (dto.ElapsedOutput, error) {
	return h.usecase.Elapsed(ctx, userID)
}

func (h CLIHandler) Complete(ctx context.Context, userID string, emotion, cognition, awareness, motivation, social float64) (dto.CompleteOutput, error) {
	return h.usecase.Complete(ctx, dto.CompleteInput{
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

func (h CLIHandler) Abandon(ctx context.Context, userID string) error {
	return h.usecase.Abandon(ctx, userID)
}

func (h CLIHandler) GetActive(ctx context.Context, userID string) (dto.ActiveSessionOutput, error) {
	return h.usecase.GetActive(ctx, userID)
}
