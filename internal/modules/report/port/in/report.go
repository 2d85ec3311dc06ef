package in

import (
	"context"

	"lifeos/internal/modules/report/dto"
)

type Usecase interface {
	// GenerateWeekly builds the prompt from the trailing week and calls the
	// narrator. Safe to call repeatedly; nothing is stored until Archive.
	GenerateWeekly(ctx context.Context, userID string) (dto.GenerateOutput, error)
	Archive(ctx context.Context, input dto.ArchiveInput) (dto.ReportOutput, error)
	ListReports(ctx context.Context, userID string) ([]dto.ReportOutput, error)
	Export(ctx context.Context, userID string, reportID int64) (dto.ExportOutput, error)
}
