package in

import (
	"context"

	"lifeos/internal/modules/report/dto"
	reportin "lifeos/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) GenerateWeekly(ctx context.Context, userID string) (dto.GenerateOutput, error) {
	return h.usecase.GenerateWeekly(ctx, userID)
}

func (h CLIHandler) Archive(ctx context.Context, userID, content string) (dto.ReportOutput, error) {
	return h.usecase.Archive(ctx, dto.ArchiveInput{UserID: userID, Content: content})
}

func (h CLIHandler) ListReports(ctx context.Context, userID string) ([]dto.ReportOutput, error) {
	return h.usecase.ListReports(ctx, userID)
}

func (h CLIHandler) Export(ctx context.Context, userID string, reportID int64) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, userID, reportID)
}
