package usecase

import (
	"context"

	"lifeos/internal/modules/report/domain"
	"lifeos/internal/modules/report/dto"
	reportin "lifeos/internal/modules/report/port/in"
	"lifeos/internal/modules/report/service"
)

type Interactor struct {
	svc *service.ReportService
}

func NewInteractor(svc *service.ReportService) reportin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) GenerateWeekly(ctx context.Context, userID string) (dto.GenerateOutput, error) {
	prompt, narrative, figures, err := i.svc.GenerateWeekly(ctx, userID)
	if err != nil {
		return dto.GenerateOutput{}, err
	}
	return dto.GenerateOutput{
		Prompt:      prompt,
		Narrative:   narrative,
		WindowStart: figures.WindowStart,
		WindowEnd:   figures.WindowEnd,
	}, nil
}

func (i *Interactor) Archive(ctx context.Context, input dto.ArchiveInput) (dto.ReportOutput, error) {
	report, err := i.svc.Archive(ctx, input.UserID, input.Content)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	return toDTO(report), nil
}

func (i *Interactor) ListReports(ctx context.Context, userID string) ([]dto.ReportOutput, error) {
	reports, err := i.svc.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReportOutput, 0, len(reports))
	for _, report := range reports {
		out = append(out, toDTO(report))
	}
	return out, nil
}

func (i *Interactor) Export(ctx context.Context, userID string, reportID int64) (dto.ExportOutput, error) {
	report, path, err := i.svc.Export(ctx, userID, reportID)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{ReportID: report.ID, Path: path}, nil
}

func toDTO(r domain.Report) dto.ReportOutput {
	return dto.ReportOutput{
		ID:          r.ID,
		CreatedAt:   r.CreatedAt,
		WindowStart: r.WindowStart,
		WindowEnd:   r.WindowEnd,
		Content:     r.Content,
	}
}
