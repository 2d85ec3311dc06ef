package service

import (
	"context"
	"fmt"

	"lifeos/internal/modules/report/domain"
	reportout "lifeos/internal/modules/report/port/out"
	"lifeos/internal/platform/clock"
	apperrors "lifeos/internal/platform/errors"
)

const windowDays = 7

// ReportService assembles prompts, calls the narrator, and owns the archive.
// The narrator call happens with no lock held anywhere: a hung or failed
// generator can only ever cost the caller the narrative text.
type ReportService struct {
	clock    clock.Clock
	store    reportout.ReportStore
	source   reportout.WeeklySource
	narrator reportout.Narrator
	exporter reportout.NoteExporter
}

func NewReportService(clk clock.Clock, store reportout.ReportStore, source reportout.WeeklySource, narrator reportout.Narrator, exporter reportout.NoteExporter) *ReportService {
	return &ReportService{clock: clk, store: store, source: source, narrator: narrator, exporter: exporter}
}

func (s *ReportService) GenerateWeekly(ctx context.Context, userID string) (string, string, domain.WeeklyFigures, error) {
	if userID == "" {
		return "", "", domain.WeeklyFigures{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	figures, err := s.source.Figures(ctx, userID)
	if err != nil {
		return "", "", domain.WeeklyFigures{}, err
	}
	prompt := domain.BuildPrompt(userID, figures)
	narrative, err := s.narrator.Generate(ctx, prompt)
	if err != nil {
		return "", "", domain.WeeklyFigures{}, err
	}
	return prompt, narrative, figures, nil
}

func (s *ReportService) Archive(ctx context.Context, userID, content string) (domain.Report, error) {
	if userID == "" || content == "" {
		return domain.Report{}, fmt.Errorf("%w: user id and content are required", apperrors.ErrInvalidInput)
	}
	now := s.clock.Now()
	report := domain.Report{
		UserID:      userID,
		CreatedAt:   now,
		WindowStart: now.AddDate(0, 0, -windowDays),
		WindowEnd:   now,
		Content:     content,
	}
	id, err := s.store.Append(ctx, report)
	if err != nil {
		return domain.Report{}, err
	}
	report.ID = id
	return report, nil
}

func (s *ReportService) List(ctx context.Context, userID string) ([]domain.Report, error) {
	return s.store.List(ctx, userID)
}

func (s *ReportService) Export(ctx context.Context, userID string, reportID int64) (domain.Report, string, error) {
	report, err := s.store.Get(ctx, userID, reportID)
	if err != nil {
		return domain.Report{}, "", err
	}
	path, err := s.exporter.Export(ctx, report)
	if err != nil {
		return domain.Report{}, "", err
	}
	return report, path, nil
}
