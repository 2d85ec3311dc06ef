package out

import (
	"context"

	"lifeos/internal/modules/report/domain"
)

// ReportStore is the append-only archive. List returns most recent first.
type ReportStore interface {
	Append(ctx context.Context, report domain.Report) (int64, error)
	List(ctx context.Context, userID string) ([]domain.Report, error)
	Get(ctx context.Context, userID string, reportID int64) (domain.Report, error)
}

// Narrator is the external narrative generator capability. Implementations
// own their credential and timeout handling; failures must map onto
// apperrors.ErrNarrator so callers can treat them as recoverable.
type Narrator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// WeeklySource supplies the aggregate figures for the trailing week.
type WeeklySource interface {
	Figures(ctx context.Context, userID string) (domain.WeeklyFigures, error)
}

// NoteExporter renders an archived report as a durable note and returns its
// path.
type NoteExporter interface {
	Export(ctx context.Context, report domain.Report) (string, error)
}
