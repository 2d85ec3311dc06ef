package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"lifeos/internal/modules/report/domain"
	reportout "lifeos/internal/modules/report/port/out"
	"lifeos/internal/platform/markdown"
	"lifeos/internal/platform/slug"
)

// MarkdownNoteExporter writes an archived report to
// <dataDir>/reports/<user>/<created>-weekly-review.md with YAML frontmatter
// carrying the window bounds.
type MarkdownNoteExporter struct {
	dataDir string
}

func NewMarkdownNoteExporter(dataDir string) reportout.NoteExporter {
	return &MarkdownNoteExporter{dataDir: dataDir}
}

func (e *MarkdownNoteExporter) Export(ctx context.Context, report domain.Report) (string, error) {
	dir := filepath.Join(e.dataDir, "reports", slug.Make(report.UserID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	meta := map[string]any{
		"report_id":    report.ID,
		"created_at":   report.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		"window_start": report.WindowStart.Format("2006-01-02"),
		"window_end":   report.WindowEnd.Format("2006-01-02"),
	}
	content, err := markdown.RenderFrontmatter(meta, report.Content+"\n")
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-weekly-review.md", report.CreatedAt.Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write report note: %w", err)
	}
	return path, nil
}
