package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	reportout "lifeos/internal/modules/report/adapter/out"
	"lifeos/internal/modules/report/domain"
	"lifeos/internal/modules/report/dto"
	reportin "lifeos/internal/modules/report/port/in"
	portout "lifeos/internal/modules/report/port/out"
	"lifeos/internal/modules/report/service"
	"lifeos/internal/modules/report/usecase"
	apperrors "lifeos/internal/platform/errors"
	"lifeos/internal/platform/markdown"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fakeSource struct {
	figures domain.WeeklyFigures
}

func (f *fakeSource) Figures(ctx context.Context, userID string) (domain.WeeklyFigures, error) {
	return f.figures, nil
}

type fakeNarrator struct {
	narrative string
	err       error
	prompts   []string
}

func (f *fakeNarrator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.narrative, nil
}

func newEngine(t *testing.T, clk *fakeClock, source portout.WeeklySource, narrator portout.Narrator) (reportin.Usecase, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := reportout.NewSQLiteReportStore(filepath.Join(dir, "lifeos.db"))
	if err != nil {
		t.Fatalf("open report store: %v", err)
	}
	exporter := reportout.NewMarkdownNoteExporter(dir)
	svc := service.NewReportService(clk, store, source, narrator, exporter)
	return usecase.NewInteractor(svc), dir
}

func someFigures() domain.WeeklyFigures {
	return domain.WeeklyFigures{
		TotalMinutes:   480,
		SessionCount:   7,
		DominantTheme:  "core-ability",
		TotalSpent:     120,
		MeanMotivation: 6.5,
		WindowStart:    time.Date(2026, 2, 22, 20, 0, 0, 0, time.UTC),
		WindowEnd:      time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC),
	}
}

func TestGenerateWeeklyFeedsFiguresIntoPrompt(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)}
	narrator := &fakeNarrator{narrative: "A fine week of deep work."}
	uc, _ := newEngine(t, clk, &fakeSource{figures: someFigures()}, narrator)

	out, err := uc.GenerateWeekly(context.Background(), "ada")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out.Narrative != "A fine week of deep work." {
		t.Fatalf("narrative = %q", out.Narrative)
	}
	if len(narrator.prompts) != 1 {
		t.Fatalf("narrator called %d times, want 1", len(narrator.prompts))
	}
	for _, fragment := range []string{"ada", "480 minutes", "7 sessions", "core-ability", "120 focus credits", "6.5/10"} {
		if !strings.Contains(narrator.prompts[0], fragment) {
			t.Errorf("prompt missing %q:\n%s", fragment, narrator.prompts[0])
		}
	}
	if !out.WindowEnd.Equal(someFigures().WindowEnd) {
		t.Errorf("window end = %v", out.WindowEnd)
	}
}

func TestGenerateWeeklyRequiresUser(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Now()}
	uc, _ := newEngine(t, clk, &fakeSource{}, &fakeNarrator{narrative: "x"})

	if _, err := uc.GenerateWeekly(context.Background(), ""); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestNarratorFailureLeavesArchiveUntouched(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)}
	narrator := &fakeNarrator{err: apperrors.ErrNarrator}
	uc, _ := newEngine(t, clk, &fakeSource{figures: someFigures()}, narrator)

	if _, err := uc.GenerateWeekly(context.Background(), "ada"); !errors.Is(err, apperrors.ErrNarrator) {
		t.Fatalf("err = %v, want ErrNarrator", err)
	}
	reports, err := uc.ListReports(context.Background(), "ada")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reports) != 0 {
		t.Fatalf("archive has %d reports after failed generation, want 0", len(reports))
	}
}

func TestArchiveAppendsWithoutDeduplication(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)}
	uc, _ := newEngine(t, clk, &fakeSource{}, &fakeNarrator{narrative: "x"})

	first, err := uc.Archive(context.Background(), dto.ArchiveInput{UserID: "ada", Content: "week one"})
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	second, err := uc.Archive(context.Background(), dto.ArchiveInput{UserID: "ada", Content: "week one"})
	if err != nil {
		t.Fatalf("archive again: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("repeated archive reused id %d", first.ID)
	}

	reports, err := uc.ListReports(context.Background(), "ada")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	// Most recent first.
	if reports[0].ID != second.ID || reports[1].ID != first.ID {
		t.Fatalf("order = [%d, %d], want [%d, %d]", reports[0].ID, reports[1].ID, second.ID, first.ID)
	}
	if got := first.WindowEnd.Sub(first.WindowStart); got != 7*24*time.Hour {
		t.Errorf("window span = %v, want 168h", got)
	}
}

func TestArchiveRejectsEmptyContent(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Now()}
	uc, _ := newEngine(t, clk, &fakeSource{}, &fakeNarrator{narrative: "x"})

	if _, err := uc.Archive(context.Background(), dto.ArchiveInput{UserID: "ada"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestReportsAreScopedPerUser(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)}
	uc, _ := newEngine(t, clk, &fakeSource{}, &fakeNarrator{narrative: "x"})

	if _, err := uc.Archive(context.Background(), dto.ArchiveInput{UserID: "ada", Content: "ada week"}); err != nil {
		t.Fatalf("archive: %v", err)
	}
	reports, err := uc.ListReports(context.Background(), "brin")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reports) != 0 {
		t.Fatalf("brin sees %d of ada's reports", len(reports))
	}
}

func TestExportWritesMarkdownNote(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)}
	uc, dir := newEngine(t, clk, &fakeSource{}, &fakeNarrator{narrative: "x"})

	archived, err := uc.Archive(context.Background(), dto.ArchiveInput{UserID: "ada", Content: "A fine week."})
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	out, err := uc.Export(context.Background(), "ada", archived.ID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(out.Path, filepath.Join(dir, "reports", "ada")) {
		t.Fatalf("path = %q", out.Path)
	}

	raw, err := os.ReadFile(out.Path)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	meta, body, err := markdown.SplitFrontmatter(string(raw))
	if err != nil {
		t.Fatalf("split frontmatter: %v", err)
	}
	if !strings.Contains(body, "A fine week.") {
		t.Errorf("body = %q", body)
	}
	if meta["window_end"] != "2026-03-01" {
		t.Errorf("window_end = %v", meta["window_end"])
	}
}

func TestExportUnknownReport(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Now()}
	uc, _ := newEngine(t, clk, &fakeSource{}, &fakeNarrator{narrative: "x"})

	if _, err := uc.Export(context.Background(), "ada", 99); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
