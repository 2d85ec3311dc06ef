package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	ledgerout "lifeos/internal/modules/ledger/adapter/out"
	"lifeos/internal/modules/ledger/dto"
	ledgerin "lifeos/internal/modules/ledger/port/in"
	"lifeos/internal/modules/ledger/service"
	"lifeos/internal/modules/ledger/usecase"
	apperrors "lifeos/internal/platform/errors"
	"lifeos/internal/platform/userlock"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func newLedger(t *testing.T, clk *fakeClock) ledgerin.Usecase {
	t.Helper()
	store, err := ledgerout.NewSQLiteEventStore(filepath.Join(t.TempDir(), "lifeos.db"))
	if err != nil {
		t.Fatalf("open event store: %v", err)
	}
	return usecase.NewInteractor(service.NewLedgerService(clk, store, userlock.NewKeyed()))
}

func neutral() dto.ScoresInput {
	return dto.ScoresInput{Emotion: 5, Cognition: 5, Awareness: 5, Motivation: 5, Social: 5}
}

func appendSession(t *testing.T, uc ledgerin.Usecase, user, theme string, minutes int, end time.Time) dto.SessionOutput {
	t.Helper()
	out, err := uc.AppendSession(context.Background(), dto.AppendSessionInput{
		UserID:      user,
		StartedAt:   end.Add(-time.Duration(minutes) * time.Minute),
		EndedAt:     end,
		Theme:       theme,
		TaskLabel:   "task",
		DurationMin: minutes,
		Stage:       "Process",
		Scores:      neutral(),
	})
	if err != nil {
		t.Fatalf("append session: %v", err)
	}
	return out
}

func TestSnapshotReplacedWithinSameDay(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	uc := newLedger(t, clk)

	first := dto.RecordSnapshotInput{UserID: "u1", Scores: dto.ScoresInput{Emotion: 3, Cognition: 3, Awareness: 3, Motivation: 3, Social: 3}}
	if _, err := uc.RecordSnapshot(context.Background(), first); err != nil {
		t.Fatalf("first snapshot: %v", err)
	}
	clk.now = clk.now.Add(8 * time.Hour)
	second := dto.RecordSnapshotInput{UserID: "u1", Scores: dto.ScoresInput{Emotion: 9, Cognition: 8, Awareness: 7, Motivation: 6, Social: 5}}
	if _, err := uc.RecordSnapshot(context.Background(), second); err != nil {
		t.Fatalf("second snapshot: %v", err)
	}

	snapshots, err := uc.ListSnapshots(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list snapshots: %v", err)
	}
	if len(snapshots) != 1 {
		t.Fatalf("expected exactly one snapshot for the day, got %d", len(snapshots))
	}
	if snapshots[0].Scores.Emotion != 9 {
		t.Fatalf("latest snapshot must win: %+v", snapshots[0])
	}

	// next day gets its own row
	clk.now = clk.now.AddDate(0, 0, 1)
	if _, err := uc.RecordSnapshot(context.Background(), first); err != nil {
		t.Fatalf("next day snapshot: %v", err)
	}
	snapshots, err = uc.ListSnapshots(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list snapshots: %v", err)
	}
	if len(snapshots) != 2 {
		t.Fatalf("expected two day rows, got %d", len(snapshots))
	}
}

func TestSnapshotRejectsOutOfRangeScores(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	uc := newLedger(t, clk)
	_, err := uc.RecordSnapshot(context.Background(), dto.RecordSnapshotInput{
		UserID: "u1",
		Scores: dto.ScoresInput{Emotion: 12, Cognition: 5, Awareness: 5, Motivation: 5, Social: 5},
	})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestFinanceRecomputedFromLogAndIdempotent(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}
	uc := newLedger(t, clk)

	appendSession(t, uc, "u1", "core-ability", 90, clk.now)
	appendSession(t, uc, "u1", "wellbeing", 30, clk.now)
	if _, err := uc.AppendPurchase(context.Background(), "u1", "Soda", 60); err != nil {
		t.Fatalf("append purchase: %v", err)
	}

	finance, err := uc.FinanceStatus(context.Background(), "u1")
	if err != nil {
		t.Fatalf("finance: %v", err)
	}
	if finance.TotalMinutes != 120 || finance.TotalSpent != 60 || finance.Balance != 60 {
		t.Fatalf("unexpected finance: %+v", finance)
	}

	again, err := uc.FinanceStatus(context.Background(), "u1")
	if err != nil {
		t.Fatalf("finance again: %v", err)
	}
	if !reflect.DeepEqual(finance, again) {
		t.Fatalf("reads must be idempotent: %+v vs %+v", finance, again)
	}

	// other users are untouched
	other, err := uc.FinanceStatus(context.Background(), "u2")
	if err != nil {
		t.Fatalf("finance other: %v", err)
	}
	if other.Balance != 0 || other.TotalMinutes != 0 {
		t.Fatalf("u2 must be empty: %+v", other)
	}
}

func TestAppendSessionValidation(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}
	uc := newLedger(t, clk)

	base := dto.AppendSessionInput{
		UserID: "u1", StartedAt: clk.now, EndedAt: clk.now,
		Theme: "core-ability", TaskLabel: "task", Stage: "Input", Scores: neutral(),
	}

	bad := base
	bad.Theme = "gaming"
	if _, err := uc.AppendSession(context.Background(), bad); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown theme: got %v", err)
	}
	bad = base
	bad.TaskLabel = ""
	if _, err := uc.AppendSession(context.Background(), bad); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("empty task label: got %v", err)
	}
	bad = base
	bad.Stage = "Review"
	if _, err := uc.AppendSession(context.Background(), bad); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown stage: got %v", err)
	}

	// zero-duration sessions are legal zero-currency events
	out, err := uc.AppendSession(context.Background(), base)
	if err != nil {
		t.Fatalf("zero duration session: %v", err)
	}
	if out.ID == 0 || out.DurationMin != 0 {
		t.Fatalf("unexpected session: %+v", out)
	}
}

func TestTodayFocusedMinutesUsesEndDay(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC)}
	uc := newLedger(t, clk)

	appendSession(t, uc, "u1", "core-ability", 45, clk.now)                  // today
	appendSession(t, uc, "u1", "core-ability", 30, clk.now.AddDate(0, 0, -1)) // yesterday

	minutes, err := uc.TodayFocusedMinutes(context.Background(), "u1")
	if err != nil {
		t.Fatalf("today minutes: %v", err)
	}
	if minutes != 45 {
		t.Fatalf("expected 45 minutes today, got %d", minutes)
	}
}

func TestWeeklyWindowSevenSessions(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)}
	uc := newLedger(t, clk)

	// seven 60-minute sessions over the trailing week, one older straggler
	for day := 0; day < 7; day++ {
		appendSession(t, uc, "u1", "core-ability", 60, clk.now.AddDate(0, 0, -day))
	}
	appendSession(t, uc, "u1", "core-ability", 60, clk.now.AddDate(0, 0, -10))

	window, err := uc.WeeklyWindow(context.Background(), "u1")
	if err != nil {
		t.Fatalf("weekly window: %v", err)
	}
	if len(window.Sessions) != 7 {
		t.Fatalf("expected 7 sessions in window, got %d", len(window.Sessions))
	}
	if !window.WindowEnd.Equal(clk.now) || !window.WindowStart.Equal(clk.now.AddDate(0, 0, -7)) {
		t.Fatalf("unexpected window bounds: %v .. %v", window.WindowStart, window.WindowEnd)
	}

	finance, err := uc.FinanceStatus(context.Background(), "u1")
	if err != nil {
		t.Fatalf("finance: %v", err)
	}
	if finance.TotalMinutes != 480 {
		t.Fatalf("expected 480 total minutes, got %d", finance.TotalMinutes)
	}
	stats, err := uc.ThemeStats(context.Background(), "u1")
	if err != nil {
		t.Fatalf("theme stats: %v", err)
	}
	for _, stat := range stats {
		if stat.Theme == "core-ability" && stat.Level != 8 {
			t.Fatalf("expected level 8 after 480 minutes, got %+v", stat)
		}
	}
}

func TestRecentSessionsNewestFirst(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)}
	uc := newLedger(t, clk)

	first := appendSession(t, uc, "u1", "exploration", 10, clk.now)
	second := appendSession(t, uc, "u1", "exploration", 20, clk.now.Add(time.Hour))
	third := appendSession(t, uc, "u1", "exploration", 30, clk.now.Add(2*time.Hour))

	recent, err := uc.RecentSessions(context.Background(), "u1", 2)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != third.ID || recent[1].ID != second.ID {
		t.Fatalf("expected [%d %d], got %+v", third.ID, second.ID, recent)
	}
	_ = first
}

func TestAchievementsUnlockAtThresholds(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)}
	uc := newLedger(t, clk)

	appendSession(t, uc, "u1", "innovation", 500, clk.now)
	badges, err := uc.Achievements(context.Background(), "u1")
	if err != nil {
		t.Fatalf("achievements: %v", err)
	}
	if len(badges) != 2 {
		t.Fatalf("expected 2 badges at 500 minutes, got %+v", badges)
	}
}
