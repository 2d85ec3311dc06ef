package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	sessionout "lifeos/internal/modules/session/adapter/out"
	"lifeos/internal/modules/session/dto"
	sessionin "lifeos/internal/modules/session/port/in"
	outport "lifeos/internal/modules/session/port/out"
	"lifeos/internal/modules/session/service"
	"lifeos/internal/modules/session/usecase"
	apperrors "lifeos/internal/platform/errors"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type fakeID struct{}

func (fakeID) New() string { return "sess-1" }

type fakeLedger struct {
	appended []outport.CompletedSession
	nextID   int64
	err      error
}

func (f *fakeLedger) AppendCompleted(_ context.Context, session outport.CompletedSession) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.appended = append(f.appended, session)
	f.nextID++
	return f.nextID, nil
}

func newMachine(t *testing.T, clk *fakeClock, ledger *fakeLedger) sessionin.Usecase {
	t.Helper()
	return usecase.NewInteractor(
		service.NewSessionService(clk, fakeID{}),
		ledger,
		sessionout.NewFileActiveSessionStore(t.TempDir()),
	)
}

func neutral() dto.ScoresInput {
	return dto.ScoresInput{Emotion: 5, Cognition: 5, Awareness: 5, Motivation: 5, Social: 5}
}

func TestCompleteAfter125SecondsYieldsTwoMinutes(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clk := &fakeClock{values: []time.Time{start, start.Add(125 * time.Second)}}
	ledger := &fakeLedger{}
	uc := newMachine(t, clk, ledger)

	begun, err := uc.Start(context.Background(), dto.StartInput{UserID: "u1", Theme: "core-ability", TaskLabel: "study graphs", Stage: "Input"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if begun.SessionID == "" || !begun.StartedAt.Equal(start) {
		t.Fatalf("unexpected start output: %+v", begun)
	}

	done, err := uc.Complete(context.Background(), dto.CompleteInput{UserID: "u1", Scores: neutral()})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.DurationMin != 2 {
		t.Fatalf("expected floor(125s/60) = 2 minutes, got %d", done.DurationMin)
	}
	if len(ledger.appended) != 1 || ledger.appended[0].Theme != "core-ability" || ledger.appended[0].DurationMin != 2 {
		t.Fatalf("ledger must receive the completed event: %+v", ledger.appended)
	}
	if _, err := uc.GetActive(context.Background(), "u1"); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected idle after complete, got %v", err)
	}
}

func TestStartWhileRunningFailsAndKeepsOriginal(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clk := &fakeClock{values: []time.Time{start}}
	uc := newMachine(t, clk, &fakeLedger{})

	if _, err := uc.Start(context.Background(), dto.StartInput{UserID: "u1", Theme: "wellbeing", TaskLabel: "run", Stage: "Process"}); err != nil {
		t.Fatalf("first start: %v", err)
	}
	_, err := uc.Start(context.Background(), dto.StartInput{UserID: "u1", Theme: "social", TaskLabel: "call", Stage: "Output"})
	if !errors.Is(err, apperrors.ErrSessionRunning) {
		t.Fatalf("expected session running error, got %v", err)
	}
	active, err := uc.GetActive(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	if active.TaskLabel != "run" || active.Theme != "wellbeing" {
		t.Fatalf("original session must be untouched: %+v", active)
	}
}

func TestStartValidatesInput(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}}
	uc := newMachine(t, clk, &fakeLedger{})

	cases := []dto.StartInput{
		{UserID: "u1", Theme: "core-ability", TaskLabel: "", Stage: "Input"},
		{UserID: "u1", Theme: "gaming", TaskLabel: "play", Stage: "Input"},
		{UserID: "u1", Theme: "core-ability", TaskLabel: "study", Stage: "Review"},
	}
	for _, input := range cases {
		if _, err := uc.Start(context.Background(), input); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("input %+v: expected invalid input, got %v", input, err)
		}
	}
	// nothing started
	if _, err := uc.GetActive(context.Background(), "u1"); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected idle after rejected starts, got %v", err)
	}
}

func TestElapsedIsRepeatableAndRequiresRunning(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clk := &fakeClock{values: []time.Time{start, start.Add(95 * time.Second), start.Add(95 * time.Second)}}
	uc := newMachine(t, clk, &fakeLedger{})

	if _, err := uc.Elapsed(context.Background(), "u1"); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("elapsed while idle: got %v", err)
	}
	if _, err := uc.Start(context.Background(), dto.StartInput{UserID: "u1", Theme: "exploration", TaskLabel: "read", Stage: "Input"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	first, err := uc.Elapsed(context.Background(), "u1")
	if err != nil {
		t.Fatalf("elapsed: %v", err)
	}
	if first.Minutes != 1 || first.Seconds != 35 {
		t.Fatalf("expected 01:35, got %02d:%02d", first.Minutes, first.Seconds)
	}
	second, err := uc.Elapsed(context.Background(), "u1")
	if err != nil {
		t.Fatalf("elapsed again: %v", err)
	}
	if second != first {
		t.Fatalf("elapsed must not mutate state: %+v vs %+v", first, second)
	}
}

func TestCompleteWhileIdleFails(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}}
	uc := newMachine(t, clk, &fakeLedger{})
	if _, err := uc.Complete(context.Background(), dto.CompleteInput{UserID: "u1", Scores: neutral()}); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected no active session, got %v", err)
	}
}

func TestAbandonDiscardsWithoutAppending(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clk := &fakeClock{values: []time.Time{start}}
	ledger := &fakeLedger{}
	uc := newMachine(t, clk, ledger)

	if err := uc.Abandon(context.Background(), "u1"); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("abandon while idle: got %v", err)
	}
	if _, err := uc.Start(context.Background(), dto.StartInput{UserID: "u1", Theme: "aesthetics", TaskLabel: "sketch", Stage: "Output"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := uc.Abandon(context.Background(), "u1"); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if len(ledger.appended) != 0 {
		t.Fatalf("abandon must not append events: %+v", ledger.appended)
	}
	if _, err := uc.GetActive(context.Background(), "u1"); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected idle after abandon, got %v", err)
	}
}

func TestUsersRunIndependentSessions(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clk := &fakeClock{values: []time.Time{start, start.Add(time.Minute)}}
	uc := newMachine(t, clk, &fakeLedger{})

	if _, err := uc.Start(context.Background(), dto.StartInput{UserID: "u1", Theme: "social", TaskLabel: "call", Stage: "Process"}); err != nil {
		t.Fatalf("u1 start: %v", err)
	}
	if _, err := uc.Start(context.Background(), dto.StartInput{UserID: "u2", Theme: "wellbeing", TaskLabel: "stretch", Stage: "Process"}); err != nil {
		t.Fatalf("u2 start must not collide with u1: %v", err)
	}
}
