package domain_test

import (
	"testing"
	"time"

	"lifeos/internal/modules/ledger/domain"
)

func session(theme domain.Theme, minutes int, endedAt time.Time) domain.FocusSession {
	return domain.FocusSession{
		UserID:      "u1",
		Theme:       theme,
		TaskLabel:   "task",
		DurationMin: minutes,
		StartedAt:   endedAt.Add(-time.Duration(minutes) * time.Minute),
		EndedAt:     endedAt,
		Stage:       domain.StageProcess,
		Scores:      domain.NeutralScores(),
	}
}

func TestFinanceBalanceIsMinutesMinusSpend(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	sessions := []domain.FocusSession{
		session(domain.ThemeCoreAbility, 90, now),
		session(domain.ThemeWellbeing, 30, now),
		session(domain.ThemeCoreAbility, 0, now),
	}
	purchases := []domain.Purchase{
		{UserID: "u1", ItemName: "Soda", Cost: 60, At: now},
		{UserID: "u1", ItemName: "Birthday Cake", Cost: 0, At: now},
	}
	finance := domain.Finance(sessions, purchases)
	if finance.TotalMinutes != 120 || finance.TotalSpent != 60 || finance.Balance != 60 {
		t.Fatalf("unexpected finance: %+v", finance)
	}
}

func TestThemeProgressLevelsAndBounds(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	sessions := []domain.FocusSession{
		session(domain.ThemeCoreAbility, 125, now),
		session(domain.ThemeExploration, 59, now),
	}
	stats := domain.ThemeProgress(sessions)
	if len(stats) != len(domain.Themes) {
		t.Fatalf("expected stats for all %d themes, got %d", len(domain.Themes), len(stats))
	}
	byTheme := map[domain.Theme]domain.ThemeStat{}
	for _, stat := range stats {
		if stat.ProgressPercent < 0 || stat.ProgressPercent >= 100 {
			t.Fatalf("progress out of [0,100) for %s: %.2f", stat.Theme, stat.ProgressPercent)
		}
		if stat.Level != stat.TotalMinutes/domain.MinutesPerLevel {
			t.Fatalf("level mismatch for %s: %+v", stat.Theme, stat)
		}
		byTheme[stat.Theme] = stat
	}
	if got := byTheme[domain.ThemeCoreAbility]; got.Level != 2 || got.TotalMinutes != 125 {
		t.Fatalf("core-ability: %+v", got)
	}
	if got := byTheme[domain.ThemeExploration]; got.Level != 0 || got.ProgressPercent < 98 {
		t.Fatalf("exploration: %+v", got)
	}
	if got := byTheme[domain.ThemeSocial]; got.Level != 0 || got.TotalMinutes != 0 {
		t.Fatalf("untouched theme must be zero: %+v", got)
	}
}

func TestMinutesOnFiltersByEndDay(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 1, 10, 23, 50, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	sessions := []domain.FocusSession{
		session(domain.ThemeCoreAbility, 20, today),
		session(domain.ThemeCoreAbility, 40, yesterday),
		// started yesterday, ended today: counts for today
		{UserID: "u1", Theme: domain.ThemeWellbeing, TaskLabel: "sleep log", DurationMin: 15,
			StartedAt: yesterday.Add(time.Hour), EndedAt: today.Add(-time.Hour),
			Stage: domain.StageInput, Scores: domain.NeutralScores()},
	}
	if got := domain.MinutesOn(sessions, today); got != 35 {
		t.Fatalf("expected 35 minutes today, got %d", got)
	}
}

func TestAchievementsAreCumulative(t *testing.T) {
	t.Parallel()
	cases := []struct {
		minutes int
		want    int
	}{
		{0, 0}, {59, 0}, {60, 1}, {499, 1}, {500, 2}, {2000, 3}, {9000, 3},
	}
	for _, tc := range cases {
		badges := domain.Achievements(tc.minutes)
		if len(badges) != tc.want {
			t.Fatalf("minutes=%d: expected %d badges, got %d", tc.minutes, tc.want, len(badges))
		}
		for i := 1; i < len(badges); i++ {
			if badges[i].Threshold <= badges[i-1].Threshold {
				t.Fatalf("badge thresholds must ascend: %+v", badges)
			}
		}
	}
}

func TestDominantThemeAndMeanMotivation(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	if got := domain.DominantTheme(nil); got != "" {
		t.Fatalf("empty log must have no dominant theme, got %q", got)
	}
	a := session(domain.ThemeInnovation, 50, now)
	a.Scores.Motivation = 8
	b := session(domain.ThemeWellbeing, 30, now)
	b.Scores.Motivation = 4
	sessions := []domain.FocusSession{a, b}
	if got := domain.DominantTheme(sessions); got != domain.ThemeInnovation {
		t.Fatalf("expected innovation dominant, got %q", got)
	}
	if got := domain.MeanMotivation(sessions); got != 6 {
		t.Fatalf("expected mean motivation 6, got %.2f", got)
	}
}

func TestNewScoresRejectsOutOfRange(t *testing.T) {
	t.Parallel()
	if _, err := domain.NewScores(5, 5, 5, 5, 11); err == nil {
		t.Fatalf("score above 10 must fail")
	}
	if _, err := domain.NewScores(-1, 5, 5, 5, 5); err == nil {
		t.Fatalf("score below 0 must fail")
	}
	s, err := domain.NewScores(0, 10, 5, 7.5, 3)
	if err != nil {
		t.Fatalf("valid scores rejected: %v", err)
	}
	if s.Mean() != 5.1 {
		t.Fatalf("mean: got %.2f", s.Mean())
	}
}
