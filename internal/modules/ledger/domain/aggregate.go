package domain

import "time"

// MinutesPerLevel is the fixed level threshold: one theme level per 60
// accumulated minutes. One currency unit equals one focused minute.
const MinutesPerLevel = 60

// FinanceStatus is the account view derived from the full event log.
type FinanceStatus struct {
	TotalMinutes int
	TotalSpent   int
	Balance      int
}

// ThemeStat is the derived progression state of a single theme.
type ThemeStat struct {
	Theme           Theme
	Level           int
	ProgressPercent float64
	TotalMinutes    int
}

// Badge is an achievement tier unlocked by cumulative focused minutes.
// Tiers are monotonic: holding a higher tier implies all lower ones.
type Badge struct {
	Name       string
	Threshold  int
	TotalAtMin int
}

var badgeTiers = []Badge{
	{Name: "Focused Hour", Threshold: 60},
	{Name: "Deep Worker", Threshold: 500},
	{Name: "Marathon Mind", Threshold: 2000},
}

// Finance recomputes the account from scratch. balance = minutes - spend;
// it cannot go negative unless a purchase bypassed the gating check.
func Finance(sessions []FocusSession, purchases []Purchase) FinanceStatus {
	status := FinanceStatus{}
	for _, s := range sessions {
		status.TotalMinutes += s.DurationMin
	}
	for _, p := range purchases {
		status.TotalSpent += p.Cost
	}
	status.Balance = status.TotalMinutes - status.TotalSpent
	return status
}

// ThemeProgress derives level and progress-to-next-level for every theme in
// the fixed catalog, including themes with no sessions yet.
func ThemeProgress(sessions []FocusSession) []ThemeStat {
	totals := map[Theme]int{}
	for _, s := range sessions {
		totals[s.Theme] += s.DurationMin
	}
	stats := make([]ThemeStat, 0, len(Themes))
	for _, info := range Themes {
		total := totals[info.Key]
		stats = append(stats, ThemeStat{
			Theme:           info.Key,
			Level:           total / MinutesPerLevel,
			ProgressPercent: float64(total%MinutesPerLevel) / MinutesPerLevel * 100,
			TotalMinutes:    total,
		})
	}
	return stats
}

// MinutesOn sums durations of sessions that ended on the given calendar day.
func MinutesOn(sessions []FocusSession, day time.Time) int {
	total := 0
	for _, s := range sessions {
		if SameDay(s.EndedAt, day) {
			total += s.DurationMin
		}
	}
	return total
}

// Achievements returns the unlocked badge tiers in ascending threshold order.
func Achievements(totalMinutes int) []Badge {
	unlocked := []Badge{}
	for _, tier := range badgeTiers {
		if totalMinutes >= tier.Threshold {
			tier.TotalAtMin = totalMinutes
			unlocked = append(unlocked, tier)
		}
	}
	return unlocked
}

// DominantTheme is the theme with the most focused minutes, or "" for an
// empty slice. Catalog order breaks ties.
func DominantTheme(sessions []FocusSession) Theme {
	totals := map[Theme]int{}
	for _, s := range sessions {
		totals[s.Theme] += s.DurationMin
	}
	best := Theme("")
	bestTotal := -1
	for _, info := range Themes {
		if t := totals[info.Key]; t > bestTotal && t > 0 {
			best, bestTotal = info.Key, t
		}
	}
	return best
}

// MeanMotivation averages the motivation score across sessions; zero when
// there are none.
func MeanMotivation(sessions []FocusSession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range sessions {
		sum += s.Scores.Motivation
	}
	return sum / float64(len(sessions))
}
