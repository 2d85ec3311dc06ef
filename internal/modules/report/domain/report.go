package domain

import (
	"fmt"
	"time"
)

// Report is an archived weekly narrative. Immutable once written; repeated
// archive calls create distinct records by design.
type Report struct {
	ID          int64
	UserID      string
	CreatedAt   time.Time
	WindowStart time.Time
	WindowEnd   time.Time
	Content     string
}

// WeeklyFigures is the aggregate slice of the trailing week fed into the
// narrative prompt. The engine never interprets the narrative that comes
// back.
type WeeklyFigures struct {
	TotalMinutes   int
	SessionCount   int
	DominantTheme  string
	TotalSpent     int
	MeanMotivation float64
	WindowStart    time.Time
	WindowEnd      time.Time
}

// BuildPrompt renders the figures into the request text for the narrative
// generator.
func BuildPrompt(userID string, figures WeeklyFigures) string {
	dominant := figures.DominantTheme
	if dominant == "" {
		dominant = "none"
	}
	return fmt.Sprintf(
		"I am %s. Over the week %s to %s I focused %d minutes across %d sessions, my dominant domain was %s, I spent %d focus credits, and my mean motivation score was %.1f/10. Write me a warm, lightly humorous weekly review in a few short paragraphs.",
		userID,
		figures.WindowStart.Format("2006-01-02"),
		figures.WindowEnd.Format("2006-01-02"),
		figures.TotalMinutes,
		figures.SessionCount,
		dominant,
		figures.TotalSpent,
		figures.MeanMotivation,
	)
}
