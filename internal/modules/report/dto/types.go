package dto

import "time"

type GenerateOutput struct {
	Prompt      string
	Narrative   string
	WindowStart time.Time
	WindowEnd   time.Time
}

type ArchiveInput struct {
	UserID  string
	Content string
}

type ReportOutput struct {
	ID          int64
	CreatedAt   time.Time
	WindowStart time.Time
	WindowEnd   time.Time
	Content     string
}

type ExportOutput struct {
	ReportID int64
	Path     string
}
