package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lifeos/internal/modules/report/domain"
	reportout "lifeos/internal/modules/report/port/out"
	apperrors "lifeos/internal/platform/errors"

	_ "modernc.org/sqlite"
)

const timeFormat = "2006-01-02T15:04:05Z07:00"

type SQLiteReportStore struct {
	db *sql.DB
}

func NewSQLiteReportStore(dbPath string) (reportout.ReportStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteReportStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteReportStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS reports (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  created_at TEXT NOT NULL,
  window_start TEXT NOT NULL,
  window_end TEXT NOT NULL,
  content TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reports_user ON reports(user_id, id);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create report table: %w", err)
	}
	return nil
}

func (s *SQLiteReportStore) Append(ctx context.Context, report domain.Report) (int64, error) {
	const stmt = `INSERT INTO reports (user_id, created_at, window_start, window_end, content) VALUES (?, ?, ?, ?, ?);`
	res, err := s.db.ExecContext(ctx, stmt,
		report.UserID,
		report.CreatedAt.Format(timeFormat),
		report.WindowStart.Format(timeFormat),
		report.WindowEnd.Format(timeFormat),
		report.Content,
	)
	if err != nil {
		return 0, storeErr("append report", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storeErr("report id", err)
	}
	return id, nil
}

func (s *SQLiteReportStore) List(ctx context.Context, userID string) ([]domain.Report, error) {
	const query = `SELECT id, user_id, created_at, window_start, window_end, content FROM reports WHERE user_id = ? ORDER BY id DESC`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, storeErr("list reports", err)
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		report, err := scanReport(rows.Scan)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate reports", err)
	}
	return reports, nil
}

func (s *SQLiteReportStore) Get(ctx context.Context, userID string, reportID int64) (domain.Report, error) {
	const query = `SELECT id, user_id, created_at, window_start, window_end, content FROM reports WHERE user_id = ? AND id = ?`
	row := s.db.QueryRowContext(ctx, query, userID, reportID)
	report, err := scanReport(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Report{}, fmt.Errorf("%w: report %d", apperrors.ErrNotFound, reportID)
	}
	return report, err
}

func scanReport(scan func(dest ...any) error) (domain.Report, error) {
	var (
		report                            domain.Report
		createdAt, windowStart, windowEnd string
	)
	if err := scan(&report.ID, &report.UserID, &createdAt, &windowStart, &windowEnd, &report.Content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Report{}, err
		}
		return domain.Report{}, storeErr("scan report", err)
	}
	var err error
	if report.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
		return domain.Report{}, storeErr("parse created at", err)
	}
	if report.WindowStart, err = time.Parse(timeFormat, windowStart); err != nil {
		return domain.Report{}, storeErr("parse window start", err)
	}
	if report.WindowEnd, err = time.Parse(timeFormat, windowEnd); err != nil {
		return domain.Report{}, storeErr("parse window end", err)
	}
	return report, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, apperrors.ErrStoreUnavailable, err)
}
