package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lifeos/internal/modules/ledger/domain"
	ledgerout "lifeos/internal/modules/ledger/port/out"
	apperrors "lifeos/internal/platform/errors"

	_ "modernc.org/sqlite"
)

const (
	timeFormat = "2006-01-02T15:04:05Z07:00"
	dayFormat  = "2006-01-02"
)

type SQLiteEventStore struct {
	db *sql.DB
}

func NewSQLiteEventStore(dbPath string) (ledgerout.EventStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteEventStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteEventStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  started_at TEXT NOT NULL,
  ended_at TEXT NOT NULL,
  theme TEXT NOT NULL,
  task_label TEXT NOT NULL,
  duration_min INTEGER NOT NULL,
  stage TEXT NOT NULL,
  emotion REAL NOT NULL,
  cognition REAL NOT NULL,
  awareness REAL NOT NULL,
  motivation REAL NOT NULL,
  social REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id, id);
CREATE TABLE IF NOT EXISTS purchases (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  at TEXT NOT NULL,
  item_name TEXT NOT NULL,
  cost INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_purchases_user ON purchases(user_id, id);
CREATE TABLE IF NOT EXISTS snapshots (
  user_id TEXT NOT NULL,
  day TEXT NOT NULL,
  emotion REAL NOT NULL,
  cognition REAL NOT NULL,
  awareness REAL NOT NULL,
  motivation REAL NOT NULL,
  social REAL NOT NULL,
  PRIMARY KEY (user_id, day)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create event tables: %w", err)
	}
	return nil
}

func (s *SQLiteEventStore) AppendSession(ctx context.Context, session domain.FocusSession) (int64, error) {
	const stmt = `
INSERT INTO sessions (user_id, started_at, ended_at, theme, task_label, duration_min, stage, emotion, cognition, awareness, motivation, social)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	res, err := s.db.ExecContext(ctx, stmt,
		session.UserID,
		session.StartedAt.Format(timeFormat),
		session.EndedAt.Format(timeFormat),
		string(session.Theme),
		session.TaskLabel,
		session.DurationMin,
		string(session.Stage),
		session.Scores.Emotion,
		session.Scores.Cognition,
		session.Scores.Awareness,
		session.Scores.Motivation,
		session.Scores.Social,
	)
	if err != nil {
		return 0, storeErr("append session", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storeErr("session id", err)
	}
	return id, nil
}

func (s *SQLiteEventStore) AppendPurchase(ctx context.Context, purchase domain.Purchase) (int64, error) {
	const stmt = `INSERT INTO purchases (user_id, at, item_name, cost) VALUES (?, ?, ?, ?);`
	res, err := s.db.ExecContext(ctx, stmt,
		purchase.UserID,
		purchase.At.Format(timeFormat),
		purchase.ItemName,
		purchase.Cost,
	)
	if err != nil {
		return 0, storeErr("append purchase", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storeErr("purchase id", err)
	}
	return id, nil
}

// ReplaceSnapshot enforces one snapshot per (user, day) with delete-then-insert
// inside a single transaction.
func (s *SQLiteEventStore) ReplaceSnapshot(ctx context.Context, snapshot domain.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin snapshot tx", err)
	}
	day := snapshot.Day.Format(dayFormat)
	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE user_id = ? AND day = ?`, snapshot.UserID, day); err != nil {
		_ = tx.Rollback()
		return storeErr("delete snapshot", err)
	}
	const stmt = `INSERT INTO snapshots (user_id, day, emotion, cognition, awareness, motivation, social) VALUES (?, ?, ?, ?, ?, ?, ?);`
	if _, err := tx.ExecContext(ctx, stmt,
		snapshot.UserID,
		day,
		snapshot.Scores.Emotion,
		snapshot.Scores.Cognition,
		snapshot.Scores.Awareness,
		snapshot.Scores.Motivation,
		snapshot.Scores.Social,
	); err != nil {
		_ = tx.Rollback()
		return storeErr("insert snapshot", err)
	}
	if err := tx.Commit(); err != nil {
		return storeErr("commit snapshot", err)
	}
	return nil
}

func (s *SQLiteEventStore) ListSessions(ctx context.Context, userID string, since time.Time) ([]domain.FocusSession, error) {
	query := `SELECT id, user_id, started_at, ended_at, theme, task_label, duration_min, stage, emotion, cognition, awareness, motivation, social FROM sessions WHERE user_id = ?`
	args := []any{userID}
	if !since.IsZero() {
		query += ` AND started_at >= ?`
		args = append(args, since.Format(timeFormat))
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list sessions", err)
	}
	defer rows.Close()

	var sessions []domain.FocusSession
	for rows.Next() {
		var (
			session            domain.FocusSession
			startedAt, endedAt string
			theme, stage       string
		)
		if err := rows.Scan(
			&session.ID, &session.UserID, &startedAt, &endedAt, &theme, &session.TaskLabel,
			&session.DurationMin, &stage,
			&session.Scores.Emotion, &session.Scores.Cognition, &session.Scores.Awareness,
			&session.Scores.Motivation, &session.Scores.Social,
		); err != nil {
			return nil, storeErr("scan session", err)
		}
		session.Theme = domain.Theme(theme)
		session.Stage = domain.Stage(stage)
		if session.StartedAt, err = time.Parse(timeFormat, startedAt); err != nil {
			return nil, storeErr("parse session start", err)
		}
		if session.EndedAt, err = time.Parse(timeFormat, endedAt); err != nil {
			return nil, storeErr("parse session end", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate sessions", err)
	}
	return sessions, nil
}

func (s *SQLiteEventStore) ListPurchases(ctx context.Context, userID string, since time.Time) ([]domain.Purchase, error) {
	query := `SELECT id, user_id, at, item_name, cost FROM purchases WHERE user_id = ?`
	args := []any{userID}
	if !since.IsZero() {
		query += ` AND at >= ?`
		args = append(args, since.Format(timeFormat))
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list purchases", err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var (
			purchase domain.Purchase
			at       string
		)
		if err := rows.Scan(&purchase.ID, &purchase.UserID, &at, &purchase.ItemName, &purchase.Cost); err != nil {
			return nil, storeErr("scan purchase", err)
		}
		if purchase.At, err = time.Parse(timeFormat, at); err != nil {
			return nil, storeErr("parse purchase time", err)
		}
		purchases = append(purchases, purchase)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate purchases", err)
	}
	return purchases, nil
}

func (s *SQLiteEventStore) ListSnapshots(ctx context.Context, userID string) ([]domain.Snapshot, error) {
	const query = `SELECT user_id, day, emotion, cognition, awareness, motivation, social FROM snapshots WHERE user_id = ? ORDER BY day ASC`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, storeErr("list snapshots", err)
	}
	defer rows.Close()

	var snapshots []domain.Snapshot
	for rows.Next() {
		var (
			snapshot domain.Snapshot
			day      string
		)
		if err := rows.Scan(
			&snapshot.UserID, &day,
			&snapshot.Scores.Emotion, &snapshot.Scores.Cognition, &snapshot.Scores.Awareness,
			&snapshot.Scores.Motivation, &snapshot.Scores.Social,
		); err != nil {
			return nil, storeErr("scan snapshot", err)
		}
		if snapshot.Day, err = time.Parse(dayFormat, day); err != nil {
			return nil, storeErr("parse snapshot day", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate snapshots", err)
	}
	return snapshots, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, apperrors.ErrStoreUnavailable, err)
}
