package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lifeos/internal/modules/auth/domain"
	authout "lifeos/internal/modules/auth/port/out"
	apperrors "lifeos/internal/platform/errors"

	_ "modernc.org/sqlite"
)

const timeFormat = "2006-01-02T15:04:05Z07:00"

type SQLiteUserStore struct {
	db *sql.DB
}

func NewSQLiteUserStore(dbPath string) (authout.UserStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteUserStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteUserStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS users (
  name TEXT PRIMARY KEY,
  password_hash TEXT NOT NULL,
  created_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (s *SQLiteUserStore) Create(ctx context.Context, user domain.User) error {
	const stmt = `INSERT INTO users (name, password_hash, created_at) VALUES (?, ?, ?);`
	_, err := s.db.ExecContext(ctx, stmt, user.Name, user.PasswordHash, user.CreatedAt.Format(timeFormat))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: %s", apperrors.ErrUserExists, user.Name)
		}
		return storeErr("create user", err)
	}
	return nil
}

func (s *SQLiteUserStore) Get(ctx context.Context, name string) (domain.User, error) {
	const query = `SELECT name, password_hash, created_at FROM users WHERE name = ?`
	var (
		user      domain.User
		createdAt string
	)
	err := s.db.QueryRowContext(ctx, query, name).Scan(&user.Name, &user.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, name)
	}
	if err != nil {
		return domain.User{}, storeErr("get user", err)
	}
	if user.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
		return domain.User{}, storeErr("parse created at", err)
	}
	return user, nil
}

func (s *SQLiteUserStore) List(ctx context.Context) ([]domain.User, error) {
	const query = `SELECT name, password_hash, created_at FROM users ORDER BY name ASC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeErr("list users", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var (
			user      domain.User
			createdAt string
		)
		if err := rows.Scan(&user.Name, &user.PasswordHash, &createdAt); err != nil {
			return nil, storeErr("scan user", err)
		}
		if user.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
			return nil, storeErr("parse created at", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate users", err)
	}
	return users, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, apperrors.ErrStoreUnavailable, err)
}
