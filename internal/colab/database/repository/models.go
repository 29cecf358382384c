package repository

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is the querying surface the repositories need; *sql.DB and *sql.Tx
// both satisfy it, so repositories work inside and outside transactions.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// User represents a collaboration user row.
type User struct {
	ID        int64
	Username  string
	EmailID   string
	Password  string
	Token     *string
	CreatedAt time.Time
}

// Project represents a collaboration project row. Path is the project's
// directory name under filedata.
type Project struct {
	ID          int64
	Path        string
	Description *string
	CreatedAt   time.Time
}

// Permission links a user to a project with an access level
// (creator, collaborator or viewer).
type Permission struct {
	ID          int64
	UserID      int64
	ProjectID   int64
	AccessLevel string
}
