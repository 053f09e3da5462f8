package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type ctxKey string

const connKey ctxKey = "conn"

// ConnManager scopes one pooled connection to a unit of work. The
// connection is acquired when WithConn is entered and released on every
// exit path, never held across runs.
type ConnManager struct {
	db *sqlx.DB
}

func NewConnManager(db *sqlx.DB) *ConnManager {
	return &ConnManager{db: db}
}

func (m *ConnManager) WithConn(ctx context.Context, fn func(ctx context.Context) error) error {
	conn, err := m.db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(context.WithValue(ctx, connKey, conn))
}

// Executor is the subset of sqlx operations the stores need, satisfied
// by both *sqlx.DB and the scoped *sqlx.Conn.
type Executor interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func GetConnFromContext(ctx context.Context) *sqlx.Conn {
	conn, _ := ctx.Value(connKey).(*sqlx.Conn)
	return conn
}

func GetExecutor(ctx context.Context, db *sqlx.DB) Executor {
	if conn := GetConnFromContext(ctx); conn != nil {
		return conn
	}
	return db
}
