// Package postgres содержит реализации репозиториев поверх pgx.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPoolInterface - подмножество pgxpool.Pool, используемое репозиториями.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

// uniqueViolation - SQLSTATE нарушения уникального ограничения.
const uniqueViolation = "23505"
