package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"petstore-tools/internal/config"
)

// Connect opens a single database session. Callers own the connection for
// their entire lifetime; sessions are never shared across goroutines.
func Connect(ctx context.Context, conn *config.Connection) (*pgx.Conn, error) {
	c, err := pgx.Connect(ctx, conn.URL())
	if err != nil {
		return nil, fmt.Errorf("database connection failed (%s): %w", conn.Addr(), err)
	}
	return c, nil
}

// SQLSTATE classes used to downgrade idempotent create/drop failures to
// warnings.
const (
	codeDuplicateTable  = "42P07"
	codeDuplicateObject = "42710"
	codeUndefinedTable  = "42P01"
	codeUndefinedObject = "42704"
)

// IsDuplicateObject reports whether err means the object being created
// already exists.
func IsDuplicateObject(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeDuplicateTable || pgErr.Code == codeDuplicateObject
}

// IsUndefinedObject reports whether err means the object being dropped or
// truncated does not exist.
func IsUndefinedObject(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeUndefinedTable || pgErr.Code == codeUndefinedObject
}

// ErrorText renders a database error with its SQLSTATE code when one is
// available, mirroring the driver code/message console format.
func ErrorText(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Sprintf("SQLSTATE %s: %s", pgErr.Code, pgErr.Message)
	}
	return err.Error()
}
