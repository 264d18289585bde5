// Package store provides the single seam between the repositories and the
// database: a thin executor of parameterized statements. It owns no business
// logic; its only job beyond pass-through is labeling backend failures with a
// stable error class so callers don't have to inspect driver types.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Class identifies the category of a backend failure, named after the
// PostgreSQL condition that produced it.
type Class string

const (
	ClassNotNullViolation          Class = "not_null_violation"
	ClassCheckViolation            Class = "check_violation"
	ClassInvalidTextRepresentation Class = "invalid_text_representation"
	ClassForeignKeyViolation       Class = "foreign_key_violation"
	ClassOther                     Class = "other"
)

// Error wraps a backend failure with its class and the raw server message.
type Error struct {
	Class   Class
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s: %s", e.Class, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Client executes parameterized statements against the backend. Swapping the
// implementation (or the connection it wraps) is how tests point the
// repositories at an isolated schema instance.
type Client interface {
	Query(ctx context.Context, statement string, args ...any) (*sql.Rows, error)
}

// PoolClient is the production Client backed by a *sql.DB pool.
type PoolClient struct {
	db *sql.DB
}

// NewPoolClient wraps an open connection pool.
func NewPoolClient(db *sql.DB) *PoolClient {
	return &PoolClient{db: db}
}

// Query runs the statement and returns its rows. Failures come back as *Error.
func (c *PoolClient) Query(ctx context.Context, statement string, args ...any) (*sql.Rows, error) {
	rows, err := c.db.QueryContext(ctx, statement, args...)
	if err != nil {
		return nil, Wrap(err)
	}
	return rows, nil
}

// Wrap converts a driver error into *Error, classifying pq errors by SQLSTATE.
func Wrap(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &Error{
			Class:   classify(pqErr.Code),
			Code:    string(pqErr.Code),
			Message: pqErr.Message,
			Err:     err,
		}
	}
	return &Error{Class: ClassOther, Message: err.Error(), Err: err}
}

func classify(code pq.ErrorCode) Class {
	switch code {
	case "23502":
		return ClassNotNullViolation
	case "23514":
		return ClassCheckViolation
	case "22P02":
		return ClassInvalidTextRepresentation
	case "23503":
		return ClassForeignKeyViolation
	default:
		return ClassOther
	}
}
