package database

import (
	"context"
	"fmt"
)

// Timestamps and ids are generated by the database so that last_modified
// always reflects the backend clock, never the application's.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS ingredient (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL CHECK (length(name) > 0),
		price numeric CHECK (price >= 0),
		created timestamptz NOT NULL DEFAULT now(),
		last_modified timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS recipe (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL CHECK (length(name) > 0),
		created timestamptz NOT NULL DEFAULT now(),
		last_modified timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS recipe_ingredient (
		recipe uuid NOT NULL REFERENCES recipe (id),
		ingredient uuid NOT NULL REFERENCES ingredient (id),
		amount numeric
	)`,
}

// EnsureSchema creates the tables if they do not exist. Safe to call on every
// startup.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
