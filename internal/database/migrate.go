package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		username text PRIMARY KEY,
		password text NOT NULL,
		first_name text NOT NULL,
		last_name text NOT NULL,
		phone text NOT NULL,
		join_at timestamptz NOT NULL,
		last_login_at timestamptz NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id bigserial PRIMARY KEY,
		from_username text NOT NULL REFERENCES users (username),
		to_username text NOT NULL REFERENCES users (username),
		body text NOT NULL,
		sent_at timestamptz NOT NULL,
		read_at timestamptz
	)`,
	`CREATE INDEX IF NOT EXISTS messages_from_username_idx ON messages (from_username)`,
	`CREATE INDEX IF NOT EXISTS messages_to_username_idx ON messages (to_username)`,
}

// Migrate applies the schema. Statements are idempotent so this is safe to
// run on every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
