package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Migrate provisions the schema idempotently. The bot owns its tables, so a
// plain CREATE IF NOT EXISTS pass at startup replaces external migration
// tooling.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS regions (
			id BIGSERIAL PRIMARY KEY,
			region TEXT NOT NULL UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS interests (
			id BIGSERIAL PRIMARY KEY,
			interest TEXT NOT NULL UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			contact TEXT NOT NULL UNIQUE,
			username TEXT NOT NULL,
			usersurname TEXT NOT NULL,
			gender TEXT,
			age INTEGER,
			region_id BIGINT REFERENCES regions(id) ON DELETE SET NULL,
			registration_step INTEGER NOT NULL DEFAULT 0,
			photo TEXT,
			geolocation TEXT,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE
		);`,
		`CREATE TABLE IF NOT EXISTS users_states (
			user_id BIGINT PRIMARY KEY,
			current_step INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS temp_user_data (
			user_id BIGINT PRIMARY KEY,
			json_data TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS user_interests (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			interest_id BIGINT NOT NULL REFERENCES interests(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, interest_id)
		);`,
	}
	for _, q := range queries {
		if _, err := pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// CheckEncoding verifies the server stores Unicode text losslessly. Drafts
// hold free-form Cyrillic input, so a mis-encoded database corrupts every
// name it touches.
func CheckEncoding(ctx context.Context, pool *pgxpool.Pool) error {
	const probe = "Тест ЁёВолонтёрство"
	var got string
	if err := pool.QueryRow(ctx, `SELECT $1::text;`, probe).Scan(&got); err != nil {
		return fmt.Errorf("encoding probe: %w", err)
	}
	if got != probe {
		return fmt.Errorf("encoding probe mismatch: sent %q got %q", probe, got)
	}
	return nil
}
