package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations se aplican en orden; todas son idempotentes.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		phone         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		image         TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id               TEXT PRIMARY KEY,
		owner_user_id    TEXT NOT NULL REFERENCES users(id),
		adopter_user_id  TEXT NULL REFERENCES users(id),
		name             TEXT NOT NULL,
		age              INTEGER NOT NULL,
		weight           DOUBLE PRECISION NOT NULL,
		color            TEXT NOT NULL,
		images           JSONB NOT NULL DEFAULT '[]'::jsonb,
		available        BOOLEAN NOT NULL DEFAULT TRUE,
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS pets_owner_idx ON pets (owner_user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS pets_adopter_idx ON pets (adopter_user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS pet_history (
		id             TEXT PRIMARY KEY,
		pet_id         TEXT NOT NULL,
		type           TEXT NOT NULL,
		actor_user_id  TEXT NOT NULL,
		occurred_at    TIMESTAMPTZ NOT NULL,
		notes          TEXT NOT NULL DEFAULT '',
		seq            BIGSERIAL
	)`,
	`CREATE INDEX IF NOT EXISTS pet_history_pet_idx ON pet_history (pet_id, occurred_at DESC)`,
}

// Apply crea el esquema. Se llama al arrancar cuando hay DB_DSN.
func Apply(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
