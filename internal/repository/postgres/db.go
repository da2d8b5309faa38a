package postgres

import (
	"context"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

func New(dsn string) (*sqlx.DB, error) {
	return sqlx.Connect("pgx", dsn)
}

// EnsureSchema creates the tables the API needs if they do not exist yet.
// Safe to run on every startup.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS organizations (
			orgid BIGINT PRIMARY KEY,
			orgname TEXT NOT NULL,
			shortname TEXT NOT NULL,
			address TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			empid BIGINT NOT NULL,
			orgid BIGINT NOT NULL REFERENCES organizations (orgid),
			empname TEXT NOT NULL,
			empshortname TEXT NOT NULL,
			empphone TEXT NOT NULL,
			empemail TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (orgid, empid)
		)`,
		`CREATE TABLE IF NOT EXISTS clients (
			clientid BIGINT NOT NULL,
			orgid BIGINT NOT NULL REFERENCES organizations (orgid),
			clientname TEXT NOT NULL,
			clientshortname TEXT NOT NULL,
			clientphone TEXT NOT NULL,
			clientemail TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (orgid, clientid)
		)`,
		`CREATE SEQUENCE IF NOT EXISTS notes_seq`,
		`CREATE TABLE IF NOT EXISTS notes (
			orgid BIGINT NOT NULL,
			empid BIGINT NOT NULL,
			clientid BIGINT NOT NULL,
			meetingid BIGINT NOT NULL DEFAULT nextval('notes_seq'),
			datetime TIMESTAMPTZ NOT NULL,
			audionotes BYTEA,
			textnotes TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS otps (
			key TEXT PRIMARY KEY,
			code TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id BIGSERIAL PRIMARY KEY,
			orgid BIGINT NOT NULL,
			empid BIGINT NOT NULL,
			token TEXT UNIQUE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			expires_at TIMESTAMPTZ NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
