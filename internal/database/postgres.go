package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dias221467/StudyTask_Manager/pkg/logger"
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id           TEXT PRIMARY KEY,
	email        TEXT NOT NULL UNIQUE,
	full_name    TEXT NOT NULL,
	password     TEXT NOT NULL,
	is_verified  BOOLEAN NOT NULL DEFAULT FALSE,
	verify_token TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id             TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	title          TEXT NOT NULL,
	description    TEXT,
	category       TEXT NOT NULL,
	priority       TEXT NOT NULL,
	status         TEXT NOT NULL,
	due_date       TIMESTAMPTZ NOT NULL,
	estimated_time INTEGER,
	actual_time    INTEGER,
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL,
	completed_at   TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS tasks_user_due_idx ON tasks (user_id, due_date);

CREATE TABLE IF NOT EXISTS notifications (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	task_id    TEXT REFERENCES tasks(id) ON DELETE SET NULL,
	type       TEXT NOT NULL,
	message    TEXT NOT NULL,
	is_read    BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS notifications_user_task_idx ON notifications (user_id, task_id);
`

// ConnectPostgres opens the PostgreSQL pool and applies the schema.
func ConnectPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Log.Info("Connected to PostgreSQL")
	return db, nil
}
