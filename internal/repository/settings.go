package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const (
	settingFirstAppStart      = "first_app_start"
	settingFileLoggingEnabled = "file_logging_enabled"
)

type settingsRepo struct {
	db *sql.DB
}

func (r *settingsRepo) FirstAppStart(ctx context.Context) (bool, error) {
	return r.readBool(ctx, settingFirstAppStart, true)
}

func (r *settingsRepo) SetFirstAppStart(ctx context.Context, v bool) error {
	return r.writeBool(ctx, settingFirstAppStart, v)
}

func (r *settingsRepo) FileLoggingEnabled(ctx context.Context) (bool, error) {
	return r.readBool(ctx, settingFileLoggingEnabled, false)
}

func (r *settingsRepo) SetFileLoggingEnabled(ctx context.Context, v bool) error {
	return r.writeBool(ctx, settingFileLoggingEnabled, v)
}

func (r *settingsRepo) readBool(ctx context.Context, key string, missing bool) (bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return missing, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value == "true", nil
}

func (r *settingsRepo) writeBool(ctx context.Context, key string, v bool) error {
	value := "false"
	if v {
		value = "true"
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}
