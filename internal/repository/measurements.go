package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/orbitscale/orbitscale/internal/metric"
)

type measurementRepo struct {
	db *sql.DB
}

func (r *measurementRepo) Insert(ctx context.Context, m *metric.Measurement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO measurements (id, metric_type_id, value, note, recorded_at)
		VALUES (?, ?, ?, ?, ?)
	`, m.ID, m.MetricTypeID, m.Value, m.Note, m.RecordedAt)
	return err
}

func (r *measurementRepo) ListByType(ctx context.Context, metricTypeID int64, limit int) ([]metric.Measurement, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, metric_type_id, value, note, recorded_at
		FROM measurements
		WHERE metric_type_id = ?
		ORDER BY recorded_at DESC
		LIMIT ?
	`, metricTypeID, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var measurements []metric.Measurement
	for rows.Next() {
		var m metric.Measurement
		if err := rows.Scan(&m.ID, &m.MetricTypeID, &m.Value, &m.Note, &m.RecordedAt); err != nil {
			return nil, err
		}
		measurements = append(measurements, m)
	}
	return measurements, rows.Err()
}

func (r *measurementRepo) Latest(ctx context.Context, metricTypeID int64) (*metric.Measurement, error) {
	var m metric.Measurement
	err := r.db.QueryRowContext(ctx, `
		SELECT id, metric_type_id, value, note, recorded_at
		FROM measurements
		WHERE metric_type_id = ?
		ORDER BY recorded_at DESC
		LIMIT 1
	`, metricTypeID).Scan(&m.ID, &m.MetricTypeID, &m.Value, &m.Note, &m.RecordedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *measurementRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM measurements WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *measurementRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM measurements")
	return err
}
