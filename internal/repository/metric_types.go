package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/orbitscale/orbitscale/internal/metric"
)

type metricTypeRepo struct {
	db *sql.DB
}

func (r *metricTypeRepo) BulkInsert(ctx context.Context, types []metric.MetricType) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin bulk insert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO metric_types
			(seed_slot, key, display_name, unit, color, icon, input, display_order, derived, pinned, enabled, right_axis)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare bulk insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for slot, mt := range types {
		_, err := stmt.ExecContext(ctx,
			slot,
			string(mt.Key),
			mt.DisplayName,
			string(mt.Unit),
			string(mt.Color),
			string(mt.Icon),
			string(mt.Input),
			mt.Order,
			boolToInt(mt.Derived),
			boolToInt(mt.Pinned),
			boolToInt(mt.Enabled),
			boolToInt(mt.RightAxis),
		)
		if err != nil {
			return fmt.Errorf("bulk insert slot %d (%s): %w", slot, mt.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bulk insert: %w", err)
	}
	return nil
}

func (r *metricTypeRepo) List(ctx context.Context) ([]metric.MetricType, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, key, display_name, unit, color, icon, input, display_order, derived, pinned, enabled, right_axis
		FROM metric_types
		ORDER BY display_order, id
	`)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var types []metric.MetricType
	for rows.Next() {
		mt, err := scanMetricType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, *mt)
	}
	return types, rows.Err()
}

func (r *metricTypeRepo) Get(ctx context.Context, id int64) (*metric.MetricType, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, key, display_name, unit, color, icon, input, display_order, derived, pinned, enabled, right_axis
		FROM metric_types
		WHERE id = ?
	`, id)

	mt, err := scanMetricType(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mt, nil
}

func (r *metricTypeRepo) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE metric_types SET enabled = ? WHERE id = ?",
		boolToInt(enabled), id)
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

func (r *metricTypeRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM metric_types")
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMetricType(s scanner) (*metric.MetricType, error) {
	var mt metric.MetricType
	var key, unit, color, icon, input string
	var derived, pinned, enabled, rAxis int64
	err := s.Scan(&mt.ID, &key, &mt.DisplayName, &unit, &color, &icon, &input,
		&mt.Order, &derived, &pinned, &enabled, &rAxis)
	if err != nil {
		return nil, err
	}
	mt.Key = metric.Key(key)
	mt.Unit = metric.Unit(unit)
	mt.Color = metric.Color(color)
	mt.Icon = metric.Icon(icon)
	mt.Input = metric.Input(input)
	mt.Derived = derived == 1
	mt.Pinned = pinned == 1
	mt.Enabled = enabled == 1
	mt.RightAxis = rAxis == 1
	return &mt, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
