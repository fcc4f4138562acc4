package repository

import (
	"context"
	"database/sql"

	"github.com/orbitscale/orbitscale/internal/metric"
)

type Repository struct {
	Settings     SettingsRepository
	MetricTypes  MetricTypeRepository
	Measurements MeasurementRepository
}

func New(db *sql.DB) *Repository {
	return &Repository{
		Settings:     &settingsRepo{db: db},
		MetricTypes:  &metricTypeRepo{db: db},
		Measurements: &measurementRepo{db: db},
	}
}

// SettingsRepository exposes the durable process flags. Reads of missing rows
// return the fresh-install defaults: first start true, file logging false.
type SettingsRepository interface {
	FirstAppStart(ctx context.Context) (bool, error)
	SetFirstAppStart(ctx context.Context, v bool) error
	FileLoggingEnabled(ctx context.Context) (bool, error)
	SetFileLoggingEnabled(ctx context.Context, v bool) error
}

type MetricTypeRepository interface {
	// BulkInsert persists types as one transaction. Seeded rows carry a
	// deterministic seed slot so a redundant re-seed is a net no-op.
	BulkInsert(ctx context.Context, types []metric.MetricType) error
	List(ctx context.Context) ([]metric.MetricType, error)
	Get(ctx context.Context, id int64) (*metric.MetricType, error)
	SetEnabled(ctx context.Context, id int64, enabled bool) error
	DeleteAll(ctx context.Context) error
}

type MeasurementRepository interface {
	Insert(ctx context.Context, m *metric.Measurement) error
	ListByType(ctx context.Context, metricTypeID int64, limit int) ([]metric.Measurement, error)
	Latest(ctx context.Context, metricTypeID int64) (*metric.Measurement, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

const DefaultPageSize = 50
