package metric

import "time"

// Measurement is one recorded value against a metric-type channel.
type Measurement struct {
	ID           string    `json:"id"`
	MetricTypeID int64     `json:"metric_type_id"`
	Value        float64   `json:"value"`
	Note         string    `json:"note,omitempty"`
	RecordedAt   time.Time `json:"recorded_at"`
}
