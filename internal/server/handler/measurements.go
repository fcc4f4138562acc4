package handler

import (
	"database/sql"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/orbitscale/orbitscale/internal/apperr"
	"github.com/orbitscale/orbitscale/internal/metric"
	"github.com/orbitscale/orbitscale/internal/repository"
	"github.com/orbitscale/orbitscale/internal/xhttp"
	"github.com/orbitscale/orbitscale/internal/xslog"
)

const maxListLimit = 1000

type Measurements struct {
	measurements repository.MeasurementRepository
	types        repository.MetricTypeRepository
}

func NewMeasurements(measurements repository.MeasurementRepository, types repository.MetricTypeRepository) *Measurements {
	return &Measurements{measurements: measurements, types: types}
}

type createMeasurementRequest struct {
	MetricTypeID int64      `json:"metric_type_id"`
	Value        float64    `json:"value"`
	Note         string     `json:"note"`
	RecordedAt   *time.Time `json:"recorded_at"`
}

// HandleCreate handles POST /api/measurements requests.
func (h *Measurements) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	var req createMeasurementRequest
	if err := go_json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.WriteError(w, apperr.BadRequest("invalid_request", "invalid JSON body"))
		return
	}
	if req.MetricTypeID <= 0 {
		apperr.WriteError(w, apperr.BadRequest("invalid_request", "metric_type_id is required"))
		return
	}
	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		apperr.WriteError(w, apperr.BadRequest("invalid_request", "value must be a finite number"))
		return
	}

	mt, err := h.types.Get(ctx, req.MetricTypeID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load metric type", xslog.Error(err), xslog.MetricTypeID(req.MetricTypeID))
		apperr.WriteError(w, apperr.Internal("internal_error", "failed to load metric type", err))
		return
	}
	if mt == nil {
		apperr.WriteError(w, apperr.NotFound("not_found", "metric type not found"))
		return
	}

	recordedAt := time.Now().UTC()
	if req.RecordedAt != nil {
		recordedAt = req.RecordedAt.UTC()
	}

	m := &metric.Measurement{
		MetricTypeID: req.MetricTypeID,
		Value:        req.Value,
		Note:         req.Note,
		RecordedAt:   recordedAt,
	}
	if err := h.measurements.Insert(ctx, m); err != nil {
		logger.ErrorContext(ctx, "failed to insert measurement", xslog.Error(err), xslog.MetricTypeID(req.MetricTypeID))
		apperr.WriteError(w, apperr.Internal("internal_error", "failed to insert measurement", err))
		return
	}

	logger.DebugContext(ctx, "recorded measurement",
		xslog.MetricTypeID(req.MetricTypeID),
		xslog.MetricKey(string(mt.Key)))
	xhttp.WriteJSON(w, http.StatusCreated, m)
}

// HandleList handles GET /api/measurements requests.
// Query params: metric_type_id (required), limit (default 50).
func (h *Measurements) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	typeID, err := strconv.ParseInt(r.URL.Query().Get("metric_type_id"), 10, 64)
	if err != nil || typeID <= 0 {
		apperr.WriteError(w, apperr.BadRequest("invalid_request", "metric_type_id query parameter is required"))
		return
	}

	limit := repository.DefaultPageSize
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l <= 0 || l > maxListLimit {
			apperr.WriteError(w, apperr.BadRequest("invalid_request", "invalid limit parameter (must be 1-1000)"))
			return
		}
		limit = l
	}

	measurements, err := h.measurements.ListByType(ctx, typeID, limit)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list measurements", xslog.Error(err), xslog.MetricTypeID(typeID))
		apperr.WriteError(w, apperr.Internal("internal_error", "failed to list measurements", err))
		return
	}

	if measurements == nil {
		measurements = []metric.Measurement{}
	}
	xhttp.WriteOK(w, measurements)
}

// HandleDelete handles DELETE /api/measurements/{id} requests.
func (h *Measurements) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	id := r.PathValue("id")
	if id == "" {
		apperr.WriteError(w, apperr.BadRequest("invalid_request", "measurement id is required"))
		return
	}

	err := h.measurements.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		apperr.WriteError(w, apperr.NotFound("not_found", "measurement not found"))
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to delete measurement", xslog.Error(err))
		apperr.WriteError(w, apperr.Internal("internal_error", "failed to delete measurement", err))
		return
	}

	xhttp.WriteNoContent(w)
}
