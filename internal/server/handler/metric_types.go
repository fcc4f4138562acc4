package handler

import (
	"net/http"
	"strconv"

	go_json "github.com/goccy/go-json"

	"github.com/orbitscale/orbitscale/internal/apperr"
	"github.com/orbitscale/orbitscale/internal/repository"
	"github.com/orbitscale/orbitscale/internal/xhttp"
	"github.com/orbitscale/orbitscale/internal/xslog"
)

type MetricTypes struct {
	types repository.MetricTypeRepository
}

func NewMetricTypes(types repository.MetricTypeRepository) *MetricTypes {
	return &MetricTypes{types: types}
}

// HandleList handles GET /api/metric-types requests.
func (h *MetricTypes) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	types, err := h.types.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list metric types", xslog.Error(err))
		apperr.WriteError(w, apperr.Internal("internal_error", "failed to list metric types", err))
		return
	}

	logger.DebugContext(ctx, "listed metric types", xslog.Count(len(types)))
	xhttp.WriteOK(w, types)
}

type updateMetricTypeRequest struct {
	Enabled *bool `json:"enabled"`
}

// HandleUpdate handles PATCH /api/metric-types/{id} requests.
func (h *MetricTypes) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		apperr.WriteError(w, apperr.BadRequest("invalid_request", "invalid metric type id"))
		return
	}

	var req updateMetricTypeRequest
	if err := go_json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.WriteError(w, apperr.BadRequest("invalid_request", "invalid JSON body"))
		return
	}
	if req.Enabled == nil {
		apperr.WriteError(w, apperr.BadRequest("invalid_request", "enabled field is required"))
		return
	}

	mt, err := h.types.Get(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load metric type", xslog.Error(err), xslog.MetricTypeID(id))
		apperr.WriteError(w, apperr.Internal("internal_error", "failed to load metric type", err))
		return
	}
	if mt == nil {
		apperr.WriteError(w, apperr.NotFound("not_found", "metric type not found"))
		return
	}

	if err := h.types.SetEnabled(ctx, id, *req.Enabled); err != nil {
		logger.ErrorContext(ctx, "failed to update metric type", xslog.Error(err), xslog.MetricTypeID(id))
		apperr.WriteError(w, apperr.Internal("internal_error", "failed to update metric type", err))
		return
	}

	mt.Enabled = *req.Enabled
	logger.DebugContext(ctx, "updated metric type", xslog.MetricTypeID(id))
	xhttp.WriteOK(w, mt)
}
