/*
handlers.go - HTTP API handlers for the settlement engine

PURPOSE:
  Exposes the settlement engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to the engine and the store.

ENDPOINTS:
  Settlements:
    POST /api/settlements/calculate   Run one settlement calculation
    GET  /api/settlements/categories  List the seven category names

  Roster:
    GET  /api/couriers                List roster
    POST /api/couriers                Add a courier
    GET  /api/couriers/{id}           Get one courier

  Warehouse feed:
    POST /api/metrics                 Record one courier-day of activity
    PUT  /api/targets                 Upsert a per-day target row

ERROR HANDLING:
  Engine errors map to HTTP statuses by taxonomy:
  - 400: validation failures, unknown category
  - 404: zero records across all requested categories (empty result)
  - 502: metric source failure
  - 500: everything else

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/barq/settlement-engine/settlement"
	"github.com/barq/settlement-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store     *sqlite.Store
	Assembler *settlement.Assembler
}

// NewHandler creates a new handler backed by the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store:     store,
		Assembler: &settlement.Assembler{Source: store},
	}
}

// =============================================================================
// SETTLEMENT HANDLERS
// =============================================================================

// CalculateSettlements runs one settlement calculation.
// POST /api/settlements/calculate
func (h *Handler) CalculateSettlements(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.Assembler.Compute(r.Context(), req.Category, req.Month, req.Year, req.CustomParams)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ListCategories returns the seven category names.
// GET /api/settlements/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, settlement.Categories())
}

// writeEngineError maps the engine error taxonomy to HTTP statuses.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, settlement.ErrValidation):
		writeErrorCode(w, http.StatusBadRequest, "Missing required fields", "validation", err)
	case errors.Is(err, settlement.ErrInvalidCategory):
		writeErrorCode(w, http.StatusBadRequest, "Invalid category", "invalid_category", err)
	case errors.Is(err, settlement.ErrNoResults):
		writeJSON(w, http.StatusNotFound, MessageResponse{Message: "No results found for the given query."})
	case errors.Is(err, settlement.ErrUpstreamFetch):
		writeErrorCode(w, http.StatusBadGateway, "Failed to fetch metric rows", "upstream", err)
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error", err)
	}
}

// =============================================================================
// ROSTER HANDLERS
// =============================================================================

// ListCouriers returns the roster.
// GET /api/couriers
func (h *Handler) ListCouriers(w http.ResponseWriter, r *http.Request) {
	couriers, err := h.Store.ListCouriers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list couriers", err)
		return
	}

	dtos := make([]CourierDTO, len(couriers))
	for i, c := range couriers {
		dtos[i] = toCourierDTO(c)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCourier returns one roster entry.
// GET /api/couriers/{id}
func (h *Handler) GetCourier(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid courier id", err)
		return
	}

	c, err := h.Store.GetCourier(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get courier", err)
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "Courier not found", nil)
		return
	}

	writeJSON(w, http.StatusOK, toCourierDTO(*c))
}

// CreateCourier adds a roster entry.
// POST /api/couriers
func (h *Handler) CreateCourier(w http.ResponseWriter, r *http.Request) {
	var req CreateCourierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.BarqID == 0 || req.Name == "" {
		writeError(w, http.StatusBadRequest, "barq_id and name are required", nil)
		return
	}

	joining, err := time.Parse(settlement.DateLayout, req.JoiningDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid joining_date format (use YYYY-MM-DD)", err)
		return
	}

	c := sqlite.Courier{
		BarqID:      req.BarqID,
		Name:        req.Name,
		IBAN:        req.IBAN,
		IDNumber:    req.IDNumber,
		JoiningDate: joining,
		Status:      req.Status,
		Sponsorship: req.Sponsorship,
		Project:     req.Project,
		Supervisor:  req.Supervisor,
	}
	if err := h.Store.SaveCourier(r.Context(), c); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create courier", err)
		return
	}

	writeJSON(w, http.StatusCreated, toCourierDTO(c))
}

// =============================================================================
// WAREHOUSE FEED HANDLERS
// =============================================================================

// RecordMetric records one courier-day of activity.
// POST /api/metrics
func (h *Handler) RecordMetric(w http.ResponseWriter, r *http.Request) {
	var req MetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	date, err := time.Parse(settlement.DateLayout, req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}
	if req.Orders < 0 || req.Revenue < 0 || req.GasUsage < 0 {
		writeError(w, http.StatusBadRequest, "Metric values must be non-negative", nil)
		return
	}

	entry := sqlite.MetricEntry{
		BarqID:   req.BarqID,
		Date:     date,
		Orders:   req.Orders,
		Revenue:  req.Revenue,
		GasUsage: req.GasUsage,
	}
	if err := h.Store.RecordMetric(r.Context(), entry); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record metric", err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: "Metric recorded"})
}

// SetTargets upserts the target row for one day-of-month.
// PUT /api/targets
func (h *Handler) SetTargets(w http.ResponseWriter, r *http.Request) {
	var req TargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Day < 1 || req.Day > 31 {
		writeError(w, http.StatusBadRequest, "day must be between 1 and 31", nil)
		return
	}

	t := sqlite.TargetRow{
		Day:         req.Day,
		Motorcycle:  req.Motorcycle,
		FoodTrial:   req.FoodTrial,
		FoodInhouse: req.FoodInhouse,
		EcommerceWH: req.EcommerceWH,
		Ecommerce:   req.Ecommerce,
		Ajeer:       req.Ajeer,
	}
	if err := h.Store.SetTargets(r.Context(), t); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to set targets", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Targets updated"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func toCourierDTO(c sqlite.Courier) CourierDTO {
	return CourierDTO{
		BarqID:      c.BarqID,
		Name:        c.Name,
		IBAN:        c.IBAN,
		IDNumber:    c.IDNumber,
		JoiningDate: c.JoiningDate.Format(settlement.DateLayout),
		Status:      c.Status,
		Sponsorship: c.Sponsorship,
		Project:     c.Project,
		Supervisor:  c.Supervisor,
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func writeErrorCode(w http.ResponseWriter, status int, message, code string, err error) {
	resp := ErrorResponse{Error: message, Code: code}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
