package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/performance"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByShift(w http.ResponseWriter, r *http.Request)
	ListByWorker(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.Service
}

func NewPerformanceHandler(performanceService performance.Service) PerformanceHandler {
	return &performanceHandlerImpl{
		performanceService: performanceService,
	}
}

// Create implements PerformanceHandler.
func (h *performanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req performance.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ShiftID = chi.URLParam(r, "id")

	reviewResponse, err := h.performanceService.CreateReview(r.Context(), actor, req)
	if err != nil {
		slog.Error("Create review service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Performance review created", "shift_id", req.ShiftID, "worker_id", req.WorkerID)
	response.Created(w, "Performance review created successfully", reviewResponse)
}

// ListByShift implements PerformanceHandler.
func (h *performanceHandlerImpl) ListByShift(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	shiftID := chi.URLParam(r, "id")
	listResponse, err := h.performanceService.ListByShift(r.Context(), actor, shiftID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// ListByWorker implements PerformanceHandler.
func (h *performanceHandlerImpl) ListByWorker(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	workerID := chi.URLParam(r, "id")
	listResponse, err := h.performanceService.ListByWorker(r.Context(), actor, workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}
