package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/assignment"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/response"
)

type AssignmentHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	Unassign(w http.ResponseWriter, r *http.Request)
	ListByShift(w http.ResponseWriter, r *http.Request)
	Book(w http.ResponseWriter, r *http.Request)
	Unbook(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
}

type assignmentHandlerImpl struct {
	assignmentService assignment.Service
	bookingService    assignment.BookingService
	completionService assignment.CompletionService
}

func NewAssignmentHandler(
	assignmentService assignment.Service,
	bookingService assignment.BookingService,
	completionService assignment.CompletionService,
) AssignmentHandler {
	return &assignmentHandlerImpl{
		assignmentService: assignmentService,
		bookingService:    bookingService,
		completionService: completionService,
	}
}

// Assign implements AssignmentHandler.
func (h *assignmentHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req assignment.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assign decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ShiftID = chi.URLParam(r, "id")

	assignmentResponse, err := h.assignmentService.Assign(r.Context(), actor, req)
	if err != nil {
		slog.Error("Assign service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Worker assigned to shift", "shift_id", req.ShiftID, "worker_id", req.WorkerID)
	response.Created(w, "Worker assigned successfully", assignmentResponse)
}

// Unassign implements AssignmentHandler.
func (h *assignmentHandlerImpl) Unassign(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := assignment.UnassignRequest{
		ShiftID:  chi.URLParam(r, "id"),
		WorkerID: chi.URLParam(r, "worker_id"),
	}

	if err := h.assignmentService.Unassign(r.Context(), actor, req); err != nil {
		slog.Error("Unassign service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Worker unassigned from shift", "shift_id", req.ShiftID, "worker_id", req.WorkerID)
	response.SuccessWithMessage(w, "Worker unassigned successfully", nil)
}

// ListByShift implements AssignmentHandler.
func (h *assignmentHandlerImpl) ListByShift(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	shiftID := chi.URLParam(r, "id")
	listResponse, err := h.assignmentService.ListByShift(r.Context(), actor, shiftID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// Book implements AssignmentHandler.
func (h *assignmentHandlerImpl) Book(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	shiftID := chi.URLParam(r, "id")
	bookingResponse, err := h.bookingService.Book(r.Context(), actor, shiftID)
	if err != nil {
		slog.Error("Book shift service error", "error", err, "shift_id", shiftID, "worker_id", actor.WorkerID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift booked successfully", "shift_id", shiftID, "worker_id", actor.WorkerID)
	response.Created(w, "Shift booked successfully", bookingResponse)
}

// Unbook implements AssignmentHandler.
func (h *assignmentHandlerImpl) Unbook(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	shiftID := chi.URLParam(r, "id")
	if err := h.bookingService.Unbook(r.Context(), actor, shiftID); err != nil {
		slog.Error("Unbook shift service error", "error", err, "shift_id", shiftID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Booking canceled", "shift_id", shiftID, "worker_id", actor.WorkerID)
	response.SuccessWithMessage(w, "Booking canceled successfully", nil)
}

// Complete implements AssignmentHandler.
func (h *assignmentHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req assignment.CompleteShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		slog.Error("Complete shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ShiftID = chi.URLParam(r, "id")
	req.WorkerID = chi.URLParam(r, "worker_id")

	completionResponse, err := h.completionService.Complete(r.Context(), actor, req)
	if err != nil {
		slog.Error("Complete shift service error", "error", err, "shift_id", req.ShiftID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift signed off", "shift_id", req.ShiftID, "shift_completed", completionResponse.ShiftCompleted)
	response.SuccessWithMessage(w, "Shift signed off successfully", completionResponse)
}
