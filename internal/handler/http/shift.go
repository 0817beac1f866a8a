package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.Service
}

func NewShiftHandler(shiftService shift.Service) ShiftHandler {
	return &shiftHandlerImpl{
		shiftService: shiftService,
	}
}

// Create implements ShiftHandler.
func (h *shiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	shiftResponse, err := h.shiftService.CreateShift(r.Context(), actor, req)
	if err != nil {
		slog.Error("Create shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift created successfully", "shift_id", shiftResponse.ID, "code", shiftResponse.Code)
	response.Created(w, "Shift created successfully", shiftResponse)
}

// Get implements ShiftHandler.
func (h *shiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	shiftID := chi.URLParam(r, "id")
	shiftResponse, err := h.shiftService.GetShift(r.Context(), actor, shiftID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shiftResponse)
}

// List implements ShiftHandler.
func (h *shiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := r.URL.Query()
	filter := shift.Filter{
		Status:   query.Get("status"),
		Role:     query.Get("role"),
		DateFrom: query.Get("date_from"),
		DateTo:   query.Get("date_to"),
		Search:   query.Get("search"),
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.PageSize, _ = strconv.Atoi(query.Get("page_size"))

	listResponse, err := h.shiftService.ListShifts(r.Context(), actor, filter)
	if err != nil {
		slog.Error("List shifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	meta := buildMeta(listResponse.Page, listResponse.PageSize, listResponse.TotalCount)
	response.SuccessWithMeta(w, listResponse.Shifts, meta)
}

// Update implements ShiftHandler.
func (h *shiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	shiftResponse, err := h.shiftService.UpdateShift(r.Context(), actor, req)
	if err != nil {
		slog.Error("Update shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift updated successfully", "shift_id", shiftResponse.ID)
	response.SuccessWithMessage(w, "Shift updated successfully", shiftResponse)
}

// Delete implements ShiftHandler.
func (h *shiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	shiftID := chi.URLParam(r, "id")
	if err := h.shiftService.DeleteShift(r.Context(), actor, shiftID); err != nil {
		slog.Error("Delete shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift deleted successfully", "shift_id", shiftID)
	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

func buildMeta(page, pageSize int, totalItems int64) *response.Meta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	}
	return &response.Meta{
		Page:       page,
		Limit:      pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
