package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/response"
)

type WorkerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type workerHandlerImpl struct {
	workerService worker.Service
}

func NewWorkerHandler(workerService worker.Service) WorkerHandler {
	return &workerHandlerImpl{
		workerService: workerService,
	}
}

// Create implements WorkerHandler.
func (h *workerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req worker.CreateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create worker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	workerResponse, err := h.workerService.CreateWorker(r.Context(), actor, req)
	if err != nil {
		slog.Error("Create worker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Worker created successfully", "worker_id", workerResponse.ID)
	response.Created(w, "Worker created successfully", workerResponse)
}

// Get implements WorkerHandler.
func (h *workerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	workerID := chi.URLParam(r, "id")
	workerResponse, err := h.workerService.GetWorker(r.Context(), actor, workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workerResponse)
}

// List implements WorkerHandler.
func (h *workerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := r.URL.Query()
	filter := worker.Filter{
		Role:   query.Get("role"),
		Search: query.Get("search"),
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.PageSize, _ = strconv.Atoi(query.Get("page_size"))

	listResponse, err := h.workerService.ListWorkers(r.Context(), actor, filter)
	if err != nil {
		slog.Error("List workers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	meta := buildMeta(listResponse.Page, listResponse.PageSize, listResponse.TotalCount)
	response.SuccessWithMeta(w, listResponse.Workers, meta)
}

// Deactivate implements WorkerHandler.
func (h *workerHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	workerID := chi.URLParam(r, "id")
	if err := h.workerService.DeactivateWorker(r.Context(), actor, workerID); err != nil {
		slog.Error("Deactivate worker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Worker deactivated successfully", "worker_id", workerID)
	response.SuccessWithMessage(w, "Worker deactivated successfully", nil)
}
