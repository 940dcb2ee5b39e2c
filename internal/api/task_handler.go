package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taskslite/tasks-lite-api/internal/api/shared"
	"github.com/taskslite/tasks-lite-api/internal/domain"
	"github.com/taskslite/tasks-lite-api/internal/platform/logger"
	"github.com/taskslite/tasks-lite-api/internal/store"
)

// TaskHandler handles task-related HTTP requests. Every operation is scoped
// to the authenticated owner.
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_handler")),
	}
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, ok := CurrentUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Title and description are required")
		return
	}

	task, err := domain.NewTask(req.Title, req.Description, user.ID)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		log.Error("failed to create task", "error", err, "user_id", user.ID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create task", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, taskToResponse(task))
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, ok := CurrentUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	tasks, err := h.taskStore.ListByOwner(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to list tasks", "error", err, "user_id", user.ID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}

	shared.RespondWithCount(w, r, http.StatusOK, tasksToResponse(tasks), len(tasks))
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	id, ok := parseTaskID(chi.URLParam(r, "id"))
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), id, user.ID)
	if err != nil {
		h.respondTaskError(w, r, err, user.ID)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, taskToResponse(task))
}

// Update handles PUT /api/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	id, ok := parseTaskID(chi.URLParam(r, "id"))
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := h.taskStore.Update(r.Context(), id, user.ID, store.UpdateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.respondTaskError(w, r, err, user.ID)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, taskToResponse(task))
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	id, ok := parseTaskID(chi.URLParam(r, "id"))
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	if err := h.taskStore.Delete(r.Context(), id, user.ID); err != nil {
		h.respondTaskError(w, r, err, user.ID)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, "Task deleted successfully")
}

// respondTaskError renders store errors from task operations. Not-found and
// invalid-status map to their well-known messages; anything else is a 500
// with the detail kept out of the response.
func (h *TaskHandler) respondTaskError(w http.ResponseWriter, r *http.Request, err error, userID any) {
	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
	case errors.Is(err, domain.ErrInvalidStatus):
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid status")
	default:
		log := logger.FromContextOrDefault(r.Context(), h.logger)
		log.Error("task operation failed", "error", err, "user_id", userID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "An unexpected error occurred", err)
	}
}
