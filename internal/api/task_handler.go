package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/phrazzld/tasker-api/internal/api/shared"
	"github.com/phrazzld/tasker-api/internal/domain"
	"github.com/phrazzld/tasker-api/internal/platform/logger"
	"github.com/phrazzld/tasker-api/internal/store"
)

// taskNotFoundMessage is the single message for both "task does not
// exist" and "task belongs to someone else". Keeping the two cases
// indistinguishable prevents probing for other users' task IDs.
const taskNotFoundMessage = "Task not found or not authorized"

// TaskHandler handles task CRUD and listing. Every route it serves
// sits behind the auth middleware, so the owner identity is always
// available from the request context.
type TaskHandler struct {
	taskStore store.TaskStore
	validator *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore) *TaskHandler {
	return &TaskHandler{
		taskStore: taskStore,
		validator: validator.New(),
	}
}

// Create handles POST /api/tasks/.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	ownerID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	var req CreateTaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err))
		return
	}

	task, err := domain.NewTask(ownerID, req.Title, req.Description, req.Status)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err))
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		log.Error("failed to create task", "error", err, "user_id", ownerID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create task", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// List handles GET /api/tasks/?page&limit&sortBy&orderBy.
// Parameters are clamped to safe bounds; unknown sort fields fall back
// to createdAt.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	ownerID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	params := listParamsFromQuery(r)

	tasks, total, err := h.taskStore.List(r.Context(), ownerID, params)
	if err != nil {
		log.Error("failed to list tasks", "error", err, "user_id", ownerID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list tasks", err)
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + params.Limit - 1) / params.Limit
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListTasksResponse{
		Tasks:       tasks,
		CurrentPage: params.Page,
		TotalPages:  totalPages,
		TotalTasks:  total,
	})
}

// Update handles PUT /api/tasks/{id}.
// A task that is absent or owned by another user yields the same 401.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	ownerID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		// A malformed ID is treated like an unknown one.
		shared.RespondWithError(w, r, http.StatusUnauthorized, taskNotFoundMessage)
		return
	}

	var req UpdateTaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err))
		return
	}

	task := h.loadOwnedTask(w, r, taskID, ownerID)
	if task == nil {
		return // response already written by loadOwnedTask
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, taskNotFoundMessage)
			return
		}
		log.Error("failed to update task", "error", err, "task_id", task.ID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to update task", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Success: "Task has been updated",
	})
}

// Delete handles DELETE /api/tasks/{id}.
// Same ownership gate as Update.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	ownerID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, taskNotFoundMessage)
		return
	}

	task := h.loadOwnedTask(w, r, taskID, ownerID)
	if task == nil {
		return
	}

	if err := h.taskStore.Delete(r.Context(), task.ID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, taskNotFoundMessage)
			return
		}
		log.Error("failed to delete task", "error", err, "task_id", task.ID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to delete task", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Success: "Task has been deleted",
	})
}

// loadOwnedTask fetches the task and checks ownership. On any failure
// it writes the appropriate response and returns nil: absent and
// foreign tasks both produce the conflated 401, store failures produce
// a 500.
func (h *TaskHandler) loadOwnedTask(
	w http.ResponseWriter,
	r *http.Request,
	taskID, ownerID uuid.UUID,
) *domain.Task {
	log := logger.FromContext(r.Context())

	task, err := h.taskStore.GetByID(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, taskNotFoundMessage)
			return nil
		}
		log.Error("failed to load task", "error", err, "task_id", taskID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to load task", err)
		return nil
	}

	if !task.IsOwnedBy(ownerID) {
		shared.RespondWithError(w, r, http.StatusUnauthorized, taskNotFoundMessage)
		return nil
	}

	return task
}

// listParamsFromQuery parses pagination and sorting parameters from
// the query string, applying defaults for anything absent or
// unparsable. Clamping happens in ListParams.Normalize.
func listParamsFromQuery(r *http.Request) store.ListParams {
	q := r.URL.Query()

	params := store.ListParams{
		Page:    store.DefaultPage,
		Limit:   store.DefaultLimit,
		SortBy:  q.Get("sortBy"),
		OrderBy: q.Get("orderBy"),
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		params.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		params.Limit = limit
	}

	return params.Normalize()
}
