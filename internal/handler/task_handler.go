package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/taskman/internal/middleware"
	"github.com/hitoshi/taskman/internal/model"
)

// TaskServiceInterface はタスクハンドラーが必要とするサービスインターフェース。
type TaskServiceInterface interface {
	// List はユーザーのタスク一覧を返す。
	List(ctx context.Context, userID string) ([]*model.Task, error)
	// Create は新しいタスクを作成する。
	Create(ctx context.Context, userID, title, description string) (*model.Task, error)
	// Update はタスクを部分更新する。
	Update(ctx context.Context, userID, taskID string, update model.TaskUpdate) (*model.Task, error)
	// Delete はタスクを削除する。
	Delete(ctx context.Context, userID, taskID string) error
}

// TaskMetricsRecorder はタスク作成メトリクスの記録インターフェース。
type TaskMetricsRecorder interface {
	RecordTaskCreated()
}

// TaskHandler はタスク管理のHTTPハンドラー。
type TaskHandler struct {
	service TaskServiceInterface
	metrics TaskMetricsRecorder
}

// NewTaskHandler はTaskHandlerを生成する。metricsはnilでもよい。
func NewTaskHandler(service TaskServiceInterface, metricsRecorder TaskMetricsRecorder) *TaskHandler {
	return &TaskHandler{
		service: service,
		metrics: metricsRecorder,
	}
}

// createTaskRequest はタスク作成リクエストのボディ。
type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// updateTaskRequest はタスク部分更新リクエストのボディ。
// 省略されたフィールドは変更しない。
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsComplete  *bool   `json:"is_complete"`
}

// taskResponse はタスク情報のAPIレスポンス。
type taskResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsComplete  bool      `json:"is_complete"`
	CreatedAt   time.Time `json:"created_at"`
}

// createTaskResponse はタスク作成成功のレスポンス。
type createTaskResponse struct {
	Message string       `json:"message"`
	Task    taskResponse `json:"task"`
}

// deleteTaskResponse はタスク削除成功のレスポンス。
type deleteTaskResponse struct {
	Message string `json:"message"`
}

// ListTasks はユーザーのタスク一覧を返す。
// GET /tasks
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	tasks, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// タスクがない場合も空配列を返す
	results := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		results = append(results, toTaskResponse(t))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// CreateTask は新しいタスクを作成する。
// POST /tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
		return
	}

	task, err := h.service.Create(r.Context(), userID, req.Title, req.Description)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordTaskCreated()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(createTaskResponse{
		Message: "タスクを作成しました。",
		Task:    toTaskResponse(task),
	})
}

// UpdateTask はタスクを部分更新する。
// PUT /tasks/:id
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	taskID := chi.URLParam(r, "id")

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
		return
	}

	update := model.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		IsComplete:  req.IsComplete,
	}

	task, err := h.service.Update(r.Context(), userID, taskID, update)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toTaskResponse(task))
}

// DeleteTask はタスクを削除する。
// DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	taskID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), userID, taskID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(deleteTaskResponse{
		Message: "タスクを削除しました。",
	})
}

// toTaskResponse はmodel.TaskからAPIレスポンスに変換する。
func toTaskResponse(task *model.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		IsComplete:  task.IsComplete,
		CreatedAt:   task.CreatedAt,
	}
}
