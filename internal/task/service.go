// Package task はタスクCRUDのビジネスロジックを提供する。
// すべての操作は認証済みユーザーIDで所有者スコープされる。
package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/taskman/internal/model"
	"github.com/hitoshi/taskman/internal/repository"
	"github.com/hitoshi/taskman/internal/security"
)

// Service はタスク管理のビジネスロジックを提供する。
type Service struct {
	taskRepo  repository.TaskRepository
	sanitizer security.ContentSanitizerService
}

// NewService はServiceを生成する。
func NewService(taskRepo repository.TaskRepository, sanitizer security.ContentSanitizerService) *Service {
	return &Service{
		taskRepo:  taskRepo,
		sanitizer: sanitizer,
	}
}

// List は指定ユーザーが所有するタスク一覧を返す。
func (s *Service) List(ctx context.Context, userID string) ([]*model.Task, error) {
	tasks, err := s.taskRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Create は新規タスクを作成する。
// タイトルはサニタイズ後に空でないことを検証する。説明は省略可能。
func (s *Service) Create(ctx context.Context, userID, title, description string) (*model.Task, error) {
	title = s.sanitizer.Sanitize(title)
	if title == "" {
		return nil, model.NewValidationError("タイトルを入力してください。")
	}

	task := &model.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: s.sanitizer.Sanitize(description),
		IsComplete:  false,
		CreatedAt:   time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	slog.Info("task created",
		slog.String("task_id", task.ID),
		slog.String("user_id", userID),
	)

	return task, nil
}

// Update はタスクを部分更新する。
// nilのフィールドは変更しない。タスクが存在しない場合と
// 他ユーザーの所有である場合のどちらもNotFoundエラーを返し、区別させない。
func (s *Service) Update(ctx context.Context, userID, taskID string, update model.TaskUpdate) (*model.Task, error) {
	if uuid.Validate(taskID) != nil {
		return nil, model.NewTaskNotFoundError(taskID)
	}
	if update.IsEmpty() {
		return nil, model.NewValidationError("更新するフィールドを指定してください。")
	}

	if update.Title != nil {
		title := s.sanitizer.Sanitize(*update.Title)
		if title == "" {
			return nil, model.NewValidationError("タイトルを入力してください。")
		}
		update.Title = &title
	}
	if update.Description != nil {
		description := s.sanitizer.Sanitize(*update.Description)
		update.Description = &description
	}

	task, err := s.taskRepo.UpdatePartial(ctx, taskID, userID, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if task == nil {
		return nil, model.NewTaskNotFoundError(taskID)
	}

	return task, nil
}

// Delete はタスクを削除する。
// 1回のDELETE文で所有者チェックと削除を同時に行い、
// 該当行がない場合はNotFoundエラーを返す。
func (s *Service) Delete(ctx context.Context, userID, taskID string) error {
	if uuid.Validate(taskID) != nil {
		return model.NewTaskNotFoundError(taskID)
	}

	deleted, err := s.taskRepo.DeleteByIDAndUser(ctx, taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !deleted {
		return model.NewTaskNotFoundError(taskID)
	}

	slog.Info("task deleted",
		slog.String("task_id", taskID),
		slog.String("user_id", userID),
	)

	return nil
}
