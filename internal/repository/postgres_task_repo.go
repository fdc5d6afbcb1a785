package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/hitoshi/taskman/internal/model"
)

// PostgresTaskRepo はPostgreSQLを使用したタスクリポジトリ。
type PostgresTaskRepo struct {
	db *sql.DB
}

// NewPostgresTaskRepo はPostgresTaskRepoを生成する。
func NewPostgresTaskRepo(db *sql.DB) *PostgresTaskRepo {
	return &PostgresTaskRepo{db: db}
}

// ListByUserID は指定ユーザーが所有するタスク一覧を返す。
// 作成順で返す（created_atの同時刻はIDで安定化）。
func (r *PostgresTaskRepo) ListByUserID(ctx context.Context, userID string) ([]*model.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, description, is_complete, created_at
		 FROM tasks
		 WHERE user_id = $1
		 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*model.Task{}
	for rows.Next() {
		task := &model.Task{}
		if err := rows.Scan(
			&task.ID, &task.UserID, &task.Title,
			&task.Description, &task.IsComplete, &task.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// Create はタスクを作成する。
func (r *PostgresTaskRepo) Create(ctx context.Context, task *model.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, user_id, title, description, is_complete, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		task.ID, task.UserID, task.Title, task.Description, task.IsComplete, task.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return nil
}

// UpdatePartial はタスクIDと所有者IDで絞り込み、nilでないフィールドのみを更新する。
// 1回のUPDATE文で更新と所有者チェックを同時に行い、該当行がない場合はnilを返す。
func (r *PostgresTaskRepo) UpdatePartial(ctx context.Context, taskID, userID string, update model.TaskUpdate) (*model.Task, error) {
	setClause := []string{}
	values := []any{}
	param := 1

	if update.Title != nil {
		setClause = append(setClause, fmt.Sprintf("title = $%d", param))
		values = append(values, *update.Title)
		param++
	}
	if update.Description != nil {
		setClause = append(setClause, fmt.Sprintf("description = $%d", param))
		values = append(values, *update.Description)
		param++
	}
	if update.IsComplete != nil {
		setClause = append(setClause, fmt.Sprintf("is_complete = $%d", param))
		values = append(values, *update.IsComplete)
		param++
	}

	if len(setClause) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	values = append(values, taskID, userID)
	query := fmt.Sprintf(
		`UPDATE tasks SET %s
		 WHERE id = $%d AND user_id = $%d
		 RETURNING id, user_id, title, description, is_complete, created_at`,
		strings.Join(setClause, ", "), param, param+1,
	)

	task := &model.Task{}
	err := r.db.QueryRowContext(ctx, query, values...).Scan(
		&task.ID, &task.UserID, &task.Title,
		&task.Description, &task.IsComplete, &task.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteByIDAndUser はタスクIDと所有者IDで絞り込んで1回の文で削除する。
func (r *PostgresTaskRepo) DeleteByIDAndUser(ctx context.Context, taskID, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`,
		taskID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// compile-time interface check
var _ TaskRepository = (*PostgresTaskRepo)(nil)
