// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"
	"errors"

	"github.com/hitoshi/taskman/internal/model"
)

// ErrDuplicateUsername はユーザー名の一意制約違反を表す。
// 事前チェックをすり抜けた同時登録の競合もこのエラーに正規化される。
var ErrDuplicateUsername = errors.New("username already exists")

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// Create はユーザーを作成する。
	// ユーザー名が既に存在する場合はErrDuplicateUsernameを返す。
	Create(ctx context.Context, user *model.User) error

	// FindByUsername は指定ユーザー名のユーザーを取得する。見つからない場合はnilを返す。
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// TaskRepository はタスクデータの永続化インターフェース。
// 読み取り・更新・削除はすべて所有者IDで絞り込み、他ユーザーのタスクには到達できない。
type TaskRepository interface {
	// ListByUserID は指定ユーザーが所有するタスク一覧を返す。
	ListByUserID(ctx context.Context, userID string) ([]*model.Task, error)

	// Create はタスクを作成する。
	Create(ctx context.Context, task *model.Task) error

	// UpdatePartial はタスクIDと所有者IDで絞り込み、nilでないフィールドのみを更新する。
	// 該当行が存在しない場合（未存在または他ユーザーの所有）はnilを返す。
	UpdatePartial(ctx context.Context, taskID, userID string, update model.TaskUpdate) (*model.Task, error)

	// DeleteByIDAndUser はタスクIDと所有者IDで絞り込んで1回の文で削除する。
	// 削除された場合はtrue、該当行が存在しない場合はfalseを返す。
	DeleteByIDAndUser(ctx context.Context, taskID, userID string) (bool, error)
}
