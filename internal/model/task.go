// Package model はドメインモデルを定義する。
package model

import "time"

// Task はユーザーが所有するタスクを表す。
// 1つのタスクは必ず1人のユーザーに所有され、所有者以外からは参照も変更もできない。
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	IsComplete  bool
	CreatedAt   time.Time
}

// TaskUpdate はタスクの部分更新内容を表す。
// nilのフィールドは変更せず、既存の値を維持する。
type TaskUpdate struct {
	Title       *string
	Description *string
	IsComplete  *bool
}

// IsEmpty は更新対象のフィールドが1つも指定されていない場合にtrueを返す。
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.IsComplete == nil
}
