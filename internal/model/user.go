// Package model はドメインモデルを定義する。
package model

import "time"

// User はサービス利用ユーザーを表す。
// PasswordHashにはbcryptダイジェストのみを保持し、平文パスワードは一切保持しない。
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
