// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, task, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeDuplicateUsername  = "DUPLICATE_USERNAME"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidToken       = "INVALID_TOKEN"
	ErrCodeExpiredToken       = "EXPIRED_TOKEN"
	ErrCodeTaskNotFound       = "TASK_NOT_FOUND"
	ErrCodeRateLimited        = "RATE_LIMITED"
)

// NewValidationError は必須フィールド未入力エラーを生成する。
func NewValidationError(message string) *APIError {
	return &APIError{
		Code:     ErrCodeValidation,
		Message:  message,
		Category: "validation",
		Action:   "入力内容を確認して再度お試しください。",
	}
}

// NewInvalidRequestError はリクエストボディ解析失敗エラーを生成する。
func NewInvalidRequestError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  "リクエストボディの解析に失敗しました。",
		Category: "validation",
		Action:   "正しいJSON形式でリクエストしてください。",
	}
}

// NewDuplicateUsernameError はユーザー名重複エラーを生成する。
func NewDuplicateUsernameError(username string) *APIError {
	return &APIError{
		Code:     ErrCodeDuplicateUsername,
		Message:  fmt.Sprintf("このユーザー名は既に使用されています: %s", username),
		Category: "validation",
		Action:   "別のユーザー名で登録してください。",
	}
}

// NewInvalidCredentialsError は認証失敗エラーを生成する。
// ユーザー不存在とパスワード不一致のどちらでも同一内容を返し、原因を区別させない。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "ユーザー名またはパスワードが正しくありません。",
		Category: "auth",
		Action:   "ユーザー名とパスワードを確認して再度お試しください。",
	}
}

// NewUnauthorizedError は認証情報未提示エラーを生成する。
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  "認証が必要です。",
		Category: "auth",
		Action:   "ログインしてトークンを取得してください。",
	}
}

// NewInvalidTokenError はトークン検証失敗エラーを生成する。
func NewInvalidTokenError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidToken,
		Message:  "トークンが無効です。",
		Category: "auth",
		Action:   "再度ログインしてトークンを取得し直してください。",
	}
}

// NewExpiredTokenError はトークン期限切れエラーを生成する。
func NewExpiredTokenError() *APIError {
	return &APIError{
		Code:     ErrCodeExpiredToken,
		Message:  "トークンの有効期限が切れています。",
		Category: "auth",
		Action:   "再度ログインしてトークンを取得し直してください。",
	}
}

// NewTaskNotFoundError はタスク未検出エラーを生成する。
// タスクが存在しない場合と他ユーザーの所有である場合のどちらでも同一内容を返す。
func NewTaskNotFoundError(taskID string) *APIError {
	return &APIError{
		Code:     ErrCodeTaskNotFound,
		Message:  fmt.Sprintf("指定されたタスクが見つかりません: %s", taskID),
		Category: "task",
		Action:   "タスクIDを確認してください。",
	}
}
