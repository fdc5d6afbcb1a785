// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/hitoshi/taskman/internal/model"
)

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// userIDContextKey はリクエストコンテキストにユーザーIDを格納するためのキー。
var userIDContextKey = contextKey("user_id")

// userIDRecorderKey はリクエストコンテキストにuserIDRecorderを格納するためのキー。
var userIDRecorderKey = contextKey("user_id_recorder")

// userIDRecorder はチェーン下流で確定した認証済みユーザーIDを
// 上流のロギングミドルウェアへ伝えるためのホルダー。
// ロギングミドルウェアが認証より先に実行されるため、コンテキスト値の
// 受け渡しだけではリクエストログにユーザーIDを載せられない。
type userIDRecorder struct {
	userID string
}

// TokenVerifier はトークンの検証に必要なインターフェース。
// auth.TokenIssuerの部分集合として定義する。
type TokenVerifier interface {
	// Verify はトークンを検証し、埋め込まれたユーザーIDを返す。
	Verify(tokenString string) (string, error)
}

// NewAuthMiddleware はAuthorizationヘッダーからBearerトークンを読み取り、
// 検証するミドルウェアを返す。
// 認証済みユーザーIDをリクエストコンテキストに注入する。
// ヘッダー未提示には401、署名不一致・形式不正・期限切れには403を返し、
// いずれの場合も後続ハンドラーは実行されない。
func NewAuthMiddleware(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. AuthorizationヘッダーからBearerトークンを取得
			token, ok := bearerToken(r)
			if !ok {
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
				return
			}

			// 2. トークンの有効性を検証
			userID, err := verifier.Verify(token)
			if err != nil {
				var apiErr *model.APIError
				if errors.As(err, &apiErr) {
					WriteErrorResponse(w, http.StatusForbidden, apiErr)
					return
				}
				WriteErrorResponse(w, http.StatusForbidden, model.NewInvalidTokenError())
				return
			}

			// 3. 認証済みユーザーIDをコンテキストに注入
			// 上流にロギングミドルウェアがいればホルダーにも記録する
			if rec, ok := r.Context().Value(userIDRecorderKey).(*userIDRecorder); ok {
				rec.userID = userID
			}
			ctx := context.WithValue(r.Context(), userIDContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken はAuthorizationヘッダーから "Bearer <token>" 形式のトークンを取り出す。
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

// UserIDFromContext はリクエストコンテキストからユーザーIDを取得する。
// 認証ミドルウェアを通過したリクエストでのみ有効。
func UserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}

// ContextWithUserID はコンテキストにユーザーIDを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}
