package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/hitoshi/taskman/internal/metrics"
	"github.com/hitoshi/taskman/internal/model"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	// Register は新規ユーザーを登録する。
	Register(ctx context.Context, username, password string) (*model.User, error)
	// Login は認証情報を検証しトークンを発行する。
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthMetricsRecorder は認証試行メトリクスの記録インターフェース。
type AuthMetricsRecorder interface {
	RecordAuthAttempt(outcome string)
}

// AuthHandler は認証のHTTPハンドラー。
type AuthHandler struct {
	service AuthServiceInterface
	metrics AuthMetricsRecorder
}

// NewAuthHandler はAuthHandlerを生成する。metricsはnilでもよい。
func NewAuthHandler(service AuthServiceInterface, metricsRecorder AuthMetricsRecorder) *AuthHandler {
	return &AuthHandler{
		service: service,
		metrics: metricsRecorder,
	}
}

// registerRequest はユーザー登録リクエストのボディ。
type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginRequest はログインリクエストのボディ。
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userResponse はユーザー情報のAPIレスポンス。
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// registerResponse はユーザー登録成功のレスポンス。
type registerResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

// loginResponse はログイン成功のレスポンス。
type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// apiErrorResponse は統一エラーフォーマットのレスポンス。
type apiErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Action   string `json:"action"`
}

// Register は新規ユーザー登録を処理する。
// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(registerResponse{
		Message: "ユーザーを登録しました。",
		User: userResponse{
			ID:        user.ID,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
		},
	})
}

// Login は認証情報を検証しトークンを発行する。
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		// 認証情報の不一致のみを失敗として数える。
		// バリデーションエラーや内部エラーは認証試行ではない。
		var apiErr *model.APIError
		if errors.As(err, &apiErr) && apiErr.Code == model.ErrCodeInvalidCredentials {
			h.recordAuthAttempt(metrics.AuthOutcomeFailure)
		}
		handleServiceError(w, err)
		return
	}

	h.recordAuthAttempt(metrics.AuthOutcomeSuccess)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(loginResponse{
		Message: "ログインしました。",
		Token:   token,
	})
}

func (h *AuthHandler) recordAuthAttempt(outcome string) {
	if h.metrics != nil {
		h.metrics.RecordAuthAttempt(outcome)
	}
}

// --- ヘルパー関数 ---

// writeAPIErrorResponse は統一エラーフォーマットでエラーレスポンスを書き込む。
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(apiErrorResponse{
		Code:     apiErr.Code,
		Message:  apiErr.Message,
		Category: apiErr.Category,
		Action:   apiErr.Action,
	})
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスコードに変換する。
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		statusCode := mapAPIErrorToHTTPStatus(apiErr)
		writeAPIErrorResponse(w, statusCode, apiErr)
		return
	}

	// APIError以外のエラーは内部サーバーエラーとして扱う
	slog.Error("internal server error", slog.String("error", err.Error()))
	writeAPIErrorResponse(w, http.StatusInternalServerError, &model.APIError{
		Code:     "INTERNAL_ERROR",
		Message:  "内部エラーが発生しました。",
		Category: "system",
		Action:   "しばらく待ってから再度お試しください。",
	})
}

// mapAPIErrorToHTTPStatus はAPIErrorコードからHTTPステータスコードにマッピングする。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeValidation, model.ErrCodeInvalidRequest,
		model.ErrCodeDuplicateUsername, model.ErrCodeInvalidCredentials:
		return http.StatusBadRequest
	case model.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case model.ErrCodeInvalidToken, model.ErrCodeExpiredToken:
		return http.StatusForbidden
	case model.ErrCodeTaskNotFound:
		return http.StatusNotFound
	case model.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
