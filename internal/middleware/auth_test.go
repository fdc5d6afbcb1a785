package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitoshi/taskman/internal/model"
)

// --- モック定義 ---

type mockTokenVerifier struct {
	verifyFn func(tokenString string) (string, error)
}

func (m *mockTokenVerifier) Verify(tokenString string) (string, error) {
	if m.verifyFn != nil {
		return m.verifyFn(tokenString)
	}
	return "", model.NewInvalidTokenError()
}

// --- テスト ---

func TestAuthMiddleware_ValidToken_InjectsUserID(t *testing.T) {
	verifier := &mockTokenVerifier{
		verifyFn: func(tokenString string) (string, error) {
			if tokenString == "valid-token" {
				return "user-123", nil
			}
			return "", model.NewInvalidTokenError()
		},
	}

	mw := NewAuthMiddleware(verifier)

	var capturedUserID string
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := UserIDFromContext(r.Context())
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		capturedUserID = userID
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if capturedUserID != "user-123" {
		t.Errorf("userID = %q, want %q", capturedUserID, "user-123")
	}
}

func TestAuthMiddleware_NoAuthorizationHeader_Returns401(t *testing.T) {
	mw := NewAuthMiddleware(&mockTokenVerifier{})

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}

	var body ErrorResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Code != model.ErrCodeUnauthorized {
		t.Errorf("code = %q, want %q", body.Code, model.ErrCodeUnauthorized)
	}
}

func TestAuthMiddleware_MalformedHeader_Returns401(t *testing.T) {
	mw := NewAuthMiddleware(&mockTokenVerifier{})

	for _, header := range []string{"valid-token", "Basic dXNlcjpwYXNz", "Bearer ", "Bearer"} {
		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("handler should not be called for header %q", header)
		}))

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want %d", header, w.Result().StatusCode, http.StatusUnauthorized)
		}
	}
}

func TestAuthMiddleware_InvalidToken_Returns403(t *testing.T) {
	verifier := &mockTokenVerifier{
		verifyFn: func(tokenString string) (string, error) {
			return "", model.NewInvalidTokenError()
		},
	}

	mw := NewAuthMiddleware(verifier)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer tampered-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusForbidden)
	}

	var body ErrorResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Code != model.ErrCodeInvalidToken {
		t.Errorf("code = %q, want %q", body.Code, model.ErrCodeInvalidToken)
	}
}

func TestAuthMiddleware_ExpiredToken_Returns403WithExpiredCode(t *testing.T) {
	verifier := &mockTokenVerifier{
		verifyFn: func(tokenString string) (string, error) {
			return "", model.NewExpiredTokenError()
		},
	}

	mw := NewAuthMiddleware(verifier)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusForbidden)
	}

	var body ErrorResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Code != model.ErrCodeExpiredToken {
		t.Errorf("code = %q, want %q", body.Code, model.ErrCodeExpiredToken)
	}
}

func TestUserIDFromContext_NotSet_ReturnsError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)

	_, err := UserIDFromContext(req.Context())
	if err == nil {
		t.Error("expected error for missing user ID, got nil")
	}
}

func TestContextWithUserID_RoundTrip(t *testing.T) {
	ctx := ContextWithUserID(context.Background(), "user-123")

	userID, err := UserIDFromContext(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("userID = %q, want %q", userID, "user-123")
	}
}
