package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func testRateLimiterConfig(burst int) RateLimiterConfig {
	return RateLimiterConfig{
		GeneralRate:     rate.Limit(0.001), // テスト中に補充されない低レート
		GeneralBurst:    burst,
		AuthRate:        rate.Limit(0.001),
		AuthBurst:       burst,
		CleanupInterval: time.Hour,
	}
}

func TestRateLimiter_General_AllowsUpToBurst(t *testing.T) {
	rl := NewRateLimiter(testRateLimiterConfig(3))
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req = req.WithContext(ContextWithUserID(req.Context(), "user-123"))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i+1, w.Result().StatusCode, http.StatusOK)
		}
	}

	// バーストを超えた4回目は429
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req = req.WithContext(ContextWithUserID(req.Context(), "user-123"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusTooManyRequests)
	}
	if resp.Header.Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

func TestRateLimiter_General_SeparateUsersSeparateBuckets(t *testing.T) {
	rl := NewRateLimiter(testRateLimiterConfig(1))
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, userID := range []string{"user-a", "user-b"} {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req = req.WithContext(ContextWithUserID(req.Context(), userID))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("user %s: status = %d, want %d", userID, w.Result().StatusCode, http.StatusOK)
		}
	}

	if rl.GeneralLimiterCount() != 2 {
		t.Errorf("limiter count = %d, want 2", rl.GeneralLimiterCount())
	}
}

func TestRateLimiter_General_NoUserID_Returns401(t *testing.T) {
	rl := NewRateLimiter(testRateLimiterConfig(1))
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusUnauthorized)
	}
}

func TestRateLimiter_Auth_KeyedByClientIP(t *testing.T) {
	rl := NewRateLimiter(testRateLimiterConfig(1))
	defer rl.Stop()

	handler := rl.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// 同一IPからの2回目はバースト1を超える
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "203.0.113.1:50000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("first request: status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "203.0.113.1:50001"
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Result().StatusCode != http.StatusTooManyRequests {
		t.Errorf("second request same IP: status = %d, want %d", w.Result().StatusCode, http.StatusTooManyRequests)
	}

	// 別IPは独立したバケットを持つ
	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "203.0.113.2:50000"
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("other IP: status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}
}

func TestRateLimiter_Cleanup_RemovesStaleEntries(t *testing.T) {
	cfg := testRateLimiterConfig(1)
	cfg.CleanupInterval = 10 * time.Millisecond
	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	rl.getOrCreate(&rl.generalMu, rl.generalLimiters, "user-123", cfg.GeneralRate, cfg.GeneralBurst)
	if rl.GeneralLimiterCount() != 1 {
		t.Fatalf("limiter count = %d, want 1", rl.GeneralLimiterCount())
	}

	// 最終アクセスをTTL超過に偽装してクリーンアップを直接実行
	rl.generalMu.Lock()
	rl.generalLimiters["user-123"].lastAccess = time.Now().Add(-time.Hour)
	rl.generalMu.Unlock()

	rl.cleanup()

	if rl.GeneralLimiterCount() != 0 {
		t.Errorf("limiter count after cleanup = %d, want 0", rl.GeneralLimiterCount())
	}
}
