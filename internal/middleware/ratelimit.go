package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/hitoshi/taskman/internal/model"
)

// RateLimiterConfig はレート制限の設定を保持する。
type RateLimiterConfig struct {
	GeneralRate     rate.Limit    // タスクAPI全般のレート（req/sec）
	GeneralBurst    int           // タスクAPI全般のバーストサイズ
	AuthRate        rate.Limit    // 登録・ログインのレート（req/sec）
	AuthBurst       int           // 登録・ログインのバーストサイズ
	CleanupInterval time.Duration // 期限切れエントリのクリーンアップ間隔
}

// DefaultRateLimiterConfig はデフォルトのレート制限設定を返す。
// 要件: タスクAPI 120 req/min/user、登録・ログイン 10 req/min/IP
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		GeneralRate:     rate.Limit(120.0 / 60.0), // 2 req/sec
		GeneralBurst:    120,
		AuthRate:        rate.Limit(10.0 / 60.0), // ~0.167 req/sec
		AuthBurst:       10,
		CleanupInterval: 5 * time.Minute,
	}
}

// keyLimiter はキーごとのレートリミッターとアクセス時刻を保持する。
type keyLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter はキーごとのレート制限を管理する。
// 認証後のタスクAPIはユーザーID、認証前の登録・ログインは接続元IPをキーとする。
type RateLimiter struct {
	config RateLimiterConfig

	generalMu       sync.Mutex
	generalLimiters map[string]*keyLimiter

	authMu       sync.Mutex
	authLimiters map[string]*keyLimiter

	stopCh chan struct{}
}

// NewRateLimiter は新しいRateLimiterを生成する。
// バックグラウンドで期限切れエントリのクリーンアップを開始する。
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	rl := &RateLimiter{
		config:          config,
		generalLimiters: make(map[string]*keyLimiter),
		authLimiters:    make(map[string]*keyLimiter),
		stopCh:          make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop はクリーンアップのバックグラウンドゴルーチンを停止する。
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// GeneralMiddleware はタスクAPI全般のレート制限ミドルウェアを返す。
// リクエストコンテキストにユーザーIDが含まれている必要がある（認証ミドルウェアの後に配置）。
func (rl *RateLimiter) GeneralMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := UserIDFromContext(r.Context())
			if err != nil {
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
				return
			}

			limiter := rl.getOrCreate(&rl.generalMu, rl.generalLimiters, userID, rl.config.GeneralRate, rl.config.GeneralBurst)

			if !limiter.Allow() {
				writeRateLimitResponse(w, rl.config.GeneralRate)
				slog.Warn("rate limit exceeded",
					slog.String("key", userID),
					slog.String("limit_type", "general"),
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AuthMiddleware は登録・ログイン専用のレート制限ミドルウェアを返す。
// 認証前のエンドポイントのため接続元IPをキーとし、タスクAPIの制限とは独立に動作する。
func (rl *RateLimiter) AuthMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			limiter := rl.getOrCreate(&rl.authMu, rl.authLimiters, key, rl.config.AuthRate, rl.config.AuthBurst)

			if !limiter.Allow() {
				writeRateLimitResponse(w, rl.config.AuthRate)
				slog.Warn("rate limit exceeded",
					slog.String("key", key),
					slog.String("limit_type", "auth"),
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GeneralLimiterCount は現在管理されているタスクAPIリミッターのエントリ数を返す。
// テスト用。
func (rl *RateLimiter) GeneralLimiterCount() int {
	rl.generalMu.Lock()
	defer rl.generalMu.Unlock()
	return len(rl.generalLimiters)
}

// AuthLimiterCount は現在管理されている認証リミッターのエントリ数を返す。
// テスト用。
func (rl *RateLimiter) AuthLimiterCount() int {
	rl.authMu.Lock()
	defer rl.authMu.Unlock()
	return len(rl.authLimiters)
}

// getOrCreate はキーに対応するリミッターを取得または作成する。
func (rl *RateLimiter) getOrCreate(mu *sync.Mutex, limiters map[string]*keyLimiter, key string, r rate.Limit, burst int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	if kl, exists := limiters[key]; exists {
		kl.lastAccess = time.Now()
		return kl.limiter
	}

	limiter := rate.NewLimiter(r, burst)
	limiters[key] = &keyLimiter{
		limiter:    limiter,
		lastAccess: time.Now(),
	}

	return limiter
}

// cleanupLoop はバックグラウンドで期限切れエントリを定期的にクリーンアップする。
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup は最終アクセス時刻がCleanupIntervalの2倍を超えたエントリを削除する。
func (rl *RateLimiter) cleanup() {
	ttl := rl.config.CleanupInterval * 2
	now := time.Now()

	rl.generalMu.Lock()
	for key, kl := range rl.generalLimiters {
		if now.Sub(kl.lastAccess) > ttl {
			delete(rl.generalLimiters, key)
		}
	}
	rl.generalMu.Unlock()

	rl.authMu.Lock()
	for key, kl := range rl.authLimiters {
		if now.Sub(kl.lastAccess) > ttl {
			delete(rl.authLimiters, key)
		}
	}
	rl.authMu.Unlock()
}

// clientIP はリクエストの接続元IPアドレスを返す。
// RemoteAddrのポート部分は除去する。
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// writeRateLimitResponse は429 Too Many Requestsレスポンスを書き込む。
// Retry-Afterヘッダーにはトークンが補充されるまでの推定秒数を設定する。
func writeRateLimitResponse(w http.ResponseWriter, r rate.Limit) {
	retryAfterSec := int(math.Ceil(1.0 / float64(r)))
	if retryAfterSec < 1 {
		retryAfterSec = 1
	}

	w.Header().Set("Retry-After", strconv.Itoa(retryAfterSec))
	WriteErrorResponse(w, http.StatusTooManyRequests, &model.APIError{
		Code:     model.ErrCodeRateLimited,
		Message:  "リクエストが多すぎます。",
		Category: "system",
		Action:   "しばらく待ってから再度お試しください。",
	})
}
