package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/taskman/internal/metrics"
	"github.com/hitoshi/taskman/internal/middleware"
)

// DBPinger はヘルスチェックが必要とするデータベース接続確認のインターフェース。
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Logger            *slog.Logger
	TokenVerifier     middleware.TokenVerifier
	RateLimiter       *middleware.RateLimiter
	CORSAllowedOrigin string

	// サービス
	AuthService AuthServiceInterface
	TaskService TaskServiceInterface

	// 運用
	DB               DBPinger
	MetricsCollector *metrics.Collector
	MetricsGatherer  prometheus.Gatherer
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → SecurityHeaders → CORS → Logging → Metrics
//
// 認証ルート（/api/auth/*）はIP単位のレート制限のみを適用し、
// タスクルート（/tasks/*）はBearerトークン検証とユーザー単位のレート制限を適用する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	if deps.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	}
	if deps.MetricsCollector != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.MetricsCollector))
	}

	authHandler := NewAuthHandler(deps.AuthService, authMetricsOrNil(deps.MetricsCollector))
	taskHandler := NewTaskHandler(deps.TaskService, taskMetricsOrNil(deps.MetricsCollector))

	// --- 認証不要のルート ---

	r.Route("/api/auth", func(r chi.Router) {
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.AuthMiddleware())
		}
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// ヘルスチェック
	r.Get("/health", NewHealthHandler(deps.DB))

	// Prometheusスクレイプ
	if deps.MetricsGatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.MetricsGatherer))
	}

	// --- 認証が必要なルート ---
	// ミドルウェアスタック: Auth → RateLimit(General)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(deps.TokenVerifier))
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.GeneralMiddleware())
		}

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.ListTasks)
			r.Post("/", taskHandler.CreateTask)

			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", taskHandler.UpdateTask)
				r.Delete("/", taskHandler.DeleteTask)
			})
		})
	})

	return r
}

// healthResponse はヘルスチェックのレスポンス。
type healthResponse struct {
	Status string `json:"status"`
}

// NewHealthHandler はデータベース接続を確認するヘルスチェックハンドラーを返す。
// pingerがnilの場合はプロセスの生存のみを報告する。
func NewHealthHandler(pinger DBPinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if pinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
			defer cancel()

			if err := pinger.PingContext(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(healthResponse{Status: "unavailable"})
				return
			}
		}

		json.NewEncoder(w).Encode(healthResponse{Status: "ok"})
	}
}

// authMetricsOrNil はCollectorをAuthMetricsRecorderに変換する。nilを透過する。
func authMetricsOrNil(c *metrics.Collector) AuthMetricsRecorder {
	if c == nil {
		return nil
	}
	return c
}

// taskMetricsOrNil はCollectorをTaskMetricsRecorderに変換する。nilを透過する。
func taskMetricsOrNil(c *metrics.Collector) TaskMetricsRecorder {
	if c == nil {
		return nil
	}
	return c
}
