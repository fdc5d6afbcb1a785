// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ミドルウェアやサービス層から利用する。
type MetricsCollector interface {
	RecordHTTPStatus(statusCode int)
	RecordRequestLatency(duration time.Duration)
	RecordAuthAttempt(outcome string)
	RecordTaskCreated()
}

// 認証試行の結果ラベル。
const (
	AuthOutcomeSuccess = "success"
	AuthOutcomeFailure = "failure"
)

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	httpStatus     *prometheus.CounterVec
	requestLatency prometheus.Histogram
	authAttempts   *prometheus.CounterVec
	tasksCreated   prometheus.Counter
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskman_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "taskman_request_latency_seconds",
			Help:    "HTTPリクエスト処理のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskman_auth_attempts_total",
			Help: "認証試行の結果別の合計数",
		}, []string{"outcome"}),
		tasksCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskman_tasks_created_total",
			Help: "作成されたタスクの合計数",
		}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.requestLatency,
		c.authAttempts,
		c.tasksCreated,
	)

	return c
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestLatency はリクエスト処理のレイテンシを記録する。
func (c *Collector) RecordRequestLatency(duration time.Duration) {
	c.requestLatency.Observe(duration.Seconds())
}

// RecordAuthAttempt は認証試行の結果を記録する。
func (c *Collector) RecordAuthAttempt(outcome string) {
	c.authAttempts.WithLabelValues(outcome).Inc()
}

// RecordTaskCreated はタスク作成を記録する。
func (c *Collector) RecordTaskCreated() {
	c.tasksCreated.Inc()
}

var _ MetricsCollector = (*Collector)(nil)

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
