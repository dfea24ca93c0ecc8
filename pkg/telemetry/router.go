package telemetry

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig 构建路由所需的依赖
type RouterConfig struct {
	Store   *SnapshotStore
	Metrics *Metrics
	// Hub 为 nil 时不注册 /ws
	Hub *Hub
	// RateLimiter 为 nil 时使用 DefaultRateLimitConfig 新建
	RateLimiter *IPRateLimiter
	// CORSOrigins 为 nil 时只允许本机页面
	CORSOrigins []string
	// DisableLogging 关闭请求日志（测试用）
	DisableLogging bool
}

// NewRouter 构建 HTTP 路由
//
// 不启动协程也不监听端口（限流器的清理协程除外），可以直接交给 httptest.NewServer。
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	limiter := cfg.RateLimiter
	if limiter == nil {
		limiter = NewIPRateLimiter(DefaultRateLimitConfig, cfg.Metrics)
	}
	r.Use(limiter.Middleware)

	origins := cfg.CORSOrigins
	if origins == nil {
		origins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", handleState(cfg.Store))
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	if cfg.Metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Metrics.Registry, promhttp.HandlerOpts{}))
	}
	if cfg.Hub != nil {
		r.Get("/ws", cfg.Hub.HandleWebSocket)
	}

	return r
}

func handleState(store *SnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var snap *Snapshot
		if store != nil {
			snap = store.Latest()
		}
		if snap == nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no game running"})
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
