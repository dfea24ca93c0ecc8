package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Server 调试服务器：/api/state、/metrics、/ws
//
// 构造时不启动任何协程，Start 之后才监听端口和推送快照。
type Server struct {
	addr    string
	store   *SnapshotStore
	metrics *Metrics
	hub     *Hub
	limiter *IPRateLimiter
	router  *chi.Mux

	httpServer *http.Server
	cancel     context.CancelFunc
}

// NewServer 创建服务器
func NewServer(addr string) *Server {
	store := &SnapshotStore{}
	metrics := NewMetrics()
	hub := NewHub(store, metrics)
	limiter := NewIPRateLimiter(DefaultRateLimitConfig, metrics)

	return &Server{
		addr:    addr,
		store:   store,
		metrics: metrics,
		hub:     hub,
		limiter: limiter,
		router: NewRouter(RouterConfig{
			Store:          store,
			Metrics:        metrics,
			Hub:            hub,
			RateLimiter:    limiter,
			DisableLogging: true,
		}),
	}
}

// Publish 由游戏循环每个 tick 调用
func (s *Server) Publish(snap Snapshot) {
	s.store.Publish(snap)
	s.metrics.Observe(&snap)
}

// Router 返回 HTTP 处理器（测试用）
func (s *Server) Router() http.Handler {
	return s.router
}

// Addr 返回监听地址，Start 之后为实际地址
func (s *Server) Addr() string {
	return s.addr
}

// Start 开始监听并启动推送协程，立即返回
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.addr = ln.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.hub.Run(ctx)

	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[Telemetry] 服务器退出: %v", err)
		}
	}()

	log.Printf("[Telemetry] 调试服务器已启动: http://%s (/api/state, /metrics, /ws)", s.addr)
	return nil
}

// Stop 关闭服务器和后台协程
func (s *Server) Stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}
	s.limiter.Stop()
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down telemetry server: %w", err)
	}
	log.Printf("[Telemetry] 调试服务器已关闭")
	return nil
}
