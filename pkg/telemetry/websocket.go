package telemetry

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// MaxWSClients WebSocket 客户端上限
	MaxWSClients = 16

	// BroadcastInterval 推送间隔（10Hz）
	BroadcastInterval = 100 * time.Millisecond

	wsWriteTimeout = time.Second
)

// Hub 把最新快照以 msgpack 二进制帧推送给所有 WebSocket 客户端
//
// 所有写操作都在 Run 协程中进行，每个连接另有一个读协程用于发现断开。
type Hub struct {
	store    *SnapshotStore
	metrics  *Metrics
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	clients  map[*websocket.Conn]struct{}
	lastTick uint64
	sentAny  bool
}

// NewHub 创建推送中心
func NewHub(store *SnapshotStore, metrics *Metrics) *Hub {
	h := &Hub{
		store:   store,
		metrics: metrics,
		clients: make(map[*websocket.Conn]struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if isLocalOrigin(origin) {
				return true
			}
			log.Printf("[Telemetry] 拒绝来自 %s 的 WebSocket 连接", origin)
			metrics.RecordRejected("origin")
			return false
		},
	}
	return h
}

// ClientCount 当前连接数
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Run 按 BroadcastInterval 推送快照，直到 ctx 结束
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(BroadcastInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case <-ticker.C:
			h.broadcastLatest()
		}
	}
}

// broadcastLatest 推送最新快照；与上次推送的 tick 相同时跳过
func (h *Hub) broadcastLatest() {
	if h.ClientCount() == 0 {
		return
	}
	snap := h.store.Latest()
	if snap == nil || (h.sentAny && snap.Tick == h.lastTick) {
		return
	}

	data, err := EncodeSnapshot(snap)
	if err != nil {
		log.Printf("[Telemetry] %v", err)
		return
	}
	h.lastTick = snap.Tick
	h.sentAny = true

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
			h.remove(conn)
			continue
		}
		h.metrics.messageSent()
	}
}

// HandleWebSocket 升级连接并登记客户端
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if h.ClientCount() >= MaxWSClients {
		h.metrics.RecordRejected("ws_limit")
		http.Error(w, "Too many connections", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Telemetry] WebSocket 升级失败: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	h.metrics.setClients(count)
	log.Printf("[Telemetry] 客户端 %s 已连接 (%d)", r.RemoteAddr, count)

	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	count := len(h.clients)
	h.mu.Unlock()

	if ok {
		conn.Close()
		h.metrics.setClients(count)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
	h.metrics.setClients(0)
}
