package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics 游戏指标
//
// 使用独立的 Registry，测试中可以创建多份互不干扰。
// 计数器由相邻两次快照的差值累加，新的一局开始时从零计算。
type Metrics struct {
	Registry *prometheus.Registry

	gamesStarted  prometheus.Counter
	gameOvers     *prometheus.CounterVec
	kills         prometheus.Counter
	launched      prometheus.Counter
	frameSwitches prometheus.Counter
	playerHits    prometheus.Counter
	planetHits    prometheus.Counter

	survival  prometheus.Gauge
	health    prometheus.Gauge
	energy    prometheus.Gauge
	planet    prometheus.Gauge
	timeScale prometheus.Gauge
	entities  prometheus.Gauge

	wsClients  prometheus.Gauge
	wsMessages prometheus.Counter
	rejected   *prometheus.CounterVec

	mu   sync.Mutex
	last *Snapshot
}

// NewMetrics 创建并注册全部指标
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	counter := func(name, help string) prometheus.Counter {
		return f.NewCounter(prometheus.CounterOpts{Namespace: "spacejusticiar", Name: name, Help: help})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return f.NewGauge(prometheus.GaugeOpts{Namespace: "spacejusticiar", Name: name, Help: help})
	}

	return &Metrics{
		Registry:     reg,
		gamesStarted: counter("games_started_total", "Games started since launch"),
		gameOvers: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spacejusticiar",
			Name:      "game_overs_total",
			Help:      "Finished games by reason",
		}, []string{"reason"}), // ship / planet
		kills:         counter("torpedo_kills_total", "Torpedoes shot down"),
		launched:      counter("torpedoes_launched_total", "Torpedoes launched at the home planet"),
		frameSwitches: counter("frame_switches_total", "Frame of reference switches"),
		playerHits:    counter("player_hits_total", "Hits taken by the player ship"),
		planetHits:    counter("planet_hits_total", "Hits taken by the home planet"),

		survival:  gauge("survival_seconds", "Survival time of the current game"),
		health:    gauge("player_health_ratio", "Player health 0..1"),
		energy:    gauge("player_energy_ratio", "Player energy 0..1"),
		planet:    gauge("planet_integrity_ratio", "Home planet integrity 0..1"),
		timeScale: gauge("time_scale", "Current time scale"),
		entities:  gauge("entities", "Live ECS entities"),

		wsClients:  gauge("websocket_clients", "Connected WebSocket clients"),
		wsMessages: counter("websocket_messages_total", "Snapshots pushed over WebSocket"),
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spacejusticiar",
			Name:      "connections_rejected_total",
			Help:      "Requests rejected by the rate limiter or origin check",
		}, []string{"reason"}),
	}
}

// Observe 根据新快照更新指标
func (m *Metrics) Observe(s *Snapshot) {
	if s == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.last
	if prev == nil || prev.Game != s.Game {
		m.gamesStarted.Inc()
		prev = &Snapshot{Game: s.Game}
	}

	addDelta(m.kills, prev.Kills, s.Kills)
	addDelta(m.launched, prev.Launched, s.Launched)
	addDelta(m.frameSwitches, prev.FrameSwitches, s.FrameSwitches)
	addDelta(m.playerHits, prev.PlayerHits, s.PlayerHits)
	addDelta(m.planetHits, prev.PlanetHits, s.PlanetHits)

	if s.GameOver != "" && prev.GameOver == "" {
		reason := "ship"
		if s.Planet <= 0 {
			reason = "planet"
		}
		m.gameOvers.WithLabelValues(reason).Inc()
	}

	m.survival.Set(s.SurvivalTime)
	m.health.Set(s.Health)
	m.energy.Set(s.Energy)
	m.planet.Set(s.Planet)
	m.timeScale.Set(s.TimeScale)
	m.entities.Set(float64(s.Entities))

	cp := *s
	m.last = &cp
}

func addDelta(c prometheus.Counter, prev, cur int) {
	if cur > prev {
		c.Add(float64(cur - prev))
	}
}

// RecordRejected 记录被拒绝的请求（rate_limit / origin / ws_limit）
func (m *Metrics) RecordRejected(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) setClients(n int) {
	if m != nil {
		m.wsClients.Set(float64(n))
	}
}

func (m *Metrics) messageSent() {
	if m != nil {
		m.wsMessages.Inc()
	}
}
