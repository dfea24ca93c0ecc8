package telemetry

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, rl RateLimitConfig) (*httptest.Server, *SnapshotStore, *Metrics) {
	t.Helper()
	store := &SnapshotStore{}
	metrics := NewMetrics()
	limiter := NewIPRateLimiter(rl, metrics)
	t.Cleanup(limiter.Stop)

	ts := httptest.NewServer(NewRouter(RouterConfig{
		Store:          store,
		Metrics:        metrics,
		Hub:            NewHub(store, metrics),
		RateLimiter:    limiter,
		DisableLogging: true,
	}))
	t.Cleanup(ts.Close)
	return ts, store, metrics
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestStateEndpoint(t *testing.T) {
	ts, store, _ := newTestServer(t, DefaultRateLimitConfig)

	if code, _ := get(t, ts.URL+"/api/state"); code != http.StatusServiceUnavailable {
		t.Errorf("status before publish = %d, want 503", code)
	}

	store.Publish(Snapshot{Tick: 5, Frame: "GLOBAL", Kills: 1})
	code, body := get(t, ts.URL+"/api/state")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(body), &snap); err != nil {
		t.Fatalf("invalid JSON %q: %v", body, err)
	}
	if snap.Tick != 5 || snap.Frame != "GLOBAL" || snap.Kills != 1 {
		t.Errorf("state = %+v", snap)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts, _, metrics := newTestServer(t, DefaultRateLimitConfig)

	metrics.Observe(&Snapshot{Game: 1, Kills: 2, Launched: 3, Health: 0.5})
	metrics.Observe(&Snapshot{Game: 1, Kills: 3, Launched: 5, Health: 0.4})
	// 新的一局从零开始累计
	metrics.Observe(&Snapshot{Game: 2, Kills: 1, Launched: 1, Health: 1})

	code, body := get(t, ts.URL+"/metrics")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	for _, want := range []string{
		"spacejusticiar_games_started_total 2",
		"spacejusticiar_torpedo_kills_total 4",
		"spacejusticiar_torpedoes_launched_total 6",
		"spacejusticiar_player_health_ratio 1",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("/metrics missing %q", want)
		}
	}
}

func TestMetricsGameOverReason(t *testing.T) {
	ts, _, metrics := newTestServer(t, DefaultRateLimitConfig)

	metrics.Observe(&Snapshot{Game: 1, Planet: 0.5})
	metrics.Observe(&Snapshot{Game: 1, Planet: 0, GameOver: "PLANET DESTROYED! GAME OVER!"})
	metrics.Observe(&Snapshot{Game: 1, Planet: 0, GameOver: "PLANET DESTROYED! GAME OVER!"})

	_, body := get(t, ts.URL+"/metrics")
	if !strings.Contains(body, `spacejusticiar_game_overs_total{reason="planet"} 1`) {
		t.Errorf("game over not counted once:\n%s", body)
	}
}

func TestRateLimit(t *testing.T) {
	ts, _, _ := newTestServer(t, RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})

	for i := 0; i < 2; i++ {
		if code, _ := get(t, ts.URL+"/api/health"); code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, code)
		}
	}
	if code, _ := get(t, ts.URL+"/api/health"); code != http.StatusTooManyRequests {
		t.Errorf("status after burst = %d, want 429", code)
	}
}

func TestIsLocalOrigin(t *testing.T) {
	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://localhost:3000", true},
		{"http://127.0.0.1", true},
		{"http://localhost.example.com", false},
		{"https://example.com", false},
	}
	for _, tt := range tests {
		if got := isLocalOrigin(tt.origin); got != tt.want {
			t.Errorf("isLocalOrigin(%q) = %v, want %v", tt.origin, got, tt.want)
		}
	}
}
