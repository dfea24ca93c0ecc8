package telemetry

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestServerLifecycle(t *testing.T) {
	s := NewServer("127.0.0.1:0")
	if err := s.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.Stop(ctx); err != nil {
			t.Errorf("Stop() error: %v", err)
		}
	}()

	s.Publish(Snapshot{Tick: 1, Game: 1})

	code, body := get(t, "http://"+s.Addr()+"/api/state")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", code, body)
	}
}

func TestServerStopWithoutStart(t *testing.T) {
	s := NewServer("127.0.0.1:0")
	if err := s.Stop(context.Background()); err != nil {
		t.Errorf("Stop() error: %v", err)
	}
}
