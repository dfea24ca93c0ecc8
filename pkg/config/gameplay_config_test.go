package config

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/spacejusticiar/pkg/embedded"
)

func TestDefaultGameplayConfig_Valid(t *testing.T) {
	cfg := DefaultGameplayConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	// 原版常量
	if cfg.Player.BoostScalar != 40 || cfg.Player.BoostInterval != 2 {
		t.Errorf("unexpected boost defaults: %+v", cfg.Player)
	}
	if cfg.Combat.PlanetProjectileDamage != 0.001 || cfg.Combat.PlanetTorpedoDamage != 0.01 {
		t.Errorf("unexpected planet damage defaults: %+v", cfg.Combat)
	}
	if cfg.Health.RegenRate != 0.04 {
		t.Errorf("expected health regen 0.04, got %v", cfg.Health.RegenRate)
	}
}

func TestParseGameplayConfig_OverridesDefaults(t *testing.T) {
	cfg, err := ParseGameplayConfig([]byte(`
player:
  maxVelocity: 15
camera:
  zoom: 32
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Player.MaxVelocity != 15 {
		t.Errorf("expected maxVelocity 15, got %v", cfg.Player.MaxVelocity)
	}
	if cfg.Camera.Zoom != 32 {
		t.Errorf("expected zoom 32, got %v", cfg.Camera.Zoom)
	}
	// 未指定的字段保持默认
	if cfg.Player.Acceleration != 1 {
		t.Errorf("expected default acceleration 1, got %v", cfg.Player.Acceleration)
	}
}

func TestParseGameplayConfig_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		errContains string
	}{
		{"negative regen", "health:\n  regenRate: -1\n", "regenRate"},
		{"zero zoom", "camera:\n  zoom: 0\n", "zoom"},
		{"slow motion above 1", "player:\n  slowMotionScale: 2\n", "slowMotionScale"},
		{"color range inverted", "player:\n  minColor: 0.9\n  maxColor: 0.1\n", "color range"},
		{"fire chance", "combat:\n  enemyFireChance: 1.5\n", "enemyFireChance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGameplayConfig([]byte(tt.yamlContent))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error containing %q, got %v", tt.errContains, err)
			}
		})
	}
}

func TestLoadGameplayConfig_FromEmbedded(t *testing.T) {
	embedded.InitFS(fstest.MapFS{
		"data/gameplay.yaml": &fstest.MapFile{Data: []byte("player:\n  gravityScale: 2\n")},
	})
	t.Cleanup(func() { embedded.InitFS(nil) })

	cfg, err := LoadGameplayConfig("data/gameplay.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Player.GravityScale != 2 {
		t.Errorf("expected gravityScale 2, got %v", cfg.Player.GravityScale)
	}

	if _, err := LoadGameplayConfig("data/missing.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
