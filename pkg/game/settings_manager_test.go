package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata 管理器
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if !s.ShowInfluenceBorders {
		t.Error("ShowInfluenceBorders: got false, want true")
	}
	if s.TelemetryAddr != "" {
		t.Errorf("TelemetryAddr: got %q, want empty", s.TelemetryAddr)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	got := sm.ToggleInfluenceBorders()
	if got || sm.GetSettings().ShowInfluenceBorders {
		t.Error("ToggleInfluenceBorders should hide borders and return the new value")
	}
}

func TestSettingsLoadSave(t *testing.T) {
	m := openTestGdata(t, "spacejusticiar_test_settings")

	sm1 := NewSettingsManager(m)
	sm1.SetFullscreen(true)
	sm1.GetSettings().TelemetryAddr = "127.0.0.1:6060"
	if got := sm1.ToggleInfluenceBorders(); got {
		t.Fatal("toggling the default should hide borders")
	}

	sm2 := NewSettingsManager(m)
	s := sm2.GetSettings()
	if !s.Fullscreen {
		t.Error("Fullscreen was not persisted")
	}
	if s.ShowInfluenceBorders {
		t.Error("ShowInfluenceBorders was not persisted")
	}
	if s.TelemetryAddr != "127.0.0.1:6060" {
		t.Errorf("TelemetryAddr = %q, want 127.0.0.1:6060", s.TelemetryAddr)
	}
}

func TestSettingsLoadCorrupted(t *testing.T) {
	m := openTestGdata(t, "spacejusticiar_test_settings_corrupt")
	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	sm := NewSettingsManager(m)
	if !sm.GetSettings().ShowInfluenceBorders {
		t.Error("corrupted settings should fall back to defaults")
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report the unmarshal error")
	}
}
