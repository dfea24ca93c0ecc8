package game

import "testing"

func TestResourceManagerFont(t *testing.T) {
	rm := NewResourceManager()
	if rm.GetFont(18) != nil {
		t.Error("GetFont before LoadFont should return nil")
	}

	if err := rm.LoadFont(); err != nil {
		t.Fatalf("LoadFont() error: %v", err)
	}
	if err := rm.LoadFont(); err != nil {
		t.Fatalf("second LoadFont() error: %v", err)
	}

	f1 := rm.GetFont(18)
	if f1 == nil {
		t.Fatal("GetFont returned nil after LoadFont")
	}
	if f1.Size != 18 {
		t.Errorf("font size = %v, want 18", f1.Size)
	}
	if rm.GetFont(18) != f1 {
		t.Error("font faces should be cached per size")
	}
	if rm.GetFont(40) == f1 {
		t.Error("different sizes should produce different faces")
	}
}
