package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != Default() {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	body := `{"window":{"width":800},"theme":"light","audio":{"enabled":false}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Window.Width != 800 {
		t.Errorf("expected width 800, got %d", s.Window.Width)
	}
	if s.Window.Height != WindowHeight {
		t.Errorf("expected default height %d, got %d", WindowHeight, s.Window.Height)
	}
	if s.Theme != "light" {
		t.Errorf("expected light theme, got %q", s.Theme)
	}
	if s.Audio.Enabled {
		t.Error("expected audio disabled")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"window":`},
		{"zero width", `{"window":{"width":0}}`},
		{"zero tps", `{"window":{"tps":0}}`},
		{"unknown theme", `{"theme":"sepia"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.json")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
