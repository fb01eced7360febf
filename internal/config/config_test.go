package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if cfg.Card.Brush != nil {
		t.Error("missing file produced non-empty config")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("empty path should be an error")
	}
}

func TestLoadParsesCardSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[card]
brush = 18.0
threshold = 0.7
triggers = [0.25, 0.5, 0.75]
auto-reveal = false
haptics = false
prize = "FREE COFFEE"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Card.Brush == nil || *cfg.Card.Brush != 18.0 {
		t.Errorf("brush = %v, want 18.0", cfg.Card.Brush)
	}
	if cfg.Card.Threshold == nil || *cfg.Card.Threshold != 0.7 {
		t.Errorf("threshold = %v, want 0.7", cfg.Card.Threshold)
	}
	if len(cfg.Card.Triggers) != 3 {
		t.Errorf("triggers = %v, want 3 values", cfg.Card.Triggers)
	}
	if cfg.Card.AutoReveal == nil || *cfg.Card.AutoReveal {
		t.Error("auto-reveal = true, want false")
	}
	if cfg.Card.Prize == nil || *cfg.Card.Prize != "FREE COFFEE" {
		t.Errorf("prize = %v, want FREE COFFEE", cfg.Card.Prize)
	}
	if cfg.Card.AutoRevealOnComplete != nil {
		t.Error("unset auto-reveal-on-complete should stay nil")
	}
}
