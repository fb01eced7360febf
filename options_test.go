package scratch

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.normalize()

	if cfg.brushDiameter != DefaultBrushDiameter {
		t.Errorf("brushDiameter = %f, want %f", cfg.brushDiameter, DefaultBrushDiameter)
	}
	if cfg.threshold != DefaultThreshold {
		t.Errorf("threshold = %f, want %f", cfg.threshold, DefaultThreshold)
	}
	if len(cfg.triggers) != 0 {
		t.Errorf("triggers = %v, want empty", cfg.triggers)
	}
	if !cfg.autoReveal || !cfg.autoRevealOnComplete || !cfg.hapticsEnabled {
		t.Error("boolean defaults should all be true")
	}
	if cfg.gridRows != DefaultGridRows || cfg.gridCols != DefaultGridCols {
		t.Errorf("grid = %dx%d, want %dx%d", cfg.gridRows, cfg.gridCols, DefaultGridRows, DefaultGridCols)
	}
	if cfg.fill == nil {
		t.Error("fill default missing")
	}
}

func TestConfigNormalization(t *testing.T) {
	cfg := defaultConfig()
	WithBrushDiameter(-5)(&cfg)
	WithThreshold(1.7)(&cfg)
	WithGridSize(0, -2)(&cfg)
	WithTriggers(0.9, -0.2, 0.5, 0.9, 1.4)(&cfg)
	cfg.normalize()

	if cfg.brushDiameter != DefaultBrushDiameter {
		t.Errorf("negative brush not defaulted: %f", cfg.brushDiameter)
	}
	if cfg.threshold != 1.0 {
		t.Errorf("threshold not clamped: %f", cfg.threshold)
	}
	if cfg.gridRows != DefaultGridRows || cfg.gridCols != DefaultGridCols {
		t.Errorf("grid not defaulted: %dx%d", cfg.gridRows, cfg.gridCols)
	}

	// Clamped into [0,1], deduped, ascending.
	want := []float64{0, 0.5, 0.9, 1}
	if len(cfg.triggers) != len(want) {
		t.Fatalf("triggers = %v, want %v", cfg.triggers, want)
	}
	for i := range want {
		if cfg.triggers[i] != want[i] {
			t.Fatalf("triggers = %v, want %v", cfg.triggers, want)
		}
	}
	if cfg.maxTrigger != 1 {
		t.Errorf("maxTrigger = %f, want 1", cfg.maxTrigger)
	}
}
