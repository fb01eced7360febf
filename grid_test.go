package scratch

import (
	"math"
	"testing"
)

func TestCoverageGridSinglePoint(t *testing.T) {
	// 10x10 grid over a 100x100 surface: cell centers sit at 5, 15, 25, ...
	// A brush of diameter 20 (radius 10) at (5,5) reaches only the (0,0)
	// cell center at distance 0; the neighbors at distance 10 are excluded
	// by the strict test.
	g := NewCoverageGrid(10, 10)
	g.AddPoint(Pt(5, 5), 20, 100, 100)

	if g.Covered() != 1 {
		t.Fatalf("Covered() = %d, want 1", g.Covered())
	}
	if p := g.Progress(); p <= 0 || p >= 1 {
		t.Errorf("Progress() = %f, want in (0, 1)", p)
	}
}

func TestCoverageGridAddPoint(t *testing.T) {
	tests := []struct {
		name        string
		rows, cols  int
		point       Point
		brush       float64
		w, h        float64
		wantCovered int
	}{
		{"zero width surface", 10, 10, Pt(5, 5), 20, 0, 100, 0},
		{"zero height surface", 10, 10, Pt(5, 5), 20, 100, 0, 0},
		{"zero brush", 10, 10, Pt(5, 5), 0, 100, 100, 0},
		{"negative brush", 10, 10, Pt(5, 5), -4, 100, 100, 0},
		{"brush larger than surface", 2, 2, Pt(50, 50), 400, 100, 100, 4},
		{"point outside surface", 10, 10, Pt(-500, -500), 20, 100, 100, 0},
		{"big brush center", 10, 10, Pt(50, 50), 25, 100, 100, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewCoverageGrid(tt.rows, tt.cols)
			g.AddPoint(tt.point, tt.brush, tt.w, tt.h)
			if g.Covered() != tt.wantCovered {
				t.Errorf("Covered() = %d, want %d", g.Covered(), tt.wantCovered)
			}
		})
	}
}

func TestCoverageGridMonotonic(t *testing.T) {
	g := NewCoverageGrid(20, 20)
	prev := 0.0
	for i := 0; i < 200; i++ {
		x := float64(i%20) * 5
		y := float64(i/20) * 10
		g.AddPoint(Pt(x, y), 15, 100, 100)
		p := g.Progress()
		if p < prev {
			t.Fatalf("progress decreased at step %d: prev=%f, curr=%f", i, prev, p)
		}
		if p < 0 || p > 1 {
			t.Fatalf("progress out of bounds at step %d: %f", i, p)
		}
		prev = p
	}
}

func TestCoverageGridIdempotentRescratch(t *testing.T) {
	g := NewCoverageGrid(10, 10)
	g.AddPoint(Pt(50, 50), 30, 100, 100)
	covered := g.Covered()
	if covered == 0 {
		t.Fatal("first scratch covered nothing")
	}
	for i := 0; i < 10; i++ {
		g.AddPoint(Pt(50, 50), 30, 100, 100)
	}
	if g.Covered() != covered {
		t.Errorf("re-scratch changed Covered(): got %d, want %d", g.Covered(), covered)
	}
}

func TestCoverageGridResetAndRevealAll(t *testing.T) {
	g := NewCoverageGrid(5, 5)
	g.AddPoint(Pt(50, 50), 40, 100, 100)
	if g.Progress() == 0 {
		t.Fatal("scratch had no effect")
	}

	g.RevealAll()
	if p := g.Progress(); p != 1.0 {
		t.Errorf("after RevealAll Progress() = %f, want exactly 1.0", p)
	}

	g.Reset()
	if p := g.Progress(); p != 0.0 {
		t.Errorf("after Reset Progress() = %f, want exactly 0.0", p)
	}
	if g.Covered() != 0 {
		t.Errorf("after Reset Covered() = %d, want 0", g.Covered())
	}

	// Reset re-arms coverage: scratching again works.
	g.AddPoint(Pt(50, 50), 40, 100, 100)
	if g.Progress() == 0 {
		t.Error("scratch after Reset had no effect")
	}
}

func TestCoverageGridDefaultsOnBadDimensions(t *testing.T) {
	g := NewCoverageGrid(0, -3)
	if g.Rows() != DefaultGridRows || g.Cols() != DefaultGridCols {
		t.Errorf("got %dx%d, want default %dx%d", g.Rows(), g.Cols(), DefaultGridRows, DefaultGridCols)
	}
}

func TestCoverageGridResizeBetweenSamples(t *testing.T) {
	// Coverage decisions made at one surface size survive a resize; the
	// grid is addressed in normalized space.
	g := NewCoverageGrid(10, 10)
	g.AddPoint(Pt(5, 5), 20, 100, 100)
	covered := g.Covered()

	// Same logical location on a doubled surface.
	g.AddPoint(Pt(10, 10), 40, 200, 200)
	if g.Covered() != covered {
		t.Errorf("equivalent sample after resize changed coverage: got %d, want %d", g.Covered(), covered)
	}
}

func TestCoverageGridProgressGranularity(t *testing.T) {
	g := NewCoverageGrid(4, 4)
	g.AddPoint(Pt(12.5, 12.5), 10, 100, 100) // covers exactly one cell center
	want := 1.0 / 16.0
	if math.Abs(g.Progress()-want) > 1e-12 {
		t.Errorf("Progress() = %f, want %f", g.Progress(), want)
	}
}
