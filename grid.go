package scratch

// DefaultGridRows and DefaultGridCols are the coverage grid resolution used
// when none is configured. 20x20 keeps the per-sample cost tiny while still
// resolving progress to 1/400 granularity.
const (
	DefaultGridRows = 20
	DefaultGridCols = 20
)

// CoverageGrid estimates how much of the surface a circular brush has
// covered. It maps the surface onto a fixed rows x cols boolean grid and
// marks a cell covered the first time a brush stamp reaches the cell's
// center. The center-point test deliberately trades precision for O(1) work
// per cell: edge cells that are only partially under the brush are
// under-counted, which is acceptable at scratch-card granularity.
//
// The grid is resolution independent. Callers pass the surface's current
// pixel size with every AddPoint call, so resizing the surface between
// samples only affects how later samples map onto cells; cells already
// covered stay covered.
//
// A consequence of the center test worth knowing: a brush whose radius is
// smaller than half a cell diagonal can sweep a cell without ever reaching
// its center, so small-brush/fine-grid combinations may need visually "full"
// scratching before reporting 1.0.
type CoverageGrid struct {
	rows    int
	cols    int
	cells   []bool
	covered int
}

// NewCoverageGrid creates a grid with the given resolution.
// Non-positive dimensions fall back to the 20x20 default; transient layout
// states must degrade, not fail.
func NewCoverageGrid(rows, cols int) *CoverageGrid {
	if rows <= 0 {
		rows = DefaultGridRows
	}
	if cols <= 0 {
		cols = DefaultGridCols
	}
	return &CoverageGrid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// Rows returns the grid's row count.
func (g *CoverageGrid) Rows() int { return g.rows }

// Cols returns the grid's column count.
func (g *CoverageGrid) Cols() int { return g.cols }

// Covered returns how many cells have been touched so far.
func (g *CoverageGrid) Covered() int { return g.covered }

// AddPoint marks every untouched cell whose center lies strictly within
// brushDiameter/2 of p as covered. The surface's current pixel size is
// supplied per call. A zero-area surface or non-positive brush is a no-op.
//
// Cost is O(cells under the brush's bounding square); already-covered cells
// are skipped, so re-scratching the same spot never double-counts.
func (g *CoverageGrid) AddPoint(p Point, brushDiameter, width, height float64) {
	if width <= 0 || height <= 0 || brushDiameter <= 0 {
		return
	}

	radius := brushDiameter / 2
	cellW := width / float64(g.cols)
	cellH := height / float64(g.rows)

	// Grid-cell bounding box of the brush's axis-aligned bounding square,
	// clamped to the grid.
	minCol := int((p.X - radius) / cellW)
	maxCol := int((p.X + radius) / cellW)
	minRow := int((p.Y - radius) / cellH)
	maxRow := int((p.Y + radius) / cellH)
	if minCol < 0 {
		minCol = 0
	}
	if minRow < 0 {
		minRow = 0
	}
	if maxCol > g.cols-1 {
		maxCol = g.cols - 1
	}
	if maxRow > g.rows-1 {
		maxRow = g.rows - 1
	}

	r2 := radius * radius
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			i := row*g.cols + col
			if g.cells[i] {
				continue
			}
			cx := (float64(col) + 0.5) * cellW
			cy := (float64(row) + 0.5) * cellH
			dx := cx - p.X
			dy := cy - p.Y
			if dx*dx+dy*dy < r2 {
				g.cells[i] = true
				g.covered++
			}
		}
	}
}

// Progress returns covered/total in [0, 1]. It is monotonically
// non-decreasing between calls to Reset or RevealAll.
func (g *CoverageGrid) Progress() float64 {
	return float64(g.covered) / float64(g.rows*g.cols)
}

// Reset clears all cells.
func (g *CoverageGrid) Reset() {
	clear(g.cells)
	g.covered = 0
}

// RevealAll marks every cell covered, driving progress to exactly 1.0.
// Used for programmatic full reveal without replaying a stroke history.
func (g *CoverageGrid) RevealAll() {
	for i := range g.cells {
		g.cells[i] = true
	}
	g.covered = len(g.cells)
}
