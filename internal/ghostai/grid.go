package ghostai

// TileCoord addresses one maze cell. It is a value type on purpose: tiles are
// compared structurally and used directly as map keys during search.
type TileCoord struct {
	Row, Col int
}

// WallGrid is the per-agent blocked/free occupancy map, built once from the
// board's wall list and never mutated afterwards.
type WallGrid struct {
	rows, cols int
	blocked    [][]bool
}

// NewWallGrid derives the occupancy grid from pixel-space wall blocks. Wall
// entries that fall outside the board are dropped without complaint, matching
// the long-standing behavior of the maze loader (see DESIGN.md before "fixing").
func NewWallGrid(board Board) *WallGrid {
	ts := board.TileSize()
	rows := board.BoardHeight() / ts
	cols := board.BoardWidth() / ts
	g := &WallGrid{rows: rows, cols: cols, blocked: make([][]bool, rows)}
	for r := range g.blocked {
		g.blocked[r] = make([]bool, cols)
	}
	for _, w := range board.Walls() {
		r := w.Y / ts
		c := w.X / ts
		if r >= 0 && r < rows && c >= 0 && c < cols {
			g.blocked[r][c] = true
		}
	}
	return g
}

func (g *WallGrid) Rows() int { return g.rows }
func (g *WallGrid) Cols() int { return g.cols }

// Blocked reports whether a tile cannot be traversed. Anything outside the
// grid counts as a wall; that is a bounds check, not stored state.
func (g *WallGrid) Blocked(t TileCoord) bool {
	if t.Row < 0 || t.Row >= g.rows || t.Col < 0 || t.Col >= g.cols {
		return true
	}
	return g.blocked[t.Row][t.Col]
}

// Clamp forces a tile into grid bounds, snapping to the nearest edge cell.
func (g *WallGrid) Clamp(t TileCoord) TileCoord {
	if t.Row < 0 {
		t.Row = 0
	}
	if t.Row > g.rows-1 {
		t.Row = g.rows - 1
	}
	if t.Col < 0 {
		t.Col = 0
	}
	if t.Col > g.cols-1 {
		t.Col = g.cols - 1
	}
	return t
}
