package tilemap

import "testing"

func TestNewDefaultMapDimensions(t *testing.T) {
	m := NewDefaultMap(16)
	if m.Width != len(defaultMaze[0]) || m.Height != len(defaultMaze) {
		t.Fatalf("unexpected dimensions: got %dx%d, want %dx%d", m.Width, m.Height, len(defaultMaze[0]), len(defaultMaze))
	}
}

func TestEatPelletAt(t *testing.T) {
	m := NewDefaultMap(16)
	var px, py int
	found := false
	for y := 0; y < m.Height && !found; y++ {
		for x := 0; x < m.Width && !found; x++ {
			if m.Tiles[y][x] == TilePellet {
				px, py = x, y
				found = true
			}
		}
	}
	if !found {
		t.Fatal("no pellet found in default map")
	}

	ate, power := m.EatPelletAt(px, py)
	if !ate || power {
		t.Fatalf("expected to eat normal pellet, got ate=%v power=%v", ate, power)
	}
	ate, power = m.EatPelletAt(px, py)
	if ate || power {
		t.Fatalf("expected to not eat after consumed, got ate=%v power=%v", ate, power)
	}
}

func TestIsWallBounds(t *testing.T) {
	m := NewDefaultMap(16)
	if !m.IsWall(-1, 0) || !m.IsWall(0, -1) || !m.IsWall(m.Width, 0) || !m.IsWall(0, m.Height) {
		t.Fatalf("out-of-bounds should be treated as wall")
	}
}

func TestDefaultMazeIsRectangular(t *testing.T) {
	if len(defaultMaze) != 31 {
		t.Fatalf("expected 31 maze rows, got %d", len(defaultMaze))
	}
	for y, row := range defaultMaze {
		if len(row) != 28 {
			t.Fatalf("row %d has width %d, want 28", y, len(row))
		}
	}
}

// The game hard-codes a few tiles: the player start, the ghost house and its
// door, and the corner corridors the AI retreats to and patrols between.
func TestDefaultMazeAnchorTilesOpen(t *testing.T) {
	m := NewDefaultMap(16)
	anchors := []struct {
		name string
		x, y int
	}{
		{name: "player start", x: 14, y: 26},
		{name: "retreat corner", x: 1, y: 29},
		{name: "patrol top-left", x: 1, y: 1},
		{name: "patrol top-right", x: 26, y: 1},
		{name: "patrol bottom-right", x: 26, y: 29},
		{name: "ghost house interior", x: 13, y: 14},
		{name: "house door left", x: 13, y: 12},
		{name: "house door right", x: 14, y: 12},
	}
	for _, a := range anchors {
		if m.IsWall(a.x, a.y) {
			t.Errorf("%s (%d,%d) must not be a wall", a.name, a.x, a.y)
		}
	}
}

func TestWallBlocksMatchesTiles(t *testing.T) {
	m := NewDefaultMap(16)
	blocks := m.WallBlocks()
	count := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] == TileWall {
				count++
			}
		}
	}
	if len(blocks) != count {
		t.Fatalf("expected %d wall blocks, got %d", count, len(blocks))
	}
	for _, b := range blocks {
		x, y := b[0]/m.TileSize, b[1]/m.TileSize
		if m.Tiles[y][x] != TileWall {
			t.Fatalf("block (%d,%d) does not map back to a wall tile", b[0], b[1])
		}
	}
}
