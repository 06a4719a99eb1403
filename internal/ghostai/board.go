package ghostai

import "pacman/internal/entities"

// Point is a pixel-space position. Targets produced by strategies are points,
// not tiles; the agent converts them to tiles before searching.
type Point struct {
	X, Y int
}

// Board is what the AI needs to know about the maze. It is queried once, when
// an agent is built; the wall layout is assumed static for the agent's lifetime.
type Board interface {
	TileSize() int
	BoardWidth() int
	BoardHeight() int
	// Walls returns the pixel-space top-left corners of every wall block.
	Walls() []Point
}

// Snapshot is the per-tick view of the opponent handed to the AI. OK is false
// when no opponent exists this tick; agents then hold position instead of failing.
type Snapshot struct {
	Pos Point
	Dir entities.Direction
	OK  bool
}
