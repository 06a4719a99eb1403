package ghostai

import "pacman/internal/entities"

// Agent is one ghost's brain: a target strategy plus a pathfinder over the
// agent's own copy of the wall grid. The agent only decides direction; moving
// the ghost and enforcing wall collisions during motion stay with the game's
// movement code.
type Agent struct {
	ghost    *entities.Ghost
	strategy Strategy
	grid     *WallGrid
	path     *Pathfinder
	tileSize int
}

// NewAgent builds the wall grid from the board once; the board is not
// retained. The ghost pointer is, so Move can write the chosen direction back.
func NewAgent(board Board, ghost *entities.Ghost, strategy Strategy) *Agent {
	grid := NewWallGrid(board)
	return &Agent{
		ghost:    ghost,
		strategy: strategy,
		grid:     grid,
		path:     NewPathfinder(grid),
		tileSize: board.TileSize(),
	}
}

func (a *Agent) selfPoint() Point {
	return Point{X: int(a.ghost.X), Y: int(a.ghost.Y)}
}

// CalculateTarget returns this tick's pixel-space goal. With no opponent in
// the snapshot the ghost targets its own position, which makes the subsequent
// search a no-op hold. Exposed for telemetry and tests as well as for Move.
func (a *Agent) CalculateTarget(snap Snapshot) Point {
	self := a.selfPoint()
	if !snap.OK {
		return self
	}
	return a.strategy.Target(snap, self)
}

// Move runs one decision tick: compute the target, clamp it onto the grid,
// search, and point the ghost along the first step of the path.
func (a *Agent) Move(snap Snapshot) {
	target := a.CalculateTarget(snap)
	self := a.selfPoint()

	start := TileCoord{Row: self.Y / a.tileSize, Col: self.X / a.tileSize}
	goal := a.grid.Clamp(TileCoord{Row: target.Y / a.tileSize, Col: target.X / a.tileSize})

	a.ghost.CurrentDir = a.path.NextStep(start, goal, a.ghost.CurrentDir)
}

// StepToward is a direct pathfinding entry for externally chosen goals, such
// as an eaten ghost homing to the house tile. Same hold semantics as Move.
func (a *Agent) StepToward(goal TileCoord) {
	self := a.selfPoint()
	start := TileCoord{Row: self.Y / a.tileSize, Col: self.X / a.tileSize}
	a.ghost.CurrentDir = a.path.NextStep(start, a.grid.Clamp(goal), a.ghost.CurrentDir)
}
