package ghostai

import (
	"math"

	"pacman/internal/entities"
)

// Strategy computes a chase/flee goal point for one tick. Implementations are
// pure with respect to game state: everything they may look at arrives in the
// snapshot or in the self position. A strategy never fails; the agent already
// substitutes the self position when the snapshot is empty.
type Strategy interface {
	Target(snap Snapshot, self Point) Point
}

const (
	// hybridAheadTiles is how far ahead of the opponent the anticipatory half
	// of the hybrid target looks.
	hybridAheadTiles = 2
	// thresholdRadiusTiles is the scare radius of the threshold strategy.
	thresholdRadiusTiles = 8
)

// Hybrid blends a direct-chase target with a point two tiles ahead of the
// opponent along its heading, aiming at the midpoint of the two.
type Hybrid struct {
	TileSize int
}

func (h Hybrid) Target(snap Snapshot, self Point) Point {
	direct := snap.Pos
	ahead := shiftAlong(snap.Pos, snap.Dir, hybridAheadTiles*h.TileSize)
	return Point{X: (direct.X + ahead.X) / 2, Y: (direct.Y + ahead.Y) / 2}
}

// Threshold chases the opponent directly while far away, then breaks off to a
// fixed retreat corner once inside an 8-tile radius. The comparison is strict:
// at exactly the radius the ghost retreats.
type Threshold struct {
	TileSize int
	Retreat  Point
}

// NewThreshold places the retreat point at the inner bottom-left corridor,
// one tile in from the boundary wall.
func NewThreshold(tileSize, rows int) Threshold {
	return Threshold{
		TileSize: tileSize,
		Retreat:  Point{X: tileSize, Y: (rows - 2) * tileSize},
	}
}

func (t Threshold) Target(snap Snapshot, self Point) Point {
	dx := float64(snap.Pos.X - self.X)
	dy := float64(snap.Pos.Y - self.Y)
	if math.Sqrt(dx*dx+dy*dy) > float64(thresholdRadiusTiles*t.TileSize) {
		return snap.Pos
	}
	return t.Retreat
}

// Direct is the relentless chaser: the target is the opponent itself.
type Direct struct{}

func (Direct) Target(snap Snapshot, self Point) Point { return snap.Pos }

// Patrol ignores the opponent and loops over fixed waypoints, advancing to the
// next one when its tile has been reached. The zero waypoint list degenerates
// to holding position.
type Patrol struct {
	TileSize  int
	Waypoints []Point

	next int
}

// NewPatrol builds a patrol over the four inner corners of the board, one tile
// in from the boundary, starting at the top-right corner.
func NewPatrol(tileSize, rows, cols int) *Patrol {
	t := tileSize
	return &Patrol{
		TileSize: t,
		Waypoints: []Point{
			{X: (cols - 2) * t, Y: t},
			{X: (cols - 2) * t, Y: (rows - 2) * t},
			{X: t, Y: (rows - 2) * t},
			{X: t, Y: t},
		},
	}
}

func (p *Patrol) Target(snap Snapshot, self Point) Point {
	if len(p.Waypoints) == 0 {
		return self
	}
	wp := p.Waypoints[p.next]
	if self.X/p.TileSize == wp.X/p.TileSize && self.Y/p.TileSize == wp.Y/p.TileSize {
		p.next = (p.next + 1) % len(p.Waypoints)
		wp = p.Waypoints[p.next]
	}
	return wp
}

// shiftAlong offsets a point by dist pixels in the given direction. An
// unrecognized direction leaves the point unchanged.
func shiftAlong(pt Point, dir entities.Direction, dist int) Point {
	switch dir {
	case entities.DirUp:
		pt.Y -= dist
	case entities.DirDown:
		pt.Y += dist
	case entities.DirLeft:
		pt.X -= dist
	case entities.DirRight:
		pt.X += dist
	}
	return pt
}

// StrategyFor maps a ghost personality onto its strategy for the given board.
func StrategyFor(p entities.Personality, board Board) Strategy {
	ts := board.TileSize()
	rows := board.BoardHeight() / ts
	cols := board.BoardWidth() / ts
	switch p {
	case entities.PersonalityHybrid:
		return Hybrid{TileSize: ts}
	case entities.PersonalityThreshold:
		return NewThreshold(ts, rows)
	case entities.PersonalityPatrol:
		return NewPatrol(ts, rows, cols)
	default:
		return Direct{}
	}
}
