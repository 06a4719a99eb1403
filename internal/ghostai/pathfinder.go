package ghostai

import "pacman/internal/entities"

// Pathfinder plans single steps over a wall grid with breadth-first search.
// It keeps no state between calls; every tick is a full re-search, which is
// cheap on a bounded grid and sidesteps stale-plan bugs entirely.
type Pathfinder struct {
	grid *WallGrid
}

func NewPathfinder(grid *WallGrid) *Pathfinder {
	return &Pathfinder{grid: grid}
}

// expansionOrder fixes the neighbor priority: among equally short paths the
// one whose first divergent step comes earliest in this order wins, because
// BFS records only the first discovery of a tile.
var expansionOrder = [4]struct {
	dRow, dCol int
	dir        entities.Direction
}{
	{-1, 0, entities.DirUp},
	{1, 0, entities.DirDown},
	{0, -1, entities.DirLeft},
	{0, 1, entities.DirRight},
}

// NextStep returns the direction of the first move on a shortest path from
// start to goal. The opposite of current is never taken as the first step: a
// ghost may not reverse into its prior heading at the top of a plan, though a
// later segment of the path may still double back if the maze forces it.
//
// The current direction is returned unchanged when start equals goal, when no
// path exists, or when reconstruction yields nothing to move along. Callers
// must hand in a goal already clamped into grid bounds.
func (p *Pathfinder) NextStep(start, goal TileCoord, current entities.Direction) entities.Direction {
	if start == goal {
		return current
	}

	queue := []TileCoord{start}
	cameFrom := map[TileCoord]TileCoord{start: start}
	forbidden := entities.Opposite(current)

	found := false
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		// Goal test on dequeue, so the predecessor chain behind it is complete.
		if curr == goal {
			found = true
			break
		}
		for _, n := range expansionOrder {
			if curr == start && n.dir == forbidden {
				continue
			}
			next := TileCoord{Row: curr.Row + n.dRow, Col: curr.Col + n.dCol}
			if p.grid.Blocked(next) {
				continue
			}
			// Visited the moment it is enqueued; a tile is only ever
			// discovered once, on its shortest layer.
			if _, seen := cameFrom[next]; seen {
				continue
			}
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}
	if !found {
		return current
	}

	// Walk the chain back from the goal to the tile right after start.
	step := goal
	for cameFrom[step] != start {
		step = cameFrom[step]
	}
	switch {
	case step.Row == start.Row-1:
		return entities.DirUp
	case step.Row == start.Row+1:
		return entities.DirDown
	case step.Col == start.Col-1:
		return entities.DirLeft
	case step.Col == start.Col+1:
		return entities.DirRight
	}
	return current
}
