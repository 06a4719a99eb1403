package game

import (
	"math"
	"math/rand"

	"pacman/internal/entities"
	"pacman/internal/ghostai"
)

func (g *Game) updatePlayerMovement() {
	// Attempt to turn when aligned to the center of a cell
	if g.isAlignedToCellCenter() && g.canMoveFromCellCenter(g.player.DesiredDir) {
		g.player.CurrentDir = g.player.DesiredDir
	}

	// Move in current direction if possible
	if g.canMove(g.player.CurrentDir) {
		dx, dy := entities.DirDelta(g.player.CurrentDir)
		g.player.X += float64(dx) * playerSpeedPixelsPerUpdate
		g.player.Y += float64(dy) * playerSpeedPixelsPerUpdate
	} else {
		// If blocked, snap to cell center to avoid jitter
		gx, gy := g.playerGrid()
		g.player.X = float64(gx*tileSize + tileSize/2)
		g.player.Y = float64(gy*tileSize + tileSize/2)
	}

	// Wrap-around tunnels
	maxX := float64(g.tileMap.Width * tileSize)
	if g.player.X < 0 {
		g.player.X += maxX
	}
	if g.player.X >= maxX {
		g.player.X -= maxX
	}
}

// playerSnapshot freezes the opponent state the ghost AI is allowed to see
// this tick. The AI never touches the live player object.
func (g *Game) playerSnapshot() ghostai.Snapshot {
	if g.player == nil {
		return ghostai.Snapshot{}
	}
	return ghostai.Snapshot{
		Pos: ghostai.Point{X: int(g.player.X), Y: int(g.player.Y)},
		Dir: g.player.CurrentDir,
		OK:  true,
	}
}

// updateGhosts drives each ghost for one tick. Direction decisions happen only
// when a ghost sits on a cell center; between centers it just keeps moving.
func (g *Game) updateGhosts() {
	snap := g.playerSnapshot()
	for i, gh := range g.ghosts {
		gx := int(gh.X) / tileSize
		gy := int(gh.Y) / tileSize
		cx := float64(gx*tileSize + tileSize/2)
		cy := float64(gy*tileSize + tileSize/2)
		aligned := math.Abs(gh.X-cx) < alignmentThreshold && math.Abs(gh.Y-cy) < alignmentThreshold

		// If blocked mid-cell, snap to center and re-decide immediately
		dx, dy := entities.DirDelta(gh.CurrentDir)
		if !aligned && g.tileMap.IsWall(g.wrapX(gx+dx), gy+dy) {
			gh.X = cx
			gh.Y = cy
			aligned = true
		}

		if aligned {
			// Snap to center when aligned to avoid drift
			gh.X = cx
			gh.Y = cy
			switch {
			case gh.State == entities.GhostEaten:
				// Eyes ride the same BFS grid back to the house
				g.agents[i].StepToward(ghostHome)
				if gx == ghostHome.Col && gy == ghostHome.Row {
					gh.State = entities.GhostNormal
				}
			case g.isFrightened():
				gh.CurrentDir = g.getFleeDirection(gh, gx, gy)
			default:
				g.agents[i].Move(snap)
			}
			dx, dy = entities.DirDelta(gh.CurrentDir)
		}

		speed := ghostSpeedPixelsPerUpdate
		if gh.State == entities.GhostEaten {
			speed *= 1.5 // eyes hurry home
		} else if g.isFrightened() {
			speed *= 0.5 // 50% speed when frightened
		}
		gh.X += float64(dx) * speed
		gh.Y += float64(dy) * speed

		// wrap horizontally
		maxX := float64(g.tileMap.Width * tileSize)
		if gh.X < 0 {
			gh.X += maxX
		}
		if gh.X >= maxX {
			gh.X -= maxX
		}
		// clamp Y within bounds to avoid exiting map vertically
		minY := float64(tileSize / 2)
		maxY := float64(g.tileMap.Height*tileSize - tileSize/2)
		if gh.Y < minY {
			gh.Y = minY
		}
		if gh.Y > maxY {
			gh.Y = maxY
		}
	}
}

// wrapX folds a column index through the horizontal tunnel.
func (g *Game) wrapX(x int) int {
	if x < 0 {
		return g.tileMap.Width - 1
	}
	if x >= g.tileMap.Width {
		return 0
	}
	return x
}

// getFleeDirection chooses the direction that maximizes distance from player
func (g *Game) getFleeDirection(gh *entities.Ghost, gx, gy int) entities.Direction {
	playerX, playerY := g.playerGrid()
	candidateDirs := []entities.Direction{entities.DirUp, entities.DirDown, entities.DirLeft, entities.DirRight}
	valid := make([]entities.Direction, 0, 4)

	// Find all valid directions
	for _, d := range candidateDirs {
		dx, dy := entities.DirDelta(d)
		nx, ny := g.wrapX(gx+dx), gy+dy
		if ny < 0 || ny >= g.tileMap.Height {
			continue
		}
		if !g.tileMap.IsWall(nx, ny) {
			valid = append(valid, d)
		}
	}

	if len(valid) == 0 {
		// Emergency fallback
		return g.getRandomDirection(gh, gx, gy)
	}

	// Find direction that maximizes distance from player
	bestDir := valid[0]
	maxDistSq := float64(-1)

	for _, d := range valid {
		dx, dy := entities.DirDelta(d)
		nx, ny := g.wrapX(gx+dx), gy+dy
		distSq := float64((nx-playerX)*(nx-playerX) + (ny-playerY)*(ny-playerY))
		if distSq > maxDistSq {
			maxDistSq = distSq
			bestDir = d
		}
	}

	return bestDir
}

// getRandomDirection chooses a random valid direction, biased toward
// continuing straight and avoiding immediate reversal.
func (g *Game) getRandomDirection(gh *entities.Ghost, gx, gy int) entities.Direction {
	candidateDirs := []entities.Direction{entities.DirUp, entities.DirDown, entities.DirLeft, entities.DirRight}
	// place current direction first to bias straight
	ordered := make([]entities.Direction, 0, 4)
	if gh.CurrentDir != entities.DirNone {
		ordered = append(ordered, gh.CurrentDir)
	}
	for _, d := range candidateDirs {
		if d != gh.CurrentDir && entities.Opposite(gh.CurrentDir) != d {
			ordered = append(ordered, d)
		}
	}
	// If still empty (at start), just use candidates shuffled
	if len(ordered) == 0 {
		ordered = candidateDirs
	}
	rand.Shuffle(len(ordered), func(i, j int) { ordered[i], ordered[j] = ordered[j], ordered[i] })

	for _, d := range ordered {
		dx, dy := entities.DirDelta(d)
		nx, ny := g.wrapX(gx+dx), gy+dy
		if ny < 0 || ny >= g.tileMap.Height {
			continue
		}
		if !g.tileMap.IsWall(nx, ny) {
			return d
		}
	}

	// Dead end: reverse if the cell behind is open
	reverse := reverseDir(gh.CurrentDir)
	dx, dy := entities.DirDelta(reverse)
	nx, ny := g.wrapX(gx+dx), gy+dy
	if ny >= 0 && ny < g.tileMap.Height && !g.tileMap.IsWall(nx, ny) {
		return reverse
	}
	// Final fallback
	return entities.DirLeft
}

func (g *Game) playerGrid() (int, int) {
	return int(g.player.X) / tileSize, int(g.player.Y) / tileSize
}

func (g *Game) cellCenter(gridX, gridY int) (float64, float64) {
	return float64(gridX*tileSize + tileSize/2), float64(gridY*tileSize + tileSize/2)
}

func (g *Game) isAlignedToCellCenter() bool {
	gx, gy := g.playerGrid()
	cx, cy := g.cellCenter(gx, gy)
	// Use alignment threshold to ensure we catch alignment at high speeds
	return math.Abs(g.player.X-cx) < alignmentThreshold && math.Abs(g.player.Y-cy) < alignmentThreshold
}

func (g *Game) isNearCellCenter() bool {
	gx, gy := g.playerGrid()
	cx, cy := g.cellCenter(gx, gy)
	return math.Abs(g.player.X-cx) < 5.0 && math.Abs(g.player.Y-cy) < 5.0
}

func (g *Game) canMove(dir entities.Direction) bool {
	if dir == entities.DirNone {
		return false
	}
	dx, dy := entities.DirDelta(dir)
	gx, gy := g.playerGrid()

	// If not aligned, only allow continuing straight to reach alignment
	if !g.isAlignedToCellCenter() && dir != g.player.CurrentDir {
		return false
	}

	// Next cell, with wrap-around on X
	nx, ny := g.wrapX(gx+dx), gy+dy
	if ny < 0 || ny >= g.tileMap.Height {
		return false
	}
	return !g.tileMap.IsWall(nx, ny)
}

// canMoveFromCellCenter checks if movement in a direction is valid from current cell
// without requiring perfect alignment (used for queued turns)
func (g *Game) canMoveFromCellCenter(dir entities.Direction) bool {
	if dir == entities.DirNone {
		return false
	}
	dx, dy := entities.DirDelta(dir)
	gx, gy := g.playerGrid()

	nx, ny := g.wrapX(gx+dx), gy+dy
	if ny < 0 || ny >= g.tileMap.Height {
		return false
	}
	return !g.tileMap.IsWall(nx, ny)
}

// reverseDir flips a heading; a ghost with no heading yet turns Left so the
// frightened-mode mass reversal always yields a real direction.
func reverseDir(a entities.Direction) entities.Direction {
	if op := entities.Opposite(a); op != entities.DirNone {
		return op
	}
	return entities.DirLeft
}
