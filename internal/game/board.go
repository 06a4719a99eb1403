package game

import (
	"pacman/internal/ghostai"
	tm "pacman/internal/tilemap"
)

// boardAdapter exposes the tile map to the ghost AI behind its Board contract.
type boardAdapter struct {
	m *tm.TileMap
}

func (b boardAdapter) TileSize() int    { return b.m.TileSize }
func (b boardAdapter) BoardWidth() int  { return b.m.Width * b.m.TileSize }
func (b boardAdapter) BoardHeight() int { return b.m.Height * b.m.TileSize }

func (b boardAdapter) Walls() []ghostai.Point {
	blocks := b.m.WallBlocks()
	walls := make([]ghostai.Point, len(blocks))
	for i, w := range blocks {
		walls[i] = ghostai.Point{X: w[0], Y: w[1]}
	}
	return walls
}
