package ghostai

import (
	"pacman/internal/entities"
)

// stubBoard is a fixed-geometry Board for tests.
type stubBoard struct {
	tileSize      int
	width, height int
	walls         []Point
}

func (b stubBoard) TileSize() int    { return b.tileSize }
func (b stubBoard) BoardWidth() int  { return b.width }
func (b stubBoard) BoardHeight() int { return b.height }
func (b stubBoard) Walls() []Point   { return b.walls }

// boardFromRows builds a board from '#' rows, one tile per character.
func boardFromRows(rows []string, tileSize int) stubBoard {
	b := stubBoard{
		tileSize: tileSize,
		width:    len(rows[0]) * tileSize,
		height:   len(rows) * tileSize,
	}
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				b.walls = append(b.walls, Point{X: x * tileSize, Y: y * tileSize})
			}
		}
	}
	return b
}

// opponentAt is shorthand for a valid snapshot.
func opponentAt(x, y int, dir entities.Direction) Snapshot {
	return Snapshot{Pos: Point{X: x, Y: y}, Dir: dir, OK: true}
}
