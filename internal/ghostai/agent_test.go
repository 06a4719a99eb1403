package ghostai

import (
	"testing"

	"pacman/internal/entities"

	"github.com/stretchr/testify/require"
)

func newTestAgent(rows []string, gh *entities.Ghost, s Strategy) *Agent {
	return NewAgent(boardFromRows(rows, 16), gh, s)
}

func ghostAtTile(row, col int, dir entities.Direction) *entities.Ghost {
	return &entities.Ghost{
		X:          float64(col*16 + 8),
		Y:          float64(row*16 + 8),
		CurrentDir: dir,
	}
}

func TestCalculateTargetWithoutOpponentIsSelf(t *testing.T) {
	gh := ghostAtTile(4, 4, entities.DirLeft)
	a := newTestAgent(openSeven, gh, Direct{})
	got := a.CalculateTarget(Snapshot{})
	require.Equal(t, Point{X: int(gh.X), Y: int(gh.Y)}, got)
}

func TestMoveWithoutOpponentHoldsDirection(t *testing.T) {
	gh := ghostAtTile(4, 4, entities.DirLeft)
	a := newTestAgent(openSeven, gh, Direct{})
	a.Move(Snapshot{})
	require.Equal(t, entities.DirLeft, gh.CurrentDir)
}

func TestMoveHeadsTowardOpponent(t *testing.T) {
	gh := ghostAtTile(4, 4, entities.DirNone)
	a := newTestAgent(openSeven, gh, Direct{})
	a.Move(opponentAt(4*16+8, 1*16+8, entities.DirNone)) // opponent three tiles up
	require.Equal(t, entities.DirUp, gh.CurrentDir)
}

func TestMoveClampsTargetIntoBounds(t *testing.T) {
	// Wall-free field so the clamped edge tile itself is walkable.
	openField := []string{
		".....",
		".....",
		".....",
		".....",
		".....",
	}
	gh := ghostAtTile(2, 2, entities.DirNone)
	a := newTestAgent(openField, gh, Direct{})
	// Snapshot position far outside the board: the goal tile must clamp to
	// the nearest edge cell instead of derailing the search.
	a.Move(opponentAt(10_000, 2*16+8, entities.DirNone))
	require.Equal(t, entities.DirRight, gh.CurrentDir)

	gh.CurrentDir = entities.DirNone
	a.Move(opponentAt(2*16+8, -10_000, entities.DirNone))
	require.Equal(t, entities.DirUp, gh.CurrentDir)
}

func TestMoveOnTargetTileHoldsDirection(t *testing.T) {
	gh := ghostAtTile(4, 4, entities.DirDown)
	a := newTestAgent(openSeven, gh, Direct{})
	// Opponent in the ghost's own tile: start == goal, nothing to do.
	a.Move(opponentAt(4*16+2, 4*16+2, entities.DirNone))
	require.Equal(t, entities.DirDown, gh.CurrentDir)
}

func TestMoveDeterministic(t *testing.T) {
	snap := opponentAt(1*16+8, 1*16+8, entities.DirRight)
	var first entities.Direction
	for i := 0; i < 20; i++ {
		gh := ghostAtTile(5, 5, entities.DirDown)
		a := newTestAgent(openSeven, gh, Hybrid{TileSize: 16})
		a.Move(snap)
		if i == 0 {
			first = gh.CurrentDir
			require.NotEqual(t, entities.DirNone, first)
			continue
		}
		require.Equal(t, first, gh.CurrentDir)
	}
}

func TestStepTowardReachesGoalAcrossMaze(t *testing.T) {
	rows := []string{
		"########",
		"#......#",
		"#.####.#",
		"#.#....#",
		"#.#.####",
		"#......#",
		"########",
	}
	gh := ghostAtTile(5, 1, entities.DirNone)
	a := newTestAgent(rows, gh, Direct{})
	goal := TileCoord{Row: 3, Col: 4}

	for steps := 0; steps < 64; steps++ {
		row := int(gh.Y) / 16
		col := int(gh.X) / 16
		if (TileCoord{Row: row, Col: col}) == goal {
			return
		}
		a.StepToward(goal)
		dx, dy := entities.DirDelta(gh.CurrentDir)
		gh.X += float64(dx * 16)
		gh.Y += float64(dy * 16)
	}
	t.Fatalf("ghost never reached %v, stuck at (%v,%v)", goal, gh.X, gh.Y)
}

func TestThresholdAgentRetreatsWhenClose(t *testing.T) {
	// 31-row board so the retreat corner matches the stock maze geometry.
	rows := make([]string, 31)
	for i := range rows {
		switch i {
		case 0, 30:
			rows[i] = "############################"
		default:
			rows[i] = "#..........................#"
		}
	}
	gh := ghostAtTile(5, 5, entities.DirNone)
	a := newTestAgent(rows, gh, NewThreshold(16, 31))

	// Opponent right next door: the target must be the retreat corner.
	got := a.CalculateTarget(opponentAt(int(gh.X)+16, int(gh.Y), entities.DirLeft))
	require.Equal(t, Point{X: 16, Y: 29 * 16}, got)

	// And the first move must head toward it, not toward the opponent.
	a.Move(opponentAt(int(gh.X)+16, int(gh.Y), entities.DirLeft))
	require.Contains(t, []entities.Direction{entities.DirDown, entities.DirLeft}, gh.CurrentDir)
}
