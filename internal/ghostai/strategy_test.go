package ghostai

import (
	"testing"

	"pacman/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestHybridTarget(t *testing.T) {
	h := Hybrid{TileSize: 10}
	self := Point{X: 0, Y: 0}

	tests := []struct {
		name string
		snap Snapshot
		want Point
	}{
		{name: "facing right", snap: opponentAt(100, 100, entities.DirRight), want: Point{X: 110, Y: 100}},
		{name: "facing left", snap: opponentAt(100, 100, entities.DirLeft), want: Point{X: 90, Y: 100}},
		{name: "facing up", snap: opponentAt(100, 100, entities.DirUp), want: Point{X: 100, Y: 90}},
		{name: "facing down", snap: opponentAt(100, 100, entities.DirDown), want: Point{X: 100, Y: 110}},
		{name: "no heading means no lead", snap: opponentAt(100, 100, entities.DirNone), want: Point{X: 100, Y: 100}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, h.Target(tc.snap, self))
		})
	}
}

func TestHybridTargetTruncatesMidpoint(t *testing.T) {
	// Odd coordinate sums must truncate, not round.
	h := Hybrid{TileSize: 5}
	got := h.Target(opponentAt(3, 7, entities.DirRight), Point{})
	// ahead = (13,7); midpoint x = (3+13)/2 = 8, y = 7
	require.Equal(t, Point{X: 8, Y: 7}, got)
}

func TestThresholdTargetChaseVsRetreat(t *testing.T) {
	th := NewThreshold(16, 31)
	self := Point{X: 0, Y: 0}
	retreat := Point{X: 16, Y: 29 * 16}
	require.Equal(t, retreat, th.Retreat)

	// 8 tiles * 16 px = 128 px radius.
	tests := []struct {
		name string
		opp  Point
		want Point
	}{
		{name: "far away chases", opp: Point{X: 129, Y: 0}, want: Point{X: 129, Y: 0}},
		{name: "exactly at radius retreats", opp: Point{X: 128, Y: 0}, want: retreat},
		{name: "inside radius retreats", opp: Point{X: 50, Y: 50}, want: retreat},
		{name: "diagonal beyond radius chases", opp: Point{X: 100, Y: 100}, want: Point{X: 100, Y: 100}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := th.Target(opponentAt(tc.opp.X, tc.opp.Y, entities.DirNone), self)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDirectTarget(t *testing.T) {
	require.Equal(t, Point{X: 42, Y: 77}, Direct{}.Target(opponentAt(42, 77, entities.DirUp), Point{X: 1, Y: 1}))
}

func TestPatrolCyclesWaypoints(t *testing.T) {
	p := NewPatrol(16, 31, 28)
	require.Len(t, p.Waypoints, 4)

	snap := opponentAt(0, 0, entities.DirNone) // ignored
	away := Point{X: 5 * 16, Y: 5 * 16}

	// Away from the current waypoint the target is stable.
	first := p.Target(snap, away)
	require.Equal(t, first, p.Target(snap, away))

	// Standing on the waypoint tile advances to the next corner.
	second := p.Target(snap, first)
	require.NotEqual(t, first, second)

	// Full loop comes back around.
	third := p.Target(snap, second)
	fourth := p.Target(snap, third)
	require.Equal(t, first, p.Target(snap, fourth))
}

func TestPatrolWithoutWaypointsHolds(t *testing.T) {
	p := &Patrol{TileSize: 16}
	self := Point{X: 33, Y: 44}
	require.Equal(t, self, p.Target(opponentAt(0, 0, entities.DirNone), self))
}

func TestStrategyForPersonalities(t *testing.T) {
	b := boardFromRows([]string{"....", "....", "....", "...."}, 16)
	require.IsType(t, Hybrid{}, StrategyFor(entities.PersonalityHybrid, b))
	require.IsType(t, Threshold{}, StrategyFor(entities.PersonalityThreshold, b))
	require.IsType(t, &Patrol{}, StrategyFor(entities.PersonalityPatrol, b))
	require.IsType(t, Direct{}, StrategyFor(entities.PersonalityDirect, b))
}
