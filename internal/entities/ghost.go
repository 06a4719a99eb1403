package entities

type Ghost struct {
	X, Y        float64
	CurrentDir  Direction
	State       GhostState
	Personality Personality
}

type GhostState int

const (
	GhostNormal GhostState = iota
	GhostEaten
)

// Personality selects which target strategy drives a ghost.
type Personality int

const (
	PersonalityDirect Personality = iota
	PersonalityPatrol
	PersonalityThreshold
	PersonalityHybrid
)
