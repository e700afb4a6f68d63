package cprange

import (
	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
)

// GetCPRangeInput defines the request for a CP band. Level 0 means the
// level is not known yet.
type GetCPRangeInput struct {
	Name       string
	Level      int
	ObservedCP *int
}

// GetCPRangeOutput defines the response for a CP band
type GetCPRangeOutput struct {
	Range *pokemon.CPRange
}

// GuessLevelInput defines the request for guessing a level from a CP
type GuessLevelInput struct {
	Name string
	CP   int
}

// GuessLevelOutput defines the response for a level guess. Found is false
// when no band contains the CP.
type GuessLevelOutput struct {
	Level int
	Found bool
}
