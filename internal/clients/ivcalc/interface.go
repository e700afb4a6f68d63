// Package ivcalc enumerates the IV combinations consistent with an observed
// CP, HP and power-up dust cost
package ivcalc

//go:generate mockgen -destination=mock/mock_evaluator.go -package=ivcalcmock github.com/KirkDiggler/poketrainers/internal/clients/ivcalc Evaluator

import (
	"context"

	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
)

// Evaluator names for the two species whose table names are not ASCII
const (
	NidoranFemale = "Nidoran_Female"
	NidoranMale   = "Nidoran_Male"
)

// Evaluator is a pure function of its input
type Evaluator interface {
	// Evaluate returns every candidate matching the observation. An empty
	// candidate list is a valid result, not an error.
	Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error)
}

// EvaluateInput is an observation of a creature. Name uses evaluator naming.
type EvaluateInput struct {
	Name string
	CP   int
	HP   int
	Dust int
}

// EvaluateOutput holds a coarse grade and the matching candidates
type EvaluateOutput struct {
	Grade string
	IVs   []pokemon.IVCandidate
}
