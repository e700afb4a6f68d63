// Package engine implements the CP, HP and perfection formulas
package engine

import (
	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
)

// Engine computes stat snapshots from reference data
type Engine interface {
	// CalculateStats returns the snapshot of a creature with the given IVs at
	// a level step. Levels absent from the table use a zero scalar.
	CalculateStats(p *pokemon.Pokemon, ivs pokemon.IVs, level int) *pokemon.Stats
}
