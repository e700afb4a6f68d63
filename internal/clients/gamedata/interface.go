// Package gamedata provides read-only, indexed access to the creature and
// level reference tables.
package gamedata

//go:generate mockgen -destination=mock/mock_client.go -package=gamedatamock github.com/KirkDiggler/poketrainers/internal/clients/gamedata Client

import (
	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
)

// Client looks up reference records. Returned records are shared and must not
// be modified.
type Client interface {
	// FindByName returns the record with the exact name.
	// Returns errors.NotFound carrying the name when absent.
	FindByName(name string) (*pokemon.Pokemon, error)

	// FindByID returns the record with the pokedex number.
	// Returns errors.NotFound carrying the id when absent.
	FindByID(id int) (*pokemon.Pokemon, error)

	// CPScalarForLevel returns the CP scalar of a level step, or 0 when the
	// table has no such step.
	CPScalarForLevel(level int) float64

	// LevelsForDust returns the level steps whose power-up costs dust, in
	// ascending order. Empty when none match.
	LevelsForDust(dust int) []int
}
