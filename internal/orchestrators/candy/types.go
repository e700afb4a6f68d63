package candy

import (
	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
)

// GetCandyPlanInput defines the request for a candy plan
type GetCandyPlanInput struct {
	Species  string
	Quantity int
	Candies  int
	// Transfer enables trading evolved creatures back for candy
	Transfer bool
}

// GetCandyPlanOutput defines the response for a candy plan
type GetCandyPlanOutput struct {
	Plan *pokemon.CandyPlan
}
