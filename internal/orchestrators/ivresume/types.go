package ivresume

import (
	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
)

// GetIVResumeInput defines the request for an IV resume
type GetIVResumeInput struct {
	Name string
	CP   int
	HP   int
	Dust int
}

// GetIVResumeOutput defines the response for an IV resume
type GetIVResumeOutput struct {
	Resume *pokemon.IVResume
}
