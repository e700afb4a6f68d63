package pokemon

import (
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType is the rpg-toolkit entity type of a creature record
const EntityType = "pokemon"

// GetID returns the pokedex number as the entity ID
func (p *Pokemon) GetID() string {
	return strconv.Itoa(p.ID)
}

// GetType returns the entity type for rpg-toolkit
func (p *Pokemon) GetType() string {
	return EntityType
}

var _ core.Entity = (*Pokemon)(nil)
