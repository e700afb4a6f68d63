// Package tables provides the sources the reference tables are loaded from
package tables

import (
	"context"
)

// Repository returns the raw JSON exports of the creature and level tables
type Repository interface {
	// Get retrieves both tables
	// Returns errors.NotFound if a table is missing from the source
	// Returns errors.Internal or errors.Unavailable for storage failures
	Get(ctx context.Context) (*GetOutput, error)
}

// Writer is implemented by sources that can be seeded
type Writer interface {
	// Put stores both tables, replacing any previous copy
	// Returns errors.InvalidArgument when either table is empty
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}

// GetOutput holds the raw table exports
type GetOutput struct {
	PokemonJSON []byte
	LevelJSON   []byte
}

// PutInput holds the raw table exports to store
type PutInput struct {
	PokemonJSON []byte
	LevelJSON   []byte
}

// PutOutput defines the output for storing tables
type PutOutput struct {
	BytesWritten int
}
