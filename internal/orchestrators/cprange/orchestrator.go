// Package cprange computes typical CP bands of a creature and its evolutions
package cprange

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/poketrainers/internal/clients/gamedata"
	"github.com/KirkDiggler/poketrainers/internal/engine"
	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
	"github.com/KirkDiggler/poketrainers/internal/errors"
	"github.com/KirkDiggler/poketrainers/internal/pkg/imageurl"
)

// MaxEvolutionDepth bounds evolution chain expansion
const MaxEvolutionDepth = 8

var (
	// The band shown to trainers is the typical range, not the absolute one
	lowIVs  = pokemon.IVs{Attack: 5, Defense: 5, Stamina: 5}
	highIVs = pokemon.IVs{Attack: 10, Defense: 10, Stamina: 10}
)

// Service defines the interface for CP range operations
type Service interface {
	GetCPRange(ctx context.Context, input *GetCPRangeInput) (*GetCPRangeOutput, error)
	GuessLevel(ctx context.Context, input *GuessLevelInput) (*GuessLevelOutput, error)
}

// Config holds the dependencies for the CP range orchestrator
type Config struct {
	GameData gamedata.Client
	Engine   engine.Engine
	Images   imageurl.Builder
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.GameData == nil {
		vb.RequiredField("GameData")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Images == nil {
		vb.RequiredField("Images")
	}

	return vb.Build()
}

type orchestrator struct {
	gameData gamedata.Client
	engine   engine.Engine
	images   imageurl.Builder
}

// NewOrchestrator creates a new CP range orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		gameData: cfg.GameData,
		engine:   cfg.Engine,
		images:   cfg.Images,
	}, nil
}

// GetCPRange returns the band at the level together with the bands of every
// evolution at the same level
func (o *orchestrator) GetCPRange(ctx context.Context, input *GetCPRangeInput) (*GetCPRangeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateNonNegative("level", input.Level, vb)
	if input.ObservedCP != nil {
		errors.ValidateNonNegative("cp", *input.ObservedCP, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	p, err := o.gameData.FindByName(input.Name)
	if err != nil {
		return nil, err
	}

	slog.Debug("Computing CP range",
		"name", p.Name,
		"level", input.Level)

	cpRange, err := o.expand(p, input.Level, input.ObservedCP, map[int]bool{}, 0)
	if err != nil {
		return nil, err
	}

	return &GetCPRangeOutput{Range: cpRange}, nil
}

func (o *orchestrator) expand(p *pokemon.Pokemon, level int, observedCP *int, path map[int]bool, depth int) (*pokemon.CPRange, error) {
	if path[p.ID] {
		return nil, errors.DataIntegrityf("evolution chain of %s loops back to itself", p.Name).
			WithMeta("id", p.ID)
	}
	if depth > MaxEvolutionDepth {
		return nil, errors.DataIntegrityf("evolution chain of %s is deeper than %d", p.Name, MaxEvolutionDepth).
			WithMeta("id", p.ID)
	}

	cpRange := &pokemon.CPRange{
		Pokemon:    p,
		Avatar:     o.images.Avatar(p.ID),
		Level:      level,
		ObservedCP: observedCP,
	}

	if level == 0 {
		return cpRange, nil
	}

	cpRange.MinCP, cpRange.MaxCP = o.band(p, level)

	path[p.ID] = true
	defer delete(path, p.ID)

	for _, id := range p.EvolutionIDs {
		child, err := o.gameData.FindByID(id)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDataIntegrity,
				"evolution of "+p.Name+" is not in the creature table")
		}

		evolution, err := o.expand(child, level, nil, path, depth+1)
		if err != nil {
			return nil, err
		}
		cpRange.Evolutions = append(cpRange.Evolutions, evolution)
	}

	return cpRange, nil
}

func (o *orchestrator) band(p *pokemon.Pokemon, level int) (*int, *int) {
	low := o.engine.CalculateStats(p, lowIVs, level).CP
	high := o.engine.CalculateStats(p, highIVs, level).CP
	return &low, &high
}

// GuessLevel returns the lowest level whose band contains the CP
func (o *orchestrator) GuessLevel(ctx context.Context, input *GuessLevelInput) (*GuessLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateNonNegative("cp", input.CP, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	p, err := o.gameData.FindByName(input.Name)
	if err != nil {
		return nil, err
	}

	for level := pokemon.MinLevel; level <= pokemon.MaxLevel; level++ {
		// Levels missing from the table have no band
		if o.gameData.CPScalarForLevel(level) == 0 {
			continue
		}

		low, high := o.band(p, level)
		if *low <= input.CP && input.CP <= *high {
			return &GuessLevelOutput{Level: level, Found: true}, nil
		}
	}

	slog.Info("No level matches CP",
		"name", p.Name,
		"cp", input.CP)

	return &GuessLevelOutput{}, nil
}
