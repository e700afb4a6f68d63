// Package candy plans how many creatures of a species can be evolved with
// the candies and spare creatures on hand
package candy

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/poketrainers/internal/clients/gamedata"
	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
	"github.com/KirkDiggler/poketrainers/internal/errors"
)

const (
	// XPPerEvolution is the trainer XP granted by one evolution
	XPPerEvolution = 500
	// LuckyEggMultiplier doubles XP while a lucky egg is active
	LuckyEggMultiplier = 2
	// TimePerEvolution is the seconds one evolution animation takes
	TimePerEvolution = 24
)

// Service defines the interface for candy planning
type Service interface {
	GetCandyPlan(ctx context.Context, input *GetCandyPlanInput) (*GetCandyPlanOutput, error)
}

// Config holds the dependencies for the candy orchestrator
type Config struct {
	GameData gamedata.Client
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

	return vb.Build()
}

type orchestrator struct {
	gameData gamedata.Client
}

// NewOrchestrator creates a new candy orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		gameData: cfg.GameData,
	}, nil
}

// GetCandyPlan looks up the evolution cost of the species and runs the plan
func (o *orchestrator) GetCandyPlan(ctx context.Context, input *GetCandyPlanInput) (*GetCandyPlanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("species", input.Species, vb)
	errors.ValidateNonNegative("quantity", input.Quantity, vb)
	errors.ValidateNonNegative("candies", input.Candies, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	p, err := o.gameData.FindByName(input.Species)
	if err != nil {
		return nil, err
	}

	if p.CandyToEvolve < 1 {
		return nil, errors.FailedPreconditionf("%s cannot be evolved with candy", p.Name).
			WithMeta("name", p.Name)
	}

	plan := Plan(p.CandyToEvolve, input.Quantity, input.Candies, input.Transfer)
	plan.Pokemon = p

	slog.Debug("Planned candy spend",
		"species", p.Name,
		"evolutions", plan.PokemonsToEvolve,
		"transfers", plan.PokemonsToTransfer,
		"candies_left", plan.CandiesLeft)

	return &GetCandyPlanOutput{Plan: plan}, nil
}

// Plan spends candies and surplus creatures on evolutions of a species whose
// evolution costs cost candies. Every evolution refunds one candy. The phases
// run in a fixed order and each one sees the state left by the previous.
// cost must be at least 1.
func Plan(cost, quantity, candies int, transfer bool) *pokemon.CandyPlan {
	plan := &pokemon.CandyPlan{
		Quantity: quantity,
		Candies:  candies,
	}

	toEvolve := candies / cost
	var toTransfer, evolutionsToTransfer, candiesLeft int

	if quantity >= toEvolve {
		quantity -= toEvolve
		candiesLeft = candies - toEvolve*cost
		candiesLeft += toEvolve

		// Spend the refunds
		if quantity > 0 {
			extra := min(candiesLeft/cost, quantity)
			candiesLeft -= extra * cost
			toEvolve += extra
			quantity -= extra
		}

		// Transfer one of every cost+1 spare creatures to evolve the rest
		if quantity > cost {
			possible := quantity / (cost + 1)
			toTransfer = possible * cost
			candiesLeft += toTransfer
			toEvolve += possible
			quantity -= toTransfer + possible
			candiesLeft -= possible * cost
		}

		if transfer && toEvolve > cost {
			possible := toEvolve / cost
			if quantity >= possible {
				evolutionsToTransfer = possible * cost
				candiesLeft += evolutionsToTransfer
				toEvolve += possible
				quantity -= possible
				candiesLeft -= possible * cost
			}
		}
	} else {
		// Fewer creatures than the candies allow
		toEvolve = quantity
		quantity = 0
		candiesLeft = candies - toEvolve*cost + toEvolve
	}

	plan.XP = XPPerEvolution * toEvolve
	plan.XPWithLuckyEgg = LuckyEggMultiplier * plan.XP
	plan.PokemonsToEvolve = toEvolve
	plan.PokemonsToTransfer = toTransfer
	plan.EvolutionsToTransfer = evolutionsToTransfer
	plan.CandiesLeft = candiesLeft
	plan.PokemonsLeft = quantity
	plan.Time = TimePerEvolution * toEvolve

	return plan
}
