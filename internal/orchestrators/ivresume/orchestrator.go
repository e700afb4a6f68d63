// Package ivresume summarizes the IV candidates of an observed creature
package ivresume

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/poketrainers/internal/clients/gamedata"
	"github.com/KirkDiggler/poketrainers/internal/clients/ivcalc"
	"github.com/KirkDiggler/poketrainers/internal/engine"
	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
	"github.com/KirkDiggler/poketrainers/internal/errors"
	"github.com/KirkDiggler/poketrainers/internal/pkg/imageurl"
)

// Chart row labels, in display order
const (
	StatAttack  = "⚔"
	StatDefense = "🛡"
	StatStamina = "💪"
)

// evaluatorNames maps table names the evaluator cannot take
var evaluatorNames = map[string]string{
	"Nidoran♀": ivcalc.NidoranFemale,
	"Nidoran♂": ivcalc.NidoranMale,
}

// Service defines the interface for IV resume operations
type Service interface {
	GetIVResume(ctx context.Context, input *GetIVResumeInput) (*GetIVResumeOutput, error)
}

// Config holds the dependencies for the IV resume orchestrator
type Config struct {
	GameData  gamedata.Client
	Engine    engine.Engine
	Evaluator ivcalc.Evaluator
	Images    imageurl.Builder
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
	if c.Evaluator == nil {
		vb.RequiredField("Evaluator")
	}
	if c.Images == nil {
		vb.RequiredField("Images")
	}

	return vb.Build()
}

type orchestrator struct {
	gameData  gamedata.Client
	engine    engine.Engine
	evaluator ivcalc.Evaluator
	images    imageurl.Builder
}

// NewOrchestrator creates a new IV resume orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		gameData:  cfg.GameData,
		engine:    cfg.Engine,
		evaluator: cfg.Evaluator,
		images:    cfg.Images,
	}, nil
}

// GetIVResume evaluates the observation and summarizes the candidates. No
// matching candidate is a valid result with a zero count.
func (o *orchestrator) GetIVResume(ctx context.Context, input *GetIVResumeInput) (*GetIVResumeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateNonNegative("cp", input.CP, vb)
	errors.ValidateNonNegative("hp", input.HP, vb)
	errors.ValidateNonNegative("dust", input.Dust, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	p, err := o.gameData.FindByName(input.Name)
	if err != nil {
		return nil, err
	}

	name := input.Name
	if alias, ok := evaluatorNames[name]; ok {
		name = alias
	}

	evaluation, err := o.evaluator.Evaluate(ctx, &ivcalc.EvaluateInput{
		Name: name,
		CP:   input.CP,
		HP:   input.HP,
		Dust: input.Dust,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to evaluate %s", p.Name)
	}

	resume := &pokemon.IVResume{
		Pokemon:    p,
		Avatar:     o.images.Avatar(p.ID),
		LevelRange: o.gameData.LevelsForDust(input.Dust),
		Grade:      evaluation.Grade,
	}

	if len(evaluation.IVs) == 0 {
		slog.Info("No IV candidates match",
			"name", p.Name,
			"cp", input.CP,
			"hp", input.HP,
			"dust", input.Dust)
		return &GetIVResumeOutput{Resume: resume}, nil
	}

	candidates := make([]pokemon.IVCandidate, len(evaluation.IVs))
	copy(candidates, evaluation.IVs)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Perfection > candidates[j].Perfection
	})

	best := candidates[0]
	worst := candidates[len(candidates)-1]

	var total float64
	for _, c := range candidates {
		total += c.Perfection
	}

	resume.Perfection = &pokemon.PerfectionSummary{
		Best:  engine.RoundPercent(best.Perfection),
		Worst: engine.RoundPercent(worst.Perfection),
		Avg:   engine.RoundPercent(total / float64(len(candidates))),
	}

	resume.ChartData = []pokemon.ChartRow{
		{Stat: StatAttack, Best: best.IVs.Attack, Worst: worst.IVs.Attack},
		{Stat: StatDefense, Best: best.IVs.Defense, Worst: worst.IVs.Defense},
		{Stat: StatStamina, Best: best.IVs.Stamina, Worst: worst.IVs.Stamina},
	}

	// The level table is ascending, so the last level is the best case
	var bestLevel, worstLevel int
	if n := len(resume.LevelRange); n > 0 {
		bestLevel = resume.LevelRange[n-1]
		worstLevel = resume.LevelRange[0]
	}

	resume.IVs = pokemon.IVSummary{
		Best:      o.engine.CalculateStats(p, pokemon.IVs{Attack: pokemon.MaxIV, Defense: pokemon.MaxIV, Stamina: pokemon.MaxIV}, bestLevel),
		YourBest:  o.engine.CalculateStats(p, best.IVs, best.Level),
		YourWorst: o.engine.CalculateStats(p, worst.IVs, worst.Level),
		Worst:     o.engine.CalculateStats(p, pokemon.IVs{}, worstLevel),
		Count:     len(candidates),
	}

	return &GetIVResumeOutput{Resume: resume}, nil
}
