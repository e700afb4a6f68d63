package ivcalc

import (
	"context"

	"github.com/KirkDiggler/poketrainers/internal/clients/gamedata"
	"github.com/KirkDiggler/poketrainers/internal/engine"
	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
	"github.com/KirkDiggler/poketrainers/internal/errors"
)

// Grades by mean candidate perfection
const (
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
	GradeD = "D"
)

var gradeThresholds = []struct {
	min   float64
	grade string
}{
	{0.82, GradeA},
	{0.67, GradeB},
	{0.51, GradeC},
	{0, GradeD},
}

var tableNames = map[string]string{
	NidoranFemale: "Nidoran♀",
	NidoranMale:   "Nidoran♂",
}

// Config holds the dependencies for the brute force evaluator
type Config struct {
	GameData gamedata.Client
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.GameData == nil {
		vb.RequiredField("GameData")
	}
	return vb.Build()
}

type bruteForce struct {
	gameData gamedata.Client
}

// NewBruteForce creates an evaluator that tries all 4096 IV triples at every
// level step the dust cost allows
func NewBruteForce(cfg *Config) (Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &bruteForce{gameData: cfg.GameData}, nil
}

func (b *bruteForce) Evaluate(_ context.Context, input *EvaluateInput) (*EvaluateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := input.Name
	if tableName, ok := tableNames[name]; ok {
		name = tableName
	}

	p, err := b.gameData.FindByName(name)
	if err != nil {
		return nil, err
	}

	var candidates []pokemon.IVCandidate
	for _, level := range b.gameData.LevelsForDust(input.Dust) {
		scalar := b.gameData.CPScalarForLevel(level)
		for sta := 0; sta <= pokemon.MaxIV; sta++ {
			if engine.CalculateHP(p.BaseStamina, sta, scalar) != input.HP {
				continue
			}
			for atk := 0; atk <= pokemon.MaxIV; atk++ {
				for def := 0; def <= pokemon.MaxIV; def++ {
					if engine.CalculateCP(p.BaseAttack, atk, p.BaseDefense, def, p.BaseStamina, sta, scalar) != input.CP {
						continue
					}
					ivs := pokemon.IVs{Attack: atk, Defense: def, Stamina: sta}
					candidates = append(candidates, pokemon.IVCandidate{
						IVs:        ivs,
						Level:      level,
						Perfection: float64(ivs.Sum()) / (3 * pokemon.MaxIV),
					})
				}
			}
		}
	}

	return &EvaluateOutput{
		Grade: grade(candidates),
		IVs:   candidates,
	}, nil
}

func grade(candidates []pokemon.IVCandidate) string {
	if len(candidates) == 0 {
		return ""
	}

	var sum float64
	for _, c := range candidates {
		sum += c.Perfection
	}
	mean := sum / float64(len(candidates))

	for _, t := range gradeThresholds {
		if mean >= t.min {
			return t.grade
		}
	}
	return GradeD
}
