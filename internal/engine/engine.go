package engine

import (
	"math"

	"github.com/KirkDiggler/poketrainers/internal/clients/gamedata"
	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
	"github.com/KirkDiggler/poketrainers/internal/errors"
)

// perfectIVSum is the IV sum of a 15/15/15 creature
const perfectIVSum = 3 * pokemon.MaxIV

// Config holds the dependencies for the engine
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

type engine struct {
	gameData gamedata.Client
}

// New creates an engine reading scalars from the level table
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{gameData: cfg.GameData}, nil
}

func (e *engine) CalculateStats(p *pokemon.Pokemon, ivs pokemon.IVs, level int) *pokemon.Stats {
	scalar := e.gameData.CPScalarForLevel(level)
	maxScalar := e.gameData.CPScalarForLevel(pokemon.MaxLevel)

	return &pokemon.Stats{
		IVs:        ivs,
		Level:      level,
		Perfection: CalculatePerfection(ivs.Attack, ivs.Defense, ivs.Stamina),
		HP:         CalculateHP(p.BaseStamina, ivs.Stamina, scalar),
		CP:         CalculateCP(p.BaseAttack, ivs.Attack, p.BaseDefense, ivs.Defense, p.BaseStamina, ivs.Stamina, scalar),
		MaxHP:      CalculateHP(p.BaseStamina, ivs.Stamina, maxScalar),
		MaxCP:      CalculateCP(p.BaseAttack, ivs.Attack, p.BaseDefense, ivs.Defense, p.BaseStamina, ivs.Stamina, maxScalar),
	}
}

// CalculateCP returns floor((atk) * sqrt(def) * sqrt(sta) * scalar^2 / 10).
// The floor is applied once, after all floating point arithmetic.
func CalculateCP(baseAttack, attackIV, baseDefense, defenseIV, baseStamina, staminaIV int, scalar float64) int {
	cp := float64(baseAttack+attackIV) *
		math.Sqrt(float64(baseDefense+defenseIV)) *
		math.Sqrt(float64(baseStamina+staminaIV)) *
		math.Pow(scalar, 2)
	return int(math.Floor(cp / 10))
}

// CalculateHP returns floor((baseStamina+staminaIV) * scalar)
func CalculateHP(baseStamina, staminaIV int, scalar float64) int {
	return int(math.Floor(float64(baseStamina+staminaIV) * scalar))
}

// CalculatePerfection returns the IV sum as a rounded percentage of 45
func CalculatePerfection(attackIV, defenseIV, staminaIV int) int {
	return RoundPercent(float64(attackIV+defenseIV+staminaIV) / perfectIVSum)
}

// RoundPercent turns a fraction into a whole percentage, rounding half away
// from zero
func RoundPercent(fraction float64) int {
	return int(math.Round(100 * fraction))
}
