package testutils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/poketrainers/internal/clients/gamedata"
	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
	"github.com/KirkDiggler/poketrainers/internal/repositories/tables"
)

// Names of embedded records used across tests
const (
	Pidgey      = "Pidgey"
	Eevee       = "Eevee"
	Bulbasaur   = "Bulbasaur"
	Mewtwo      = "Mewtwo"
	NidoranF    = "Nidoran♀"
	NidoranM    = "Nidoran♂"
	Magikarp    = "Magikarp"
	UnknownName = "Missingno"
)

// NewGameData builds a gamedata client over the embedded tables
func NewGameData(t *testing.T) gamedata.Client {
	t.Helper()

	out, err := tables.NewEmbedded().Get(context.Background())
	require.NoError(t, err, "failed to read embedded tables")

	cfg, err := gamedata.ParseTables(out.PokemonJSON, out.LevelJSON)
	require.NoError(t, err, "failed to parse embedded tables")

	client, err := gamedata.NewClient(cfg)
	require.NoError(t, err, "failed to index embedded tables")

	return client
}

// NewGameDataFrom builds a gamedata client over custom records and the
// embedded level table
func NewGameDataFrom(t *testing.T, creatures ...*pokemon.Pokemon) gamedata.Client {
	t.Helper()

	out, err := tables.NewEmbedded().Get(context.Background())
	require.NoError(t, err, "failed to read embedded tables")

	levels, err := gamedata.ParseLevels(out.LevelJSON)
	require.NoError(t, err, "failed to parse embedded levels")

	client, err := gamedata.NewClient(&gamedata.Config{
		Pokemon: creatures,
		Levels:  levels,
	})
	require.NoError(t, err, "failed to index custom tables")

	return client
}

// CreateTestPokemon returns a record with the given evolution cost and no
// evolutions unless provided
func CreateTestPokemon(id int, name string, candyToEvolve int, evolutionIDs ...int) *pokemon.Pokemon {
	return &pokemon.Pokemon{
		ID:            id,
		Name:          name,
		BaseAttack:    100,
		BaseDefense:   100,
		BaseStamina:   100,
		CandyToEvolve: candyToEvolve,
		EvolutionIDs:  evolutionIDs,
	}
}
