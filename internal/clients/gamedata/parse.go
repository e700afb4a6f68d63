package gamedata

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
	"github.com/KirkDiggler/poketrainers/internal/errors"
)

// Field names of the raw game data exports
const (
	fieldID            = "PkMn"
	fieldName          = "Name"
	fieldBaseAttack    = "Base Attack"
	fieldBaseDefense   = "Base Defense"
	fieldBaseStamina   = "Base Stamina"
	fieldCandyToEvolve = "Candy To Evolve"
	fieldEvolution     = "Evolution"

	fieldLevel    = "level"
	fieldCPScalar = "cpScalar"
	fieldDust     = "dust"
)

// ParseTables decodes the raw pokemon and level exports into a Config ready
// for NewClient.
func ParseTables(pokemonJSON, levelJSON []byte) (*Config, error) {
	creatures, err := ParsePokemon(pokemonJSON)
	if err != nil {
		return nil, err
	}

	levels, err := ParseLevels(levelJSON)
	if err != nil {
		return nil, err
	}

	return &Config{Pokemon: creatures, Levels: levels}, nil
}

// ParsePokemon decodes the creature table. The evolution field may be a
// single number or a comma separated list of ids.
func ParsePokemon(data []byte) ([]*pokemon.Pokemon, error) {
	root, err := parseArray(data, "pokemon")
	if err != nil {
		return nil, err
	}

	var out []*pokemon.Pokemon
	root.ForEach(func(_, v gjson.Result) bool {
		p := &pokemon.Pokemon{
			ID:            int(v.Get(fieldID).Int()),
			Name:          v.Get(fieldName).String(),
			BaseAttack:    int(v.Get(fieldBaseAttack).Int()),
			BaseDefense:   int(v.Get(fieldBaseDefense).Int()),
			BaseStamina:   int(v.Get(fieldBaseStamina).Int()),
			CandyToEvolve: int(v.Get(fieldCandyToEvolve).Int()),
		}
		if p.Name == "" {
			err = errors.DataIntegrityf("pokemon %d has no name", p.ID).WithMeta("id", p.ID)
			return false
		}

		p.EvolutionIDs, err = parseEvolutionIDs(v.Get(fieldEvolution))
		if err != nil {
			err = errors.Wrapf(err, "invalid evolutions of %s", p.Name)
			return false
		}

		out = append(out, p)
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ParseLevels decodes the level table in file order
func ParseLevels(data []byte) ([]pokemon.LevelEntry, error) {
	root, err := parseArray(data, "level")
	if err != nil {
		return nil, err
	}

	var out []pokemon.LevelEntry
	root.ForEach(func(_, v gjson.Result) bool {
		out = append(out, pokemon.LevelEntry{
			Level:    int(v.Get(fieldLevel).Int()),
			CPScalar: v.Get(fieldCPScalar).Float(),
			Dust:     int(v.Get(fieldDust).Int()),
		})
		return true
	})

	return out, nil
}

func parseArray(data []byte, table string) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, errors.DataIntegrityf("%s table is not valid JSON", table)
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return gjson.Result{}, errors.DataIntegrityf("%s table must be a JSON array", table)
	}
	return root, nil
}

func parseEvolutionIDs(v gjson.Result) ([]int, error) {
	raw := strings.TrimSpace(v.String())
	if !v.Exists() || raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.DataIntegrityf("evolution id %q is not a number", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
