package gamedata

import (
	"log/slog"

	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
	"github.com/KirkDiggler/poketrainers/internal/errors"
)

// Config holds the parsed tables the client indexes
type Config struct {
	Pokemon []*pokemon.Pokemon
	Levels  []pokemon.LevelEntry
}

// Validate ensures both tables are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if len(c.Pokemon) == 0 {
		vb.RequiredField("Pokemon")
	}
	if len(c.Levels) == 0 {
		vb.RequiredField("Levels")
	}
	return vb.Build()
}

type client struct {
	byName  map[string]*pokemon.Pokemon
	byID    map[int]*pokemon.Pokemon
	scalars map[int]float64
	dust    map[int][]int
}

// NewClient indexes the tables once. Duplicate names or ids keep the first
// record. The level table must be strictly ascending by level with a
// non-decreasing CP scalar, otherwise errors.DataIntegrity is returned.
func NewClient(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := &client{
		byName:  make(map[string]*pokemon.Pokemon, len(cfg.Pokemon)),
		byID:    make(map[int]*pokemon.Pokemon, len(cfg.Pokemon)),
		scalars: make(map[int]float64, len(cfg.Levels)),
		dust:    make(map[int][]int),
	}

	for _, p := range cfg.Pokemon {
		if p == nil {
			continue
		}
		if _, ok := c.byName[p.Name]; ok {
			slog.Warn("Duplicate pokemon name in table, keeping first",
				"name", p.Name,
				"entity_type", p.GetType(),
				"entity_id", p.GetID())
		} else {
			c.byName[p.Name] = p
		}
		if _, ok := c.byID[p.ID]; !ok {
			c.byID[p.ID] = p
		}
	}

	prev := pokemon.LevelEntry{}
	for i, entry := range cfg.Levels {
		if entry.Level < pokemon.MinLevel {
			return nil, errors.DataIntegrityf("level table row %d has level %d", i, entry.Level).
				WithMeta("level", entry.Level)
		}
		if i > 0 && entry.Level <= prev.Level {
			return nil, errors.DataIntegrityf("level %d listed after level %d", entry.Level, prev.Level).
				WithMeta("level", entry.Level)
		}
		if i > 0 && entry.CPScalar < prev.CPScalar {
			return nil, errors.DataIntegrityf("cp scalar decreases at level %d", entry.Level).
				WithMeta("level", entry.Level)
		}
		c.scalars[entry.Level] = entry.CPScalar
		c.dust[entry.Dust] = append(c.dust[entry.Dust], entry.Level)
		prev = entry
	}

	return c, nil
}

func (c *client) FindByName(name string) (*pokemon.Pokemon, error) {
	p, ok := c.byName[name]
	if !ok {
		return nil, errors.NotFoundf("pokemon %s not found", name).WithMeta("name", name)
	}
	return p, nil
}

func (c *client) FindByID(id int) (*pokemon.Pokemon, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, errors.NotFoundf("pokemon with id %d not found", id).WithMeta("id", id)
	}
	return p, nil
}

func (c *client) CPScalarForLevel(level int) float64 {
	return c.scalars[level]
}

func (c *client) LevelsForDust(dust int) []int {
	levels := c.dust[dust]
	out := make([]int, len(levels))
	copy(out, levels)
	return out
}
