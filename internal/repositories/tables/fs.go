package tables

import (
	"context"
	"embed"
	"io/fs"
	"os"

	"github.com/KirkDiggler/poketrainers/internal/errors"
)

const (
	// DefaultPokemonFile is the creature table file name in the embedded set
	DefaultPokemonFile = "pokemon_game_data.json"
	// DefaultLevelFile is the level table file name in the embedded set
	DefaultLevelFile = "level_game_data.json"
)

//go:embed data/*.json
var embedded embed.FS

// FSConfig locates both tables in a filesystem
type FSConfig struct {
	FS          fs.FS
	PokemonPath string
	LevelPath   string
}

// Validate validates the FSConfig.
func (cfg *FSConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.FS == nil {
		vb.RequiredField("FS")
	}
	errors.ValidateRequired("PokemonPath", cfg.PokemonPath, vb)
	errors.ValidateRequired("LevelPath", cfg.LevelPath, vb)
	return vb.Build()
}

type fsRepository struct {
	readFile    func(path string) ([]byte, error)
	pokemonPath string
	levelPath   string
}

// NewFS creates a repository reading the tables from a filesystem
func NewFS(cfg *FSConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fsRepository{
		readFile:    func(path string) ([]byte, error) { return fs.ReadFile(cfg.FS, path) },
		pokemonPath: cfg.PokemonPath,
		levelPath:   cfg.LevelPath,
	}, nil
}

// NewEmbedded returns the tables compiled into the binary
func NewEmbedded() Repository {
	repo, _ := NewFS(&FSConfig{
		FS:          embedded,
		PokemonPath: "data/" + DefaultPokemonFile,
		LevelPath:   "data/" + DefaultLevelFile,
	})
	return repo
}

// NewFiles reads the tables from paths on the local disk
func NewFiles(pokemonPath, levelPath string) (Repository, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PokemonPath", pokemonPath, vb)
	errors.ValidateRequired("LevelPath", levelPath, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &fsRepository{
		readFile:    os.ReadFile,
		pokemonPath: pokemonPath,
		levelPath:   levelPath,
	}, nil
}

func (r *fsRepository) Get(_ context.Context) (*GetOutput, error) {
	pokemonJSON, err := r.read(r.pokemonPath)
	if err != nil {
		return nil, err
	}

	levelJSON, err := r.read(r.levelPath)
	if err != nil {
		return nil, err
	}

	return &GetOutput{
		PokemonJSON: pokemonJSON,
		LevelJSON:   levelJSON,
	}, nil
}

func (r *fsRepository) read(path string) ([]byte, error) {
	data, err := r.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("table %s not found", path).WithMeta("path", path)
		}
		return nil, errors.Wrapf(err, "failed to read table %s", path)
	}
	return data, nil
}
