package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/poketrainers/internal/clients/gamedata"
	"github.com/KirkDiggler/poketrainers/internal/clients/ivcalc"
	"github.com/KirkDiggler/poketrainers/internal/config"
	"github.com/KirkDiggler/poketrainers/internal/engine"
	"github.com/KirkDiggler/poketrainers/internal/errors"
	"github.com/KirkDiggler/poketrainers/internal/orchestrators/candy"
	"github.com/KirkDiggler/poketrainers/internal/orchestrators/cprange"
	"github.com/KirkDiggler/poketrainers/internal/orchestrators/ivresume"
	"github.com/KirkDiggler/poketrainers/internal/pkg/imageurl"
	"github.com/KirkDiggler/poketrainers/internal/redis"
	"github.com/KirkDiggler/poketrainers/internal/repositories/tables"
)

const redisDialTimeout = 5 * time.Second

type services struct {
	cpRange  cprange.Service
	ivResume ivresume.Service
	candy    candy.Service
}

// openTables returns the table repository for a source. The cleanup func is
// never nil.
func (a *app) openTables(source string) (tables.Repository, func(), error) {
	noop := func() {}

	switch source {
	case config.SourceFile:
		repo, err := tables.NewFiles(a.cfg.PokemonData, a.cfg.LevelData)
		if err != nil {
			return nil, noop, err
		}
		return repo, noop, nil

	case config.SourceRedis:
		client, err := a.redisClient()
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() {
			_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
		}

		repo, err := tables.NewRedis(&tables.RedisConfig{Client: client})
		if err != nil {
			cleanup()
			return nil, noop, err
		}
		return repo, cleanup, nil

	default:
		return tables.NewEmbedded(), noop, nil
	}
}

func (a *app) redisClient() (redis.Client, error) {
	client, err := redis.NewClient(a.cfg.RedisAddr, &redis.Options{DialTimeout: redisDialTimeout})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
	}
	return client, nil
}

// loadTables reads and parses the reference tables of a source
func (a *app) loadTables(ctx context.Context, source string) (*gamedata.Config, error) {
	repo, cleanup, err := a.openTables(source)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	out, err := repo.Get(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s tables", source)
	}

	cfg, err := gamedata.ParseTables(out.PokemonJSON, out.LevelJSON)
	if err != nil {
		return nil, err
	}

	slog.Info("Loaded reference tables",
		"source", source,
		"pokemon", len(cfg.Pokemon),
		"levels", len(cfg.Levels))

	return cfg, nil
}

// services wires the orchestrators over freshly loaded tables
func (a *app) services(ctx context.Context) (*services, error) {
	tablesCfg, err := a.loadTables(ctx, a.cfg.DataSource)
	if err != nil {
		return nil, err
	}

	gameData, err := gamedata.NewClient(tablesCfg)
	if err != nil {
		return nil, err
	}

	return a.wire(gameData)
}

func (a *app) wire(gameData gamedata.Client) (*services, error) {
	e, err := engine.New(&engine.Config{GameData: gameData})
	if err != nil {
		return nil, err
	}

	images := imageurl.New(a.cfg.ImageBaseURL)

	evaluator, err := ivcalc.NewBruteForce(&ivcalc.Config{GameData: gameData})
	if err != nil {
		return nil, err
	}

	cpRangeService, err := cprange.NewOrchestrator(&cprange.Config{
		GameData: gameData,
		Engine:   e,
		Images:   images,
	})
	if err != nil {
		return nil, err
	}

	ivResumeService, err := ivresume.NewOrchestrator(&ivresume.Config{
		GameData:  gameData,
		Engine:    e,
		Evaluator: evaluator,
		Images:    images,
	})
	if err != nil {
		return nil, err
	}

	candyService, err := candy.NewOrchestrator(&candy.Config{GameData: gameData})
	if err != nil {
		return nil, err
	}

	return &services{
		cpRange:  cpRangeService,
		ivResume: ivResumeService,
		candy:    candyService,
	}, nil
}
