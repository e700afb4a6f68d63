package tables

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/poketrainers/internal/errors"
	redisclient "github.com/KirkDiggler/poketrainers/internal/redis"
)

const (
	// PokemonKey holds the creature table export
	PokemonKey = "gamedata:pokemon"
	// LevelKey holds the level table export
	LevelKey = "gamedata:levels"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis table repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// RedisRepository is a table source that can also be seeded
type RedisRepository interface {
	Repository
	Writer
}

// NewRedis creates a new Redis-backed table repository
func NewRedis(cfg *RedisConfig) (RedisRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context) (*GetOutput, error) {
	values, err := r.client.MGet(ctx, PokemonKey, LevelKey).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read tables from redis")
	}

	raw := make([][]byte, len(values))
	for i, key := range []string{PokemonKey, LevelKey} {
		s, ok := values[i].(string)
		if !ok {
			return nil, errors.NotFoundf("table %s not found", key).WithMeta("key", key)
		}
		raw[i] = []byte(s)
	}

	return &GetOutput{
		PokemonJSON: raw[0],
		LevelJSON:   raw[1],
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	vb := errors.NewValidationBuilder()
	if len(input.PokemonJSON) == 0 {
		vb.RequiredField("PokemonJSON")
	}
	if len(input.LevelJSON) == 0 {
		vb.RequiredField("LevelJSON")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, PokemonKey, input.PokemonJSON, 0)
		pipe.Set(ctx, LevelKey, input.LevelJSON, 0)
		return nil
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write tables to redis")
	}

	return &PutOutput{
		BytesWritten: len(input.PokemonJSON) + len(input.LevelJSON),
	}, nil
}
