package tables_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/poketrainers/internal/errors"
	"github.com/KirkDiggler/poketrainers/internal/repositories/tables"
	"github.com/KirkDiggler/poketrainers/internal/testutils"
)

const (
	testPokemonJSON = `[{"PkMn": 16, "Name": "Pidgey", "Base Attack": 85, "Base Defense": 73, "Base Stamina": 120, "Candy To Evolve": 12, "Evolution": 17}]`
	testLevelJSON   = `[{"level": 1, "cpScalar": 0.094, "dust": 200}]`
)

type TablesTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestTablesSuite(t *testing.T) {
	suite.Run(t, new(TablesTestSuite))
}

func (s *TablesTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *TablesTestSuite) TestEmbedded() {
	out, err := tables.NewEmbedded().Get(s.ctx)
	s.Require().NoError(err)
	s.Contains(string(out.PokemonJSON), `"Name": "Pidgey"`)
	s.Contains(string(out.LevelJSON), `"level": 80`)
}

func (s *TablesTestSuite) TestFS() {
	fsys := fstest.MapFS{
		"pokemon.json": {Data: []byte(testPokemonJSON)},
		"levels.json":  {Data: []byte(testLevelJSON)},
	}

	s.Run("reads both tables", func() {
		repo, err := tables.NewFS(&tables.FSConfig{FS: fsys, PokemonPath: "pokemon.json", LevelPath: "levels.json"})
		s.Require().NoError(err)

		out, err := repo.Get(s.ctx)
		s.Require().NoError(err)
		s.Equal(testPokemonJSON, string(out.PokemonJSON))
		s.Equal(testLevelJSON, string(out.LevelJSON))
	})

	s.Run("missing table", func() {
		repo, err := tables.NewFS(&tables.FSConfig{FS: fsys, PokemonPath: "pokemon.json", LevelPath: "nope.json"})
		s.Require().NoError(err)

		out, err := repo.Get(s.ctx)
		s.Nil(out)
		s.True(errors.IsNotFound(err))
		s.Equal("nope.json", errors.GetMeta(err)["path"])
	})

	s.Run("invalid config", func() {
		repo, err := tables.NewFS(&tables.FSConfig{PokemonPath: "pokemon.json"})
		s.Nil(repo)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "FS: is required")
		s.Contains(err.Error(), "LevelPath: is required")
	})
}

func (s *TablesTestSuite) TestFiles() {
	dir := s.T().TempDir()
	pokemonPath := filepath.Join(dir, "pokemon.json")
	levelPath := filepath.Join(dir, "levels.json")
	s.Require().NoError(os.WriteFile(pokemonPath, []byte(testPokemonJSON), 0o600))
	s.Require().NoError(os.WriteFile(levelPath, []byte(testLevelJSON), 0o600))

	repo, err := tables.NewFiles(pokemonPath, levelPath)
	s.Require().NoError(err)

	out, err := repo.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(testLevelJSON, string(out.LevelJSON))

	missing, err := tables.NewFiles(filepath.Join(dir, "absent.json"), levelPath)
	s.Require().NoError(err)
	_, err = missing.Get(s.ctx)
	s.True(errors.IsNotFound(err))

	_, err = tables.NewFiles("", levelPath)
	s.True(errors.IsInvalidArgument(err))
}

func (s *TablesTestSuite) TestRedisRoundTrip() {
	client, mr := testutils.CreateTestRedisClient(s.T())

	repo, err := tables.NewRedis(&tables.RedisConfig{Client: client})
	s.Require().NoError(err)

	_, err = repo.Get(s.ctx)
	s.True(errors.IsNotFound(err), "empty redis has no tables")

	out, err := repo.Put(s.ctx, tables.PutInput{
		PokemonJSON: []byte(testPokemonJSON),
		LevelJSON:   []byte(testLevelJSON),
	})
	s.Require().NoError(err)
	s.Equal(len(testPokemonJSON)+len(testLevelJSON), out.BytesWritten)

	stored, err := mr.Get(tables.LevelKey)
	s.Require().NoError(err)
	s.Equal(testLevelJSON, stored)

	got, err := repo.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(testPokemonJSON, string(got.PokemonJSON))
	s.Equal(testLevelJSON, string(got.LevelJSON))
}

func (s *TablesTestSuite) TestRedisPartialTables() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.Require().NoError(mr.Set(tables.PokemonKey, testPokemonJSON))

	repo, err := tables.NewRedis(&tables.RedisConfig{Client: client})
	s.Require().NoError(err)

	_, err = repo.Get(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(tables.LevelKey, errors.GetMeta(err)["key"])
}

func (s *TablesTestSuite) TestRedisPutValidation() {
	client, _ := testutils.CreateTestRedisClient(s.T())

	repo, err := tables.NewRedis(&tables.RedisConfig{Client: client})
	s.Require().NoError(err)

	_, err = repo.Put(s.ctx, tables.PutInput{PokemonJSON: []byte(testPokemonJSON)})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "LevelJSON: is required")
}

func (s *TablesTestSuite) TestRedisUnavailable() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	mr.Close()

	repo, err := tables.NewRedis(&tables.RedisConfig{Client: client})
	s.Require().NoError(err)

	_, err = repo.Get(s.ctx)
	s.True(errors.IsUnavailable(err))
}

func (s *TablesTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *tables.RedisConfig
		errMsg string
	}{
		{
			name:   "error with nil config",
			config: nil,
			errMsg: "config cannot be nil",
		},
		{
			name:   "error with nil client",
			config: &tables.RedisConfig{},
			errMsg: "client cannot be nil",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := tables.NewRedis(tc.config)
			s.Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(repo)
		})
	}
}
