package gamedata_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/poketrainers/internal/clients/gamedata"
	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
	"github.com/KirkDiggler/poketrainers/internal/errors"
)

const (
	testPokemonJSON = `[
  {"PkMn": 133, "Name": "Eevee", "Base Attack": 104, "Base Defense": 114, "Base Stamina": 146, "Candy To Evolve": 25, "Evolution": "134, 135"},
  {"PkMn": 134, "Name": "Vaporeon", "Base Attack": 205, "Base Defense": 161, "Base Stamina": 277, "Candy To Evolve": "", "Evolution": ""},
  {"PkMn": 135, "Name": "Jolteon", "Base Attack": 232, "Base Defense": 182, "Base Stamina": 163},
  {"PkMn": 16, "Name": "Pidgey", "Base Attack": 85, "Base Defense": 73, "Base Stamina": 120, "Candy To Evolve": 12, "Evolution": 17},
  {"PkMn": 999, "Name": "Eevee", "Base Attack": 1, "Base Defense": 1, "Base Stamina": 1}
]`

	testLevelJSON = `[
  {"level": 1, "cpScalar": 0.094, "dust": 200},
  {"level": 2, "cpScalar": 0.1351374318, "dust": 200},
  {"level": 3, "cpScalar": 0.16639787, "dust": 200},
  {"level": 4, "cpScalar": 0.192650919, "dust": 200},
  {"level": 5, "cpScalar": 0.21573247, "dust": 400}
]`
)

type ClientTestSuite struct {
	suite.Suite
	client gamedata.Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	cfg, err := gamedata.ParseTables([]byte(testPokemonJSON), []byte(testLevelJSON))
	s.Require().NoError(err)

	client, err := gamedata.NewClient(cfg)
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TestParsePokemon() {
	creatures, err := gamedata.ParsePokemon([]byte(testPokemonJSON))
	s.Require().NoError(err)
	s.Require().Len(creatures, 5)

	eevee := creatures[0]
	s.Equal(133, eevee.ID)
	s.Equal(104, eevee.BaseAttack)
	s.Equal(114, eevee.BaseDefense)
	s.Equal(146, eevee.BaseStamina)
	s.Equal(25, eevee.CandyToEvolve)
	s.Equal([]int{134, 135}, eevee.EvolutionIDs)

	s.Empty(creatures[1].EvolutionIDs, "empty string means final form")
	s.Equal(0, creatures[1].CandyToEvolve)
	s.Empty(creatures[2].EvolutionIDs, "missing field means final form")
	s.Equal([]int{17}, creatures[3].EvolutionIDs, "numeric evolution field")
}

func (s *ClientTestSuite) TestParseErrors() {
	testCases := []struct {
		name    string
		pokemon string
		levels  string
		errMsg  string
	}{
		{
			name:    "malformed pokemon json",
			pokemon: `[{"PkMn": 1,`,
			levels:  testLevelJSON,
			errMsg:  "pokemon table is not valid JSON",
		},
		{
			name:    "pokemon table not an array",
			pokemon: `{"PkMn": 1}`,
			levels:  testLevelJSON,
			errMsg:  "pokemon table must be a JSON array",
		},
		{
			name:    "unparseable evolution id",
			pokemon: `[{"PkMn": 1, "Name": "Bulbasaur", "Evolution": "2,x"}]`,
			levels:  testLevelJSON,
			errMsg:  `evolution id "x" is not a number`,
		},
		{
			name:    "nameless record",
			pokemon: `[{"PkMn": 7}]`,
			levels:  testLevelJSON,
			errMsg:  "pokemon 7 has no name",
		},
		{
			name:    "malformed level json",
			pokemon: testPokemonJSON,
			levels:  `[{"level": 1`,
			errMsg:  "level table is not valid JSON",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := gamedata.ParseTables([]byte(tc.pokemon), []byte(tc.levels))
			s.Require().Error(err)
			s.Nil(cfg)
			s.True(errors.IsDataIntegrity(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *ClientTestSuite) TestFindByName() {
	p, err := s.client.FindByName("Pidgey")
	s.Require().NoError(err)
	s.Equal(16, p.ID)

	s.Run("first duplicate wins", func() {
		p, err := s.client.FindByName("Eevee")
		s.Require().NoError(err)
		s.Equal(133, p.ID)
	})

	s.Run("missing name", func() {
		p, err := s.client.FindByName("Missingno")
		s.Nil(p)
		s.True(errors.IsNotFound(err))
		s.Equal("Missingno", errors.GetMeta(err)["name"])
	})
}

func (s *ClientTestSuite) TestFindByID() {
	p, err := s.client.FindByID(135)
	s.Require().NoError(err)
	s.Equal("Jolteon", p.Name)

	p, err = s.client.FindByID(999)
	s.Require().NoError(err)
	s.Equal("Eevee", p.Name, "distinct id is still indexed")

	p, err = s.client.FindByID(0)
	s.Nil(p)
	s.True(errors.IsNotFound(err))
	s.Equal(0, errors.GetMeta(err)["id"])
}

func (s *ClientTestSuite) TestCPScalarForLevel() {
	s.InDelta(0.094, s.client.CPScalarForLevel(1), 1e-12)
	s.InDelta(0.21573247, s.client.CPScalarForLevel(5), 1e-12)
	s.Zero(s.client.CPScalarForLevel(6), "absent level is a zero sentinel")
	s.Zero(s.client.CPScalarForLevel(0))
}

func (s *ClientTestSuite) TestLevelsForDust() {
	s.Equal([]int{1, 2, 3, 4}, s.client.LevelsForDust(200))
	s.Equal([]int{5}, s.client.LevelsForDust(400))
	s.Empty(s.client.LevelsForDust(123))

	levels := s.client.LevelsForDust(200)
	levels[0] = 42
	s.Equal([]int{1, 2, 3, 4}, s.client.LevelsForDust(200), "callers get a copy")
}

func (s *ClientTestSuite) TestNewClientValidation() {
	creatures := []*pokemon.Pokemon{{ID: 1, Name: "Bulbasaur"}}

	testCases := []struct {
		name      string
		cfg       *gamedata.Config
		integrity bool
		errMsg    string
	}{
		{
			name:   "nil config",
			cfg:    nil,
			errMsg: "config cannot be nil",
		},
		{
			name:   "empty tables",
			cfg:    &gamedata.Config{},
			errMsg: "Levels: is required; Pokemon: is required",
		},
		{
			name: "levels out of order",
			cfg: &gamedata.Config{
				Pokemon: creatures,
				Levels: []pokemon.LevelEntry{
					{Level: 2, CPScalar: 0.2, Dust: 200},
					{Level: 1, CPScalar: 0.1, Dust: 200},
				},
			},
			integrity: true,
			errMsg:    "level 1 listed after level 2",
		},
		{
			name: "duplicate level",
			cfg: &gamedata.Config{
				Pokemon: creatures,
				Levels: []pokemon.LevelEntry{
					{Level: 1, CPScalar: 0.1, Dust: 200},
					{Level: 1, CPScalar: 0.1, Dust: 200},
				},
			},
			integrity: true,
			errMsg:    "level 1 listed after level 1",
		},
		{
			name: "decreasing scalar",
			cfg: &gamedata.Config{
				Pokemon: creatures,
				Levels: []pokemon.LevelEntry{
					{Level: 1, CPScalar: 0.2, Dust: 200},
					{Level: 2, CPScalar: 0.1, Dust: 200},
				},
			},
			integrity: true,
			errMsg:    "cp scalar decreases at level 2",
		},
		{
			name: "level below one",
			cfg: &gamedata.Config{
				Pokemon: creatures,
				Levels:  []pokemon.LevelEntry{{Level: 0, CPScalar: 0.1, Dust: 200}},
			},
			integrity: true,
			errMsg:    "level table row 0 has level 0",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			client, err := gamedata.NewClient(tc.cfg)
			s.Require().Error(err)
			s.Nil(client)
			s.Contains(err.Error(), tc.errMsg)
			s.Equal(tc.integrity, errors.IsDataIntegrity(err))
		})
	}
}
