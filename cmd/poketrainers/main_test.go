package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/poketrainers/internal/config"
	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
	"github.com/KirkDiggler/poketrainers/internal/errors"
	"github.com/KirkDiggler/poketrainers/internal/pkg/idgen"
)

type CLITestSuite struct {
	suite.Suite
	cfg *config.Config
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.cfg = &config.Config{
		DataSource: config.SourceEmbedded,
		RedisAddr:  "localhost:6379",
		LogLevel:   config.LogLevelWarn,
	}
}

func (s *CLITestSuite) run(args ...string) (string, string, error) {
	cmd := newRootCmd(s.cfg, idgen.NewSequential("run"))

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func (s *CLITestSuite) TestCPRange() {
	stdout, _, err := s.run("cp-range", "Bulbasaur", "20", "--cp", "300")
	s.Require().NoError(err)
	s.Equal(
		"Bulbasaur (#001) level 20: CP 286 - 310\n"+
			"  Ivysaur (#002) level 20: CP 449 - 479\n"+
			"    Venusaur (#003) level 20: CP 740 - 777\n"+
			"Observed CP 300 is within the band\n",
		stdout,
	)
}

func (s *CLITestSuite) TestCPRange_UnknownLevel() {
	stdout, _, err := s.run("cp-range", "Bulbasaur", "0", "--cp", "300")
	s.Require().NoError(err)
	s.Equal("Bulbasaur (#001): level unknown\n", stdout)
}

func (s *CLITestSuite) TestGuessLevel() {
	stdout, _, err := s.run("guess-level", "Pidgey", "180")
	s.Require().NoError(err)
	s.Equal("Pidgey with CP 180 is level 20\n", stdout)

	stdout, _, err = s.run("guess-level", "Mewtwo", "5000")
	s.Require().NoError(err, "no match is not an error")
	s.Equal("No level of Mewtwo matches CP 5,000\n", stdout)
}

func (s *CLITestSuite) TestIVResume() {
	stdout, _, err := s.run("iv-resume", "Pidgey", "204", "58", "1000")
	s.Require().NoError(err)
	s.Contains(stdout, "Pidgey (#016) CP 204 HP 58 dust 1,000\n")
	s.Contains(stdout, "Levels 17 - 20\n")
	s.Contains(stdout, "Grade A, 1 possible IV combinations\n")
	s.Contains(stdout, "Your best: 15/15/15 level 20, CP 204 HP 58")

	stdout, _, err = s.run("iv-resume", "Pidgey", "5000", "58", "1000")
	s.Require().NoError(err)
	s.Contains(stdout, "No IV combination matches\n")
}

func (s *CLITestSuite) TestCandyPlan() {
	stdout, _, err := s.run("candy-plan", "Pidgey", "200", "300", "--transfer")
	s.Require().NoError(err)
	s.Contains(stdout, "Pidgey x200 with 300 candies (12 per evolution)\n")
	s.Contains(stdout, "  Evolutions:         43\n")
	s.Contains(stdout, "  XP:                 21,500 (43,000 with lucky egg)\n")
	s.Contains(stdout, "  Time:               1,032s\n")
}

func (s *CLITestSuite) TestCandyPlan_JSON() {
	stdout, _, err := s.run("candy-plan", "Pidgey", "50", "100", "--json")
	s.Require().NoError(err)

	var plan pokemon.CandyPlan
	s.Require().NoError(json.Unmarshal([]byte(stdout), &plan))
	s.Equal(12, plan.PokemonsToEvolve)
	s.Equal(36, plan.PokemonsToTransfer)
	s.Equal(2, plan.PokemonsLeft)
	s.Equal("Pidgey", plan.Pokemon.Name)
}

func (s *CLITestSuite) TestLogsCarryRunID() {
	_, stderr, err := s.run("guess-level", "Pidgey", "180", "--log-level", "info")
	s.Require().NoError(err)
	s.Contains(stderr, "run_id=run_1")
	s.Contains(stderr, "pokemon=38")
}

func (s *CLITestSuite) TestErrors() {
	testCases := []struct {
		name   string
		args   []string
		code   errors.Code
		status int
	}{
		{
			name:   "unknown creature",
			args:   []string{"guess-level", "Missingno", "10"},
			code:   errors.CodeNotFound,
			status: 66,
		},
		{
			name:   "not a number",
			args:   []string{"candy-plan", "Pidgey", "lots", "100"},
			code:   errors.CodeInvalidArgument,
			status: 64,
		},
		{
			name:   "missing argument",
			args:   []string{"iv-resume", "Pidgey", "204"},
			code:   errors.CodeInvalidArgument,
			status: 64,
		},
		{
			name:   "unknown flag",
			args:   []string{"guess-level", "Pidgey", "180", "--fast"},
			code:   errors.CodeInvalidArgument,
			status: 64,
		},
		{
			name:   "final form has no candy plan",
			args:   []string{"candy-plan", "Mewtwo", "10", "100"},
			code:   errors.CodeFailedPrecondition,
			status: 65,
		},
		{
			name:   "unknown source",
			args:   []string{"guess-level", "Pidgey", "180", "--source", "s3"},
			code:   errors.CodeInvalidArgument,
			status: 64,
		},
		{
			name:   "negative candies",
			args:   []string{"candy-plan", "Pidgey", "10", "-5"},
			code:   errors.CodeInvalidArgument,
			status: 64,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			_, _, err := s.run(tc.args...)
			s.Require().Error(err)
			s.Equal(tc.code, errors.GetCode(err))
			s.Equal(tc.status, errors.GetCode(err).ExitStatus())
		})
	}
}

func (s *CLITestSuite) TestFileSource() {
	dir := s.T().TempDir()
	pokemonPath := filepath.Join(dir, "pokemon.json")
	levelPath := filepath.Join(dir, "levels.json")
	s.Require().NoError(os.WriteFile(pokemonPath,
		[]byte(`[{"PkMn": 13, "Name": "Weedle", "Base Attack": 63, "Base Defense": 50, "Base Stamina": 120, "Candy To Evolve": 12, "Evolution": ""}]`), 0o600))
	s.Require().NoError(os.WriteFile(levelPath,
		[]byte(`[{"level": 1, "cpScalar": 0.094, "dust": 200}]`), 0o600))

	stdout, _, err := s.run("candy-plan", "Weedle", "50", "100",
		"--source", "file", "--pokemon-data", pokemonPath, "--level-data", levelPath)
	s.Require().NoError(err)
	s.Contains(stdout, "  Evolutions:         12\n")

	_, _, err = s.run("candy-plan", "Pidgey", "50", "100",
		"--source", "file", "--pokemon-data", pokemonPath, "--level-data", levelPath)
	s.True(errors.IsNotFound(err), "only the file tables are loaded")
}

func (s *CLITestSuite) TestRedisSource() {
	mr := miniredis.RunT(s.T())
	s.cfg.RedisAddr = mr.Addr()

	_, _, err := s.run("guess-level", "Pidgey", "180", "--source", "redis")
	s.True(errors.IsNotFound(err), "redis starts empty")

	stdout, _, err := s.run("data", "seed")
	s.Require().NoError(err)
	s.Contains(stdout, "Seeded 38 pokemon and 80 levels")
	s.True(mr.Exists("gamedata:pokemon"))
	s.True(mr.Exists("gamedata:levels"))

	stdout, _, err = s.run("guess-level", "Pidgey", "180", "--source", "redis")
	s.Require().NoError(err)
	s.Equal("Pidgey with CP 180 is level 20\n", stdout)
}

func (s *CLITestSuite) TestDataSeed_InvalidSource() {
	_, _, err := s.run("data", "seed", "--from", "redis")
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "from: must be one of: embedded, file")
}

func (s *CLITestSuite) TestDataCheck() {
	stdout, _, err := s.run("data", "check")
	s.Require().NoError(err)
	s.Equal("Checked 38 pokemon and 80 levels from embedded\n", stdout)

	dir := s.T().TempDir()
	pokemonPath := filepath.Join(dir, "pokemon.json")
	levelPath := filepath.Join(dir, "levels.json")
	s.Require().NoError(os.WriteFile(pokemonPath, []byte(`[
  {"PkMn": 1, "Name": "Bulbasaur", "Base Attack": 118, "Base Defense": 118, "Base Stamina": 90, "Candy To Evolve": 25, "Evolution": 2},
  {"PkMn": 2, "Name": "Ivysaur", "Base Attack": 151, "Base Defense": 151, "Base Stamina": 120, "Candy To Evolve": 100, "Evolution": 1},
  {"PkMn": 4, "Name": "Charmander", "Base Attack": 116, "Base Defense": 96, "Base Stamina": 78, "Candy To Evolve": 25, "Evolution": 5}
]`), 0o600))
	s.Require().NoError(os.WriteFile(levelPath, []byte(`[{"level": 1, "cpScalar": 0.094, "dust": 200}]`), 0o600))

	stdout, _, err = s.run("data", "check",
		"--source", "file", "--pokemon-data", pokemonPath, "--level-data", levelPath)
	s.Require().Error(err)
	s.True(errors.IsDataIntegrity(err))
	s.Contains(err.Error(), "3 of 3 pokemon have broken evolution chains")
	s.Contains(stdout, "Bulbasaur (#001): evolution chain of Bulbasaur loops back to itself\n")
	s.Contains(stdout, "Charmander (#004): evolution of Charmander is not in the creature table\n")
}
