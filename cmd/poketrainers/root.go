package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/poketrainers/internal/config"
	"github.com/KirkDiggler/poketrainers/internal/errors"
	"github.com/KirkDiggler/poketrainers/internal/pkg/idgen"
)

// app carries the settings shared by every subcommand
type app struct {
	cfg        *config.Config
	ids        idgen.Generator
	jsonOutput bool
}

// newRootCmd builds the command tree. Flags override a copy of cfg, which
// supplies their defaults.
func newRootCmd(base *config.Config, ids idgen.Generator) *cobra.Command {
	cfg := *base
	a := &app{cfg: &cfg, ids: ids}

	rootCmd := &cobra.Command{
		Use:               "poketrainers",
		Short:             "CP, IV and candy calculators for trainers",
		Long:              `Poketrainers estimates CP bands, guesses levels, narrows down IVs and plans candy spending from the game's reference tables.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.DataSource, "source", cfg.DataSource, "Reference data source (embedded, file, redis)")
	flags.StringVar(&cfg.PokemonData, "pokemon-data", cfg.PokemonData, "Creature table path for the file source")
	flags.StringVar(&cfg.LevelData, "level-data", cfg.LevelData, "Level table path for the file source")
	flags.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for the redis source")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.ImageBaseURL, "image-base-url", cfg.ImageBaseURL, "Artwork host prefix")
	flags.BoolVar(&a.jsonOutput, "json", false, "Output as JSON")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid flags")
	})

	rootCmd.AddCommand(newCPRangeCmd(a))
	rootCmd.AddCommand(newGuessLevelCmd(a))
	rootCmd.AddCommand(newIVResumeCmd(a))
	rootCmd.AddCommand(newCandyPlanCmd(a))
	rootCmd.AddCommand(newDataCmd(a))

	return rootCmd
}

// setup validates the merged env and flag settings and installs the logger
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: a.cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler).With("run_id", a.ids.Generate()))

	slog.Debug("Starting command",
		"command", cmd.CommandPath(),
		"source", a.cfg.DataSource)

	return nil
}

// printer formats numbers with thousands separators
func (a *app) printer() *message.Printer {
	return message.NewPrinter(language.English)
}

// render writes v as JSON when --json is set, otherwise calls text
func (a *app) render(cmd *cobra.Command, v any, text func(p *message.Printer)) error {
	if a.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode output")
		}
		return nil
	}

	text(a.printer())
	return nil
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid arguments")
		}
		return nil
	}
}

func parseIntArg(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.InvalidArgumentf("%s must be a whole number (got %q)", field, value).
			WithMeta("field", field)
	}
	return n, nil
}

// dexNumber formats a pokedex number the way artwork files are named
func dexNumber(id int) string {
	return fmt.Sprintf("%03d", id)
}
