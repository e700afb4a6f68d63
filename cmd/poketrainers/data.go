package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/poketrainers/internal/clients/gamedata"
	"github.com/KirkDiggler/poketrainers/internal/config"
	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
	"github.com/KirkDiggler/poketrainers/internal/errors"
	"github.com/KirkDiggler/poketrainers/internal/orchestrators/cprange"
	"github.com/KirkDiggler/poketrainers/internal/repositories/tables"
)

func newDataCmd(a *app) *cobra.Command {
	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Manage the reference tables",
	}

	dataCmd.AddCommand(newDataSeedCmd(a))
	dataCmd.AddCommand(newDataCheckCmd(a))

	return dataCmd
}

func newDataSeedCmd(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Copy the reference tables into redis",
		Long:  `Read the embedded or file tables, check that they parse, and store them in redis for the redis source.`,
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			vb := errors.NewValidationBuilder()
			errors.ValidateEnum("from", from, []string{config.SourceEmbedded, config.SourceFile}, vb)
			if err := vb.Build(); err != nil {
				return err
			}

			repo, cleanup, err := a.openTables(from)
			if err != nil {
				return err
			}
			defer cleanup()

			tablesOut, err := repo.Get(cmd.Context())
			if err != nil {
				return errors.Wrapf(err, "failed to read %s tables", from)
			}

			parsed, err := gamedata.ParseTables(tablesOut.PokemonJSON, tablesOut.LevelJSON)
			if err != nil {
				return err
			}
			if _, err := gamedata.NewClient(parsed); err != nil {
				return err
			}

			client, err := a.redisClient()
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
			}()

			store, err := tables.NewRedis(&tables.RedisConfig{Client: client})
			if err != nil {
				return err
			}

			out, err := store.Put(cmd.Context(), tables.PutInput{
				PokemonJSON: tablesOut.PokemonJSON,
				LevelJSON:   tablesOut.LevelJSON,
			})
			if err != nil {
				return err
			}

			a.printer().Fprintf(cmd.OutOrStdout(), "Seeded %d pokemon and %d levels (%d bytes) into %s\n",
				len(parsed.Pokemon), len(parsed.Levels), out.BytesWritten, a.cfg.RedisAddr)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", config.SourceEmbedded, "Table source to copy (embedded, file)")

	return cmd
}

func newDataCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the reference tables of the configured source",
		Long:  `Load the tables of the configured source and expand the evolution chain of every creature, reporting broken or looping chains.`,
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := a.loadTables(cmd.Context(), a.cfg.DataSource)
			if err != nil {
				return err
			}

			gameData, err := gamedata.NewClient(parsed)
			if err != nil {
				return err
			}

			svc, err := a.wire(gameData)
			if err != nil {
				return err
			}

			var broken int
			for _, p := range parsed.Pokemon {
				_, err := svc.cpRange.GetCPRange(cmd.Context(), &cprange.GetCPRangeInput{
					Name:  p.Name,
					Level: pokemon.MinLevel,
				})
				if err == nil {
					continue
				}
				if !errors.IsDataIntegrity(err) {
					return err
				}

				broken++
				a.printer().Fprintf(cmd.OutOrStdout(), "%s (#%s): %s\n", p.Name, dexNumber(p.ID), errors.GetMessage(err))
			}

			if broken > 0 {
				return errors.DataIntegrityf("%d of %d pokemon have broken evolution chains", broken, len(parsed.Pokemon)).
					WithMeta("source", a.cfg.DataSource)
			}

			a.printer().Fprintf(cmd.OutOrStdout(), "Checked %d pokemon and %d levels from %s\n",
				len(parsed.Pokemon), len(parsed.Levels), a.cfg.DataSource)
			return nil
		},
	}
}
