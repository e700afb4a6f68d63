package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/poketrainers/internal/orchestrators/cprange"
)

func newGuessLevelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "guess-level [name] [cp]",
		Short: "Guess the lowest level step whose CP band contains a CP",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cp, err := parseIntArg("cp", args[1])
			if err != nil {
				return err
			}

			svc, err := a.services(cmd.Context())
			if err != nil {
				return err
			}

			out, err := svc.cpRange.GuessLevel(cmd.Context(), &cprange.GuessLevelInput{
				Name: args[0],
				CP:   cp,
			})
			if err != nil {
				return err
			}

			return a.render(cmd, out, func(p *message.Printer) {
				if !out.Found {
					p.Fprintf(cmd.OutOrStdout(), "No level of %s matches CP %d\n", args[0], cp)
					return
				}
				p.Fprintf(cmd.OutOrStdout(), "%s with CP %d is level %d\n", args[0], cp, out.Level)
			})
		},
	}
}
