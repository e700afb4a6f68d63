package main

import (
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
	"github.com/KirkDiggler/poketrainers/internal/orchestrators/cprange"
)

func newCPRangeCmd(a *app) *cobra.Command {
	var observedCP int

	cmd := &cobra.Command{
		Use:   "cp-range [name] [level]",
		Short: "Show the typical CP band of a creature and its evolutions",
		Long:  `Show the CP band of IVs 5/5/5 to 10/10/10 at a level step (1-80), expanded over every evolution. Level 0 means unknown.`,
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseIntArg("level", args[1])
			if err != nil {
				return err
			}

			input := &cprange.GetCPRangeInput{Name: args[0], Level: level}
			if cmd.Flags().Changed("cp") {
				input.ObservedCP = &observedCP
			}

			svc, err := a.services(cmd.Context())
			if err != nil {
				return err
			}

			out, err := svc.cpRange.GetCPRange(cmd.Context(), input)
			if err != nil {
				return err
			}

			return a.render(cmd, out.Range, func(p *message.Printer) {
				printCPRange(cmd, p, out.Range, 0)
				if r := out.Range; r.ObservedCP != nil && r.MinCP != nil {
					verdict := "outside"
					if r.Contains(*r.ObservedCP) {
						verdict = "within"
					}
					p.Fprintf(cmd.OutOrStdout(), "Observed CP %d is %s the band\n", *r.ObservedCP, verdict)
				}
			})
		},
	}

	cmd.Flags().IntVar(&observedCP, "cp", 0, "Observed CP to compare against the band")

	return cmd
}

func printCPRange(cmd *cobra.Command, p *message.Printer, r *pokemon.CPRange, depth int) {
	indent := strings.Repeat("  ", depth)
	if r.MinCP == nil || r.MaxCP == nil {
		p.Fprintf(cmd.OutOrStdout(), "%s%s (#%s): level unknown\n", indent, r.Pokemon.Name, dexNumber(r.Pokemon.ID))
		return
	}

	p.Fprintf(cmd.OutOrStdout(), "%s%s (#%s) level %d: CP %d - %d\n",
		indent, r.Pokemon.Name, dexNumber(r.Pokemon.ID), r.Level, *r.MinCP, *r.MaxCP)
	for _, evolution := range r.Evolutions {
		printCPRange(cmd, p, evolution, depth+1)
	}
}
