package main

import (
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/poketrainers/internal/entities/pokemon"
	"github.com/KirkDiggler/poketrainers/internal/orchestrators/ivresume"
)

func newIVResumeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "iv-resume [name] [cp] [hp] [dust]",
		Short: "Narrow down the IVs of a creature from its CP, HP and power-up dust cost",
		Args:  exactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := &ivresume.GetIVResumeInput{Name: args[0]}
			for i, arg := range []struct {
				field  string
				target *int
			}{
				{"cp", &input.CP},
				{"hp", &input.HP},
				{"dust", &input.Dust},
			} {
				n, err := parseIntArg(arg.field, args[i+1])
				if err != nil {
					return err
				}
				*arg.target = n
			}

			svc, err := a.services(cmd.Context())
			if err != nil {
				return err
			}

			out, err := svc.ivResume.GetIVResume(cmd.Context(), input)
			if err != nil {
				return err
			}

			return a.render(cmd, out.Resume, func(p *message.Printer) {
				printIVResume(cmd.OutOrStdout(), p, input, out.Resume)
			})
		},
	}
}

func printIVResume(w io.Writer, p *message.Printer, input *ivresume.GetIVResumeInput, r *pokemon.IVResume) {
	p.Fprintf(w, "%s (#%s) CP %d HP %d dust %d\n", r.Pokemon.Name, dexNumber(r.Pokemon.ID), input.CP, input.HP, input.Dust)
	if n := len(r.LevelRange); n > 0 {
		p.Fprintf(w, "Levels %d - %d\n", r.LevelRange[0], r.LevelRange[n-1])
	}

	if r.IVs.Count == 0 {
		p.Fprintf(w, "No IV combination matches\n")
		return
	}

	p.Fprintf(w, "Grade %s, %d possible IV combinations\n", r.Grade, r.IVs.Count)
	p.Fprintf(w, "Perfection: best %d%%, worst %d%%, average %d%%\n",
		r.Perfection.Best, r.Perfection.Worst, r.Perfection.Avg)
	for _, row := range r.ChartData {
		p.Fprintf(w, "  %s  best %d  worst %d\n", row.Stat, row.Best, row.Worst)
	}

	for _, snapshot := range []struct {
		label string
		stats *pokemon.Stats
	}{
		{"Best possible", r.IVs.Best},
		{"Your best", r.IVs.YourBest},
		{"Your worst", r.IVs.YourWorst},
		{"Worst possible", r.IVs.Worst},
	} {
		s := snapshot.stats
		p.Fprintf(w, "%s: %d/%d/%d level %d, CP %d HP %d, max CP %d HP %d\n",
			snapshot.label, s.IVs.Attack, s.IVs.Defense, s.IVs.Stamina, s.Level, s.CP, s.HP, s.MaxCP, s.MaxHP)
	}
}
