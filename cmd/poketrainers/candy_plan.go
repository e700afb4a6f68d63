package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/poketrainers/internal/orchestrators/candy"
)

func newCandyPlanCmd(a *app) *cobra.Command {
	var transfer bool

	cmd := &cobra.Command{
		Use:   "candy-plan [species] [quantity] [candies]",
		Short: "Plan how many creatures of a species to evolve and transfer",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := parseIntArg("quantity", args[1])
			if err != nil {
				return err
			}
			candies, err := parseIntArg("candies", args[2])
			if err != nil {
				return err
			}

			svc, err := a.services(cmd.Context())
			if err != nil {
				return err
			}

			out, err := svc.candy.GetCandyPlan(cmd.Context(), &candy.GetCandyPlanInput{
				Species:  args[0],
				Quantity: quantity,
				Candies:  candies,
				Transfer: transfer,
			})
			if err != nil {
				return err
			}

			plan := out.Plan
			return a.render(cmd, plan, func(p *message.Printer) {
				w := cmd.OutOrStdout()
				p.Fprintf(w, "%s x%d with %d candies (%d per evolution)\n",
					plan.Pokemon.Name, plan.Quantity, plan.Candies, plan.Pokemon.CandyToEvolve)
				p.Fprintf(w, "  Evolutions:         %d\n", plan.PokemonsToEvolve)
				p.Fprintf(w, "  Transfers:          %d\n", plan.PokemonsToTransfer)
				p.Fprintf(w, "  Evolved transfers:  %d\n", plan.EvolutionsToTransfer)
				p.Fprintf(w, "  Candies left:       %d\n", plan.CandiesLeft)
				p.Fprintf(w, "  Pokemon left:       %d\n", plan.PokemonsLeft)
				p.Fprintf(w, "  XP:                 %d (%d with lucky egg)\n", plan.XP, plan.XPWithLuckyEgg)
				p.Fprintf(w, "  Time:               %ds\n", plan.Time)
			})
		},
	}

	cmd.Flags().BoolVar(&transfer, "transfer", false, "Also transfer evolved creatures for candy")

	return cmd
}
