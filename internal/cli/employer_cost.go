package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"brutnet/internal/calculations"
	"brutnet/internal/money"
)

func newEmployerCostCommand(opts *globalOptions) *cobra.Command {
	var cadre bool

	cmd := &cobra.Command{
		Use:   "employer-cost <gross-monthly>",
		Short: "Show what a monthly gross salary costs the employer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gross, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			conv, err := opts.converter()
			if err != nil {
				return err
			}
			res, err := conv.EmployerCost(gross, statusOf(cadre))
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), calculations.PresentEmployerCost(res))
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(tw, "Gross\t%s\t\n", eur(res.Gross))
			fmt.Fprintf(tw, "Employer contributions (%s)\t+%s\t\n", money.Percent(res.EmployerRate), eur(res.EmployerContributions))
			fmt.Fprintf(tw, "Total employer cost\t%s\t\n", eur(res.TotalCost))
			fmt.Fprintf(tw, "Cost per net euro\t%s\t\n", money.Format(res.CostPerNetEuro, 2))
			return tw.Flush()
		},
	}
	statusFlag(cmd, &cadre)
	return cmd
}
