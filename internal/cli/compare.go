package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"brutnet/internal/calculations"
	"brutnet/internal/money"
	"brutnet/internal/salary"
)

func newCompareCommand(opts *globalOptions) *cobra.Command {
	var (
		cadre     bool
		percents  []float64
		household householdFlags
	)

	cmd := &cobra.Command{
		Use:   "compare <gross-monthly>",
		Short: "Compare net pay after gross raises",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gross, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			parts, err := household.resolve()
			if err != nil {
				return err
			}
			conv, err := opts.converter()
			if err != nil {
				return err
			}

			status := statusOf(cadre)
			current, err := conv.Convert(salary.Request{Amount: gross, Direction: salary.GrossToNet, Status: status, Parts: parts})
			if err != nil {
				return err
			}
			sims, err := conv.SimulateRaises(gross, status, parts, percents)
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), calculations.PresentRaises(current, sims))
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(tw, "Raise\tGross\tNet after tax\tDelta\t\n")
			fmt.Fprintf(tw, "current\t%s\t%s\t\t\n", eur(current.Gross), eur(current.NetAfterTax))
			for _, s := range sims {
				fmt.Fprintf(tw, "+%v %%\t%s\t%s\t+%s (%s %%)\t\n",
					s.Percent, eur(s.NewGross), eur(s.NewNet), eur(s.Delta), money.Format(s.DeltaPercent, 1))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Float64SliceVar(&percents, "percents", nil, "raises to compare, in percent (default 5,10,15,20)")
	statusFlag(cmd, &cadre)
	household.register(cmd)
	return cmd
}
