package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"brutnet/internal/money"
	"brutnet/internal/rates"
)

func newRatesCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Print the active rate table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := opts.table()
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), t)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Year\t%d\n\n", t.Year)
			fmt.Fprintf(tw, "Status\tEmployee\tEmployer\n")
			for _, s := range rates.Statuses {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s,
					money.Percent(t.ContributionRates[s]), money.Percent(t.EmployerRates[s]))
			}
			fmt.Fprintf(tw, "\nFrom\tTo\tRate\n")
			for _, b := range t.Brackets {
				upper := "∞"
				if !b.Unbounded() {
					upper = money.Format(b.Upper, 0)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", money.Format(b.Lower, 0), upper, money.Percent(b.Rate))
			}
			return tw.Flush()
		},
	}
}
