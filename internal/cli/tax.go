package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"brutnet/internal/calculations"
	"brutnet/internal/fiscal"
	"brutnet/internal/money"
	"brutnet/internal/salary"
)

func newTaxCommand(opts *globalOptions) *cobra.Command {
	var parts float64

	cmd := &cobra.Command{
		Use:   "tax <annual-taxable-income>",
		Short: "Compute the annual income tax with the bracket detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			income, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			if parts <= 0 {
				return fmt.Errorf("%w, got %v", salary.ErrInvalidParts, parts)
			}
			conv, err := opts.converter()
			if err != nil {
				return err
			}

			a := conv.TaxEngine().Detail(income, fiscal.Parts(parts))
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), calculations.PresentAssessment(a))
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			for _, s := range a.Shares {
				upper := "∞"
				if !s.Bracket.Unbounded() {
					upper = money.Format(s.Bracket.Upper, 0)
				}
				fmt.Fprintf(tw, "%s – %s\t%s\t%s\t\n",
					money.Format(s.Bracket.Lower, 0), upper, money.Percent(s.Bracket.Rate), eur(s.Tax))
			}
			fmt.Fprintf(tw, "Quotient\t\t%s\t\n", eur(a.Quotient))
			fmt.Fprintf(tw, "Annual tax\t\t%s\t\n", eur(a.Total))
			return tw.Flush()
		},
	}
	cmd.Flags().Float64Var(&parts, "parts", 1, "fiscal parts")
	return cmd
}
