package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"brutnet/internal/calculations"
	"brutnet/internal/money"
	"brutnet/internal/salary"
)

func newConvertCommand(opts *globalOptions) *cobra.Command {
	var (
		net       bool
		cadre     bool
		annual    bool
		household householdFlags
	)

	cmd := &cobra.Command{
		Use:   "convert <amount>",
		Short: "Convert a gross salary to net pay, or net back to gross",
		Example: `  brutnet convert 3000
  brutnet convert 2500 --net --cadre --couple --children 2
  brutnet convert 42000 --annual --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
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

			req := salary.Request{
				Amount:    amount,
				Direction: salary.GrossToNet,
				Status:    statusOf(cadre),
				Parts:     parts,
				Period:    salary.Monthly,
			}
			if net {
				req.Direction = salary.NetToGross
			}
			if annual {
				req.Period = salary.Annual
			}

			res, err := conv.Convert(req)
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), calculations.PresentConversion(res))
			}
			return printConversion(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().BoolVar(&net, "net", false, "the amount is a net salary, compute the gross")
	cmd.Flags().BoolVar(&annual, "annual", false, "the amount is annual rather than monthly")
	statusFlag(cmd, &cadre)
	household.register(cmd)
	return cmd
}

func eur(x float64) string {
	return money.Format(x, 2) + " €"
}

func printConversion(w io.Writer, r salary.Result) error {
	if !r.Computed {
		_, err := fmt.Fprintln(w, "Enter a positive amount.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Gross\t%s\t\n", eur(r.Gross))
	fmt.Fprintf(tw, "Contributions (%s)\t-%s\t\n", money.Percent(r.EffectiveContributionRate), eur(r.Contributions))
	fmt.Fprintf(tw, "Net before tax\t%s\t\n", eur(r.NetBeforeTax))
	fmt.Fprintf(tw, "Income tax (%s)\t-%s\t\n", money.Percent(r.EffectiveTaxRate), eur(r.TaxMonthly))
	fmt.Fprintf(tw, "Net after tax\t%s\t\n", eur(r.NetAfterTax))
	fmt.Fprintf(tw, "\t\t\n")
	fmt.Fprintf(tw, "Annual gross\t%s\t\n", eur(r.AnnualGross))
	fmt.Fprintf(tw, "Annual net after tax\t%s\t\n", eur(r.AnnualNetAfterTax))
	fmt.Fprintf(tw, "Fiscal parts\t%v\t\n", float64(r.Parts))
	fmt.Fprintf(tw, "Marginal tax rate\t%s\t\n", money.Percent(r.MarginalTaxRate))
	return tw.Flush()
}
