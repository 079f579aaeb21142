package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"brutnet/internal/fiscal"
	"brutnet/internal/model"
)

func newPartsCommand(opts *globalOptions) *cobra.Command {
	var (
		coupled  bool
		children int
	)

	cmd := &cobra.Command{
		Use:   "parts",
		Short: "Compute the household's fiscal parts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := fiscal.ComputeParts(coupled, children)
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), model.FiscalPartsResult{Parts: float64(p)})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%v\n", float64(p))
			return err
		},
	}
	cmd.Flags().BoolVar(&coupled, "couple", false, "married or in a civil partnership")
	cmd.Flags().IntVar(&children, "children", 0, "number of dependent children")
	return cmd
}
