package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"brutnet/internal/config"
	"brutnet/internal/fiscal"
	"brutnet/internal/rates"
	"brutnet/internal/salary"
)

type globalOptions struct {
	ratesFile string
	jsonOut   bool
}

// NewRootCommand builds the full command tree. Each call returns fresh flag
// state.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "brutnet",
		Short: "Gross/net salary simulator for French payroll",
		Long: `brutnet estimates net take-home pay from gross salary and back, under a
simplified model of French payroll contributions and progressive income tax.

The rate table is illustrative, not a legal reference.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.ratesFile, "rates", "", "rate table file (.toml, .yaml); default $RATES_FILE or the built-in 2025 table")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print results as JSON")

	root.AddCommand(
		newServeCommand(opts),
		newConvertCommand(opts),
		newEmployerCostCommand(opts),
		newPartsCommand(opts),
		newTaxCommand(opts),
		newCompareCommand(opts),
		newRatesCommand(opts),
	)
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}

func (o *globalOptions) table() (*rates.Table, error) {
	path := o.ratesFile
	if path == "" {
		path = config.Load().RatesFile
	}
	return rates.Resolve(path)
}

func (o *globalOptions) converter() (*salary.Converter, error) {
	t, err := o.table()
	if err != nil {
		return nil, err
	}
	return salary.NewConverter(t), nil
}

// householdFlags are shared by every command that needs fiscal parts.
type householdFlags struct {
	coupled  bool
	children int
	parts    float64
}

func (h *householdFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&h.coupled, "couple", false, "married or in a civil partnership")
	cmd.Flags().IntVar(&h.children, "children", 0, "number of dependent children")
	cmd.Flags().Float64Var(&h.parts, "parts", 0, "fiscal parts, overrides --couple and --children")
}

func (h *householdFlags) resolve() (fiscal.Parts, error) {
	if h.parts != 0 {
		if h.parts < 0 {
			return 0, fmt.Errorf("%w, got %v", salary.ErrInvalidParts, h.parts)
		}
		return fiscal.Parts(h.parts), nil
	}
	return fiscal.ComputeParts(h.coupled, h.children)
}

func statusFlag(cmd *cobra.Command, cadre *bool) {
	cmd.Flags().BoolVar(cadre, "cadre", false, "executive (cadre) status")
}

func statusOf(cadre bool) rates.Status {
	if cadre {
		return rates.StatusCadre
	}
	return rates.StatusNonCadre
}

// parseAmount accepts "3000", "3 000" and "3000,50".
func parseAmount(s string) (float64, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f', '_':
			return -1
		case ',':
			return '.'
		}
		return r
	}, s)
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
