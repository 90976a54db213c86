package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewBalanceCommand creates the balance command.
func NewBalanceCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "balance <farmer-id>",
		Short:         "Show a farmer's net position per product",
		Long:          "Net quantity per product: purchases minus returns, plus transfers in, minus transfers out. Computed from the ledger on demand.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout())

			id, err := parseID(args[0])
			if err != nil {
				return f.Fail(err)
			}

			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return f.Fail(err)
			}
			defer a.Close()

			lines, err := a.Ledger.FarmerBalance(cmd.Context(), id)
			if err != nil {
				return f.Fail(err)
			}

			return f.Emit(lines, func(w io.Writer) error {
				if len(lines) == 0 {
					_, err := fmt.Fprintln(w, "No recorded activity")
					return err
				}
				for _, line := range lines {
					if _, err := fmt.Fprintf(w,
						"%s: net %g (bought %g, returned %g, in %g, out %g)  paid %.2f  refunded %.2f\n",
						line.Product, line.NetQuantity, line.Purchased, line.Returned,
						line.TransferredIn, line.TransferredOut,
						line.TotalPaid, line.TotalRefunded); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
