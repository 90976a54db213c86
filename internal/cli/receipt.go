package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shipledger/shipledger/internal/receipt"
)

// NewReceiptCommand creates the receipt command.
func NewReceiptCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "receipt <shipment-id>",
		Short:         "Render a printable receipt for a shipment",
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

			rc, ok, err := receipt.NewRenderer(a.Ledger).Build(cmd.Context(), id)
			if err != nil {
				return f.Fail(err)
			}
			if !ok {
				return f.Fail(NewExitError(ExitFailure, fmt.Sprintf("shipment %d not found", id)))
			}

			return f.Emit(rc, func(w io.Writer) error {
				return rc.Render(w)
			})
		},
	}
}
