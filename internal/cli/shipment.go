package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shipledger/shipledger/internal/ledger"
)

// ShipmentAddOptions holds flags for shipment add.
type ShipmentAddOptions struct {
	*RootOptions
	Note  string
	Lines []string
}

// NewShipmentCommand creates the shipment command group.
func NewShipmentCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shipment",
		Short: "Record and inspect shipments",
	}

	cmd.AddCommand(newShipmentAddCommand(rootOpts))
	cmd.AddCommand(newShipmentListCommand(rootOpts))
	cmd.AddCommand(newShipmentShowCommand(rootOpts))
	cmd.AddCommand(newShipmentRemoveCommand(rootOpts))

	return cmd
}

func newShipmentAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShipmentAddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a shipment with its line items",
		Long: `Record a shipment with its line items.

Each --line is productID:unitPrice:quantity; the subtotal is computed, never
supplied. All lines are written atomically with the header.

Example:
  shipledger shipment add --note "Batch 1" --line 1:50.00:100 --line 2:8.25:40`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShipmentAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Note, "note", "", "free-text note for the shipment")
	cmd.Flags().StringArrayVar(&opts.Lines, "line", nil, "line item as productID:unitPrice:quantity (repeatable)")

	return cmd
}

func runShipmentAdd(opts *ShipmentAddOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd.OutOrStdout())

	lines, err := parseLineFlags(opts.Lines)
	if err != nil {
		return f.Fail(WrapExitError(ExitCommandError, "parse --line", err))
	}

	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return f.Fail(err)
	}
	defer a.Close()

	id, err := a.Ledger.CreateShipment(cmd.Context(), opts.Note, lines)
	if err != nil {
		return f.Fail(err)
	}

	return f.Emit(map[string]any{"shipment_id": id}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Shipment #%d recorded with %d line item(s)\n", id, len(lines))
		return err
	})
}

// parseLineFlags converts repeated productID:unitPrice:quantity flags.
func parseLineFlags(raw []string) ([]ledger.LineInput, error) {
	lines := make([]ledger.LineInput, 0, len(raw))
	for _, item := range raw {
		parts := strings.Split(item, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%q: want productID:unitPrice:quantity", item)
		}
		productID, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: bad product id: %w", item, err)
		}
		unitPrice, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%q: bad unit price: %w", item, err)
		}
		quantity, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: bad quantity: %w", item, err)
		}
		lines = append(lines, ledger.LineInput{ProductID: productID, UnitPrice: unitPrice, Quantity: quantity})
	}
	return lines, nil
}

func newShipmentListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List shipments, newest first",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout())

			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return f.Fail(err)
			}
			defer a.Close()

			shipments, err := a.Ledger.Shipments(cmd.Context())
			if err != nil {
				return f.Fail(err)
			}

			return f.Emit(shipments, func(w io.Writer) error {
				for _, s := range shipments {
					note := s.Notes
					if note == "" {
						note = "-"
					}
					if _, err := fmt.Fprintf(w, "#%d  %s  %s\n",
						s.ID, s.CreatedAt.Format("2006-01-02 15:04"), note); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newShipmentShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <shipment-id>",
		Short:         "Show a shipment's line items and farmer purchases",
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

			ctx := cmd.Context()
			lines, err := a.Ledger.ShipmentLines(ctx, id)
			if err != nil {
				return f.Fail(err)
			}
			purchases, err := a.Ledger.ShipmentPurchases(ctx, id)
			if err != nil {
				return f.Fail(err)
			}

			data := map[string]any{"lines": lines, "purchases": purchases}
			return f.Emit(data, func(w io.Writer) error {
				fmt.Fprintln(w, "Line items:")
				for _, line := range lines {
					fmt.Fprintf(w, "  %s  %d x %.2f = %.2f\n",
						line.Product, line.Quantity, line.UnitPrice, line.Subtotal)
				}
				fmt.Fprintln(w, "Farmer purchases:")
				for _, p := range purchases {
					fmt.Fprintf(w, "  %s  %s %g x %.2f = %.2f\n",
						p.Farmer, p.Product, p.Quantity, p.UnitPrice, p.TotalPaid)
				}
				return nil
			})
		},
	}
}

func newShipmentRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "rm <shipment-id>",
		Short:         "Delete a shipment and everything recorded against it",
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

			if err := a.Ledger.DeleteShipment(cmd.Context(), id); err != nil {
				return f.Fail(err)
			}

			return f.Emit(map[string]any{"deleted": id}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Shipment #%d deleted\n", id)
				return err
			})
		},
	}
}

// parseID parses a positional integer id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("invalid id %q", arg))
	}
	return id, nil
}
