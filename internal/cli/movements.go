package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shipledger/shipledger/internal/ledger"
)

// PurchaseAddOptions holds flags for purchase add.
type PurchaseAddOptions struct {
	*RootOptions
	ShipmentID int64
	FarmerID   int64
	ProductID  int64
	Quantity   float64
	UnitPrice  float64
}

// NewPurchaseCommand creates the purchase command group.
func NewPurchaseCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purchase",
		Short: "Record farmer purchases against shipments",
	}

	opts := &PurchaseAddOptions{RootOptions: rootOpts}
	add := &cobra.Command{
		Use:           "add",
		Short:         "Record a farmer purchase (total paid is computed)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout())

			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return f.Fail(err)
			}
			defer a.Close()

			id, err := a.Ledger.RecordFarmerPurchase(cmd.Context(), ledger.PurchaseInput{
				ShipmentID: opts.ShipmentID,
				FarmerID:   opts.FarmerID,
				ProductID:  opts.ProductID,
				Quantity:   opts.Quantity,
				UnitPrice:  opts.UnitPrice,
			})
			if err != nil {
				return f.Fail(err)
			}

			return f.Emit(map[string]any{"purchase_id": id}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Purchase #%d recorded\n", id)
				return err
			})
		},
	}
	add.Flags().Int64Var(&opts.ShipmentID, "shipment", 0, "shipment id")
	add.Flags().Int64Var(&opts.FarmerID, "farmer", 0, "farmer id")
	add.Flags().Int64Var(&opts.ProductID, "product", 0, "product id")
	add.Flags().Float64Var(&opts.Quantity, "quantity", 0, "quantity bought")
	add.Flags().Float64Var(&opts.UnitPrice, "price", 0, "unit price paid")

	cmd.AddCommand(add)
	return cmd
}

// TransferAddOptions holds flags for transfer add.
type TransferAddOptions struct {
	*RootOptions
	FromFarmerID int64
	ToFarmerID   int64
	ProductID    int64
	Quantity     float64
	Note         string
}

// NewTransferCommand creates the transfer command group.
func NewTransferCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Record and list transfers between farmers",
	}

	opts := &TransferAddOptions{RootOptions: rootOpts}
	add := &cobra.Command{
		Use:           "add",
		Short:         "Record a transfer between two distinct farmers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout())

			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return f.Fail(err)
			}
			defer a.Close()

			id, err := a.Ledger.RecordTransfer(cmd.Context(), ledger.TransferInput{
				FromFarmerID: opts.FromFarmerID,
				ToFarmerID:   opts.ToFarmerID,
				ProductID:    opts.ProductID,
				Quantity:     opts.Quantity,
				Note:         opts.Note,
			})
			if err != nil {
				return f.Fail(err)
			}

			return f.Emit(map[string]any{"transfer_id": id}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Transfer #%d recorded\n", id)
				return err
			})
		},
	}
	add.Flags().Int64Var(&opts.FromFarmerID, "from", 0, "source farmer id")
	add.Flags().Int64Var(&opts.ToFarmerID, "to", 0, "destination farmer id")
	add.Flags().Int64Var(&opts.ProductID, "product", 0, "product id")
	add.Flags().Float64Var(&opts.Quantity, "quantity", 0, "quantity moved")
	add.Flags().StringVar(&opts.Note, "note", "", "optional note")

	list := &cobra.Command{
		Use:           "list",
		Short:         "List transfers, newest first",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout())

			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return f.Fail(err)
			}
			defer a.Close()

			transfers, err := a.Ledger.Transfers(cmd.Context())
			if err != nil {
				return f.Fail(err)
			}

			return f.Emit(transfers, func(w io.Writer) error {
				for _, tr := range transfers {
					if _, err := fmt.Fprintf(w, "#%d  %s -> %s  %s x%g  %s\n",
						tr.ID, tr.FromFarmer, tr.ToFarmer, tr.Product, tr.Quantity,
						tr.CreatedAt.Format("2006-01-02 15:04")); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.AddCommand(add)
	cmd.AddCommand(list)
	return cmd
}

// ReturnAddOptions holds flags for return add.
type ReturnAddOptions struct {
	*RootOptions
	FarmerID     int64
	ProductID    int64
	Quantity     float64
	RefundAmount float64
	Note         string
}

// NewReturnCommand creates the return command group.
func NewReturnCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "return",
		Short: "Record and list product returns",
	}

	opts := &ReturnAddOptions{RootOptions: rootOpts}
	add := &cobra.Command{
		Use:           "add",
		Short:         "Record a farmer returning product",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout())

			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return f.Fail(err)
			}
			defer a.Close()

			id, err := a.Ledger.RecordReturn(cmd.Context(), ledger.ReturnInput{
				FarmerID:     opts.FarmerID,
				ProductID:    opts.ProductID,
				Quantity:     opts.Quantity,
				RefundAmount: opts.RefundAmount,
				Note:         opts.Note,
			})
			if err != nil {
				return f.Fail(err)
			}

			return f.Emit(map[string]any{"return_id": id}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Return #%d recorded\n", id)
				return err
			})
		},
	}
	add.Flags().Int64Var(&opts.FarmerID, "farmer", 0, "farmer id")
	add.Flags().Int64Var(&opts.ProductID, "product", 0, "product id")
	add.Flags().Float64Var(&opts.Quantity, "quantity", 0, "quantity returned")
	add.Flags().Float64Var(&opts.RefundAmount, "refund", 0, "refund amount")
	add.Flags().StringVar(&opts.Note, "note", "", "optional note")

	list := &cobra.Command{
		Use:           "list",
		Short:         "List returns, newest first",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout())

			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return f.Fail(err)
			}
			defer a.Close()

			returns, err := a.Ledger.Returns(cmd.Context())
			if err != nil {
				return f.Fail(err)
			}

			return f.Emit(returns, func(w io.Writer) error {
				for _, r := range returns {
					if _, err := fmt.Fprintf(w, "#%d  %s  %s x%g  refund %.2f  %s\n",
						r.ID, r.Farmer, r.Product, r.Quantity, r.RefundAmount,
						r.CreatedAt.Format("2006-01-02 15:04")); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.AddCommand(add)
	cmd.AddCommand(list)
	return cmd
}
