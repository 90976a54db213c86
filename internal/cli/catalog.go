package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewProductCommand creates the product command group.
func NewProductCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Maintain the product catalog",
	}

	cmd.AddCommand(newCatalogAddCommand(rootOpts, "product",
		func(a *app, cmd *cobra.Command, name string) (int64, error) {
			return a.Ledger.AddProduct(cmd.Context(), name)
		}))
	cmd.AddCommand(newCatalogRenameCommand(rootOpts, "product",
		func(a *app, cmd *cobra.Command, id int64, name string) error {
			return a.Ledger.RenameProduct(cmd.Context(), id, name)
		}))
	cmd.AddCommand(newProductListCommand(rootOpts))

	return cmd
}

// NewFarmerCommand creates the farmer command group.
func NewFarmerCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "farmer",
		Short: "Maintain the farmer catalog",
	}

	cmd.AddCommand(newCatalogAddCommand(rootOpts, "farmer",
		func(a *app, cmd *cobra.Command, name string) (int64, error) {
			return a.Ledger.AddFarmer(cmd.Context(), name)
		}))
	cmd.AddCommand(newCatalogRenameCommand(rootOpts, "farmer",
		func(a *app, cmd *cobra.Command, id int64, name string) error {
			return a.Ledger.RenameFarmer(cmd.Context(), id, name)
		}))
	cmd.AddCommand(newFarmerListCommand(rootOpts))

	return cmd
}

// newCatalogAddCommand builds "add <name>" for products and farmers, which
// differ only in the ledger call.
func newCatalogAddCommand(rootOpts *RootOptions, entity string, add func(*app, *cobra.Command, string) (int64, error)) *cobra.Command {
	return &cobra.Command{
		Use:           "add <name>",
		Short:         fmt.Sprintf("Add a %s", entity),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout())

			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return f.Fail(err)
			}
			defer a.Close()

			id, err := add(a, cmd, args[0])
			if err != nil {
				return f.Fail(err)
			}

			return f.Emit(map[string]any{"id": id, "name": args[0]}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Added %s #%d: %s\n", entity, id, args[0])
				return err
			})
		},
	}
}

func newCatalogRenameCommand(rootOpts *RootOptions, entity string, rename func(*app, *cobra.Command, int64, string) error) *cobra.Command {
	return &cobra.Command{
		Use:           "rename <id> <new-name>",
		Short:         fmt.Sprintf("Rename a %s", entity),
		Args:          cobra.ExactArgs(2),
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

			if err := rename(a, cmd, id, args[1]); err != nil {
				return f.Fail(err)
			}

			return f.Emit(map[string]any{"id": id, "name": args[1]}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Renamed %s #%d to %s\n", entity, id, args[1])
				return err
			})
		},
	}
}

func newProductListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List products in name order",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout())

			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return f.Fail(err)
			}
			defer a.Close()

			products, err := a.Ledger.Products(cmd.Context())
			if err != nil {
				return f.Fail(err)
			}

			return f.Emit(products, func(w io.Writer) error {
				for _, p := range products {
					if _, err := fmt.Fprintf(w, "#%d  %s\n", p.ID, p.Name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newFarmerListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List farmers in name order",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout())

			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return f.Fail(err)
			}
			defer a.Close()

			farmers, err := a.Ledger.Farmers(cmd.Context())
			if err != nil {
				return f.Fail(err)
			}

			return f.Emit(farmers, func(w io.Writer) error {
				for _, fr := range farmers {
					if _, err := fmt.Fprintf(w, "#%d  %s\n", fr.ID, fr.Name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
