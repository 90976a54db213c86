package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shipledger/shipledger/internal/ledger"
)

// CatalogFile is the YAML shape accepted by the import command.
type CatalogFile struct {
	Products []string `yaml:"products"`
	Farmers  []string `yaml:"farmers"`
}

// ImportResult counts what an import did.
type ImportResult struct {
	ProductsAdded   int `json:"products_added"`
	ProductsSkipped int `json:"products_skipped"`
	FarmersAdded    int `json:"farmers_added"`
	FarmersSkipped  int `json:"farmers_skipped"`
}

// NewImportCommand creates the import command: bulk-load products and
// farmers from a YAML catalog file. Names that already exist are skipped and
// counted, never duplicated.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <catalog.yaml>",
		Short: "Bulk-load products and farmers from a YAML file",
		Long: `Bulk-load products and farmers from a YAML file.

Example file:

  products:
    - Cabbage
    - Leek
  farmers:
    - Farmer D`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout())

			catalog, err := loadCatalogFile(args[0])
			if err != nil {
				return f.Fail(WrapExitError(ExitCommandError, "load catalog", err))
			}

			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return f.Fail(err)
			}
			defer a.Close()

			result, err := importCatalog(cmd.Context(), a.Ledger, catalog)
			if err != nil {
				return f.Fail(err)
			}

			return f.Emit(result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Imported %d product(s) (%d skipped), %d farmer(s) (%d skipped)\n",
					result.ProductsAdded, result.ProductsSkipped,
					result.FarmersAdded, result.FarmersSkipped)
				return err
			})
		},
	}
}

// loadCatalogFile parses a catalog YAML file, rejecting unknown keys so a
// typo ("products:") fails loudly instead of importing nothing.
func loadCatalogFile(path string) (*CatalogFile, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var catalog CatalogFile
	dec := yaml.NewDecoder(fh)
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &catalog, nil
}

// importCatalog adds every listed name, counting duplicates as skips.
// Anything other than a duplicate-name rejection aborts the import.
func importCatalog(ctx context.Context, l *ledger.Ledger, catalog *CatalogFile) (*ImportResult, error) {
	result := &ImportResult{}

	for _, name := range catalog.Products {
		_, err := l.AddProduct(ctx, name)
		switch {
		case err == nil:
			result.ProductsAdded++
		case ledger.IsValidation(err):
			result.ProductsSkipped++
		default:
			return nil, fmt.Errorf("import product %q: %w", name, err)
		}
	}

	for _, name := range catalog.Farmers {
		_, err := l.AddFarmer(ctx, name)
		switch {
		case err == nil:
			result.FarmersAdded++
		case ledger.IsValidation(err):
			result.FarmersSkipped++
		default:
			return nil, fmt.Errorf("import farmer %q: %w", name, err)
		}
	}

	return result, nil
}
