// Package cli is the presentation shell: cobra commands that invoke the
// ledger domain operations and render the returned records. No SQL lives
// here; everything goes through internal/ledger and internal/auth.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shipledger/shipledger/internal/auth"
	"github.com/shipledger/shipledger/internal/config"
	"github.com/shipledger/shipledger/internal/ledger"
	"github.com/shipledger/shipledger/internal/logging"
	"github.com/shipledger/shipledger/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DBPath  string
	Format  string // "json" | "text"
	Verbose bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the shipledger CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "shipledger",
		Short: "Shipment ledger for agricultural produce",
		Long: `Bookkeeping for incoming produce shipments: shipments and their line
items, farmer purchases, inter-farmer transfers, returns, and receipts,
backed by a single SQLite database file.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "database file (default from SHIPLEDGER_DB_PATH, else shipments.db)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewPasswdCommand(opts))
	cmd.AddCommand(NewShipmentCommand(opts))
	cmd.AddCommand(NewProductCommand(opts))
	cmd.AddCommand(NewFarmerCommand(opts))
	cmd.AddCommand(NewPurchaseCommand(opts))
	cmd.AddCommand(NewTransferCommand(opts))
	cmd.AddCommand(NewReturnCommand(opts))
	cmd.AddCommand(NewBalanceCommand(opts))
	cmd.AddCommand(NewReceiptCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// app bundles the opened store and the services over it for one command run.
type app struct {
	Store  *store.Store
	Ledger *ledger.Ledger
	Gate   *auth.Gate
	Log    zerolog.Logger

	closeLog func() error
}

// openApp loads configuration, sets up logging, and opens the database.
// A failure here is a command error (exit 2): the process never half-starts.
func openApp(opts *RootOptions, cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "configuration", err)
	}

	level := cfg.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	log, closeLog, err := logging.New(logging.Options{
		Level:  level,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "logging setup", err)
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	s, err := store.Open(dbPath)
	if err != nil {
		closeLog()
		return nil, WrapExitError(ExitCommandError, "open database", err)
	}

	return &app{
		Store:    s,
		Ledger:   ledger.New(s, log),
		Gate:     auth.New(s, log),
		Log:      log,
		closeLog: closeLog,
	}, nil
}

// Close releases the database and the log file.
func (a *app) Close() {
	a.Store.Close()
	if a.closeLog != nil {
		a.closeLog()
	}
}
