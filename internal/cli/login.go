package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// LoginOptions holds flags for the login command.
type LoginOptions struct {
	*RootOptions
	Username string
	Password string
}

// NewLoginCommand creates the login command.
//
// This mirrors the login gate of the desktop shell: exit 0 on a match, exit 1
// otherwise. It is a convenience check, not a security boundary - the
// credential scheme is a single shared unsalted hash kept for compatibility
// with existing database files.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoginOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "login",
		Short:         "Verify credentials against the database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout())

			if opts.Username == "" || opts.Password == "" {
				return f.Fail(NewExitError(ExitCommandError, "both --username and --password are required"))
			}

			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return f.Fail(err)
			}
			defer a.Close()

			if !a.Gate.Verify(cmd.Context(), opts.Username, opts.Password) {
				return f.Fail(NewExitError(ExitFailure, "invalid username or password"))
			}

			return f.Emit(map[string]any{"username": opts.Username}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Welcome, %s\n", opts.Username)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "password")

	return cmd
}

// PasswdOptions holds flags for the passwd command.
type PasswdOptions struct {
	*RootOptions
	Username string
	Password string
}

// NewPasswdCommand creates the passwd command, the normal path for changing
// the seeded default password.
func NewPasswdCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PasswdOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "passwd",
		Short:         "Change a user's password",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout())

			if opts.Username == "" || opts.Password == "" {
				return f.Fail(NewExitError(ExitCommandError, "both --username and --password are required"))
			}

			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return f.Fail(err)
			}
			defer a.Close()

			if err := a.Gate.SetPassword(cmd.Context(), opts.Username, opts.Password); err != nil {
				return f.Fail(err)
			}

			return f.Emit(map[string]any{"username": opts.Username}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Password updated for %s\n", opts.Username)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "new password")

	return cmd
}
