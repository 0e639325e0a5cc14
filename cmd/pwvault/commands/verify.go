package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pwvault/internal/crypto"
)

// verify <name>: check a password against the hash stored for name.
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <name>",
		Short: "Check a password against an entry's stored hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := newPrompter(cmd).Password("Enter password", nil)
			if err != nil {
				return err
			}
			found, err := appCtx.Entries.Verify(args[0], password)
			switch {
			case !found && err == nil:
				return fmt.Errorf("no entry named %q", args[0])
			case errors.Is(err, crypto.ErrMismatch):
				return fmt.Errorf("password does not match entry %q", args[0])
			case err != nil:
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password matches.")
			return nil
		},
	}
}
