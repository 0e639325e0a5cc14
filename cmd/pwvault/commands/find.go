package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pwvault/internal/cli"
	"pwvault/internal/domain"
)

// find <field> <value>: print the first entry whose field matches value.
func findCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "find <name|website|username|email> <value>",
		Short:     "Retrieve the first entry matching a field",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"name", "website", "username", "email"},
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := domain.ParseField(args[0])
			if err != nil {
				return err
			}
			e, ok, err := appCtx.Entries.Find(field, args[1])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no entry with %s %q", field, args[1])
			}
			cli.PrintEntry(cmd.OutOrStdout(), e)
			return nil
		},
	}
}
