package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pwvault/internal/services/entry"
)

// add: create an entry from flags; the password is always prompted for.
func addCmd() *cobra.Command {
	var f entry.Fields
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new password entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd)
			password, err := p.Password("Enter password", entry.ValidatePassword)
			if err != nil {
				return err
			}
			f.Password = password

			e, err := appCtx.Entries.Create(f)
			if err != nil {
				return err
			}
			appCtx.Log.Info("entry created", "name", e.Name())
			fmt.Fprintf(cmd.OutOrStdout(), "Your entry %q has been saved!\n", e.Name())
			return nil
		},
	}
	cmd.Flags().StringVar(&f.Name, "name", "", "entry name (required)")
	cmd.Flags().StringVar(&f.Website, "website", "", "website, starting with http:// or https://")
	cmd.Flags().StringVar(&f.Username, "username", "", "account username")
	cmd.Flags().StringVar(&f.Email, "email", "", "account email")
	cmd.Flags().StringVar(&f.Description, "description", "", "free-form description")
	cmd.Flags().StringArrayVar(&f.Tags, "tag", nil, "tag (repeatable)")
	cmd.Flags().StringArrayVar(&f.Notes, "note", nil, "note (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
