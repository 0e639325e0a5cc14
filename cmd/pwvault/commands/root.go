package commands

import (
	"os"

	"github.com/spf13/cobra"

	"pwvault/internal/app"
	"pwvault/internal/cli"
	"pwvault/internal/logging"
	"pwvault/internal/prompt"
)

var (
	configFile string
	appCtx     *app.Wire
)

// Execute builds the root command and runs it with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pwvault",
		Short:        "Local credential record store",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := app.NewViper(configFile)
			if err := v.BindPFlag("file", cmd.Flags().Lookup("file")); err != nil {
				return err
			}
			if err := v.BindPFlag("log.level", cmd.Flags().Lookup("log-level")); err != nil {
				return err
			}
			cfg, err := app.Load(v)
			if err != nil {
				return err
			}
			logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg, logger)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd)
			return cli.NewMenu(p, appCtx.Entries, appCtx.Log).Run()
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./pwvault.yaml or ~/.config/pwvault/pwvault.yaml)")
	root.PersistentFlags().String("file", "", "entry document (default ~/password_entries.json)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(addCmd(), findCmd(), verifyCmd())
	return root
}

// newPrompter reads from the command's input, hiding passwords when that
// input is the process's terminal.
func newPrompter(cmd *cobra.Command) *prompt.Prompter {
	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout(), appCtx.Config.Prompt.MaxAttempts)
	if cmd.InOrStdin() == os.Stdin {
		p.HideInput(int(os.Stdin.Fd()))
	}
	return p
}
