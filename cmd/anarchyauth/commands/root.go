package commands

import (
	"github.com/spf13/cobra"

	"anarchyauth/internal/app"
)

var (
	configPath string
	appCtx     *app.App
)

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "anarchyauth",
		Short:        "Biometric Ed25519 key derivation service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cmd, configPath)
			if err != nil {
				return err
			}
			a, err := app.New(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/anarchyauth/anarchyauth.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "", "log format: text or json")
	root.PersistentFlags().String("extractor-url", "", "iris pipeline base URL (empty selects image hash fallback)")

	root.AddCommand(
		serveCmd(),
		deriveCmd(),
		signCmd(),
		verifyCmd(),
		exportCmd(),
		fingerprintCmd(),
		configCmd(),
	)
	return root
}
