// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/logger"
)

var (
	configPath string // Directory holding main.toml
	devMode    bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "go-wowonder-admin",
	Short: "GoWoWonder-Admin is the back-office of a WoWonder social network",
	Long: `GoWoWonder-Admin is the back-office of a WoWonder social network.
It edits the site and marketplace settings, works through reported content,
manages interface languages and sends notifications to the members.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		if cfg, err = config.ReadConfig(configPath); err != nil {
			return err
		}

		if devMode {
			cfg.DevMode = true
		}

		return logger.Init(cfg.Log)
	},
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "Directory of main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
