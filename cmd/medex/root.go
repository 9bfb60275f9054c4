// Root command for the medex CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/helixgrid/medex/internal/paths"
)

// Exit codes: 0 success, 1 user/domain error, 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagCaller    string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "medex",
	Short:   "Medex is a settlement engine for a consent-gated health-data marketplace",
	Version: version,
	Long: `Medex mediates between data owners who list priced, consent-gated assets
and researchers who fund escrowed requests and purchase assets against them.
It decides whether a purchase is authorized and how proceeds are split.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		appConfig = configFromViper(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.medex)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.medex-db)")
	rootCmd.PersistentFlags().StringVar(&flagCaller, "as", "", "caller account for the operation")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(grantCmd)
	rootCmd.AddCommand(revokeCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(purchaseCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(unpauseCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(advanceCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > MEDEX_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > MEDEX_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
