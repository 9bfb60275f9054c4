// Config loading for the medex CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/helixgrid/medex/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend     = "backend"
	cfgKeyDataDir     = "data_dir"
	cfgKeyOperator    = "operator"
	cfgKeyVault       = "vault"
	cfgKeyAllowRepeat = "allow_repeat_purchase"
	defaultBackend    = types.BackendSQLite
	defaultOperator   = "medex-operator"
)

// appConfig is the engine configuration assembled from config.yaml,
// populated by the root PersistentPreRunE.
var appConfig types.Config

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# medex CLI configuration

# Backend selection
backend: sqlite

# Platform operator account (assessor and governance authority)
operator: medex-operator

# Escrow vault account
vault: medex-vault

# Permit repeat purchases of the same (record, request) pair
allow_repeat_purchase: false

# Data directory (optional; overridable by --data-dir flag)
# data_dir:
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyOperator, defaultOperator)
	v.SetDefault(cfgKeyVault, string(types.DefaultVault))
	v.SetDefault(cfgKeyAllowRepeat, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// configFromViper maps the loaded configuration to the engine Config.
// DataDir is resolved separately so flag precedence applies.
func configFromViper(v *viper.Viper) types.Config {
	return types.Config{
		Backend:             v.GetString(cfgKeyBackend),
		Operator:            types.AccountID(v.GetString(cfgKeyOperator)),
		Vault:               types.AccountID(v.GetString(cfgKeyVault)),
		AllowRepeatPurchase: v.GetBool(cfgKeyAllowRepeat),
	}
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
