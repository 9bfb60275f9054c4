package types

// Config holds engine policy settings and backend selection for the CLI.
type Config struct {
	Backend  string    `json:"backend" yaml:"backend"`
	DataDir  string    `json:"data_dir" yaml:"data_dir"`
	Operator AccountID `json:"operator" yaml:"operator"`
	Vault    AccountID `json:"vault" yaml:"vault"`

	// AllowRepeatPurchase permits a request to purchase the same record
	// more than once. Off by default: a second purchase of an identical
	// (record, request) pair fails with ErrAlreadyExists.
	AllowRepeatPurchase bool `json:"allow_repeat_purchase" yaml:"allow_repeat_purchase"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// DefaultVault is the escrow account the engine holds funds in when the
// configuration does not name one.
const DefaultVault AccountID = "medex-vault"

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Operator == "" {
		return ErrOperatorEmpty
	}
	if c.Vault == "" {
		return ErrVaultEmpty
	}
	return nil
}
