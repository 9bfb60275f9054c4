package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Backend:  BackendSQLite,
		DataDir:  "/tmp/medex",
		Operator: "medex-operator",
		Vault:    DefaultVault,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"empty backend", func(c *Config) { c.Backend = "" }, ErrBackendEmpty},
		{"unknown backend", func(c *Config) { c.Backend = "postgres" }, ErrBackendUnknown},
		{"empty operator", func(c *Config) { c.Operator = "" }, ErrOperatorEmpty},
		{"empty vault", func(c *Config) { c.Vault = "" }, ErrVaultEmpty},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), tc.wantErr)
		})
	}
}

func TestFixedClock(t *testing.T) {
	clock := &FixedClock{H: 100}
	assert.Equal(t, uint64(100), clock.Height())
	clock.Advance(5)
	assert.Equal(t, uint64(105), clock.Height())
}
