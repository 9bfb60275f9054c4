// Package main provides the medex CLI: a command per engine operation,
// backed by the SQLite state store.
package main

import (
	"errors"
	"os"

	"github.com/helixgrid/medex/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		code := exitSysError
		if isUserError(err) {
			code = exitUserError
		}
		os.Exit(code)
	}
}

// isUserError reports whether the error maps to a domain validation
// failure rather than a system fault.
func isUserError(err error) bool {
	for _, sentinel := range []error{
		types.ErrSystemPaused,
		types.ErrUnauthorized,
		types.ErrNotFound,
		types.ErrInvalidAmount,
		types.ErrInvalidCategory,
		types.ErrInvalidData,
		types.ErrAlreadyExists,
		types.ErrConsentRequired,
		types.ErrDataExpired,
		types.ErrQualityTooLow,
		types.ErrInsufficientBalance,
		types.ErrInvalidState,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
