package types

import "errors"

// Engine operation errors. Every public operation fails with exactly one of
// these sentinels (possibly wrapped); callers can rely on errors.Is for
// precise handling.
var (
	ErrSystemPaused        = errors.New("system is paused")
	ErrUnauthorized        = errors.New("caller is not authorized")
	ErrNotFound            = errors.New("entity not found")
	ErrInvalidAmount       = errors.New("amount below minimum or above cap")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidData         = errors.New("invalid entity data")
	ErrAlreadyExists       = errors.New("entity already exists")
	ErrConsentRequired     = errors.New("no consent grant for owner and category")
	ErrDataExpired         = errors.New("consent grant revoked or expired")
	ErrQualityTooLow       = errors.New("quality score below required floor")
	ErrInsufficientBalance = errors.New("budget or capacity exhausted")
	ErrInvalidState        = errors.New("invalid status, availability, or rate limit")
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrOperatorEmpty  = errors.New("operator account must not be empty")
	ErrVaultEmpty     = errors.New("vault account must not be empty")
)
