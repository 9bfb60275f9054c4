package engine

import "github.com/helixgrid/medex/pkg/types"

// Pause sets the global pause flag. While paused every state-mutating
// operation fails with ErrSystemPaused before any other validation;
// Unpause is the one action that remains allowed. Restricted by the
// capability policy.
func (e *Exchange) Pause(caller types.AccountID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.policy.Allows(caller, CapGovern) {
		return types.ErrUnauthorized
	}
	if e.paused {
		return types.ErrInvalidState
	}
	e.paused = true
	return nil
}

// Unpause clears the global pause flag. Restricted by the capability
// policy.
func (e *Exchange) Unpause(caller types.AccountID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.policy.Allows(caller, CapGovern) {
		return types.ErrUnauthorized
	}
	if !e.paused {
		return types.ErrInvalidState
	}
	e.paused = false
	return nil
}

// Paused reports the global pause flag.
func (e *Exchange) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}
