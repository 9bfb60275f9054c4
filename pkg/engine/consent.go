package engine

import "github.com/helixgrid/medex/pkg/types"

// GrantConsent records a consent grant for (caller, category), valid for
// ConsentDurationBlocks from the current height. Any prior grant for the
// pair is fully replaced. Returns the expiry height.
func (e *Exchange) GrantConsent(caller types.AccountID, category types.Category, purposes, geoRestrictions []string, canReidentify bool) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused {
		return 0, types.ErrSystemPaused
	}

	now := e.clock.Height()
	grant := &types.ConsentGrant{
		Owner:           caller,
		Category:        category,
		Granted:         true,
		GrantedAt:       now,
		ExpiresAt:       now + types.ConsentDurationBlocks,
		Purposes:        cloneStrings(purposes),
		GeoRestrictions: cloneStrings(geoRestrictions),
		CanReidentify:   canReidentify,
	}
	if err := grant.Validate(); err != nil {
		return 0, err
	}

	e.consents[consentKey{Owner: caller, Category: category}] = grant
	e.ownerProfile(caller).LastActivity = now
	return grant.ExpiresAt, nil
}

// RevokeConsent withdraws the caller's grant for a category with immediate
// effect: the grant stops authorizing new actions at the current height,
// while prior purchases stand. The entry itself is never removed.
// Returns ErrNotFound if no grant exists for the pair.
func (e *Exchange) RevokeConsent(caller types.AccountID, category types.Category) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused {
		return types.ErrSystemPaused
	}

	grant, ok := e.consents[consentKey{Owner: caller, Category: category}]
	if !ok {
		return types.ErrNotFound
	}

	now := e.clock.Height()
	grant.Granted = false
	grant.ExpiresAt = now
	e.ownerProfile(caller).LastActivity = now
	return nil
}

// grantFor returns the stored grant for the pair, or nil. Caller must hold
// e.mu.
func (e *Exchange) grantFor(owner types.AccountID, category types.Category) *types.ConsentGrant {
	return e.consents[consentKey{Owner: owner, Category: category}]
}

// cloneStrings copies a string slice, mapping empty to nil.
func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
