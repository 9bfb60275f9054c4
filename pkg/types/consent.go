package types

// ConsentGrant is a time-bounded authorization scoped to one
// (owner, category) pair. At most one grant exists per pair; a new grant
// fully replaces the prior one, and revocation flips Granted to false
// rather than removing the entry. Expiry is evaluated lazily at read time.
type ConsentGrant struct {
	Owner     AccountID `json:"owner"`
	Category  Category  `json:"category"`
	Granted   bool      `json:"granted"`
	GrantedAt uint64    `json:"granted_at"` // Height at which the grant was made.
	ExpiresAt uint64    `json:"expires_at"` // Height at which the grant lapses; > GrantedAt while granted.

	// Both lists are bounded by MaxListLen, each entry by MaxShortTextLen.
	Purposes        []string `json:"purposes,omitempty"`
	GeoRestrictions []string `json:"geo_restrictions,omitempty"`
	CanReidentify   bool     `json:"can_reidentify"`
}

// Live reports whether the grant authorizes new actions at the given
// height: it must exist as granted and the height must precede expiry.
// A grant revoked at height H is live for all heights < H and not live
// at or after H.
func (g *ConsentGrant) Live(at uint64) bool {
	return g != nil && g.Granted && at < g.ExpiresAt
}

// Validate checks list bounds and the expiry ordering invariant.
func (g *ConsentGrant) Validate() error {
	if !g.Category.Valid() {
		return ErrInvalidCategory
	}
	if len(g.Purposes) > MaxListLen || len(g.GeoRestrictions) > MaxListLen {
		return ErrInvalidData
	}
	for _, p := range g.Purposes {
		if p == "" || len(p) > MaxShortTextLen {
			return ErrInvalidData
		}
	}
	for _, geo := range g.GeoRestrictions {
		if geo == "" || len(geo) > MaxShortTextLen {
			return ErrInvalidData
		}
	}
	if g.Granted && g.ExpiresAt <= g.GrantedAt {
		return ErrInvalidData
	}
	return nil
}
