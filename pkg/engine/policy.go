package engine

import "github.com/helixgrid/medex/pkg/types"

// Capability is a privileged action a caller may hold.
type Capability uint8

const (
	// CapAssess allows submitting quality assessments.
	CapAssess Capability = iota
	// CapGovern allows pausing and unpausing the engine.
	CapGovern
)

// Policy decides which capabilities an identity holds. Swapping in a
// multi-assessor role model is a policy change, not an engine change.
type Policy interface {
	Allows(caller types.AccountID, cap Capability) bool
}

// OperatorPolicy grants every capability to a single operator identity and
// nothing to anyone else.
type OperatorPolicy struct {
	Operator types.AccountID
}

// Allows reports whether the caller is the operator.
func (p OperatorPolicy) Allows(caller types.AccountID, _ Capability) bool {
	return caller != "" && caller == p.Operator
}
