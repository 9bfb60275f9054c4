package types

// Clock supplies the monotonically non-decreasing block height. Each engine
// operation reads the height exactly once, at its start; all time-dependent
// facts (consent expiry, request expiry) are evaluated lazily against it.
type Clock interface {
	Height() uint64
}

// FixedClock is a Clock pinned to a settable height, for tests and for the
// CLI's stored chain height.
type FixedClock struct {
	H uint64
}

// Height returns the pinned height.
func (c *FixedClock) Height() uint64 { return c.H }

// Advance moves the clock forward by n blocks.
func (c *FixedClock) Advance(n uint64) { c.H += n }
