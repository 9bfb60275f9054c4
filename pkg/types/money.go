package types

// AccountID identifies a participant (owner, consumer, or the platform
// operator). Identity authentication happens outside the engine; an
// AccountID is trusted as-is.
type AccountID string

// Money is an amount in the smallest currency unit. All fee arithmetic is
// integer arithmetic; division truncates.
type Money uint64

// Mul returns m multiplied by n.
func (m Money) Mul(n uint64) Money {
	return m * Money(n)
}

// Div returns m divided by n, truncating toward zero.
func (m Money) Div(n uint64) Money {
	return m / Money(n)
}

// Fee returns the platform fee for m at the given basis points:
// floor(m * bips / 10000). The split keeps the intermediate products in
// range for any m when bips <= 10000, so the result is exact across the
// full uint64 domain.
func (m Money) Fee(bips uint64) Money {
	whole, part := m/10000, m%10000
	return whole.Mul(bips) + part.Mul(bips).Div(10000)
}
