package types

// Research request statuses. Transitions are one-directional: active may
// become completed or cancelled; completed and cancelled are terminal.
const (
	RequestStatusActive    = "active"
	RequestStatusCompleted = "completed"
	RequestStatusCancelled = "cancelled"
)

// ResearchRequest is a consumer's funded, capacity- and quality-bounded
// purchase order. The full budget moves into escrow when the request opens;
// settlement disburses from it, cancellation refunds the remainder.
type ResearchRequest struct {
	ID          uint64    `json:"request_id"` // Monotonic, allocated by the engine, never reused.
	Consumer    AccountID `json:"consumer"`   // Funding researcher.
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Purpose     string    `json:"purpose,omitempty"`
	Institution string    `json:"institution,omitempty"`
	ApprovalRef string    `json:"approval_ref,omitempty"` // Ethics/IRB approval reference.

	Categories        []Category `json:"categories"` // Needed categories, non-empty.
	MaxPricePerRecord Money      `json:"max_price_per_record"`
	MinQuality        uint8      `json:"min_quality"`
	MaxRecords        uint32     `json:"max_records"`

	CreatedAt uint64 `json:"created_at"` // Height at opening.
	ExpiresAt uint64 `json:"expires_at"` // Height past which the request authorizes no purchases.

	Status           string `json:"status"`
	BudgetAllocated  Money  `json:"budget_allocated"`  // Funds escrowed at opening; >= MaxRecords * MaxPricePerRecord.
	BudgetSpent      Money  `json:"budget_spent"`      // Sum of prices paid so far; never exceeds BudgetAllocated.
	RecordsPurchased uint32 `json:"records_purchased"` // Never exceeds MaxRecords.
}

// Validate checks field bounds and the solvency precondition.
func (r *ResearchRequest) Validate() error {
	if r.Title == "" || len(r.Title) > MaxShortTextLen {
		return ErrInvalidData
	}
	if len(r.Description) > MaxLongTextLen || len(r.Purpose) > MaxLongTextLen {
		return ErrInvalidData
	}
	if len(r.Institution) > MaxShortTextLen || len(r.ApprovalRef) > MaxShortTextLen {
		return ErrInvalidData
	}
	if len(r.Categories) == 0 || len(r.Categories) > MaxListLen {
		return ErrInvalidData
	}
	for _, c := range r.Categories {
		if !c.Valid() {
			return ErrInvalidCategory
		}
	}
	if r.MaxPricePerRecord < MinRecordPrice {
		return ErrInvalidAmount
	}
	if r.MinQuality > MaxQualityScore {
		return ErrInvalidData
	}
	if r.MaxRecords == 0 {
		return ErrInvalidData
	}
	// Division form of budget >= maxRecords * maxPrice; the product can
	// wrap uint64 on extreme prices, the quotient cannot.
	if r.BudgetAllocated.Div(uint64(r.MaxRecords)) < r.MaxPricePerRecord {
		return ErrInsufficientBalance
	}
	return nil
}

// Active reports whether the request may still authorize purchases at the
// given height. Expiry is lazy: an active-status request past its expiry
// height authorizes nothing.
func (r *ResearchRequest) Active(at uint64) bool {
	return r.Status == RequestStatusActive && at < r.ExpiresAt
}

// Complete marks the request as completed.
// Returns ErrInvalidState unless the current status is active.
func (r *ResearchRequest) Complete() error {
	if r.Status != RequestStatusActive {
		return ErrInvalidState
	}
	r.Status = RequestStatusCompleted
	return nil
}

// Cancel marks the request as cancelled.
// Returns ErrInvalidState unless the current status is active.
func (r *ResearchRequest) Cancel() error {
	if r.Status != RequestStatusActive {
		return ErrInvalidState
	}
	r.Status = RequestStatusCancelled
	return nil
}

// Remaining returns the unspent escrow balance.
func (r *ResearchRequest) Remaining() Money {
	return r.BudgetAllocated - r.BudgetSpent
}
