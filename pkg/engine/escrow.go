package engine

import "github.com/helixgrid/medex/pkg/types"

// MinRequestQuality is the lowest acceptable min-quality on a research
// request. It matches QualityThreshold: records scoring below it are never
// available, so a request demanding less could never be served honestly.
const MinRequestQuality = types.QualityThreshold

// OpenRequest creates a funded research request for the caller. The full
// budget moves into the escrow vault before any state is persisted; if the
// transfer fails its error propagates unchanged and nothing is stored.
// Returns the allocated request id.
//
// The draft carries the consumer-chosen fields (title through ExpiresAt);
// identity, status, budget, and counters are set here. A zero ExpiresAt
// selects the default window from the current height.
func (e *Exchange) OpenRequest(caller types.AccountID, draft types.ResearchRequest, budget types.Money) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused {
		return 0, types.ErrSystemPaused
	}

	now := e.clock.Height()
	request := &types.ResearchRequest{
		Consumer:    caller,
		Title:       draft.Title,
		Description: draft.Description,
		Purpose:     draft.Purpose,
		Institution: draft.Institution,
		ApprovalRef: draft.ApprovalRef,

		Categories:        cloneCategories(draft.Categories),
		MaxPricePerRecord: draft.MaxPricePerRecord,
		MinQuality:        draft.MinQuality,
		MaxRecords:        draft.MaxRecords,

		CreatedAt: now,
		ExpiresAt: draft.ExpiresAt,

		Status:          types.RequestStatusActive,
		BudgetAllocated: budget,
	}
	if request.ExpiresAt == 0 {
		request.ExpiresAt = now + types.DefaultRequestDurationBlocks
	}

	if request.MaxPricePerRecord < types.MinRecordPrice {
		return 0, types.ErrInvalidAmount
	}
	if request.MinQuality < MinRequestQuality {
		return 0, types.ErrQualityTooLow
	}
	if err := request.Validate(); err != nil {
		return 0, err
	}
	if request.ExpiresAt <= now {
		return 0, types.ErrInvalidData
	}

	// Fund the escrow. This is the sole external effect; on failure no
	// state has been touched.
	if err := e.bank.Transfer(caller, e.cfg.Vault, budget); err != nil {
		return 0, err
	}

	request.ID = e.nextRequestID
	e.nextRequestID++
	e.requests[request.ID] = request

	e.consumerProfile(caller).ActiveRequests++
	return request.ID, nil
}

// CancelRequest moves an active request to cancelled and refunds the
// unspent escrow remainder to the consumer. Only the request's consumer may
// cancel; terminal statuses reject the transition. The refund transfer is
// the commit point: if it fails, the request stays active.
func (e *Exchange) CancelRequest(caller types.AccountID, requestID uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused {
		return types.ErrSystemPaused
	}

	request, ok := e.requests[requestID]
	if !ok {
		return types.ErrNotFound
	}
	if request.Consumer != caller {
		return types.ErrUnauthorized
	}
	if request.Status != types.RequestStatusActive {
		return types.ErrInvalidState
	}

	if remaining := request.Remaining(); remaining > 0 {
		if err := e.bank.Transfer(e.cfg.Vault, caller, remaining); err != nil {
			return err
		}
	}

	if err := request.Cancel(); err != nil {
		return err
	}
	e.consumerProfile(caller).ActiveRequests--
	return nil
}

// cloneCategories copies a category slice, mapping empty to nil.
func cloneCategories(in []types.Category) []types.Category {
	if len(in) == 0 {
		return nil
	}
	out := make([]types.Category, len(in))
	copy(out, in)
	return out
}
