package engine

import "github.com/helixgrid/medex/pkg/types"

// Purchase settles one record against one request as a single indivisible
// transition. All validations run against committed state in a pinned
// order; the owner payout transfer is the commit point, and every piece of
// bookkeeping after a successful transfer is unconditional.
//
// Validation order: existence, caller authorization, request status and
// expiry, record availability, usage ceiling, quality floor, price cap,
// capacity, repeat-purchase policy, consent liveness. Returns the price
// paid.
func (e *Exchange) Purchase(caller types.AccountID, recordID, requestID uint64) (types.Money, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused {
		return 0, types.ErrSystemPaused
	}

	record, ok := e.records[recordID]
	if !ok {
		return 0, types.ErrNotFound
	}
	request, ok := e.requests[requestID]
	if !ok {
		return 0, types.ErrNotFound
	}

	if request.Consumer != caller {
		return 0, types.ErrUnauthorized
	}

	now := e.clock.Height()
	if !request.Active(now) {
		return 0, types.ErrInvalidState
	}
	if !record.Available {
		return 0, types.ErrInvalidState
	}
	if record.UsageCount >= types.MaxUsagePerRecord {
		return 0, types.ErrInvalidState
	}
	if record.QualityScore < request.MinQuality {
		return 0, types.ErrQualityTooLow
	}
	if record.Price > request.MaxPricePerRecord {
		return 0, types.ErrInvalidAmount
	}
	if request.RecordsPurchased >= request.MaxRecords {
		return 0, types.ErrInsufficientBalance
	}
	if record.Price > request.Remaining() {
		return 0, types.ErrInsufficientBalance
	}

	pair := usageKey{RecordID: recordID, RequestID: requestID}
	if !e.cfg.AllowRepeatPurchase {
		if _, bought := e.usageLog[pair]; bought {
			return 0, types.ErrAlreadyExists
		}
	}

	grant := e.grantFor(record.Owner, record.Category)
	if grant == nil {
		return 0, types.ErrConsentRequired
	}
	if !grant.Live(now) {
		return 0, types.ErrDataExpired
	}

	price := record.Price
	platformFee := price.Fee(types.FeeBips)
	ownerPayment := price - platformFee

	// Commit point. A failed payout aborts the transition with no state
	// change; after success every update below must happen.
	if err := e.bank.Transfer(e.cfg.Vault, record.Owner, ownerPayment); err != nil {
		return 0, err
	}

	e.platformRevenue += platformFee
	e.totalDistributed += ownerPayment

	record.UsageCount++
	record.TotalEarned += ownerPayment

	request.RecordsPurchased++
	request.BudgetSpent += price

	anonymization := types.AnonymizationAnonymized
	if grant.CanReidentify {
		anonymization = types.AnonymizationPseudonymized
	}
	e.usageLog[pair] = &types.UsageLogEntry{
		EntryID:            generateEntryID(),
		RecordID:           recordID,
		RequestID:          requestID,
		Consumer:           caller,
		Owner:              record.Owner,
		PurchasedAt:        now,
		PricePaid:          price,
		UsageType:          types.UsageTypeResearch,
		AnonymizationLevel: anonymization,
	}

	owner := e.ownerProfile(record.Owner)
	owner.TotalEarned += ownerPayment
	owner.LastActivity = now

	consumer := e.consumerProfile(caller)
	consumer.TotalPurchases++
	consumer.TotalSpent += price
	if consumer.Reputation < types.MaxQualityScore {
		consumer.Reputation++
	}

	// A request that just reached capacity completes automatically within
	// the same transition.
	if request.RecordsPurchased == request.MaxRecords {
		if err := request.Complete(); err == nil {
			consumer.ActiveRequests--
			consumer.CompletedStudies++
		}
	}

	return price, nil
}
