package engine

import (
	"sort"

	"github.com/helixgrid/medex/pkg/types"
)

// The read surface is side-effect-free and returns (value, false) rather
// than an error when an entity is absent. Returned values are copies;
// mutating them never touches engine state.

// Record returns the record with the given id.
func (e *Exchange) Record(id uint64) (types.DataRecord, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	record, ok := e.records[id]
	if !ok {
		return types.DataRecord{}, false
	}
	return *record, true
}

// Request returns the research request with the given id.
func (e *Exchange) Request(id uint64) (types.ResearchRequest, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	request, ok := e.requests[id]
	if !ok {
		return types.ResearchRequest{}, false
	}
	return cloneRequest(request), true
}

// Grant returns the consent grant for an owner/category pair, revoked or
// not. Liveness is a property of the grant at a height, not of its
// presence.
func (e *Exchange) Grant(owner types.AccountID, category types.Category) (types.ConsentGrant, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	grant, ok := e.consents[consentKey{Owner: owner, Category: category}]
	if !ok {
		return types.ConsentGrant{}, false
	}
	return cloneGrant(grant), true
}

// ConsentLive reports whether a live grant exists for the pair at the
// engine's current height.
func (e *Exchange) ConsentLive(owner types.AccountID, category types.Category) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grantFor(owner, category).Live(e.clock.Height())
}

// Assessment returns the current quality assessment for a record.
func (e *Exchange) Assessment(recordID uint64) (types.QualityAssessment, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	assessment, ok := e.assessments[recordID]
	if !ok {
		return types.QualityAssessment{}, false
	}
	return *assessment, true
}

// UsageEntry returns the audit entry for a settled (record, request) pair.
func (e *Exchange) UsageEntry(recordID, requestID uint64) (types.UsageLogEntry, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	entry, ok := e.usageLog[usageKey{RecordID: recordID, RequestID: requestID}]
	if !ok {
		return types.UsageLogEntry{}, false
	}
	return *entry, true
}

// OwnerProfile returns the aggregate profile for an owner.
func (e *Exchange) OwnerProfile(owner types.AccountID) (types.OwnerProfile, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	profile, ok := e.owners[owner]
	if !ok {
		return types.OwnerProfile{}, false
	}
	return cloneOwnerProfile(profile), true
}

// ConsumerProfile returns the aggregate profile for a consumer.
func (e *Exchange) ConsumerProfile(consumer types.AccountID) (types.ConsumerProfile, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	profile, ok := e.consumers[consumer]
	if !ok {
		return types.ConsumerProfile{}, false
	}
	return *profile, true
}

// RecordsByCategory returns all records in a category, sorted by id.
func (e *Exchange) RecordsByCategory(category types.Category) []types.DataRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []types.DataRecord
	for _, record := range e.records {
		if record.Category == category {
			out = append(out, *record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GrantsByOwner returns all of an owner's grants, live or not, sorted by
// category.
func (e *Exchange) GrantsByOwner(owner types.AccountID) []types.ConsentGrant {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []types.ConsentGrant
	for key, grant := range e.consents {
		if key.Owner == owner {
			out = append(out, cloneGrant(grant))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// RequestsByConsumer returns all of a consumer's requests, sorted by id.
func (e *Exchange) RequestsByConsumer(consumer types.AccountID) []types.ResearchRequest {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []types.ResearchRequest
	for _, request := range e.requests {
		if request.Consumer == consumer {
			out = append(out, cloneRequest(request))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Stats is a snapshot of the platform-wide aggregates.
type Stats struct {
	Records          int         `json:"records"`
	Requests         int         `json:"requests"`
	TotalDistributed types.Money `json:"total_distributed"`
	PlatformRevenue  types.Money `json:"platform_revenue"`
	Paused           bool        `json:"paused"`
}

// Stats returns the platform-wide aggregate counters.
func (e *Exchange) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Stats{
		Records:          len(e.records),
		Requests:         len(e.requests),
		TotalDistributed: e.totalDistributed,
		PlatformRevenue:  e.platformRevenue,
		Paused:           e.paused,
	}
}

// EstimateEarnings projects an owner's net proceeds for a hypothetical
// record: the category base price scaled by quality, times the usage count,
// minus the platform fee. Pure function over the base-price table.
func EstimateEarnings(category types.Category, quality uint8, usage uint32) (types.Money, error) {
	if !category.Valid() {
		return 0, types.ErrInvalidCategory
	}
	if quality > types.MaxQualityScore {
		return 0, types.ErrInvalidData
	}
	perSale := category.BasePrice().Mul(uint64(quality)).Div(100)
	gross := perSale.Mul(uint64(usage))
	return gross - gross.Fee(types.FeeBips), nil
}
