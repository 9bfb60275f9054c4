package engine

import (
	"sort"

	"github.com/helixgrid/medex/pkg/types"
)

// State is the full persisted form of the engine: the five keyed
// collections, the two profile collections, and the scalar counters and
// flags. Slices are sorted for deterministic round trips.
type State struct {
	Records     []types.DataRecord
	Consents    []types.ConsentGrant
	Requests    []types.ResearchRequest
	Assessments []types.QualityAssessment
	UsageLog    []types.UsageLogEntry
	Owners      []types.OwnerProfile
	Consumers   []types.ConsumerProfile

	NextRecordID     uint64
	NextRequestID    uint64
	TotalDistributed types.Money
	PlatformRevenue  types.Money
	Paused           bool
}

// Snapshot returns a deep copy of the engine state, taken as one atomic
// read.
func (e *Exchange) Snapshot() *State {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := &State{
		NextRecordID:     e.nextRecordID,
		NextRequestID:    e.nextRequestID,
		TotalDistributed: e.totalDistributed,
		PlatformRevenue:  e.platformRevenue,
		Paused:           e.paused,
	}

	for _, record := range e.records {
		s.Records = append(s.Records, *record)
	}
	sort.Slice(s.Records, func(i, j int) bool { return s.Records[i].ID < s.Records[j].ID })

	for _, grant := range e.consents {
		s.Consents = append(s.Consents, cloneGrant(grant))
	}
	sort.Slice(s.Consents, func(i, j int) bool {
		a, b := s.Consents[i], s.Consents[j]
		if a.Owner != b.Owner {
			return a.Owner < b.Owner
		}
		return a.Category < b.Category
	})

	for _, request := range e.requests {
		s.Requests = append(s.Requests, cloneRequest(request))
	}
	sort.Slice(s.Requests, func(i, j int) bool { return s.Requests[i].ID < s.Requests[j].ID })

	for _, assessment := range e.assessments {
		s.Assessments = append(s.Assessments, *assessment)
	}
	sort.Slice(s.Assessments, func(i, j int) bool { return s.Assessments[i].RecordID < s.Assessments[j].RecordID })

	for _, entry := range e.usageLog {
		s.UsageLog = append(s.UsageLog, *entry)
	}
	sort.Slice(s.UsageLog, func(i, j int) bool {
		a, b := s.UsageLog[i], s.UsageLog[j]
		if a.RecordID != b.RecordID {
			return a.RecordID < b.RecordID
		}
		return a.RequestID < b.RequestID
	})

	for _, profile := range e.owners {
		s.Owners = append(s.Owners, cloneOwnerProfile(profile))
	}
	sort.Slice(s.Owners, func(i, j int) bool { return s.Owners[i].Owner < s.Owners[j].Owner })

	for _, profile := range e.consumers {
		s.Consumers = append(s.Consumers, *profile)
	}
	sort.Slice(s.Consumers, func(i, j int) bool { return s.Consumers[i].Consumer < s.Consumers[j].Consumer })

	return s
}

// Restore replaces the engine state with a previously snapshotted one.
// Counters fall back to 1 so an empty or legacy state never re-issues id 0.
func (e *Exchange) Restore(s *State) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.records = make(map[uint64]*types.DataRecord, len(s.Records))
	for i := range s.Records {
		record := s.Records[i]
		e.records[record.ID] = &record
	}

	e.consents = make(map[consentKey]*types.ConsentGrant, len(s.Consents))
	for i := range s.Consents {
		grant := cloneGrant(&s.Consents[i])
		e.consents[consentKey{Owner: grant.Owner, Category: grant.Category}] = &grant
	}

	e.requests = make(map[uint64]*types.ResearchRequest, len(s.Requests))
	for i := range s.Requests {
		request := cloneRequest(&s.Requests[i])
		e.requests[request.ID] = &request
	}

	e.assessments = make(map[uint64]*types.QualityAssessment, len(s.Assessments))
	for i := range s.Assessments {
		assessment := s.Assessments[i]
		e.assessments[assessment.RecordID] = &assessment
	}

	e.usageLog = make(map[usageKey]*types.UsageLogEntry, len(s.UsageLog))
	for i := range s.UsageLog {
		entry := s.UsageLog[i]
		e.usageLog[usageKey{RecordID: entry.RecordID, RequestID: entry.RequestID}] = &entry
	}

	e.owners = make(map[types.AccountID]*types.OwnerProfile, len(s.Owners))
	for i := range s.Owners {
		profile := cloneOwnerProfile(&s.Owners[i])
		e.owners[profile.Owner] = &profile
	}

	e.consumers = make(map[types.AccountID]*types.ConsumerProfile, len(s.Consumers))
	for i := range s.Consumers {
		profile := s.Consumers[i]
		e.consumers[profile.Consumer] = &profile
	}

	e.nextRecordID = s.NextRecordID
	if e.nextRecordID == 0 {
		e.nextRecordID = 1
	}
	e.nextRequestID = s.NextRequestID
	if e.nextRequestID == 0 {
		e.nextRequestID = 1
	}
	e.totalDistributed = s.TotalDistributed
	e.platformRevenue = s.PlatformRevenue
	e.paused = s.Paused
}

// cloneGrant deep-copies a grant, including its bounded lists.
func cloneGrant(g *types.ConsentGrant) types.ConsentGrant {
	out := *g
	out.Purposes = cloneStrings(g.Purposes)
	out.GeoRestrictions = cloneStrings(g.GeoRestrictions)
	return out
}

// cloneRequest deep-copies a request, including its category list.
func cloneRequest(r *types.ResearchRequest) types.ResearchRequest {
	out := *r
	out.Categories = cloneCategories(r.Categories)
	return out
}

// cloneOwnerProfile deep-copies an owner profile, including its category
// list.
func cloneOwnerProfile(p *types.OwnerProfile) types.OwnerProfile {
	out := *p
	out.AvailableCategories = cloneCategories(p.AvailableCategories)
	return out
}
