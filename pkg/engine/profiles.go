package engine

import (
	"sort"

	"github.com/helixgrid/medex/pkg/types"
)

// ownerProfile returns the profile for an owner, creating it on first
// activity. Caller must hold e.mu.
func (e *Exchange) ownerProfile(owner types.AccountID) *types.OwnerProfile {
	profile, ok := e.owners[owner]
	if !ok {
		profile = &types.OwnerProfile{Owner: owner}
		e.owners[owner] = profile
	}
	return profile
}

// consumerProfile returns the profile for a consumer, creating it on first
// activity. Caller must hold e.mu.
func (e *Exchange) consumerProfile(consumer types.AccountID) *types.ConsumerProfile {
	profile, ok := e.consumers[consumer]
	if !ok {
		profile = &types.ConsumerProfile{
			Consumer:   consumer,
			Reputation: types.InitialReputation,
		}
		e.consumers[consumer] = profile
	}
	return profile
}

// refreshOwnerQuality recomputes the owner's running quality rating (mean
// final score over assessed records) and the set of categories with at
// least one available record. Runs inside the assessment transition so the
// cache can never drift from the primary entities. Caller must hold e.mu.
func (e *Exchange) refreshOwnerQuality(owner types.AccountID) {
	var sum, count uint64
	available := make(map[types.Category]bool)

	for _, record := range e.records {
		if record.Owner != owner {
			continue
		}
		if _, assessed := e.assessments[record.ID]; assessed {
			sum += uint64(record.QualityScore)
			count++
		}
		if record.Available {
			available[record.Category] = true
		}
	}

	profile := e.ownerProfile(owner)
	if count == 0 {
		profile.QualityRating = 0
	} else {
		profile.QualityRating = uint8(sum / count)
	}

	categories := make([]types.Category, 0, len(available))
	for c := range available {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	if len(categories) == 0 {
		categories = nil
	}
	profile.AvailableCategories = categories
}
