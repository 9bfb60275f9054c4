package types

// InitialReputation is the reputation score assigned to a consumer profile
// on first activity. Purchases nudge it upward, capped at MaxQualityScore.
const InitialReputation uint8 = 50

// OwnerProfile is a denormalized summary of one owner's marketplace
// activity. Profiles are convenience caches: every field is reconstructible
// by replaying the primary entities, and they mutate only inside the same
// transition as the authoritative write.
type OwnerProfile struct {
	Owner               AccountID  `json:"owner"`
	RecordsListed       uint32     `json:"records_listed"`
	TotalEarned         Money      `json:"total_earned"`
	QualityRating       uint8      `json:"quality_rating"` // Mean final score across the owner's assessed records.
	AvailableCategories []Category `json:"available_categories,omitempty"`
	Verified            bool       `json:"verified"`
	LastActivity        uint64     `json:"last_activity"`
}

// ConsumerProfile is the consumer-side counterpart of OwnerProfile.
type ConsumerProfile struct {
	Consumer         AccountID `json:"consumer"`
	TotalPurchases   uint32    `json:"total_purchases"`
	TotalSpent       Money     `json:"total_spent"`
	Reputation       uint8     `json:"reputation"`
	Verified         bool      `json:"verified"`
	ActiveRequests   uint32    `json:"active_requests"`
	CompletedStudies uint32    `json:"completed_studies"`
}
