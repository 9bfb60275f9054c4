package types

// DataRecord represents one listed asset. The record references the
// off-engine data by content fingerprint only and is never deleted;
// revocation and expiry are modeled by consent state.
type DataRecord struct {
	ID             uint64    `json:"record_id"`       // Monotonic, allocated by the engine, never reused.
	Owner          AccountID `json:"owner"`           // Listing owner (patient).
	Category       Category  `json:"category"`        // One of the fixed category enum.
	Fingerprint    string    `json:"fingerprint"`     // Hex-encoded content digest; never the raw data.
	Price          Money     `json:"price"`           // Listing price, >= MinRecordPrice.
	Available      bool      `json:"available"`       // True only while QualityScore >= QualityThreshold.
	QualityScore   uint8     `json:"quality_score"`   // Final score of the current assessment; 0 until assessed.
	CreatedAt      uint64    `json:"created_at"`      // Height at registration.
	ConsentExpires uint64    `json:"consent_expires"` // Denormalized copy of the grant expiry at registration.
	UsageCount     uint32    `json:"usage_count"`     // Successful purchases; monotonic non-decreasing.
	TotalEarned    Money     `json:"total_earned"`    // Cumulative owner payments for this record.
	Metadata       string    `json:"metadata"`        // Free-form, bounded by MaxLongTextLen.
}

// Validate checks the structural invariants that hold independent of
// consent and height: category membership, price floor, fingerprint shape,
// and metadata bounds.
func (r *DataRecord) Validate() error {
	if !r.Category.Valid() {
		return ErrInvalidCategory
	}
	if r.Price < MinRecordPrice {
		return ErrInvalidAmount
	}
	if len(r.Fingerprint) != FingerprintLength {
		return ErrInvalidData
	}
	if len(r.Metadata) > MaxLongTextLen {
		return ErrInvalidData
	}
	return nil
}
