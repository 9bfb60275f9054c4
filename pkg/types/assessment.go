package types

// QualityAssessment is a scored evaluation of one record. At most one
// current assessment exists per record; a new assessment fully replaces the
// prior one and recomputes the record's availability.
type QualityAssessment struct {
	RecordID     uint64    `json:"record_id"`
	Assessor     AccountID `json:"assessor"`
	Completeness uint8     `json:"completeness"` // 0-100
	Accuracy     uint8     `json:"accuracy"`     // 0-100
	Timeliness   uint8     `json:"timeliness"`   // 0-100
	Consistency  uint8     `json:"consistency"`  // 0-100
	FinalScore   uint8     `json:"final_score"`  // floor of the mean of the four sub-scores.
	AssessedAt   uint64    `json:"assessed_at"`
	Notes        string    `json:"notes,omitempty"` // Bounded by MaxLongTextLen.
}

// FinalQualityScore returns the truncated arithmetic mean of the four
// sub-scores.
func FinalQualityScore(completeness, accuracy, timeliness, consistency uint8) uint8 {
	sum := uint16(completeness) + uint16(accuracy) + uint16(timeliness) + uint16(consistency)
	return uint8(sum / 4)
}

// Validate checks sub-score bounds, the derived-score invariant, and the
// notes bound.
func (a *QualityAssessment) Validate() error {
	for _, s := range []uint8{a.Completeness, a.Accuracy, a.Timeliness, a.Consistency} {
		if s > MaxQualityScore {
			return ErrInvalidData
		}
	}
	if a.FinalScore != FinalQualityScore(a.Completeness, a.Accuracy, a.Timeliness, a.Consistency) {
		return ErrInvalidData
	}
	if len(a.Notes) > MaxLongTextLen {
		return ErrInvalidData
	}
	return nil
}
