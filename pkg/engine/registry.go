package engine

import "github.com/helixgrid/medex/pkg/types"

// Register lists a new asset for the caller. The caller must hold a live
// consent grant for the category at the current height; the record starts
// unassessed (quality 0) and unavailable. Returns the allocated record id.
func (e *Exchange) Register(caller types.AccountID, category types.Category, fingerprint string, price types.Money, metadata string) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused {
		return 0, types.ErrSystemPaused
	}

	now := e.clock.Height()
	record := &types.DataRecord{
		Owner:       caller,
		Category:    category,
		Fingerprint: fingerprint,
		Price:       price,
		CreatedAt:   now,
		Metadata:    metadata,
	}
	if err := record.Validate(); err != nil {
		return 0, err
	}

	grant := e.grantFor(caller, category)
	if !grant.Live(now) {
		return 0, types.ErrConsentRequired
	}
	record.ConsentExpires = grant.ExpiresAt

	record.ID = e.nextRecordID
	e.nextRecordID++
	e.records[record.ID] = record

	profile := e.ownerProfile(caller)
	profile.RecordsListed++
	profile.LastActivity = now
	return record.ID, nil
}

// Assess scores a record on the four quality dimensions and replaces any
// prior assessment. The final score is the truncated mean of the four
// sub-scores; availability flips to true exactly when it reaches
// QualityThreshold. This is the only path by which availability can become
// true. Restricted by the capability policy.
func (e *Exchange) Assess(caller types.AccountID, recordID uint64, completeness, accuracy, timeliness, consistency uint8, notes string) (uint8, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused {
		return 0, types.ErrSystemPaused
	}
	if !e.policy.Allows(caller, CapAssess) {
		return 0, types.ErrUnauthorized
	}

	record, ok := e.records[recordID]
	if !ok {
		return 0, types.ErrNotFound
	}

	now := e.clock.Height()
	assessment := &types.QualityAssessment{
		RecordID:     recordID,
		Assessor:     caller,
		Completeness: completeness,
		Accuracy:     accuracy,
		Timeliness:   timeliness,
		Consistency:  consistency,
		FinalScore:   types.FinalQualityScore(completeness, accuracy, timeliness, consistency),
		AssessedAt:   now,
		Notes:        notes,
	}
	if err := assessment.Validate(); err != nil {
		return 0, err
	}

	e.assessments[recordID] = assessment
	record.QualityScore = assessment.FinalScore
	record.Available = assessment.FinalScore >= types.QualityThreshold

	e.refreshOwnerQuality(record.Owner)
	e.ownerProfile(record.Owner).LastActivity = now
	return assessment.FinalScore, nil
}
