// Snapshot persistence: the whole engine state is written and read as one
// transaction, so a crash between CLI invocations can never leave a
// half-updated store.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/helixgrid/medex/pkg/engine"
	"github.com/helixgrid/medex/pkg/types"
)

// SaveState replaces the persisted engine state with the given snapshot.
// The stored chain height is preserved.
func (b *Backend) SaveState(s *engine.State) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return ErrDetached
	}

	tx, err := b.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"records", "consents", "requests", "assessments", "usage_log", "owner_profiles", "consumer_profiles"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, r := range s.Records {
		_, err := tx.Exec(`INSERT INTO records (record_id, owner, category, fingerprint, price, available,
			quality_score, created_at, consent_expires, usage_count, total_earned, metadata)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, string(r.Owner), string(r.Category), r.Fingerprint, int64(r.Price), boolInt(r.Available),
			r.QualityScore, r.CreatedAt, r.ConsentExpires, r.UsageCount, int64(r.TotalEarned), r.Metadata)
		if err != nil {
			return fmt.Errorf("saving record %d: %w", r.ID, err)
		}
	}

	for _, g := range s.Consents {
		purposes, err := encodeStrings(g.Purposes)
		if err != nil {
			return err
		}
		geo, err := encodeStrings(g.GeoRestrictions)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`INSERT INTO consents (owner, category, granted, granted_at, expires_at,
			purposes, geo_restrictions, can_reidentify)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			string(g.Owner), string(g.Category), boolInt(g.Granted), g.GrantedAt, g.ExpiresAt,
			purposes, geo, boolInt(g.CanReidentify))
		if err != nil {
			return fmt.Errorf("saving consent %s/%s: %w", g.Owner, g.Category, err)
		}
	}

	for _, r := range s.Requests {
		categories, err := encodeCategories(r.Categories)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`INSERT INTO requests (request_id, consumer, title, description, purpose,
			institution, approval_ref, categories, max_price, min_quality, max_records,
			created_at, expires_at, status, budget_allocated, budget_spent, records_purchased)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, string(r.Consumer), r.Title, r.Description, r.Purpose,
			r.Institution, r.ApprovalRef, categories, int64(r.MaxPricePerRecord), r.MinQuality, r.MaxRecords,
			r.CreatedAt, r.ExpiresAt, r.Status, int64(r.BudgetAllocated), int64(r.BudgetSpent), r.RecordsPurchased)
		if err != nil {
			return fmt.Errorf("saving request %d: %w", r.ID, err)
		}
	}

	for _, a := range s.Assessments {
		_, err := tx.Exec(`INSERT INTO assessments (record_id, assessor, completeness, accuracy,
			timeliness, consistency, final_score, assessed_at, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.RecordID, string(a.Assessor), a.Completeness, a.Accuracy,
			a.Timeliness, a.Consistency, a.FinalScore, a.AssessedAt, a.Notes)
		if err != nil {
			return fmt.Errorf("saving assessment %d: %w", a.RecordID, err)
		}
	}

	for _, u := range s.UsageLog {
		_, err := tx.Exec(`INSERT INTO usage_log (entry_id, record_id, request_id, consumer, owner,
			purchased_at, price_paid, usage_type, anonymization_level)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			u.EntryID, u.RecordID, u.RequestID, string(u.Consumer), string(u.Owner),
			u.PurchasedAt, int64(u.PricePaid), u.UsageType, u.AnonymizationLevel)
		if err != nil {
			return fmt.Errorf("saving usage entry %d/%d: %w", u.RecordID, u.RequestID, err)
		}
	}

	for _, p := range s.Owners {
		categories, err := encodeCategories(p.AvailableCategories)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`INSERT INTO owner_profiles (owner, records_listed, total_earned,
			quality_rating, available_categories, verified, last_activity)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			string(p.Owner), p.RecordsListed, int64(p.TotalEarned),
			p.QualityRating, categories, boolInt(p.Verified), p.LastActivity)
		if err != nil {
			return fmt.Errorf("saving owner profile %s: %w", p.Owner, err)
		}
	}

	for _, p := range s.Consumers {
		_, err := tx.Exec(`INSERT INTO consumer_profiles (consumer, total_purchases, total_spent,
			reputation, verified, active_requests, completed_studies)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			string(p.Consumer), p.TotalPurchases, int64(p.TotalSpent),
			p.Reputation, boolInt(p.Verified), p.ActiveRequests, p.CompletedStudies)
		if err != nil {
			return fmt.Errorf("saving consumer profile %s: %w", p.Consumer, err)
		}
	}

	_, err = tx.Exec(`INSERT INTO platform (id, next_record_id, next_request_id, total_distributed,
		platform_revenue, paused, height)
		VALUES (1, ?, ?, ?, ?, ?, 0)
		ON CONFLICT (id) DO UPDATE SET
			next_record_id = excluded.next_record_id,
			next_request_id = excluded.next_request_id,
			total_distributed = excluded.total_distributed,
			platform_revenue = excluded.platform_revenue,
			paused = excluded.paused`,
		s.NextRecordID, s.NextRequestID, int64(s.TotalDistributed),
		int64(s.PlatformRevenue), boolInt(s.Paused))
	if err != nil {
		return fmt.Errorf("saving platform counters: %w", err)
	}

	return tx.Commit()
}

// LoadState reads the persisted engine state. An empty store loads as an
// empty snapshot with counters at 1.
func (b *Backend) LoadState() (*engine.State, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, ErrDetached
	}

	s := &engine.State{NextRecordID: 1, NextRequestID: 1}

	rows, err := b.db.Query(`SELECT record_id, owner, category, fingerprint, price, available,
		quality_score, created_at, consent_expires, usage_count, total_earned, metadata
		FROM records ORDER BY record_id`)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	for rows.Next() {
		var r types.DataRecord
		var owner, category string
		var price, earned int64
		var available int
		if err := rows.Scan(&r.ID, &owner, &category, &r.Fingerprint, &price, &available,
			&r.QualityScore, &r.CreatedAt, &r.ConsentExpires, &r.UsageCount, &earned, &r.Metadata); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		r.Owner = types.AccountID(owner)
		r.Category = types.Category(category)
		r.Price = types.Money(price)
		r.Available = available != 0
		r.TotalEarned = types.Money(earned)
		s.Records = append(s.Records, r)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = b.db.Query(`SELECT owner, category, granted, granted_at, expires_at,
		purposes, geo_restrictions, can_reidentify
		FROM consents ORDER BY owner, category`)
	if err != nil {
		return nil, fmt.Errorf("loading consents: %w", err)
	}
	for rows.Next() {
		var g types.ConsentGrant
		var owner, category string
		var purposes, geo sql.NullString
		var granted, reidentify int
		if err := rows.Scan(&owner, &category, &granted, &g.GrantedAt, &g.ExpiresAt,
			&purposes, &geo, &reidentify); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning consent: %w", err)
		}
		g.Owner = types.AccountID(owner)
		g.Category = types.Category(category)
		g.Granted = granted != 0
		g.CanReidentify = reidentify != 0
		if g.Purposes, err = decodeStrings(purposes); err != nil {
			rows.Close()
			return nil, err
		}
		if g.GeoRestrictions, err = decodeStrings(geo); err != nil {
			rows.Close()
			return nil, err
		}
		s.Consents = append(s.Consents, g)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = b.db.Query(`SELECT request_id, consumer, title, description, purpose,
		institution, approval_ref, categories, max_price, min_quality, max_records,
		created_at, expires_at, status, budget_allocated, budget_spent, records_purchased
		FROM requests ORDER BY request_id`)
	if err != nil {
		return nil, fmt.Errorf("loading requests: %w", err)
	}
	for rows.Next() {
		var r types.ResearchRequest
		var consumer, categories string
		var maxPrice, allocated, spent int64
		if err := rows.Scan(&r.ID, &consumer, &r.Title, &r.Description, &r.Purpose,
			&r.Institution, &r.ApprovalRef, &categories, &maxPrice, &r.MinQuality, &r.MaxRecords,
			&r.CreatedAt, &r.ExpiresAt, &r.Status, &allocated, &spent, &r.RecordsPurchased); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning request: %w", err)
		}
		r.Consumer = types.AccountID(consumer)
		r.MaxPricePerRecord = types.Money(maxPrice)
		r.BudgetAllocated = types.Money(allocated)
		r.BudgetSpent = types.Money(spent)
		if r.Categories, err = decodeCategories(categories); err != nil {
			rows.Close()
			return nil, err
		}
		s.Requests = append(s.Requests, r)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = b.db.Query(`SELECT record_id, assessor, completeness, accuracy,
		timeliness, consistency, final_score, assessed_at, notes
		FROM assessments ORDER BY record_id`)
	if err != nil {
		return nil, fmt.Errorf("loading assessments: %w", err)
	}
	for rows.Next() {
		var a types.QualityAssessment
		var assessor string
		if err := rows.Scan(&a.RecordID, &assessor, &a.Completeness, &a.Accuracy,
			&a.Timeliness, &a.Consistency, &a.FinalScore, &a.AssessedAt, &a.Notes); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning assessment: %w", err)
		}
		a.Assessor = types.AccountID(assessor)
		s.Assessments = append(s.Assessments, a)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = b.db.Query(`SELECT entry_id, record_id, request_id, consumer, owner,
		purchased_at, price_paid, usage_type, anonymization_level
		FROM usage_log ORDER BY record_id, request_id`)
	if err != nil {
		return nil, fmt.Errorf("loading usage log: %w", err)
	}
	for rows.Next() {
		var u types.UsageLogEntry
		var consumer, owner string
		var price int64
		if err := rows.Scan(&u.EntryID, &u.RecordID, &u.RequestID, &consumer, &owner,
			&u.PurchasedAt, &price, &u.UsageType, &u.AnonymizationLevel); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning usage entry: %w", err)
		}
		u.Consumer = types.AccountID(consumer)
		u.Owner = types.AccountID(owner)
		u.PricePaid = types.Money(price)
		s.UsageLog = append(s.UsageLog, u)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = b.db.Query(`SELECT owner, records_listed, total_earned, quality_rating,
		available_categories, verified, last_activity
		FROM owner_profiles ORDER BY owner`)
	if err != nil {
		return nil, fmt.Errorf("loading owner profiles: %w", err)
	}
	for rows.Next() {
		var p types.OwnerProfile
		var owner string
		var categories sql.NullString
		var earned int64
		var verified int
		if err := rows.Scan(&owner, &p.RecordsListed, &earned, &p.QualityRating,
			&categories, &verified, &p.LastActivity); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning owner profile: %w", err)
		}
		p.Owner = types.AccountID(owner)
		p.TotalEarned = types.Money(earned)
		p.Verified = verified != 0
		if categories.Valid {
			if p.AvailableCategories, err = decodeCategories(categories.String); err != nil {
				rows.Close()
				return nil, err
			}
		}
		s.Owners = append(s.Owners, p)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = b.db.Query(`SELECT consumer, total_purchases, total_spent, reputation,
		verified, active_requests, completed_studies
		FROM consumer_profiles ORDER BY consumer`)
	if err != nil {
		return nil, fmt.Errorf("loading consumer profiles: %w", err)
	}
	for rows.Next() {
		var p types.ConsumerProfile
		var consumer string
		var spent int64
		var verified int
		if err := rows.Scan(&consumer, &p.TotalPurchases, &spent, &p.Reputation,
			&verified, &p.ActiveRequests, &p.CompletedStudies); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning consumer profile: %w", err)
		}
		p.Consumer = types.AccountID(consumer)
		p.TotalSpent = types.Money(spent)
		p.Verified = verified != 0
		s.Consumers = append(s.Consumers, p)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	var distributed, revenue int64
	var paused int
	err = b.db.QueryRow(`SELECT next_record_id, next_request_id, total_distributed,
		platform_revenue, paused FROM platform WHERE id = 1`).Scan(
		&s.NextRecordID, &s.NextRequestID, &distributed, &revenue, &paused)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("loading platform counters: %w", err)
	}
	if err == nil {
		s.TotalDistributed = types.Money(distributed)
		s.PlatformRevenue = types.Money(revenue)
		s.Paused = paused != 0
	}

	return s, nil
}

// boolInt maps a bool to its stored integer form.
func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// closeRows closes rows and surfaces any deferred iteration error.
func closeRows(rows *sql.Rows) error {
	err := rows.Err()
	if cerr := rows.Close(); err == nil {
		err = cerr
	}
	return err
}

// encodeStrings stores a bounded string list as JSON; nil stays NULL.
func encodeStrings(in []string) (any, error) {
	if len(in) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encoding list: %w", err)
	}
	return string(data), nil
}

// decodeStrings reverses encodeStrings.
func decodeStrings(in sql.NullString) ([]string, error) {
	if !in.Valid || in.String == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(in.String), &out); err != nil {
		return nil, fmt.Errorf("decoding list: %w", err)
	}
	return out, nil
}

// encodeCategories stores a category list as JSON; nil stays NULL.
func encodeCategories(in []types.Category) (any, error) {
	if len(in) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encoding categories: %w", err)
	}
	return string(data), nil
}

// decodeCategories reverses encodeCategories.
func decodeCategories(in string) ([]types.Category, error) {
	if in == "" {
		return nil, nil
	}
	var out []types.Category
	if err := json.Unmarshal([]byte(in), &out); err != nil {
		return nil, fmt.Errorf("decoding categories: %w", err)
	}
	return out, nil
}
