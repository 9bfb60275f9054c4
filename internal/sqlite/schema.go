// Schema DDL for the medex state store. One table per keyed collection,
// one per profile collection, a singleton platform row for the scalar
// counters and the chain height, and an accounts table for ledger
// balances.
package sqlite

const (
	createRecords = `CREATE TABLE IF NOT EXISTS records (
    record_id INTEGER PRIMARY KEY,
    owner TEXT NOT NULL,
    category TEXT NOT NULL,
    fingerprint TEXT NOT NULL,
    price INTEGER NOT NULL,
    available INTEGER NOT NULL,
    quality_score INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    consent_expires INTEGER NOT NULL,
    usage_count INTEGER NOT NULL,
    total_earned INTEGER NOT NULL,
    metadata TEXT
);`

	createConsents = `CREATE TABLE IF NOT EXISTS consents (
    owner TEXT NOT NULL,
    category TEXT NOT NULL,
    granted INTEGER NOT NULL,
    granted_at INTEGER NOT NULL,
    expires_at INTEGER NOT NULL,
    purposes TEXT,
    geo_restrictions TEXT,
    can_reidentify INTEGER NOT NULL,
    PRIMARY KEY (owner, category)
);`

	createRequests = `CREATE TABLE IF NOT EXISTS requests (
    request_id INTEGER PRIMARY KEY,
    consumer TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT,
    purpose TEXT,
    institution TEXT,
    approval_ref TEXT,
    categories TEXT NOT NULL,
    max_price INTEGER NOT NULL,
    min_quality INTEGER NOT NULL,
    max_records INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    expires_at INTEGER NOT NULL,
    status TEXT NOT NULL,
    budget_allocated INTEGER NOT NULL,
    budget_spent INTEGER NOT NULL,
    records_purchased INTEGER NOT NULL
);`

	createAssessments = `CREATE TABLE IF NOT EXISTS assessments (
    record_id INTEGER PRIMARY KEY,
    assessor TEXT NOT NULL,
    completeness INTEGER NOT NULL,
    accuracy INTEGER NOT NULL,
    timeliness INTEGER NOT NULL,
    consistency INTEGER NOT NULL,
    final_score INTEGER NOT NULL,
    assessed_at INTEGER NOT NULL,
    notes TEXT
);`

	createUsageLog = `CREATE TABLE IF NOT EXISTS usage_log (
    entry_id TEXT NOT NULL,
    record_id INTEGER NOT NULL,
    request_id INTEGER NOT NULL,
    consumer TEXT NOT NULL,
    owner TEXT NOT NULL,
    purchased_at INTEGER NOT NULL,
    price_paid INTEGER NOT NULL,
    usage_type TEXT NOT NULL,
    anonymization_level TEXT NOT NULL,
    PRIMARY KEY (record_id, request_id)
);`

	createOwnerProfiles = `CREATE TABLE IF NOT EXISTS owner_profiles (
    owner TEXT PRIMARY KEY,
    records_listed INTEGER NOT NULL,
    total_earned INTEGER NOT NULL,
    quality_rating INTEGER NOT NULL,
    available_categories TEXT,
    verified INTEGER NOT NULL,
    last_activity INTEGER NOT NULL
);`

	createConsumerProfiles = `CREATE TABLE IF NOT EXISTS consumer_profiles (
    consumer TEXT PRIMARY KEY,
    total_purchases INTEGER NOT NULL,
    total_spent INTEGER NOT NULL,
    reputation INTEGER NOT NULL,
    verified INTEGER NOT NULL,
    active_requests INTEGER NOT NULL,
    completed_studies INTEGER NOT NULL
);`

	createPlatform = `CREATE TABLE IF NOT EXISTS platform (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    next_record_id INTEGER NOT NULL,
    next_request_id INTEGER NOT NULL,
    total_distributed INTEGER NOT NULL,
    platform_revenue INTEGER NOT NULL,
    paused INTEGER NOT NULL,
    height INTEGER NOT NULL
);`

	createAccounts = `CREATE TABLE IF NOT EXISTS accounts (
    account TEXT PRIMARY KEY,
    balance INTEGER NOT NULL
);`
)

// allSchemas lists every DDL statement executed on Attach.
var allSchemas = []string{
	createRecords,
	createConsents,
	createRequests,
	createAssessments,
	createUsageLog,
	createOwnerProfiles,
	createConsumerProfiles,
	createPlatform,
	createAccounts,
}
