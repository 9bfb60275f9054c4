package types

// Usage-type and anonymization-level tags recorded on usage log entries.
const (
	UsageTypeResearch = "research"

	AnonymizationPseudonymized = "pseudonymized"
	AnonymizationAnonymized    = "anonymized"
)

// UsageLogEntry is the audit record of one successful settlement, keyed by
// (record, request). Entries are append-only and never rewritten; their
// existence implies exactly one successful settlement for the pair.
type UsageLogEntry struct {
	EntryID            string    `json:"entry_id"` // UUID v7, generated at settlement.
	RecordID           uint64    `json:"record_id"`
	RequestID          uint64    `json:"request_id"`
	Consumer           AccountID `json:"consumer"`
	Owner              AccountID `json:"owner"`
	PurchasedAt        uint64    `json:"purchased_at"` // Height of the settlement.
	PricePaid          Money     `json:"price_paid"`
	UsageType          string    `json:"usage_type"`
	AnonymizationLevel string    `json:"anonymization_level"`
}
