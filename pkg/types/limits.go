package types

// Platform constants. Heights are block heights supplied by the Clock;
// durations are block counts.
const (
	// MinRecordPrice is the minimum listing price and the minimum
	// max-price-per-record on a research request.
	MinRecordPrice Money = 1_000_000

	// QualityThreshold is the final score at or above which an assessed
	// record becomes available for purchase.
	QualityThreshold uint8 = 60

	// MaxQualityScore bounds each assessment sub-score and every derived
	// score.
	MaxQualityScore uint8 = 100

	// FeeBips is the platform fee in basis points taken from every
	// settlement.
	FeeBips uint64 = 2000

	// MaxUsagePerRecord is the per-record purchase ceiling.
	MaxUsagePerRecord uint32 = 10

	// ConsentDurationBlocks is the validity window of a consent grant,
	// measured from the height at which it was granted.
	ConsentDurationBlocks uint64 = 1_000_000

	// DefaultRequestDurationBlocks is the request expiry window applied
	// when a consumer does not choose one.
	DefaultRequestDurationBlocks uint64 = 1_000_000

	// FingerprintLength is the required length of a record's content
	// fingerprint (hex-encoded 32-byte digest).
	FingerprintLength = 64
)

// Bounds on free-form fields and lists.
const (
	MaxShortTextLen = 256
	MaxLongTextLen  = 1024
	MaxListLen      = 16
)
