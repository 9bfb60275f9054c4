package engine

import (
	"sync"

	"github.com/google/uuid"

	"github.com/helixgrid/medex/pkg/ledger"
	"github.com/helixgrid/medex/pkg/types"
)

// consentKey identifies the single live grant slot for an owner/category
// pair.
type consentKey struct {
	Owner    types.AccountID
	Category types.Category
}

// usageKey identifies the audit entry for one settled (record, request)
// pair.
type usageKey struct {
	RecordID  uint64
	RequestID uint64
}

// Exchange is the settlement engine. All collections, profile caches, and
// global counters live behind one mutex; each public operation locks it for
// the full transition, so no partial mutation is ever observable.
type Exchange struct {
	mu     sync.Mutex
	cfg    types.Config
	clock  types.Clock
	bank   ledger.Ledger
	policy Policy

	records     map[uint64]*types.DataRecord
	consents    map[consentKey]*types.ConsentGrant
	requests    map[uint64]*types.ResearchRequest
	assessments map[uint64]*types.QualityAssessment
	usageLog    map[usageKey]*types.UsageLogEntry
	owners      map[types.AccountID]*types.OwnerProfile
	consumers   map[types.AccountID]*types.ConsumerProfile

	nextRecordID     uint64
	nextRequestID    uint64
	totalDistributed types.Money
	platformRevenue  types.Money
	paused           bool
}

// New creates an engine with empty state. The first allocated record and
// request ids are 1; ids are never reused. When policy is nil a single
// OperatorPolicy for cfg.Operator is installed.
func New(cfg types.Config, clock types.Clock, bank ledger.Ledger, policy Policy) *Exchange {
	if cfg.Vault == "" {
		cfg.Vault = types.DefaultVault
	}
	if policy == nil {
		policy = OperatorPolicy{Operator: cfg.Operator}
	}
	return &Exchange{
		cfg:    cfg,
		clock:  clock,
		bank:   bank,
		policy: policy,

		records:     make(map[uint64]*types.DataRecord),
		consents:    make(map[consentKey]*types.ConsentGrant),
		requests:    make(map[uint64]*types.ResearchRequest),
		assessments: make(map[uint64]*types.QualityAssessment),
		usageLog:    make(map[usageKey]*types.UsageLogEntry),
		owners:      make(map[types.AccountID]*types.OwnerProfile),
		consumers:   make(map[types.AccountID]*types.ConsumerProfile),

		nextRecordID:  1,
		nextRequestID: 1,
	}
}

// generateEntryID returns a UUID v7 for usage log entries, falling back to
// UUID v4 if v7 generation fails.
func generateEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
