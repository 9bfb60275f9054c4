// Package engine implements the medex settlement and access-control engine:
// the record registry, the consent ledger, the request escrow, the
// settlement path that splits payments between owner and platform, the
// denormalized profile aggregates, and global governance.
//
// Every public operation executes as one atomic, serializable transition
// under a single mutex. There is no internal parallelism, no background
// sweep, and no retry: the only external side effect is the ledger
// transfer, attempted only after every pure check has passed.
package engine
