// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - LedgerService: serialized posting of capital ledger entries
//   - SettlementService: capital, inventory and driver-status consequences
//     of the assignment lifecycle
//
// Domain services coordinate between aggregates, implementing business
// logic that spans multiple bounded contexts.
package services
