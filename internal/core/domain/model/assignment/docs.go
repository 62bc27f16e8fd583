// Package assignment contains the DeliveryAssignment aggregate and its
// supporting value objects.
//
// An assignment moves items, capital, or both between branches (or a
// central vault) and is carried out by a driver. The aggregate owns the
// lifecycle state machine; capital and inventory consequences of that
// lifecycle are coordinated outside the aggregate by the settlement
// service.
//
// Lifecycle:
//
//	ASSIGNED ──> IN_PROGRESS ──> COMPLETED
//	    │             │
//	    └──┬──────────┘
//	       v
//	CANCELLED / EXPIRED / FAILED
//
// COMPLETED is only reachable through VerifyDropoff so that settlement
// always runs on that edge. The generic status override can move an
// assignment between active and terminal states but never to COMPLETED.
package assignment
