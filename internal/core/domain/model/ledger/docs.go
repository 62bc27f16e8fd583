// Package ledger contains the branch capital ledger aggregate: an
// append-only sequence of signed capital movements per branch, each
// carrying the branch's running balance immediately after the movement.
//
// Entries are never mutated or deleted. The current capital of a branch is
// the running balance of its latest entry ordered by (created_at, id), or
// zero when the branch has no entries at all.
//
// The running-balance chain is not enforced by the database; it is a
// write-time responsibility of the settlement coordinator, which serializes
// the read-balance/insert-entry pair per branch.
package ledger
