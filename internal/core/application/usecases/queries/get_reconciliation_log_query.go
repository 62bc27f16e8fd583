package queries

import (
	"errors"
	"time"

	"pawnops/internal/pkg/guard"
)

var ErrGetReconciliationLogQueryIsNotConstructed = errors.New(
	"GetReconciliationLogQuery must be created via NewGetReconciliationLogQuery constructor",
)

// GetReconciliationLogQuery retrieves recorded settlement failures for the
// operator follow-up view.
type GetReconciliationLogQuery struct {
	unresolvedOnly bool

	guard guard.ConstructorGuard
}

// NewGetReconciliationLogQuery creates a reconciliation log query,
// optionally restricted to records still awaiting follow-up.
func NewGetReconciliationLogQuery(unresolvedOnly bool) GetReconciliationLogQuery {
	return GetReconciliationLogQuery{
		unresolvedOnly: unresolvedOnly,
		guard:          guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetReconciliationLogQuery) Validate() error {
	return q.guard.Validate(ErrGetReconciliationLogQueryIsNotConstructed)
}

// UnresolvedOnly reports whether resolved records are filtered out.
func (q GetReconciliationLogQuery) UnresolvedOnly() bool {
	return q.unresolvedOnly
}

// GetReconciliationLogQueryResponse is one recorded settlement failure in
// the read model.
type GetReconciliationLogQueryResponse struct {
	ID           int64
	AssignmentID string
	Step         string
	Detail       string
	Resolved     bool
	CreatedAt    time.Time
}
