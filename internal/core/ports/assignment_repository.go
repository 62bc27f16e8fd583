package ports

import (
	"context"
	"time"

	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for delivery
// assignment aggregates.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate to storage.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment aggregate.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// UpdateIfStatus persists the aggregate only while the stored row is
	// still in the expected status. Returns ErrObjectNotFound when the
	// row has moved on, which makes lifecycle transitions idempotent
	// under concurrent requests.
	UpdateIfStatus(ctx context.Context, aggregate *assignment.Assignment, expected assignment.Status) error

	// Get retrieves an assignment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetAllOverdue retrieves the active assignments whose due date has
	// passed as of the given instant.
	GetAllOverdue(ctx context.Context, asOf time.Time) ([]*assignment.Assignment, error)
}
