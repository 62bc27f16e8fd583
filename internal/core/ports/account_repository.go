package ports

import (
	"context"

	"pawnops/internal/core/domain/model/principal"
)

// DriverLogisticsStatus values mirrored onto driver accounts so branch
// staff can see at a glance who is out on a run.
const (
	DriverStatusAssigned = "ASSIGNED"
	DriverStatusStandby  = "STANDBY"
)

// AccountRepository is the settlement service's view of user accounts.
// Account management belongs to an external collaborator; settlement only
// reads the assigner's role and mirrors assignment activity onto the
// driver's logistics status field.
type AccountRepository interface {
	// GetRole reads the account's role, normalized. Returns
	// ErrObjectNotFound when the account does not exist.
	GetRole(ctx context.Context, accountID int64) (principal.Role, error)

	// SetDriverLogisticsStatus writes the driver's logistics status. The
	// column written is selected by the assigner's role; each role owns
	// its own status field so parallel workflows do not clobber each
	// other. Best-effort, last write wins.
	SetDriverLogisticsStatus(ctx context.Context, driverID int64, assignerRole principal.Role, status string) error
}
