package assignment

import (
	"fmt"

	"pawnops/internal/pkg/errs"
)

// Status is the lifecycle state of an assignment.
//
// State transitions:
//
//	ASSIGNED ──> IN_PROGRESS ──> COMPLETED
//	    │             │
//	    └─────────────┴──> CANCELLED | EXPIRED | FAILED
//
// COMPLETED, CANCELLED, EXPIRED and FAILED are terminal. COMPLETED is
// reachable only through the dropoff verification path.
type Status string

const (
	// StatusAssigned is the initial state after creation.
	StatusAssigned Status = "ASSIGNED"

	// StatusInProgress means the driver verified pickup and is en route.
	StatusInProgress Status = "IN_PROGRESS"

	// StatusCompleted means dropoff was verified. Terminal.
	StatusCompleted Status = "COMPLETED"

	// StatusCancelled means the assignment was called off. Terminal.
	StatusCancelled Status = "CANCELLED"

	// StatusExpired means the due date passed without delivery. Terminal.
	StatusExpired Status = "EXPIRED"

	// StatusFailed means delivery could not be carried out. Terminal.
	StatusFailed Status = "FAILED"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusAssigned:   {},
		StatusInProgress: {},
		StatusCompleted:  {},
		StatusCancelled:  {},
		StatusExpired:    {},
		StatusFailed:     {},
	}
}

// Validate checks that the status is one of the known states.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid assignment status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusExpired, StatusFailed:
		return true
	default:
		return false
	}
}

// IsActive reports whether the assignment still occupies its driver.
func (s Status) IsActive() bool {
	return s == StatusAssigned || s == StatusInProgress
}

// VerifyPickup transitions ASSIGNED to IN_PROGRESS.
func (s Status) VerifyPickup() (Status, error) {
	if s != StatusAssigned {
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to verify pickup", s))
	}
	return StatusInProgress, nil
}

// VerifyDropoff transitions IN_PROGRESS to COMPLETED. This is the only
// path into COMPLETED.
func (s Status) VerifyDropoff() (Status, error) {
	if s != StatusInProgress {
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to verify dropoff", s))
	}
	return StatusCompleted, nil
}

// ValidateOverrideTo checks the generic override transition. Overrides
// never leave a terminal state and never produce COMPLETED, which is
// reserved for the dropoff verification path.
func (s Status) ValidateOverrideTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == StatusCompleted {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s can only be reached by verifying dropoff", StatusCompleted))
	}
	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is terminal and cannot be overridden", s))
	}
	return nil
}
