package assignment

import (
	"fmt"

	"pawnops/internal/pkg/errs"
)

// LocationType identifies an endpoint of an assignment route.
type LocationType string

const (
	// LocationBranch is a pawnshop branch, identified by a branch id.
	LocationBranch LocationType = "BRANCH"

	// LocationVault is the central vault. Vault endpoints carry no
	// branch id and no ledger postings.
	LocationVault LocationType = "VAULT"
)

// Validate checks that the location type is known.
func (lt LocationType) Validate() error {
	switch lt {
	case LocationBranch, LocationVault:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("location type",
			fmt.Errorf("%q is not a valid location type", string(lt)))
	}
}

func (lt LocationType) String() string {
	return string(lt)
}
