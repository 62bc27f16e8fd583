// Package principal defines the authenticated caller identity consumed by
// the core. Authentication itself is an external collaborator; the core
// only sees an opaque account id plus a role.
package principal

import (
	"errors"
	"strings"

	"pawnops/internal/pkg/errs"
	"pawnops/internal/pkg/guard"
)

// Role classifies what a principal may do. Roles arrive as free-form
// strings from the auth collaborator and are normalized on construction.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleAuditor          Role = "auditor"
	RoleAccountExecutive Role = "accountexecutive"
	RoleLogistics        Role = "logistics"
)

// ErrPrincipalIsNotConstructed is returned when a Principal was not created
// through NewPrincipal.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// ErrRoleIsUnknown is returned for role strings that normalize to nothing recognizable.
var ErrRoleIsUnknown = errs.NewValueIsInvalidError("role")

// NormalizeRole lowercases a raw role string and strips spaces and
// underscores, mapping the legacy "ae" shorthand to the account executive
// role. Returns ErrRoleIsUnknown for anything unrecognized.
func NormalizeRole(raw string) (Role, error) {
	normalized := strings.NewReplacer(" ", "", "_", "").Replace(strings.ToLower(raw))
	switch normalized {
	case "admin":
		return RoleAdmin, nil
	case "auditor":
		return RoleAuditor, nil
	case "accountexecutive", "ae":
		return RoleAccountExecutive, nil
	case "logistics":
		return RoleLogistics, nil
	default:
		return "", ErrRoleIsUnknown
	}
}

// String returns the normalized role name.
func (r Role) String() string {
	return string(r)
}

// Principal is the authenticated caller: an account id and a role.
type Principal struct { //nolint:recvcheck //using for validation
	id    int64
	role  Role
	guard guard.ConstructorGuard
}

// NewPrincipal creates a Principal from an account id and a raw role
// string. The id must be positive and the role must normalize to a known
// value.
func NewPrincipal(id int64, rawRole string) (Principal, error) {
	if id <= 0 {
		return Principal{}, errs.NewValueIsRequiredError("principal id")
	}

	role, err := NormalizeRole(rawRole)
	if err != nil {
		return Principal{}, err
	}

	return Principal{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the principal was created through NewPrincipal.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// ID returns the principal's account id.
func (p Principal) ID() int64 {
	return p.id
}

// Role returns the principal's normalized role.
func (p Principal) Role() Role {
	return p.role
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.role == RoleAdmin
}

// IsAuditor reports whether the principal holds the auditor role.
func (p Principal) IsAuditor() bool {
	return p.role == RoleAuditor
}
