// Package accountrepo provides the settlement-facing slice of user
// accounts: mirroring assignment activity onto the driver's logistics
// status. Account management itself is owned by an external system.
package accountrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pawnops/internal/core/domain/model/principal"
	"pawnops/internal/pkg/errs"

	"gorm.io/gorm"
)

// Each assigner role owns its own status column so parallel workflows do
// not clobber each other. Admins and drivers share the default column.
// The mapping doubles as a column whitelist; role input never reaches SQL
// directly.
var logisticsStatusColumns = map[principal.Role]string{
	principal.RoleAdmin:            "logistics_status",
	principal.RoleLogistics:        "logistics_status",
	principal.RoleAuditor:          "auditor_logistics_status",
	principal.RoleAccountExecutive: "account_executive_logistics_status",
}

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// GetRole reads the account's role, normalized. Legacy rows carry
// free-form role strings; anything that does not normalize falls back to
// the default-column owner so a status column still gets reset.
func (r *GormAccountRepository) GetRole(ctx context.Context, accountID int64) (principal.Role, error) {
	var raw string
	err := r.db.WithContext(ctx).Table("accounts").
		Select("role").
		Where("id = ?", accountID).
		Row().Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errs.NewObjectNotFoundError("account", accountID)
		}
		return "", err
	}

	role, err := principal.NormalizeRole(raw)
	if err != nil {
		return principal.RoleAdmin, nil
	}
	return role, nil
}

// SetDriverLogisticsStatus writes the driver's logistics status into the
// column owned by the assigner's role. Last write wins; a missing driver
// row is reported as not found.
func (r *GormAccountRepository) SetDriverLogisticsStatus(ctx context.Context, driverID int64, assignerRole principal.Role, status string) error {
	column, ok := logisticsStatusColumns[assignerRole]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("assigner role",
			fmt.Errorf("role %s has no logistics status column", assignerRole))
	}

	result := r.db.WithContext(ctx).Table("accounts").
		Where("id = ?", driverID).
		Update(column, status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", driverID)
	}

	return nil
}
