// Package reconlogrepo persists the reconciliation log: the durable trace
// of settlement side effects that failed after their assignment write had
// already committed.
package reconlogrepo

import (
	"context"
	"time"

	"pawnops/internal/core/ports"

	"gorm.io/gorm"
)

// RecordDTO represents the database structure for reconciliation records.
type RecordDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	AssignmentID string `gorm:"type:uuid;index;not null"`
	Step         string `gorm:"type:varchar(32);not null"`
	Detail       string `gorm:"type:text"`
	Resolved     bool   `gorm:"index;not null;default:false"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for reconciliation records.
func (RecordDTO) TableName() string {
	return "reconciliation_log"
}

func fromDomain(record *ports.ReconciliationRecord) RecordDTO {
	return RecordDTO{
		ID:           record.ID,
		AssignmentID: record.AssignmentID,
		Step:         string(record.Step),
		Detail:       record.Detail,
		Resolved:     record.Resolved,
		CreatedAt:    record.CreatedAt,
	}
}

func toDomain(dto RecordDTO) *ports.ReconciliationRecord {
	return &ports.ReconciliationRecord{
		ID:           dto.ID,
		AssignmentID: dto.AssignmentID,
		Step:         ports.ReconciliationStep(dto.Step),
		Detail:       dto.Detail,
		Resolved:     dto.Resolved,
		CreatedAt:    dto.CreatedAt,
	}
}

// GormReconciliationRepository implements ReconciliationRepository using GORM.
type GormReconciliationRepository struct {
	db *gorm.DB
}

// NewGormReconciliationRepository creates a new GORM reconciliation repository.
func NewGormReconciliationRepository(db *gorm.DB) *GormReconciliationRepository {
	return &GormReconciliationRepository{db: db}
}

// Add records a failed side effect.
func (r *GormReconciliationRepository) Add(ctx context.Context, record *ports.ReconciliationRecord) error {
	dto := fromDomain(record)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	record.ID = dto.ID
	return nil
}

// GetAll lists records newest first, optionally filtered to unresolved ones.
func (r *GormReconciliationRepository) GetAll(ctx context.Context, unresolvedOnly bool) ([]*ports.ReconciliationRecord, error) {
	query := r.db.WithContext(ctx).Model(&RecordDTO{}).Order("created_at DESC, id DESC")
	if unresolvedOnly {
		query = query.Where("resolved = false")
	}

	var dtos []RecordDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]*ports.ReconciliationRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, toDomain(dto))
	}

	return records, nil
}
