package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetReconciliationLogQueryHandler retrieves settlement failure records
// from the database. Uses direct SQL queries for optimal read performance
// in the CQRS pattern.
type GetReconciliationLogQueryHandler struct {
	db *gorm.DB
}

// NewGetReconciliationLogQueryHandler creates a handler for reconciliation
// log queries.
func NewGetReconciliationLogQueryHandler(db *gorm.DB) GetReconciliationLogQueryHandler {
	return GetReconciliationLogQueryHandler{db: db}
}

// Handle executes the query, newest records first.
func (h GetReconciliationLogQueryHandler) Handle(
	ctx context.Context,
	query GetReconciliationLogQuery,
) ([]GetReconciliationLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			assignment_id,
			step,
			detail,
			resolved,
			created_at
		FROM reconciliation_log`
	if query.UnresolvedOnly() {
		sql += `
		WHERE resolved = false`
	}
	sql += `
		ORDER BY created_at DESC, id DESC`

	records := make([]GetReconciliationLogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record GetReconciliationLogQueryResponse

		err = rows.Scan(
			&record.ID,
			&record.AssignmentID,
			&record.Step,
			&record.Detail,
			&record.Resolved,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
