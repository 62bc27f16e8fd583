package http

import (
	"encoding/json"
	"time"

	"pawnops/internal/core/application/usecases/queries"
	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/tracking"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateAssignmentRequest is the payload for creating a delivery
// assignment. Items accepts the historical payload shapes; normalization
// happens server-side.
type CreateAssignmentRequest struct {
	Type             string           `json:"type" validate:"required,oneof=ITEM_TRANSFER CAPITAL_DELIVERY BALANCE_DELIVERY"`
	FromLocationType string           `json:"fromLocationType" validate:"required,oneof=BRANCH VAULT"`
	ToLocationType   string           `json:"toLocationType" validate:"required,oneof=BRANCH VAULT"`
	FromBranchID     *int64           `json:"fromBranchId" validate:"omitempty,gt=0"`
	ToBranchID       *int64           `json:"toBranchId" validate:"omitempty,gt=0"`
	Items            json.RawMessage  `json:"items"`
	Amount           *decimal.Decimal `json:"amount"`
	AssignedTo       int64            `json:"assignedTo" validate:"required,gt=0"`
	DueDate          *time.Time       `json:"dueDate"`
	Notes            string           `json:"notes"`
}

// VerifyPickupRequest carries the optional pickup proof image reference.
type VerifyPickupRequest struct {
	ItemImage *string `json:"itemImage"`
}

// VerifyDropoffRequest carries the optional dropoff proof image reference.
type VerifyDropoffRequest struct {
	DropoffImage *string `json:"dropoffImage"`
}

// VerifyDropoffResponse reports what delivery completion changed beyond
// the assignment itself.
type VerifyDropoffResponse struct {
	Assignment   AssignmentResponse `json:"assignment"`
	ItemsUpdated int64              `json:"itemsUpdated"`
	NewBranchID  *int64             `json:"newBranchId"`
}

// SetStatusRequest is the payload for a back-office status override.
type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note"`
}

// LocationPingRequest is one GPS fix from the driver's device.
type LocationPingRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// LoanDisbursementRequest is the payload for recording a loan payout
// against a branch's capital.
type LoanDisbursementRequest struct {
	BranchID        int64           `json:"branchId" validate:"required,gt=0"`
	Amount          decimal.Decimal `json:"amount"`
	RelatedLoanID   *int64          `json:"relatedLoanId"`
	Description     string          `json:"description"`
	TransactionDate *time.Time      `json:"transactionDate"`
}

// AssignmentResponse is the assignment representation shared by all
// assignment endpoints.
type AssignmentResponse struct {
	ID               string           `json:"id"`
	Type             string           `json:"type"`
	FromLocationType string           `json:"fromLocationType"`
	ToLocationType   string           `json:"toLocationType"`
	FromBranchID     *int64           `json:"fromBranchId"`
	ToBranchID       *int64           `json:"toBranchId"`
	Items            []int64          `json:"items"`
	Amount           *decimal.Decimal `json:"amount"`
	Status           string           `json:"status"`
	AssignedBy       int64            `json:"assignedBy"`
	AssignedTo       int64            `json:"assignedTo"`
	Notes            string           `json:"notes"`
	DueDate          *time.Time       `json:"dueDate"`
	PickupVerifiedAt *time.Time       `json:"pickupVerifiedAt"`
	DeliveredAt      *time.Time       `json:"deliveredAt"`
	ItemImage        *string          `json:"itemImage"`
	DropoffImage     *string          `json:"dropoffImage"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

func assignmentFromDomain(a *assignment.Assignment) AssignmentResponse {
	items := a.Items()
	if items == nil {
		items = []int64{}
	}

	return AssignmentResponse{
		ID:               a.ID().String(),
		Type:             a.Type().String(),
		FromLocationType: a.FromLocationType().String(),
		ToLocationType:   a.ToLocationType().String(),
		FromBranchID:     a.FromBranchID(),
		ToBranchID:       a.ToBranchID(),
		Items:            items,
		Amount:           a.Amount(),
		Status:           a.Status().String(),
		AssignedBy:       a.AssignedBy(),
		AssignedTo:       a.AssignedTo(),
		Notes:            a.Notes(),
		DueDate:          a.DueDate(),
		PickupVerifiedAt: a.PickupVerifiedAt(),
		DeliveredAt:      a.DeliveredAt(),
		ItemImage:        a.ItemImage(),
		DropoffImage:     a.DropoffImage(),
		CreatedAt:        a.CreatedAt(),
		UpdatedAt:        a.UpdatedAt(),
	}
}

func assignmentFromReadModel(r queries.AssignmentQueryResponse) AssignmentResponse {
	items := r.Items
	if items == nil {
		items = []int64{}
	}

	return AssignmentResponse{
		ID:               r.ID,
		Type:             r.AssignmentType,
		FromLocationType: r.FromLocationType,
		ToLocationType:   r.ToLocationType,
		FromBranchID:     r.FromBranchID,
		ToBranchID:       r.ToBranchID,
		Items:            items,
		Amount:           r.Amount,
		Status:           r.Status,
		AssignedBy:       r.AssignedBy,
		AssignedTo:       r.AssignedTo,
		Notes:            r.Notes,
		DueDate:          r.DueDate,
		PickupVerifiedAt: r.PickupVerifiedAt,
		DeliveredAt:      r.DeliveredAt,
		ItemImage:        r.ItemImage,
		DropoffImage:     r.DropoffImage,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// BranchCapitalResponse is the branch capital representation.
type BranchCapitalResponse struct {
	BranchID       int64           `json:"branchId"`
	CurrentCapital decimal.Decimal `json:"currentCapital"`
}

// LedgerEntryResponse is one capital ledger entry.
type LedgerEntryResponse struct {
	ID              int64           `json:"id"`
	BranchID        int64           `json:"branchId"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
	RelatedLoanID   *int64          `json:"relatedLoanId"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ReconciliationRecordResponse is one recorded settlement failure.
type ReconciliationRecordResponse struct {
	ID           int64     `json:"id"`
	AssignmentID string    `json:"assignmentId"`
	Step         string    `json:"step"`
	Detail       string    `json:"detail"`
	Resolved     bool      `json:"resolved"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CoordinatesResponse is one GPS fix.
type CoordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PingResponse is one received location update.
type PingResponse struct {
	Coordinates CoordinatesResponse `json:"coordinates"`
	At          time.Time           `json:"at"`
}

// TrackingResponse is the in-memory tracking state of one assignment.
type TrackingResponse struct {
	AssignmentID string               `json:"assignmentId"`
	Stage        string               `json:"stage"`
	Current      *CoordinatesResponse `json:"current"`
	Pickup       *CoordinatesResponse `json:"pickup"`
	Dropoff      *CoordinatesResponse `json:"dropoff"`
	History      []PingResponse       `json:"history"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

func trackingFromState(state *tracking.State) TrackingResponse {
	history := make([]PingResponse, 0, len(state.History))
	for _, ping := range state.History {
		history = append(history, PingResponse{
			Coordinates: CoordinatesResponse(ping.Coordinates),
			At:          ping.At,
		})
	}

	resp := TrackingResponse{
		AssignmentID: state.AssignmentID,
		Stage:        string(state.Stage),
		History:      history,
		UpdatedAt:    state.UpdatedAt,
	}
	if state.Current != nil {
		current := CoordinatesResponse(*state.Current)
		resp.Current = &current
	}
	if state.Pickup != nil {
		pickup := CoordinatesResponse(*state.Pickup)
		resp.Pickup = &pickup
	}
	if state.Dropoff != nil {
		dropoff := CoordinatesResponse(*state.Dropoff)
		resp.Dropoff = &dropoff
	}
	return resp
}
