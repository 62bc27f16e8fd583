// Package http exposes the back-office REST API. Handlers translate
// between transport DTOs and application commands/queries; all business
// rules live below this layer.
package http

import (
	"net/http"
	"strconv"

	"pawnops/internal/core/application/usecases/commands"
	"pawnops/internal/core/application/usecases/queries"
	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/core/domain/model/kernel"
	"pawnops/internal/pkg/errs"
	"pawnops/internal/tracking"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP endpoints to application use cases.
type Server struct {
	// Command handlers
	createAssignmentHandler commands.CreateAssignmentCommandHandler
	verifyPickupHandler     commands.VerifyPickupCommandHandler
	verifyDropoffHandler    commands.VerifyDropoffCommandHandler
	setStatusHandler        commands.SetAssignmentStatusCommandHandler
	loanDisbursementHandler commands.RecordLoanDisbursementCommandHandler

	// Query handlers
	activeAssignmentsHandler queries.GetActiveAssignmentsQueryHandler
	branchAssignmentsHandler queries.GetBranchAssignmentsQueryHandler
	getAssignmentHandler     queries.GetAssignmentQueryHandler
	branchCapitalHandler     queries.GetBranchCapitalQueryHandler
	branchLedgerHandler      queries.GetBranchLedgerQueryHandler
	reconciliationHandler    queries.GetReconciliationLogQueryHandler

	tracker *tracking.Tracker
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createAssignmentHandler commands.CreateAssignmentCommandHandler,
	verifyPickupHandler commands.VerifyPickupCommandHandler,
	verifyDropoffHandler commands.VerifyDropoffCommandHandler,
	setStatusHandler commands.SetAssignmentStatusCommandHandler,
	loanDisbursementHandler commands.RecordLoanDisbursementCommandHandler,
	activeAssignmentsHandler queries.GetActiveAssignmentsQueryHandler,
	branchAssignmentsHandler queries.GetBranchAssignmentsQueryHandler,
	getAssignmentHandler queries.GetAssignmentQueryHandler,
	branchCapitalHandler queries.GetBranchCapitalQueryHandler,
	branchLedgerHandler queries.GetBranchLedgerQueryHandler,
	reconciliationHandler queries.GetReconciliationLogQueryHandler,
	tracker *tracking.Tracker,
) *Server {
	return &Server{
		createAssignmentHandler:  createAssignmentHandler,
		verifyPickupHandler:      verifyPickupHandler,
		verifyDropoffHandler:     verifyDropoffHandler,
		setStatusHandler:         setStatusHandler,
		loanDisbursementHandler:  loanDisbursementHandler,
		activeAssignmentsHandler: activeAssignmentsHandler,
		branchAssignmentsHandler: branchAssignmentsHandler,
		getAssignmentHandler:     getAssignmentHandler,
		branchCapitalHandler:     branchCapitalHandler,
		branchLedgerHandler:      branchLedgerHandler,
		reconciliationHandler:    reconciliationHandler,
		tracker:                  tracker,
	}
}

// RegisterRoutes mounts the API under /api/v1 behind the principal
// middleware. The health probe stays unauthenticated.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", PrincipalMiddleware())

	api.POST("/delivery-assignments", s.CreateAssignment)
	api.GET("/delivery-assignments/active", s.GetActiveAssignments)
	api.GET("/delivery-assignments/branch/:branchId", s.GetBranchAssignments)
	api.GET("/delivery-assignments/:id", s.GetAssignment)
	api.POST("/delivery-assignments/:id/verify-pickup", s.VerifyPickup)
	api.POST("/delivery-assignments/:id/verify-dropoff", s.VerifyDropoff)
	api.PUT("/delivery-assignments/:id/status", s.SetAssignmentStatus)
	api.POST("/delivery-assignments/:id/location", s.RecordLocation)
	api.GET("/delivery-assignments/:id/tracking", s.GetTracking)
	api.GET("/branches/:branchId/current-capital", s.GetBranchCapital)
	api.GET("/branches/:branchId/ledger", s.GetBranchLedger)
	api.POST("/ledger/loan-disbursements", s.RecordLoanDisbursement)
	api.GET("/reconciliation-log", s.GetReconciliationLog)
}

// CreateAssignment handles POST /api/v1/delivery-assignments.
func (s *Server) CreateAssignment(c echo.Context) error {
	var req CreateAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCreateAssignmentCommand(
		kernel.NewUUID(),
		assignment.Type(req.Type),
		assignment.LocationType(req.FromLocationType),
		assignment.LocationType(req.ToLocationType),
		req.FromBranchID,
		req.ToBranchID,
		assignment.ExtractItemIDs(req.Items),
		req.Amount,
		req.AssignedTo,
		req.DueDate,
		req.Notes,
		currentPrincipal(c),
	)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.createAssignmentHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	s.tracker.StartTracking(created.ID().String(), nil, nil)

	return c.JSON(http.StatusCreated, assignmentFromDomain(created))
}

// GetActiveAssignments handles GET /api/v1/delivery-assignments/active.
func (s *Server) GetActiveAssignments(c echo.Context) error {
	var branchID *int64
	if raw := c.QueryParam("branch_id"); raw != "" {
		id, err := parseID(raw, "branch id")
		if err != nil {
			return writeError(c, err)
		}
		branchID = &id
	}

	query, err := queries.NewGetActiveAssignmentsQuery(branchID)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.activeAssignmentsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]AssignmentResponse, 0, len(result))
	for _, r := range result {
		response = append(response, assignmentFromReadModel(r))
	}
	return c.JSON(http.StatusOK, response)
}

// GetBranchAssignments handles GET /api/v1/delivery-assignments/branch/:branchId.
func (s *Server) GetBranchAssignments(c echo.Context) error {
	p := currentPrincipal(c)
	if !p.IsAdmin() && !p.IsAuditor() {
		return writeError(c, errs.NewForbiddenError(p.Role().String(), "view branch assignment history"))
	}

	branchID, err := parseID(c.Param("branchId"), "branch id")
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetBranchAssignmentsQuery(branchID)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.branchAssignmentsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]AssignmentResponse, 0, len(result))
	for _, r := range result {
		response = append(response, assignmentFromReadModel(r))
	}
	return c.JSON(http.StatusOK, response)
}

// GetAssignment handles GET /api/v1/delivery-assignments/:id.
func (s *Server) GetAssignment(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetAssignmentQuery(id)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.getAssignmentHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, assignmentFromReadModel(result))
}

// VerifyPickup handles POST /api/v1/delivery-assignments/:id/verify-pickup.
func (s *Server) VerifyPickup(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req VerifyPickupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewVerifyPickupCommand(id, req.ItemImage, currentPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.verifyPickupHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	// tracking is best-effort; an untracked assignment is fine
	_ = s.tracker.MarkPickedUp(updated.ID().String())

	return c.JSON(http.StatusOK, assignmentFromDomain(updated))
}

// VerifyDropoff handles POST /api/v1/delivery-assignments/:id/verify-dropoff.
func (s *Server) VerifyDropoff(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req VerifyDropoffRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewVerifyDropoffCommand(id, req.DropoffImage, currentPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.verifyDropoffHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	_ = s.tracker.MarkDelivered(result.Assignment.ID().String())

	return c.JSON(http.StatusOK, VerifyDropoffResponse{
		Assignment:   assignmentFromDomain(result.Assignment),
		ItemsUpdated: result.ItemsUpdated,
		NewBranchID:  result.NewBranchID,
	})
}

// SetAssignmentStatus handles PUT /api/v1/delivery-assignments/:id/status.
func (s *Server) SetAssignmentStatus(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewSetAssignmentStatusCommand(
		id, assignment.Status(req.Status), req.Note, currentPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.setStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, assignmentFromDomain(updated))
}

// RecordLocation handles POST /api/v1/delivery-assignments/:id/location.
func (s *Server) RecordLocation(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req LocationPingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return writeError(c, err)
	}

	state := s.tracker.UpdateLocation(id.String(), tracking.Coordinates{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})

	return c.JSON(http.StatusOK, trackingFromState(state))
}

// GetTracking handles GET /api/v1/delivery-assignments/:id/tracking.
func (s *Server) GetTracking(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	state, err := s.tracker.Get(id.String())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, trackingFromState(state))
}

// GetBranchCapital handles GET /api/v1/branches/:branchId/current-capital.
func (s *Server) GetBranchCapital(c echo.Context) error {
	branchID, err := parseID(c.Param("branchId"), "branch id")
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetBranchCapitalQuery(branchID)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.branchCapitalHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, BranchCapitalResponse{
		BranchID:       result.BranchID,
		CurrentCapital: result.CurrentCapital,
	})
}

// GetBranchLedger handles GET /api/v1/branches/:branchId/ledger.
func (s *Server) GetBranchLedger(c echo.Context) error {
	branchID, err := parseID(c.Param("branchId"), "branch id")
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetBranchLedgerQuery(branchID)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.branchLedgerHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]LedgerEntryResponse, 0, len(result))
	for _, entry := range result {
		response = append(response, LedgerEntryResponse{
			ID:              entry.ID,
			BranchID:        entry.BranchID,
			TransactionType: entry.TransactionType,
			Amount:          entry.Amount,
			RunningBalance:  entry.RunningBalance,
			RelatedLoanID:   entry.RelatedLoanID,
			Description:     entry.Description,
			TransactionDate: entry.TransactionDate,
			CreatedAt:       entry.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, response)
}

// RecordLoanDisbursement handles POST /api/v1/ledger/loan-disbursements.
func (s *Server) RecordLoanDisbursement(c echo.Context) error {
	var req LoanDisbursementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewRecordLoanDisbursementCommand(
		req.BranchID, req.Amount, req.RelatedLoanID,
		req.Description, req.TransactionDate, currentPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}

	entry, err := s.loanDisbursementHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, LedgerEntryResponse{
		ID:              entry.ID(),
		BranchID:        entry.BranchID(),
		TransactionType: entry.TransactionType().String(),
		Amount:          entry.Amount(),
		RunningBalance:  entry.RunningBalance(),
		RelatedLoanID:   entry.RelatedLoanID(),
		Description:     entry.Description(),
		TransactionDate: entry.TransactionDate(),
		CreatedAt:       entry.CreatedAt(),
	})
}

// GetReconciliationLog handles GET /api/v1/reconciliation-log.
func (s *Server) GetReconciliationLog(c echo.Context) error {
	p := currentPrincipal(c)
	if !p.IsAdmin() && !p.IsAuditor() {
		return writeError(c, errs.NewForbiddenError(p.Role().String(), "view the reconciliation log"))
	}

	unresolvedOnly := c.QueryParam("resolved") == "false"

	result, err := s.reconciliationHandler.Handle(
		c.Request().Context(), queries.NewGetReconciliationLogQuery(unresolvedOnly))
	if err != nil {
		return writeError(c, err)
	}

	response := make([]ReconciliationRecordResponse, 0, len(result))
	for _, record := range result {
		response = append(response, ReconciliationRecordResponse{
			ID:           record.ID,
			AssignmentID: record.AssignmentID,
			Step:         record.Step,
			Detail:       record.Detail,
			Resolved:     record.Resolved,
			CreatedAt:    record.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, response)
}

func parseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError(name)
	}
	return id, nil
}
