package assignmentrepo_test

import (
	"context"
	"testing"
	"time"

	"pawnops/internal/adapters/out/postgres/assignmentrepo"
	"pawnops/internal/core/domain/model/assignment"
	"pawnops/internal/core/domain/model/kernel"
	"pawnops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate interface{}) {
	m.Called(id, aggregate)
}

// AssignmentRepositoryIntegrationTestSuite verifies assignment persistence
// against a real PostgreSQL instance.
type AssignmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *assignmentrepo.GormAssignmentRepository
	tracker    *MockAggregateTracker
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&assignmentrepo.AssignmentDTO{}))
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_assignments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = assignmentrepo.NewGormAssignmentRepository(suite.db, suite.tracker)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func int64Ptr(v int64) *int64 { return &v }

func (suite *AssignmentRepositoryIntegrationTestSuite) createCapitalDelivery(items []int64) *assignment.Assignment {
	amount := decimal.NewFromInt(5000)
	a, err := assignment.NewAssignment(
		kernel.NewUUID(),
		assignment.CapitalDelivery,
		assignment.LocationBranch, assignment.LocationBranch,
		int64Ptr(1), int64Ptr(2),
		items,
		&amount,
		10, 20,
		nil, "", time.Now().Truncate(time.Second),
	)
	suite.Require().NoError(err)
	return a
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	a := suite.createCapitalDelivery([]int64{100, 101})

	suite.tracker.On("TrackAggregate", a.ID().String(), a).Once()
	suite.Require().NoError(suite.repository.Add(ctx, a))

	retrieved, err := suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.IsEqual(a))
	suite.Equal(assignment.CapitalDelivery, retrieved.Type())
	suite.Equal(assignment.StatusAssigned, retrieved.Status())
	suite.Equal([]int64{100, 101}, retrieved.Items())
	suite.Require().NotNil(retrieved.Amount())
	suite.True(retrieved.Amount().Equal(decimal.NewFromInt(5000)))
	suite.Equal(int64(10), retrieved.AssignedBy())
	suite.Equal(int64(20), retrieved.AssignedTo())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestGet_LegacyItemShapes() {
	ctx := context.Background()
	a := suite.createCapitalDelivery(nil)

	suite.tracker.On("TrackAggregate", a.ID().String(), a).Once()
	suite.Require().NoError(suite.repository.Add(ctx, a))

	// legacy rows store items as an array of objects
	suite.Require().NoError(suite.db.Exec(
		`UPDATE delivery_assignments SET items = '[{"item_id": 7}, {"item_id": 8}]' WHERE id = ?`,
		a.ID().Bytes()).Error)

	retrieved, err := suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal([]int64{7, 8}, retrieved.Items())

	// and sometimes as a wrapped object
	suite.Require().NoError(suite.db.Exec(
		`UPDATE delivery_assignments SET items = '{"itemIds": ["9", "10"]}' WHERE id = ?`,
		a.ID().Bytes()).Error)

	retrieved, err = suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal([]int64{9, 10}, retrieved.Items())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestUpdateIfStatus_TransitionSucceedsOnce() {
	ctx := context.Background()
	a := suite.createCapitalDelivery(nil)

	suite.tracker.On("TrackAggregate", a.ID().String(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, a))

	now := time.Now().Truncate(time.Second)
	suite.Require().NoError(a.VerifyPickup(nil, now))
	suite.Require().NoError(suite.repository.UpdateIfStatus(ctx, a, assignment.StatusAssigned))

	retrieved, err := suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal(assignment.StatusInProgress, retrieved.Status())
	suite.NotNil(retrieved.PickupVerifiedAt())

	// a second transition against the stale precondition finds no row
	err = suite.repository.UpdateIfStatus(ctx, a, assignment.StatusAssigned)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestUpdateIfStatus_CompletionGuard() {
	ctx := context.Background()
	a := suite.createCapitalDelivery(nil)

	suite.tracker.On("TrackAggregate", a.ID().String(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, a))

	now := time.Now().Truncate(time.Second)
	suite.Require().NoError(a.VerifyPickup(nil, now))
	suite.Require().NoError(suite.repository.UpdateIfStatus(ctx, a, assignment.StatusAssigned))

	suite.Require().NoError(a.VerifyDropoff(nil, now.Add(time.Hour)))
	suite.Require().NoError(suite.repository.UpdateIfStatus(ctx, a, assignment.StatusInProgress))

	// the row is COMPLETED now; repeating the dropoff write matches nothing
	err := suite.repository.UpdateIfStatus(ctx, a, assignment.StatusInProgress)
	suite.Require().Error(err)

	retrieved, err2 := suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err2)
	suite.Equal(assignment.StatusCompleted, retrieved.Status())
	suite.NotNil(retrieved.DeliveredAt())
	suite.Require().Error(err)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestGetAllOverdue() {
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)
	pastDue := now.Add(-2 * time.Hour)
	futureDue := now.Add(2 * time.Hour)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	newWithDueDate := func(due *time.Time) *assignment.Assignment {
		amount := decimal.NewFromInt(5000)
		a, err := assignment.NewAssignment(
			kernel.NewUUID(),
			assignment.CapitalDelivery,
			assignment.LocationBranch, assignment.LocationBranch,
			int64Ptr(1), int64Ptr(2),
			nil,
			&amount,
			10, 20,
			due, "", now,
		)
		suite.Require().NoError(err)
		return a
	}

	overdue := newWithDueDate(&pastDue)
	notYetDue := newWithDueDate(&futureDue)
	noDueDate := newWithDueDate(nil)
	alreadyCancelled := newWithDueDate(&pastDue)
	suite.Require().NoError(alreadyCancelled.Override(assignment.StatusCancelled, "", now))

	for _, a := range []*assignment.Assignment{overdue, notYetDue, noDueDate, alreadyCancelled} {
		suite.Require().NoError(suite.repository.Add(ctx, a))
	}

	found, err := suite.repository.GetAllOverdue(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(overdue.ID().String(), found[0].ID().String())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestUpdate_PersistsNotes() {
	ctx := context.Background()
	a := suite.createCapitalDelivery(nil)

	suite.tracker.On("TrackAggregate", a.ID().String(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, a))

	now := time.Now().Truncate(time.Second)
	suite.Require().NoError(a.Override(assignment.StatusCancelled, "route closed", now))
	suite.Require().NoError(suite.repository.Update(ctx, a))

	retrieved, err := suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal(assignment.StatusCancelled, retrieved.Status())
	suite.Contains(retrieved.Notes(), "route closed")
}

func TestAssignmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryIntegrationTestSuite))
}
