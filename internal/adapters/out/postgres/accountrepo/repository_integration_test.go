package accountrepo_test

import (
	"context"
	"testing"
	"time"

	"pawnops/internal/adapters/out/postgres/accountrepo"
	"pawnops/internal/core/domain/model/principal"
	"pawnops/internal/core/ports"
	"pawnops/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type AccountRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *accountrepo.GormAccountRepository
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.Exec(`
		CREATE TABLE IF NOT EXISTS accounts (
			id bigint PRIMARY KEY,
			role varchar(64),
			logistics_status varchar(16),
			auditor_logistics_status varchar(16),
			account_executive_logistics_status varchar(16)
		)`).Error)
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE accounts").Error)
	suite.Require().NoError(suite.db.Exec(
		"INSERT INTO accounts (id, role) VALUES (20, 'Logistics'), (1, 'Admin'), (2, 'Account Executive'), (3, 'cashier')").Error)
	suite.repository = accountrepo.NewGormAccountRepository(suite.db)
}

func (suite *AccountRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AccountRepositoryIntegrationTestSuite) statusColumn(column string) *string {
	var value *string
	suite.Require().NoError(suite.db.Raw(
		"SELECT "+column+" FROM accounts WHERE id = 20").Scan(&value).Error)
	return value
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGetRole_NormalizesStoredRole() {
	ctx := context.Background()

	admin, err := suite.repository.GetRole(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(principal.RoleAdmin, admin)

	ae, err := suite.repository.GetRole(ctx, 2)
	suite.Require().NoError(err)
	suite.Equal(principal.RoleAccountExecutive, ae)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGetRole_LegacyRoleFallsBackToAdmin() {
	role, err := suite.repository.GetRole(context.Background(), 3)
	suite.Require().NoError(err)
	suite.Equal(principal.RoleAdmin, role)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGetRole_MissingAccount() {
	_, err := suite.repository.GetRole(context.Background(), 999)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestSetDriverLogisticsStatus_RoleSelectsColumn() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.SetDriverLogisticsStatus(
		ctx, 20, principal.RoleAdmin, ports.DriverStatusAssigned))
	suite.Require().NoError(suite.repository.SetDriverLogisticsStatus(
		ctx, 20, principal.RoleAuditor, ports.DriverStatusStandby))

	admin := suite.statusColumn("logistics_status")
	suite.Require().NotNil(admin)
	suite.Equal(ports.DriverStatusAssigned, *admin)

	auditor := suite.statusColumn("auditor_logistics_status")
	suite.Require().NotNil(auditor)
	suite.Equal(ports.DriverStatusStandby, *auditor)

	// columns are independent per role
	suite.Nil(suite.statusColumn("account_executive_logistics_status"))
}

func (suite *AccountRepositoryIntegrationTestSuite) TestSetDriverLogisticsStatus_UnknownRole() {
	err := suite.repository.SetDriverLogisticsStatus(
		context.Background(), 20, principal.Role("cashier"), ports.DriverStatusAssigned)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestSetDriverLogisticsStatus_MissingDriver() {
	err := suite.repository.SetDriverLogisticsStatus(
		context.Background(), 999, principal.RoleAdmin, ports.DriverStatusAssigned)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestAccountRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryIntegrationTestSuite))
}
