package inventoryrepo_test

import (
	"context"
	"testing"
	"time"

	"pawnops/internal/adapters/out/postgres/inventoryrepo"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type InventoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *inventoryrepo.GormInventoryRepository
}

func (suite *InventoryRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&inventoryrepo.ItemDTO{}))
}

func (suite *InventoryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE inventory_items").Error)
	suite.repository = inventoryrepo.NewGormInventoryRepository(suite.db)

	for id := int64(1); id <= 5; id++ {
		suite.Require().NoError(suite.db.Create(&inventoryrepo.ItemDTO{ID: id, BranchID: 1}).Error)
	}
}

func (suite *InventoryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestRelocateItems_MovesMatchingRows() {
	updated, err := suite.repository.RelocateItems(context.Background(), []int64{1, 2, 3}, 2)
	suite.Require().NoError(err)
	suite.Equal(int64(3), updated)

	var count int64
	suite.Require().NoError(suite.db.Model(&inventoryrepo.ItemDTO{}).
		Where("branch_id = ?", 2).Count(&count).Error)
	suite.Equal(int64(3), count)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestRelocateItems_UnknownIDsAreSkipped() {
	updated, err := suite.repository.RelocateItems(context.Background(), []int64{4, 999}, 3)
	suite.Require().NoError(err)
	suite.Equal(int64(1), updated)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestRelocateItems_EmptyListIsANoOp() {
	updated, err := suite.repository.RelocateItems(context.Background(), nil, 2)
	suite.Require().NoError(err)
	suite.Zero(updated)
}

func TestInventoryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryRepositoryIntegrationTestSuite))
}
