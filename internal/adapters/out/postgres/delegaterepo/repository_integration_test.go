package delegaterepo_test

import (
	"context"
	"testing"
	"time"

	"docdispatch/internal/adapters/out/postgres/delegaterepo"
	"docdispatch/internal/core/domain/model/delegate"
	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// DelegateRepositoryIntegrationTestSuite provides integration tests for
// DelegateRepository using PostgreSQL containers, including the composite
// unique index that keeps the territory directory one-to-one.
type DelegateRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *delegaterepo.GormDelegateRepository
	tracker    *MockAggregateTracker
}

func (suite *DelegateRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&delegaterepo.DelegateDTO{}))
}

func (suite *DelegateRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delegates").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = delegaterepo.NewGormDelegateRepository(suite.db, suite.tracker)
}

func (suite *DelegateRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DelegateRepositoryIntegrationTestSuite) TestAdd_ValidDelegate_Success() {
	ctx := context.Background()

	testDelegate := suite.createTestDelegate("Rabat", kernel.ServiceMunicipalOffice)
	suite.tracker.On("TrackAggregate", testDelegate.ID(), testDelegate).Once()

	err := suite.repository.Add(ctx, testDelegate)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testDelegate.ID())
	suite.Require().NoError(err)
	suite.Equal(testDelegate.Name(), retrieved.Name())
	suite.Equal("Rabat", retrieved.City().Name())
	suite.Equal(kernel.ServiceMunicipalOffice, retrieved.Service())
	suite.True(retrieved.IsAvailable())
	suite.Equal(0, retrieved.CompletedOrders())
	suite.Equal(int64(0), retrieved.Earnings())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DelegateRepositoryIntegrationTestSuite) TestAdd_DuplicateTerritory_ReturnsAlreadyExists() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()

	first := suite.createTestDelegate("Rabat", kernel.ServiceJudicial)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	rival := suite.createTestDelegate("Rabat", kernel.ServiceJudicial)
	err := suite.repository.Add(ctx, rival)
	suite.Require().Error(err)

	var existsErr *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &existsErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DelegateRepositoryIntegrationTestSuite) TestAdd_SameCityDifferentService_Allowed() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	first := suite.createTestDelegate("Fes", kernel.ServiceMunicipalOffice)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestDelegate("Fes", kernel.ServiceSubPrefecture)
	suite.Require().NoError(suite.repository.Add(ctx, second))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DelegateRepositoryIntegrationTestSuite) TestUpdate_PersistsBookkeepingAndAvailability() {
	ctx := context.Background()

	testDelegate := suite.createTestDelegate("Tangier", kernel.ServiceMunicipalOffice)
	suite.tracker.On("TrackAggregate", testDelegate.ID(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testDelegate))

	suite.Require().NoError(testDelegate.RecordCompletedOrder(5000))
	testDelegate.SetAvailable(false)
	suite.Require().NoError(suite.repository.Update(ctx, testDelegate))

	retrieved, err := suite.repository.Get(ctx, testDelegate.ID())
	suite.Require().NoError(err)
	suite.Equal(1, retrieved.CompletedOrders())
	suite.Equal(int64(5000), retrieved.Earnings())
	suite.False(retrieved.IsAvailable())
}

func (suite *DelegateRepositoryIntegrationTestSuite) TestGet_NonExistentDelegate_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *DelegateRepositoryIntegrationTestSuite) TestGetByAccount_ReturnsBoundDelegate() {
	ctx := context.Background()

	testDelegate := suite.createTestDelegate("Oujda", kernel.ServiceJudicial)
	suite.tracker.On("TrackAggregate", testDelegate.ID(), testDelegate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testDelegate))

	retrieved, err := suite.repository.GetByAccount(ctx, testDelegate.AccountID())
	suite.Require().NoError(err)
	suite.Equal(testDelegate.ID(), retrieved.ID())

	_, err = suite.repository.GetByAccount(ctx, kernel.NewUUID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *DelegateRepositoryIntegrationTestSuite) TestFindByTerritory_MatchesExactPairOnly() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	match := suite.createTestDelegate("Rabat", kernel.ServiceMunicipalOffice)
	suite.Require().NoError(suite.repository.Add(ctx, match))

	wrongService := suite.createTestDelegate("Rabat", kernel.ServiceJudicial)
	suite.Require().NoError(suite.repository.Add(ctx, wrongService))

	wrongCity := suite.createTestDelegate("Marrakesh", kernel.ServiceMunicipalOffice)
	suite.Require().NoError(suite.repository.Add(ctx, wrongCity))

	city, err := kernel.NewCity("Rabat")
	suite.Require().NoError(err)

	found, err := suite.repository.FindByTerritory(ctx, city, kernel.ServiceMunicipalOffice)
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(match.ID(), found[0].ID())
}

func (suite *DelegateRepositoryIntegrationTestSuite) TestFindByTerritory_NoMatch_ReturnsEmptySlice() {
	ctx := context.Background()

	city, err := kernel.NewCity("Agadir")
	suite.Require().NoError(err)

	found, err := suite.repository.FindByTerritory(ctx, city, kernel.ServiceSubPrefecture)
	suite.Require().NoError(err)
	suite.Empty(found)
}

// createTestDelegate creates a delegate registered for the given territory.
func (suite *DelegateRepositoryIntegrationTestSuite) createTestDelegate(
	cityName string, service kernel.ServiceCategory,
) *delegate.Delegate {
	city, err := kernel.NewCity(cityName)
	suite.Require().NoError(err)

	testDelegate, err := delegate.NewDelegate(
		kernel.NewUUID(),
		kernel.NewUUID(),
		gofakeit.Name(),
		city,
		service,
	)
	suite.Require().NoError(err)
	return testDelegate
}

func TestDelegateRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DelegateRepositoryIntegrationTestSuite))
}
