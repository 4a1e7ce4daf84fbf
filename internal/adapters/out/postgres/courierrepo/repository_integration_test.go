package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/courierrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregate tracker.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type CourierRepositoryTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	tracker    *MockAggregateTracker
	repository *courierrepo.GormCourierRepository
}

func (suite *CourierRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
}

func (suite *CourierRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *CourierRepositoryTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("DELETE FROM order_items").Error)
	suite.Require().NoError(suite.db.Exec("DELETE FROM orders").Error)
	suite.Require().NoError(suite.db.Exec("DELETE FROM couriers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = courierrepo.NewGormCourierRepository(suite.db, suite.tracker)
}

func (suite *CourierRepositoryTestSuite) newCourier(name string) *courier.Courier {
	id := kernel.NewUUID()

	aggregate, err := courier.NewCourier(id, name, "5 Acacia Ave, Davao", "LTO-4821", "N02-11-223344")
	suite.Require().NoError(err)
	return aggregate
}

// seedAssignment inserts an order row in the given stage referencing the
// courier so availability derivation has something to join against.
func (suite *CourierRepositoryTestSuite) seedAssignment(courierID kernel.UUID, stage order.Stage) {
	raw := courierID.Bytes()
	dto := orderrepo.OrderDTO{
		ID:            uuid.New(),
		BuyerID:       uuid.New(),
		CourierID:     &raw,
		Amount:        499.50,
		PaymentMethod: "cod",
		PlacedAt:      time.Now().UTC(),
		Stage:         int(stage),
		StatusLabel:   order.StatusLabelShipped,
		Address: orderrepo.AddressDTO{
			FirstName: "Maria",
			Street:    "12 Mabini St",
			City:      "Quezon City",
		},
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *CourierRepositoryTestSuite) TestAdd_Success() {
	// Arrange
	ctx := context.Background()
	testCourier := suite.newCourier("Ramon Cruz")
	suite.tracker.On("TrackAggregate", testCourier.ID(), testCourier).Once()

	// Act
	err := suite.repository.Add(ctx, testCourier)

	// Assert
	suite.NoError(err)
	suite.tracker.AssertExpectations(suite.T())

	retrieved, err := suite.repository.Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.True(testCourier.IsEqual(retrieved))
	suite.Equal("Ramon Cruz", retrieved.Name())
	suite.Equal("5 Acacia Ave, Davao", retrieved.Address())
	suite.Equal("LTO-4821", retrieved.PlateNumber())
	suite.Equal("N02-11-223344", retrieved.LicenseNumber())
}

func (suite *CourierRepositoryTestSuite) TestAdd_NotConstructedCourier() {
	// Arrange
	ctx := context.Background()
	var zero courier.Courier

	// Act
	err := suite.repository.Add(ctx, &zero)

	// Assert
	suite.ErrorIs(err, courier.ErrCourierIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *CourierRepositoryTestSuite) TestGet_NotFound() {
	// Arrange
	ctx := context.Background()
	id := kernel.NewUUID()

	// Act
	_, err := suite.repository.Get(ctx, id)

	// Assert
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryTestSuite) TestGetAll_SortedByName() {
	// Arrange
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, suite.newCourier("Zenon Abad")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newCourier("Ana Reyes")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newCourier("Ramon Cruz")))

	// Act
	couriers, err := suite.repository.GetAll(ctx)

	// Assert
	suite.Require().NoError(err)
	suite.Require().Len(couriers, 3)
	suite.Equal("Ana Reyes", couriers[0].Name())
	suite.Equal("Ramon Cruz", couriers[1].Name())
	suite.Equal("Zenon Abad", couriers[2].Name())
}

func (suite *CourierRepositoryTestSuite) TestGetAllAvailable_ExcludesActiveAssignments() {
	// Arrange
	ctx := context.Background()
	busy := suite.newCourier("Ramon Cruz")
	free := suite.newCourier("Ana Reyes")
	done := suite.newCourier("Zenon Abad")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, busy))
	suite.Require().NoError(suite.repository.Add(ctx, free))
	suite.Require().NoError(suite.repository.Add(ctx, done))

	suite.seedAssignment(busy.ID(), order.Assigned)
	suite.seedAssignment(done.ID(), order.Delivered)

	// Act
	couriers, err := suite.repository.GetAllAvailable(ctx)

	// Assert
	suite.Require().NoError(err)
	suite.Require().Len(couriers, 2)
	names := []string{couriers[0].Name(), couriers[1].Name()}
	suite.ElementsMatch([]string{"Ana Reyes", "Zenon Abad"}, names)
}

func (suite *CourierRepositoryTestSuite) TestDelete_Success() {
	// Arrange
	ctx := context.Background()
	testCourier := suite.newCourier("Ramon Cruz")
	suite.tracker.On("TrackAggregate", testCourier.ID(), testCourier).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testCourier))

	// Act
	err := suite.repository.Delete(ctx, testCourier.ID())

	// Assert
	suite.NoError(err)

	_, err = suite.repository.Get(ctx, testCourier.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryTestSuite) TestDelete_NotFound() {
	// Arrange
	ctx := context.Background()
	id := kernel.NewUUID()

	// Act
	err := suite.repository.Delete(ctx, id)

	// Assert
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCourierRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryTestSuite))
}
