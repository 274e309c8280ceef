package queries_test

import (
	"context"
	"testing"
	"time"

	"fruitmall/internal/adapters/out/postgres/deliveryrepo"
	"fruitmall/internal/core/application/usecases/queries"
	"fruitmall/internal/core/domain/model/delivery"
	"fruitmall/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container    *pgcontainer.PostgresContainer
	db           *gorm.DB
	handler      queries.GetDeliveriesQueryHandler
	deliveryRepo *deliveryrepo.GormDeliveryRepository
}

func (suite *GetDeliveriesQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))

	suite.handler = queries.NewGetDeliveriesQueryHandler(db)
	suite.deliveryRepo = deliveryrepo.NewGormDeliveryRepository(db, &mockAggregateTracker{})
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetDeliveriesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries CASCADE").Error)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_NoFilters_ListsAllByExpectedDate() {
	ctx := context.Background()

	later := suite.seedDelivery(delivery.Preparing, "", daysAhead(5))
	sooner := suite.seedDelivery(delivery.Shipping, "TRACK-1", daysAhead(2))

	query, err := queries.NewGetDeliveriesQuery(delivery.UnknownStatus, time.Time{},
		time.Time{}, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(sooner.ID()))
	suite.True(result[1].ID.IsEqual(later.ID()))
	suite.Equal("Alice", result[0].Address.Recipient)
	suite.Equal("06236", result[0].Address.ZipCode)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_StatusFilter_MatchesOnly() {
	ctx := context.Background()

	suite.seedDelivery(delivery.Preparing, "", daysAhead(2))
	shipping := suite.seedDelivery(delivery.Shipping, "TRACK-1", daysAhead(3))

	query, err := queries.NewGetDeliveriesQuery(delivery.Shipping, time.Time{}, time.Time{}, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(shipping.ID()))
	suite.Equal(delivery.Shipping.String(), result[0].Status)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_ExpectedDateRange_BoundsInclusive() {
	ctx := context.Background()

	suite.seedDelivery(delivery.Preparing, "", daysAhead(1))
	inRange := suite.seedDelivery(delivery.Preparing, "", daysAhead(4))
	suite.seedDelivery(delivery.Preparing, "", daysAhead(9))

	query, err := queries.NewGetDeliveriesQuery(delivery.UnknownStatus, daysAhead(3),
		daysAhead(5), "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(inRange.ID()))
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_TrackingNumber_FindsShipment() {
	ctx := context.Background()

	suite.seedDelivery(delivery.Shipping, "TRACK-1", daysAhead(2))
	wanted := suite.seedDelivery(delivery.Shipping, "TRACK-2", daysAhead(3))

	query, err := queries.NewGetDeliveriesQuery(delivery.UnknownStatus, time.Time{},
		time.Time{}, "TRACK-2")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(wanted.ID()))
	suite.Equal("TRACK-2", result[0].TrackingNumber)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetDeliveriesQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetDeliveriesQueryIsNotConstructed)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) seedDelivery(status delivery.Status,
	trackingNumber string, expected time.Time) *delivery.Delivery {
	address, err := delivery.NewAddress("Alice", "06236", "1 Orchard Lane", "",
		"010-1234-5678", "")
	suite.Require().NoError(err)

	courier := ""
	if trackingNumber != "" {
		courier = "FastShip"
	}

	d, err := delivery.RestoreDelivery(kernel.NewUUID(), kernel.NewUUID(), status, address,
		courier, trackingNumber, expected, nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.deliveryRepo.Add(context.Background(), d))
	return d
}

func daysAhead(days int) time.Time {
	return time.Now().AddDate(0, 0, days).Truncate(time.Second)
}

func TestGetDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDeliveriesQueryHandlerTestSuite))
}
