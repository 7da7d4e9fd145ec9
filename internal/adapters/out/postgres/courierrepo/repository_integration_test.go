package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *courierrepo.GormCourierRepository
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.repository = courierrepo.NewGormCourierRepository(suite.pg.DB)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *CourierRepositoryIntegrationTestSuite) add(p courier.RestoreParams) *courier.Courier {
	if p.UserID == 0 {
		p.UserID = p.ID + 1000
	}
	if p.RestaurantID == 0 {
		p.RestaurantID = 1
	}
	if p.Name == "" {
		p.Name = "Ivan Petrov"
	}
	if p.Transport == "" {
		p.Transport = courier.Scooter
	}
	c, err := courier.RestoreCourier(p)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), c))
	return c
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAndGetByUserID() {
	ctx := context.Background()
	suite.add(courier.RestoreParams{ID: 7, Phone: "+79991234567", Active: true, Status: courier.Available})

	byID, err := suite.repository.Get(ctx, 7)
	suite.Require().NoError(err)
	byUser, err := suite.repository.GetByUserID(ctx, 1007)
	suite.Require().NoError(err)

	suite.Equal(byID.ID(), byUser.ID())
	suite.Equal("+79991234567", byID.Phone())
	suite.Equal(courier.Scooter, byID.Transport())
	suite.Equal(courier.Available, byID.Status())
	suite.True(byID.IsActive())
	suite.Nil(byID.Position())

	_, err = suite.repository.GetByUserID(ctx, 1)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.repository.Get(ctx, 1)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestListCandidates_FiltersPool() {
	ctx := context.Background()
	suite.add(courier.RestoreParams{ID: 3, Active: true, Status: courier.Busy})
	suite.add(courier.RestoreParams{ID: 1, Active: true, Status: courier.Available})
	suite.add(courier.RestoreParams{ID: 2, Active: true, Status: courier.Offline})
	suite.add(courier.RestoreParams{ID: 4, Active: false, Status: courier.Available})
	suite.add(courier.RestoreParams{ID: 5, RestaurantID: 2, Active: true, Status: courier.Available})

	pool, err := suite.repository.ListCandidates(ctx, 1)

	suite.Require().NoError(err)
	suite.Require().Len(pool, 2)
	suite.Equal(int64(1), pool[0].ID())
	suite.Equal(int64(3), pool[1].ID())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestSavePosition_OverwritesSnapshotOnly() {
	ctx := context.Background()
	c := suite.add(courier.RestoreParams{ID: 7, Active: true, Status: courier.Busy})

	for _, lat := range []float64{55.70, 55.75} {
		loc, err := kernel.NewLocation(lat, 37.62)
		suite.Require().NoError(err)
		heading := 90.0
		at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
		pos, err := courier.NewPosition(loc, nil, &heading, nil, at)
		suite.Require().NoError(err)
		suite.Require().NoError(c.UpdatePosition(pos, at))
		suite.Require().NoError(suite.repository.SavePosition(ctx, c))
	}

	got, err := suite.repository.Get(ctx, 7)
	suite.Require().NoError(err)
	suite.Require().NotNil(got.Position())
	suite.InDelta(55.75, got.Position().Location().Latitude(), 1e-9)
	suite.Equal(90.0, *got.Position().Heading())
	suite.Nil(got.Position().Accuracy())
	suite.Require().NotNil(got.LastSeenAt())
	suite.Equal(courier.Busy, got.Status())
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
