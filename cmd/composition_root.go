package cmd

import (
	"context"
	"fmt"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/eventrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/trackingrepo"
	redisout "dispatch/internal/adapters/out/redis"
	"dispatch/internal/core/application/feed"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// CompositionRoot owns the long-lived collaborators and builds handlers on
// top of them.
type CompositionRoot struct {
	cfg         Config
	gormDB      *gorm.DB
	redis       *redis.Client
	uowFactory  *postgres.GormUnitOfWorkFactory
	broadcaster *feed.Broadcaster
	estimator   *services.Estimator
	dispatcher  *services.OrderDispatcher
	logger      zerolog.Logger
}

// NewCompositionRoot wires the shared services. redisClient may be nil.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, redisClient *redis.Client, logger zerolog.Logger) CompositionRoot {
	estimator := services.NewEstimator(nil)
	return CompositionRoot{
		cfg:         cfg,
		gormDB:      gormDB,
		redis:       redisClient,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB),
		broadcaster: feed.NewBroadcaster(),
		estimator:   estimator,
		dispatcher:  services.NewOrderDispatcher(cfg.Scoring.Weights(), estimator),
		logger:      logger,
	}
}

func (c *CompositionRoot) unitOfWorkFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAutoAssignCommandHandler() commands.AutoAssignCommandHandler {
	return commands.NewAutoAssignCommandHandler(c.unitOfWorkFactory(), c.dispatcher, c.broadcaster)
}

func (c *CompositionRoot) CreateIngestLocationCommandHandler() commands.IngestLocationCommandHandler {
	return commands.NewIngestLocationCommandHandler(c.unitOfWorkFactory(), c.estimator, c.broadcaster, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.unitOfWorkFactory(), c.broadcaster)
}

func (c *CompositionRoot) CreatePublishEventCommandHandler() commands.PublishEventCommandHandler {
	return commands.NewPublishEventCommandHandler(eventrepo.NewGormEventRepository(c.gormDB), c.broadcaster)
}

func (c *CompositionRoot) CreateCleanupEventsCommandHandler() commands.CleanupEventsCommandHandler {
	return commands.NewCleanupEventsCommandHandler(eventrepo.NewGormEventRepository(c.gormDB))
}

func (c *CompositionRoot) CreateRankCouriersQueryHandler() queries.RankCouriersQueryHandler {
	return queries.NewRankCouriersQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		courierrepo.NewGormCourierRepository(c.gormDB),
		c.dispatcher,
	)
}

func (c *CompositionRoot) CreateListCouriersQueryHandler() queries.ListCouriersQueryHandler {
	return queries.NewListCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTrailQueryHandler() queries.GetOrderTrailQueryHandler {
	return queries.NewGetOrderTrailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderRestaurantQueryHandler() queries.GetOrderRestaurantQueryHandler {
	return queries.NewGetOrderRestaurantQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateTrackingViewQueryHandler() queries.TrackingViewQueryHandler {
	return queries.NewTrackingViewQueryHandler(
		c.trackingTokens(),
		orderrepo.NewGormOrderRepository(c.gormDB),
		courierrepo.NewGormCourierRepository(c.gormDB),
		c.estimator,
	)
}

// trackingTokens puts the Redis cache in front of Postgres when Redis is configured.
func (c *CompositionRoot) trackingTokens() ports.TrackingTokenRepository {
	source := trackingrepo.NewGormTrackingTokenRepository(c.gormDB)
	if c.redis == nil {
		return source
	}
	return redisout.NewTokenCache(c.redis, source, c.cfg.Redis.TokenTTL, c.logger)
}

func (c *CompositionRoot) CreateFeedService() (*feed.Service, error) {
	return feed.NewService(eventrepo.NewGormEventRepository(c.gormDB), c.broadcaster, c.cfg.Realtime.Feed(), c.logger)
}

// CreateAppendListener returns nil when cross-instance wakeups are disabled.
func (c *CompositionRoot) CreateAppendListener() *postgres.AppendListener {
	if !c.cfg.DB.Listen {
		return nil
	}
	return postgres.NewAppendListener(c.cfg.DB.DSN(), c.broadcaster, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	manager := jobs.NewJobManager(c.cfg.Jobs.RunTimeout, c.logger)

	retention := jobs.NewEventRetentionJob(c.CreateCleanupEventsCommandHandler(), c.cfg.Realtime.Retention, c.logger)
	if err := manager.Register("event_retention", c.cfg.Jobs.RetentionSpec, retention); err != nil {
		return nil, err
	}

	autoDispatch := jobs.NewAutoDispatchJob(
		orderrepo.NewGormOrderRepository(c.gormDB),
		c.CreateAutoAssignCommandHandler(),
		c.cfg.Jobs.AutoDispatchSize,
		c.logger,
	)
	if err := manager.Register("auto_dispatch", c.cfg.Jobs.AutoDispatchSpec, autoDispatch); err != nil {
		return nil, err
	}

	return manager, nil
}

func (c *CompositionRoot) CreateHealthHandler() *httpin.HealthHandler {
	checks := map[string]httpin.PingFunc{
		"postgres": func(ctx context.Context) error {
			return postgres.Ping(ctx, c.gormDB)
		},
	}
	if c.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}
	}
	return httpin.NewHealthHandler(checks)
}

// CreateRouter builds the HTTP surface with every handler attached.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	feedService, err := c.CreateFeedService()
	if err != nil {
		return nil, fmt.Errorf("feed service: %w", err)
	}

	server := httpin.NewServer(httpin.Handlers{
		AutoAssign:        c.CreateAutoAssignCommandHandler(),
		IngestLocation:    c.CreateIngestLocationCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		PublishEvent:      c.CreatePublishEventCommandHandler(),
		CleanupEvents:     c.CreateCleanupEventsCommandHandler(),
		RankCouriers:      c.CreateRankCouriersQueryHandler(),
		ListCouriers:      c.CreateListCouriersQueryHandler(),
		OrderTrail:        c.CreateGetOrderTrailQueryHandler(),
		OrderRestaurant:   c.CreateGetOrderRestaurantQueryHandler(),
		TrackingView:      c.CreateTrackingViewQueryHandler(),
		Feed:              feedService,
	}, c.cfg.Realtime.Retention, c.logger)

	return httpin.NewRouter(
		httpin.RouterConfig{JWTSecret: c.cfg.JWTSecret, Debug: c.cfg.Debug},
		server,
		c.CreateHealthHandler(),
		c.logger,
	), nil
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
