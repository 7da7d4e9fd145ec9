package http

import (
	"dispatch/internal/adapters/in/http/middleware"

	_ "dispatch/docs"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig tunes the echo instance.
type RouterConfig struct {
	JWTSecret string
	// Debug raises echo's own log level and enables request logging.
	Debug bool
	// Registry receives the HTTP metrics and backs /metrics. Nil means the
	// process default registry.
	Registry *prometheus.Registry
}

// NewRouter builds the echo instance with every route registered.
//
//	/health, /health/ready, /metrics, /swagger/*   open
//	/api/public/track/:token[...]                  tracking token
//	/api/realtime/*, /api/dispatch/*               staff, admin
//	/api/realtime/cleanup                          admin
//	/api/courier/*                                 courier
func NewRouter(cfg RouterConfig, server *Server, health *HealthHandler, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)
	if cfg.Debug {
		e.Logger.SetLevel(log.DEBUG)
		e.Use(echomiddleware.Logger())
	} else {
		e.Logger.SetLevel(log.WARN)
	}

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if cfg.Registry != nil {
		registerer, gatherer = cfg.Registry, cfg.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "dispatch",
		Registerer: registerer,
	}))

	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	public := e.Group("/api/public/track/:token")
	public.GET("", server.Track)
	public.GET("/stream", server.TrackStream)
	public.GET("/poll", server.TrackPoll)

	auth := middleware.Auth(cfg.JWTSecret)
	staff := middleware.RBAC(middleware.RoleStaff, middleware.RoleAdmin)

	realtime := e.Group("/api/realtime", auth)
	realtime.GET("/stream", server.Stream, staff)
	realtime.GET("/poll", server.Poll, staff)
	realtime.GET("/snapshot", server.Snapshot, staff)
	realtime.POST("/events", server.PublishEvent, staff)
	realtime.POST("/cleanup", server.CleanupEvents, middleware.RBAC(middleware.RoleAdmin))

	dispatch := e.Group("/api/dispatch", auth, staff)
	dispatch.GET("/couriers", server.ListCouriers)
	dispatch.GET("/orders/:id/best-courier", server.BestCourier)
	dispatch.GET("/orders/:id/couriers", server.RankCouriers)
	dispatch.GET("/orders/:id/trail", server.OrderTrail)
	dispatch.POST("/orders/:id/auto-assign", server.AutoAssign)

	courierAPI := e.Group("/api/courier", auth, middleware.RBAC(middleware.RoleCourier))
	courierAPI.POST("/location", server.ReportLocation)
	courierAPI.POST("/orders/:id/status", server.ChangeOrderStatus)

	return e
}
