package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aclgate/aclgate/core"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var version = "unknown"

func main() {

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	slog.Info(fmt.Sprintf("Aclgate %s starting...", version))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true
	config := Config{}
	configPath := os.Getenv("ACLGATE_CONFIG")
	if configPath == "" {
		configPath = "/etc/aclgate/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
	}

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "aclgate/api", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "aclgate",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	// Migrate the schema
	slog.Info("start migrate")
	db.AutoMigrate(
		&core.Application{},
		&core.Role{},
		&core.Route{},
		&core.RoleBinding{},
		&core.PriorityBinding{},
		&core.RoleAssignment{},
		&core.TeamMembership{},
		&core.AccessLog{},
	)

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "",
		DB:       config.Server.RedisDB,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	sink := core.SampledSink{
		Rate: config.ACL.LogSamplingRate,
		Next: core.SlogSink{},
	}

	routeService := SetupRouteService(db, mc, config.ACL)
	routeHandler := SetupRouteHandler(db, rdb, mc, config.ACL)
	ruleService := SetupRuleService(db, rdb, mc, config.ACL)
	ruleHandler := SetupRuleHandler(db, rdb, mc, config.ACL)
	gateService := SetupGateService(db, rdb, mc, sink, config.ACL)
	gateHandler := SetupGateHandler(db, rdb, mc, config.ACL)

	// decision API
	e.POST("/api/v1/evaluate", gateHandler.Evaluate)
	e.POST("/api/v1/login/check", gateHandler.CheckLogin)
	e.GET("/api/v1/routes/mine", gateHandler.MyRoutes)
	e.POST("/api/v1/routes/mine/rebuild", gateHandler.RebuildMyRoutes)

	// registry administration
	admin := e.Group("/api/v1/admin")
	admin.POST("/route", routeHandler.Register)
	admin.GET("/route/:id", routeHandler.Get)
	admin.GET("/routes", routeHandler.List)
	admin.DELETE("/route/:id", routeHandler.Deactivate)

	admin.POST("/role", ruleHandler.EnsureRole)
	admin.POST("/assignment", ruleHandler.AssignRole)
	admin.DELETE("/assignment", ruleHandler.RevokeRole)
	admin.POST("/binding/role", ruleHandler.BindRoute)
	admin.POST("/binding/priority", ruleHandler.BindPriority)

	admin.DELETE("/cache/endpoint/:id", ruleHandler.InvalidateEndpoint)
	admin.DELETE("/cache/routes/:subject", gateHandler.InvalidateRoutes)
	admin.DELETE("/limiter/:subject", gateHandler.ResetLimiter)
	admin.GET("/access/:subject", gateHandler.RecentAccess)

	// everything under /guarded passes through the enforcement pipeline
	guarded := e.Group("/guarded", gateService.Enforce)
	guarded.Any("/*", func(c echo.Context) error {
		verdict, _ := c.Get(core.VerdictCtxKey).(core.Verdict)
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": verdict})
	})

	e.GET("/ws", func(c echo.Context) error {
		return c.NoContent(http.StatusSwitchingProtocols)
	}, gateService.GuardWS)

	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		return c.String(http.StatusOK, "ok")
	})

	var resourceCountMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "acl_resources_count",
			Help: "resources count",
		},
		[]string{"type"},
	)
	prometheus.MustRegister(resourceCountMetrics)

	go func() {
		for {
			time.Sleep(15 * time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

			count, err := routeService.Count(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count routes: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("route").Set(float64(count))

			count, err = ruleService.Count(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count bindings: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("binding").Set(float64(count))

			cancel()
		}
	}()

	e.GET("/metrics", echoprometheus.NewHandler())

	e.Logger.Fatal(e.Start(config.Server.Listen))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
