package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/didip/tollbooth/v6"
	"github.com/didip/tollbooth/v6/limiter"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/riandyrn/otelchi"
	"go.uber.org/zap"

	"github.com/sanLimbu/task-tracker/cmd/internal"
	internaldomain "github.com/sanLimbu/task-tracker/internal"
	"github.com/sanLimbu/task-tracker/internal/envvar"
	"github.com/sanLimbu/task-tracker/internal/postgresql"
	"github.com/sanLimbu/task-tracker/internal/rest"
	"github.com/sanLimbu/task-tracker/internal/service"
	"github.com/sanLimbu/task-tracker/internal/sqlite"
)

const defaultAllowedOrigins = "http://localhost:*,https://*.netlify.app"

func main() {
	var env, address string

	flag.StringVar(&env, "env", "", "Environment Variables filename")
	flag.StringVar(&address, "address", ":9234", "HTTP Server Address")
	flag.Parse()

	errC, err := run(env, address)
	if err != nil {
		log.Fatalf("Couldn't run: %s", err)
	}

	if err := <-errC; err != nil {
		log.Fatalf("Error while running: %s", err)
	}
}

func run(env, address string) (<-chan error, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "zap.NewProduction")
	}

	if err := envvar.Load(env); err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "envvar.Load")
	}

	vault, err := internal.NewVaultProvider()
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewVaultProvider")
	}

	conf := envvar.New(vault)

	srvConf, err := newServerConfig(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "newServerConfig")
	}

	telemetry, err := internal.NewOTExporter(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewOTExporter")
	}

	repo, closeRepo, err := newRepository(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "newRepository")
	}

	srvConf.Address = address
	srvConf.Repository = repo
	srvConf.Metrics = telemetry.Metrics
	srvConf.Logger = logger
	srvConf.Middlewares = []func(next http.Handler) http.Handler{
		requestID,
		logging(logger),
	}

	srv := newServer(srvConf)

	errC := make(chan error, 1)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	go func() {
		<-ctx.Done()

		logger.Info("Shutdown signal received")

		ctxTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		defer func() {
			_ = telemetry.Shutdown(context.Background())
			_ = logger.Sync()
			closeRepo()
			stop()
			cancel()
			close(errC)
		}()

		srv.SetKeepAlivesEnabled(false)

		if err := srv.Shutdown(ctxTimeout); err != nil {
			errC <- err
		}

		logger.Info("Shutdown completed")
	}()

	go func() {
		logger.Info("Listening and serving", zap.String("address", address))

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	return errC, nil
}

// newRepository selects the Task store using DATABASE_DRIVER.
func newRepository(conf *envvar.Configuration) (service.TaskRepository, func(), error) {
	driver, err := conf.GetDefault("DATABASE_DRIVER", "postgres")
	if err != nil {
		return nil, nil, fmt.Errorf("conf.Get DATABASE_DRIVER: %w", err)
	}

	switch driver {
	case "postgres":
		pool, err := internal.NewPostgreSQL(context.Background(), conf)
		if err != nil {
			return nil, nil, fmt.Errorf("internal.NewPostgreSQL: %w", err)
		}

		return postgresql.NewTask(pool), pool.Close, nil
	case "sqlite":
		db, err := internal.NewSQLite(conf)
		if err != nil {
			return nil, nil, fmt.Errorf("internal.NewSQLite: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("db.DB: %w", err)
		}

		return sqlite.NewTask(db), func() { _ = sqlDB.Close() }, nil
	}

	return nil, nil, internaldomain.NewErrorf(internaldomain.ErrorCodeInvalidArgument, "unknown database driver %q", driver)
}

type serverConfig struct {
	Address        string
	BasePath       string
	AllowedOrigins []string
	RateLimit      float64
	ServiceName    string
	Repository     service.TaskRepository
	Metrics        http.Handler
	Middlewares    []func(next http.Handler) http.Handler
	Logger         *zap.Logger
}

func newServerConfig(conf *envvar.Configuration) (serverConfig, error) {
	basePath, err := conf.Get("API_BASE_PATH")
	if err != nil {
		return serverConfig{}, fmt.Errorf("conf.Get API_BASE_PATH: %w", err)
	}

	origins, err := conf.GetDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins)
	if err != nil {
		return serverConfig{}, fmt.Errorf("conf.Get CORS_ALLOWED_ORIGINS: %w", err)
	}

	rps, err := conf.GetDefault("RATE_LIMIT_RPS", "100")
	if err != nil {
		return serverConfig{}, fmt.Errorf("conf.Get RATE_LIMIT_RPS: %w", err)
	}

	rateLimit, err := strconv.ParseFloat(rps, 64)
	if err != nil || rateLimit <= 0 {
		return serverConfig{}, internaldomain.NewErrorf(internaldomain.ErrorCodeInvalidArgument, "invalid RATE_LIMIT_RPS %q", rps)
	}

	serviceName, err := conf.GetDefault("OTEL_SERVICE_NAME", "task-tracker")
	if err != nil {
		return serverConfig{}, fmt.Errorf("conf.Get OTEL_SERVICE_NAME: %w", err)
	}

	return serverConfig{
		BasePath:       strings.TrimSuffix(basePath, "/"),
		AllowedOrigins: splitList(origins),
		RateLimit:      rateLimit,
		ServiceName:    serviceName,
	}, nil
}

func splitList(s string) []string {
	var res []string

	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}

	return res
}

func newRouter(conf serverConfig) http.Handler {
	router := chi.NewRouter()
	router.Use(render.SetContentType(render.ContentTypeJSON))
	router.Use(otelchi.Middleware(conf.ServiceName, otelchi.WithChiRoutes(router)))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   conf.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions, http.MethodPatch},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	for _, mw := range conf.Middlewares {
		router.Use(mw)
	}

	svc := service.NewTask(conf.Logger, conf.Repository)
	handler := rest.NewTaskHandler(svc)

	if conf.BasePath != "" {
		router.Route(conf.BasePath, handler.Register)
	} else {
		handler.Register(router)
	}

	rest.RegisterOpenAPI(router)

	if conf.Metrics != nil {
		router.Handle("/metrics", conf.Metrics)
	}

	lmt := tollbooth.NewLimiter(conf.RateLimit, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Second})

	return tollbooth.LimitHandler(lmt, router)
}

func newServer(conf serverConfig) *http.Server {
	return &http.Server{
		Handler:           newRouter(conf),
		Addr:              conf.Address,
		ReadTimeout:       1 * time.Second,
		ReadHeaderTimeout: 1 * time.Second,
		WriteTimeout:      5 * time.Second,
		IdleTimeout:       1 * time.Second,
	}
}
