package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	goredis "github.com/redis/go-redis/v9"

	handlers "github.com/sm8ta/cep_cache_microservice/internal/adapter/handler/http"
	"github.com/sm8ta/cep_cache_microservice/internal/adapter/memory"
	"github.com/sm8ta/cep_cache_microservice/internal/adapter/postgres/repository"
	"github.com/sm8ta/cep_cache_microservice/internal/adapter/prometheus"
	"github.com/sm8ta/cep_cache_microservice/internal/adapter/redis"
	"github.com/sm8ta/cep_cache_microservice/internal/adapter/viacep"
	"github.com/sm8ta/cep_cache_microservice/internal/config"
	"github.com/sm8ta/cep_cache_microservice/internal/core/domain"
	"github.com/sm8ta/cep_cache_microservice/internal/core/ports"
	"github.com/sm8ta/cep_cache_microservice/internal/core/services"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const MigrationsDir = "./internal/adapter/postgres/migrations"

type App struct {
	server  *http.Server
	router  *handlers.Router
	log     ports.LoggerPort
	closers []func() error
}

// New builds every adapter from cfg. Metrics are registered on registry and
// served from it on /metrics; nil means the default registry.
func New(ctx context.Context, cfg *config.Container, log ports.LoggerPort, registry *prom.Registry) (*App, error) {
	a := &App{log: log}

	store, err := a.newStore(ctx, cfg)
	if err != nil {
		a.close()
		return nil, err
	}

	var (
		registerer     prom.Registerer = prom.DefaultRegisterer
		metricsHandler                 = promhttp.Handler()
	)
	if registry != nil {
		registerer = registry
		metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}
	metrics := prometheus.NewPrometheusAdapter(registerer, cfg.App.Name)

	source := viacep.NewClient(viacep.Config{
		BaseURL:   cfg.ViaCep.BaseURL,
		Timeout:   cfg.ViaCep.Timeout,
		RateLimit: cfg.ViaCep.RateLimit,
		Burst:     cfg.ViaCep.RateBurst,
	}, log)

	addressService := services.NewAddressService(store, source, log, domain.NewValidator(), metrics)

	// nil interface, not a typed nil, so the router leaves /cep open
	var tokenService ports.TokenService
	if cfg.Token.Secret != "" {
		tokenService = handlers.NewJWTTokenService(cfg.Token.Secret, cfg.Token.Duration, log)
	} else {
		log.Warn("TOKEN_SECRET is empty, /cep is served without authentication", nil)
	}

	router, err := handlers.NewRouter(
		cfg.HTTP,
		tokenService,
		handlers.NewCepHandler(addressService, log, metrics),
		handlers.NewHealthHandler(store, log),
		metricsHandler,
	)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("init router: %w", err)
	}

	a.router = router
	a.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.HTTP.URL, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return a, nil
}

func (a *App) newStore(ctx context.Context, cfg *config.Container) (ports.AddressStore, error) {
	fields := map[string]interface{}{
		"driver": cfg.Store.Driver,
		"ttl":    cfg.Store.TTL.String(),
	}

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.DB.DSN())
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		a.closers = append(a.closers, db.Close)

		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("ping database: %w", err)
		}
		if err := goose.Up(db, MigrationsDir); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		a.log.Info("Using postgres address store", fields)
		return repository.NewAddressRepository(db, cfg.Store.TTL), nil

	case config.DriverRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.closers = append(a.closers, client.Close)

		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		a.log.Info("Using redis address store", fields)
		return redis.NewRedisAdapter(client, cfg.Store.TTL), nil

	case config.DriverMemory:
		a.log.Info("Using in-memory address store", fields)
		return memory.NewAddressStore(cfg.Store.TTL), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

// Handler exposes the routes without a listener.
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) Addr() string {
	return a.server.Addr
}

// Run blocks until the server stops. A clean Stop returns nil.
func (a *App) Run() error {
	a.log.Info("Starting the HTTP server", map[string]interface{}{
		"addr": a.server.Addr,
	})
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests and releases store connections.
func (a *App) Stop(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	return errors.Join(err, a.close())
}

func (a *App) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
