package main

import (
	"context"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/drivelinehq/driveline-backend/api/routes"
	"github.com/drivelinehq/driveline-backend/internal/auth"
	"github.com/drivelinehq/driveline-backend/internal/cars"
	"github.com/drivelinehq/driveline-backend/internal/dashboard"
	"github.com/drivelinehq/driveline-backend/internal/engagement"
	"github.com/drivelinehq/driveline-backend/internal/users"
	"github.com/drivelinehq/driveline-backend/pkg/auth/session"
	"github.com/drivelinehq/driveline-backend/pkg/config"
	"github.com/drivelinehq/driveline-backend/pkg/logger"
	"github.com/drivelinehq/driveline-backend/pkg/metrics"
	"github.com/drivelinehq/driveline-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	userStore, carStore, engagementStore, err := buildStores(cfg)
	if err != nil {
		logg.Error(context.Background(), "failed to seed stores", err)
		os.Exit(1)
	}

	profileService, err := users.NewService(users.ServiceParams{
		Store:    userStore,
		Profiles: redisClient,
		Keyer:    redisClient,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create profile service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		Users:    userStore,
		Profiles: profileService,
		Sessions: sessionManager,
		JWT:      cfg.JWT,
		Password: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	carService, err := cars.NewService(cars.ServiceParams{Store: carStore})
	if err != nil {
		logg.Error(context.Background(), "failed to create car service", err)
		os.Exit(1)
	}

	engagementService, err := engagement.NewService(engagement.ServiceParams{Store: engagementStore})
	if err != nil {
		logg.Error(context.Background(), "failed to create engagement service", err)
		os.Exit(1)
	}

	dashboardService, err := dashboard.NewService(dashboard.ServiceParams{
		Cars:       carStore,
		Engagement: engagementStore,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	requestMetrics := metrics.NewRequestMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			redisClient,
			sessionManager,
			registry,
			requestMetrics,
			authService,
			profileService,
			carService,
			engagementService,
			dashboardService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

// buildStores seeds the demo dataset unless it is disabled. The second seed
// dealer has no login account; its listings still render and aggregate.
func buildStores(cfg *config.Config) (*users.Store, *cars.Store, *engagement.Store, error) {
	if !cfg.App.SeedDemoData {
		return users.NewStore(nil), cars.NewStore(nil), engagement.NewStore(engagement.StoreSeed{}), nil
	}

	accounts, err := users.SeedAccounts(cfg.Password)
	if err != nil {
		return nil, nil, nil, err
	}
	customer := accounts[0]
	dealerOne := accounts[1]
	dealerTwo := uuid.New()

	listings := cars.SeedListings(dealerOne.ID, dealerTwo)
	carIDs := make([]uuid.UUID, 0, len(listings))
	for _, car := range listings {
		carIDs = append(carIDs, car.ID)
	}

	return users.NewStore(accounts),
		cars.NewStore(listings),
		engagement.NewStore(engagement.SeedRecords(customer.ID, dealerOne.ID, dealerTwo, carIDs)),
		nil
}
