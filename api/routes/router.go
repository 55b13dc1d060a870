package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/drivelinehq/driveline-backend/api/controllers"
	"github.com/drivelinehq/driveline-backend/api/middleware"
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

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	sessionManager session.AccessSessionChecker,
	registry *prometheus.Registry,
	requestMetrics *metrics.RequestMetrics,
	authService auth.Service,
	profileService users.Service,
	carService cars.Service,
	engagementService engagement.Service,
	dashboardService dashboard.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(requestMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisClient))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(authService, logg))
			r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.AuthRegister(authService, logg))
			r.Post("/logout", controllers.AuthLogout(authService, cfg.JWT, logg))
			r.Post("/refresh", controllers.AuthRefresh(authService, logg))
		})

		r.Route("/cars", func(r chi.Router) {
			r.Get("/", controllers.CarsList(carService, logg))
			r.Get("/featured", controllers.CarsFeatured(carService, logg))
			r.Get("/search", controllers.CarsSearch(carService, logg))
			r.Get("/{carId}", controllers.CarsDetail(carService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessionManager, logg))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", controllers.ProfileFetch(profileService, logg))
				r.Put("/", controllers.ProfileUpdate(profileService, logg))
			})

			r.Post("/inquiries", controllers.InquiryCreate(engagementService, logg))
			r.Patch("/inquiries/{inquiryId}", controllers.InquiryUpdate(engagementService, logg))
			r.Post("/test-drives", controllers.TestDriveCreate(engagementService, logg))
			r.Patch("/test-drives/{testDriveId}", controllers.TestDriveUpdate(engagementService, logg))

			r.Route("/favorites", func(r chi.Router) {
				r.Post("/{carId}/toggle", controllers.FavoriteToggle(engagementService, logg))
				r.Get("/{carId}", controllers.FavoriteStatus(engagementService, logg))
			})

			r.Get("/engagement", controllers.EngagementList(engagementService, logg))

			r.Route("/dealer", func(r chi.Router) {
				r.Use(middleware.RequireRole("dealer", logg))
				r.Post("/cars", controllers.DealerCreateCar(carService, logg))
				r.Patch("/cars/{carId}", controllers.DealerUpdateCar(carService, logg))
				r.Delete("/cars/{carId}", controllers.DealerDeleteCar(carService, logg))
				r.Get("/stats", controllers.DealerStats(dashboardService, logg))
			})
		})
	})

	return r
}
