package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eport-labs/asset-manager-backend/api/controllers"
	"github.com/eport-labs/asset-manager-backend/api/middleware"
	"github.com/eport-labs/asset-manager-backend/internal/assets"
	"github.com/eport-labs/asset-manager-backend/internal/auth"
	"github.com/eport-labs/asset-manager-backend/internal/profiles"
	"github.com/eport-labs/asset-manager-backend/internal/refdata"
	"github.com/eport-labs/asset-manager-backend/internal/users"
	"github.com/eport-labs/asset-manager-backend/pkg/auth/session"
	"github.com/eport-labs/asset-manager-backend/pkg/config"
	"github.com/eport-labs/asset-manager-backend/pkg/enums"
	"github.com/eport-labs/asset-manager-backend/pkg/logger"
	"github.com/eport-labs/asset-manager-backend/pkg/metrics"
	"github.com/eport-labs/asset-manager-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisClient *redis.Client,
	sessionVerifier session.AccessSessionChecker,
	httpMetrics *metrics.HTTPMetrics,
	metricsRegistry *prometheus.Registry,
	authService auth.Service,
	registerService auth.RegisterService,
	profileService profiles.Service,
	refdataService refdata.Service,
	assetService assets.Service,
	userService users.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Metrics(httpMetrics),
		middleware.Logging(logg),
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

	readyDeps := map[string]controllers.Pinger{}
	if dbP != nil {
		readyDeps["database"] = dbP
	}
	if redisClient != nil {
		readyDeps["redis"] = redisClient
	}
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readyDeps))
	})

	if metricsRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(authService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.AuthRegister(registerService, authService, logg))
		r.Post("/refresh", controllers.AuthRefresh(authService, logg))
		r.Post("/logout", controllers.AuthLogout(authService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionVerifier, logg))

		r.Get("/ping", controllers.PrivatePing())
		r.Get("/me", controllers.Me(profileService, logg))

		r.Get("/categories", controllers.CategoryOptions(refdataService, logg))
		r.Get("/departments", controllers.DepartmentOptions(refdataService, logg))

		r.Route("/assets", func(r chi.Router) {
			r.Get("/mine", controllers.MyAssets(assetService, logg))
			r.Post("/", controllers.CreateAsset(assetService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionVerifier, logg))
		r.Use(middleware.RequireRole(string(enums.RoleAdmin), logg))

		r.Get("/ping", controllers.AdminPing())

		r.Route("/assets", func(r chi.Router) {
			r.Get("/", controllers.AdminAssets(assetService, logg))
			r.Delete("/{assetId}", controllers.AdminDeleteAsset(assetService, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.AdminUsers(userService, logg))
			r.Post("/", controllers.AdminCreateUser(userService, logg))
			r.Patch("/{userId}/role", controllers.AdminUpdateUserRole(userService, logg))
		})

		r.Post("/categories", controllers.AdminCreateCategory(refdataService, logg))
		r.Post("/departments", controllers.AdminCreateDepartment(refdataService, logg))
	})

	return r
}
