package handler

import (
	"net/http"

	"github.com/dinobank/dinoframe-bff-go/internal/infra/observability"
	"github.com/dinobank/dinoframe-bff-go/internal/port"
	"github.com/dinobank/dinoframe-bff-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// Services bundles everything the router serves.
type Services struct {
	Auth     *service.AuthService
	Accounts *service.AccountService
	Transfer *service.TransferService
	Credit   *service.CreditService
	Admin    *service.AdminService
	Sessions port.SessionStore
	Metrics  *observability.Metrics
}

// NewRouter creates the HTTP router with all routes and middleware.
// Routes follow the API contract the dinoframe SPA calls.
func NewRouter(svcs Services, allowedOrigin string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler())
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(svcs.Metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {

		// =============================================
		// 1. 🔐 Authentication
		// =============================================
		r.Route("/auth", func(r chi.Router) {
			// Public routes
			r.Post("/register", authRegisterHandler(svcs.Auth, logger))
			r.Post("/login", authLoginHandler(svcs.Auth, logger))

			// Protected routes
			r.Group(func(r chi.Router) {
				r.Use(RequireSession(svcs.Sessions))
				r.Post("/logout", authLogoutHandler(svcs.Auth, logger))
				r.Get("/session", authSessionHandler(svcs.Auth, logger))
			})
		})

		// =============================================
		// 2. 🦖 Dashboard (protected)
		// =============================================
		r.Group(func(r chi.Router) {
			r.Use(RequireSession(svcs.Sessions))

			r.Get("/overview", getOverviewHandler(svcs.Accounts, logger))
			r.Post("/overview/refresh", refreshOverviewHandler(svcs.Accounts, logger))
			r.Get("/accounts/summary", getAccountSummaryHandler(svcs.Accounts, logger))

			// =============================================
			// 3. 💸 Transfers
			// =============================================
			r.Post("/transfers", transferHandler(svcs.Transfer, svcs.Accounts, logger))

			// =============================================
			// 4. 🏦 Credit
			// =============================================
			r.Post("/credits/apply", creditApplyHandler(svcs.Credit, logger))
			r.Get("/credits", creditHistoryHandler(svcs.Credit, logger))

			// =============================================
			// 5. 🛠 Admin & Metrics
			// =============================================
			r.Get("/admin/db", adminSnapshotHandler(svcs.Admin, logger))
			r.Get("/metrics/client", clientMetricsHandler(svcs.Metrics, logger))
		})
	})

	return r
}

// ============================================================
// Health
// ============================================================

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
