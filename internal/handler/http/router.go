package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vitacart/storefront/pkg/health"
	"github.com/vitacart/storefront/pkg/middleware"

	"github.com/vitacart/storefront/internal/service"
)

const serviceName = "storefront"

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Catalog *service.CatalogService
	Cart    *service.CartService
	Orders  *service.OrderService
	Auth    *service.AuthService

	Health *health.Handler
	Logger *slog.Logger

	// CORSOrigins lists the allowed browser origins.
	CORSOrigins []string

	// PprofCIDRs restricts /debug/pprof to matching client networks. Empty
	// means pprof is not mounted.
	PprofCIDRs []string
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	corsCfg := middleware.DefaultCORSConfig()
	if len(deps.CORSOrigins) > 0 {
		corsCfg.AllowedOrigins = deps.CORSOrigins
	}

	// Global middleware
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(deps.Logger))
	r.Use(middleware.PrometheusMetrics(serviceName))
	r.Use(middleware.Tracing(serviceName))
	r.Use(middleware.RequestLogger(deps.Logger))

	// Health check endpoints
	r.Get("/health/live", deps.Health.LivenessHandler())
	r.Get("/health/ready", deps.Health.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	if len(deps.PprofCIDRs) > 0 {
		middleware.RegisterPprof(r, deps.PprofCIDRs, deps.Logger)
	}

	catalogHandler := NewCatalogHandler(deps.Catalog, deps.Logger)
	cartHandler := NewCartHandler(deps.Cart, deps.Logger)
	orderHandler := NewOrderHandler(deps.Orders, deps.Logger)
	authHandler := NewAuthHandler(deps.Auth, deps.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		// Public catalog browsing.
		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/{productID}", catalogHandler.GetProduct)
		r.Get("/faqs", catalogHandler.ListFAQs)

		// Session-scoped cart and checkout.
		r.Group(func(r chi.Router) {
			r.Use(RequireSession(deps.Logger))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Delete("/", cartHandler.ClearCart)

				r.Post("/items", cartHandler.AddItem)
				r.Put("/items/{productID}", cartHandler.UpdateItemQuantity)
				r.Post("/items/{productID}/increment", cartHandler.IncrementItem)
				r.Post("/items/{productID}/decrement", cartHandler.DecrementItem)
				r.Delete("/items/{productID}", cartHandler.RemoveItem)
			})

			r.Post("/checkout", orderHandler.Checkout)
		})

		// Provider portal.
		r.Route("/provider", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(RequireSession(deps.Logger))

				r.Post("/login", authHandler.Login)
				r.Post("/logout", authHandler.Logout)
				r.Get("/session", authHandler.GetSession)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Use(RequireSession(deps.Logger))
				r.Use(RequireAuth(deps.Auth, deps.Logger))

				r.Get("/", orderHandler.ListOrders)
				r.Get("/{orderID}", orderHandler.GetOrder)
				r.Put("/{orderID}/status", orderHandler.UpdateOrderStatus)
			})
		})
	})

	return r
}
