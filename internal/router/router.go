package router

import (
	"net/http"

	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/config"
	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/handler"
	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers the router wires up.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
	Payment  *handler.PaymentHandler
	Shipping *handler.ShippingHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, auth config.AuthConfig, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	// Health check endpoint (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Public catalogue and auth routes
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)

		r.Get("/products", h.Product.GetAll)
		r.Get("/products/{id}", h.Product.GetByID)
		r.Get("/categories", h.Product.GetCategories)

		// Guest checkout needs no account
		r.Post("/guest/orders", h.Order.CreateGuest)
		r.Get("/guest/track/{id}", h.Order.TrackGuest)

		// Payment provider callbacks authenticate via signature, not JWT
		r.Post("/payment/webhook", h.Payment.Webhook)

		r.Get("/shipping/track/{awb}", h.Shipping.Track)

		// Authenticated user routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(auth.JWTSecret, logger))

			r.Post("/cart", h.Cart.Add)
			r.Get("/cart", h.Cart.Get)
			r.Put("/cart/{id}", h.Cart.UpdateQuantity)
			r.Delete("/cart/{id}", h.Cart.Remove)
			r.Delete("/cart", h.Cart.Clear)

			r.Post("/orders", h.Order.Create)
			r.Get("/orders", h.Order.List)
			r.Get("/orders/{id}/track", h.Order.Track)

			r.Post("/payment/create-order", h.Payment.CreateOrder)
			r.Post("/payment/verify", h.Payment.Verify)

			r.Post("/shipping/create-order", h.Shipping.CreateOrder)
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminAPIKey(auth.AdminAPIKey, logger))

			r.Post("/products", h.Product.Create)
			r.Put("/products/{id}", h.Product.Update)
			r.Delete("/products/{id}", h.Product.Delete)

			r.Post("/categories", h.Product.CreateCategory)
			r.Delete("/categories/{id}", h.Product.DeleteCategory)

			r.Get("/orders", h.Order.ListAll)
			r.Put("/orders/{id}/status", h.Order.UpdateStatus)
			r.Put("/shipping/orders/{id}/ship", h.Shipping.Ship)
		})
	})

	return r
}
