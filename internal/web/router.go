package web

import (
	"net/http"

	"hostel-store/internal/logger"
	"hostel-store/internal/order"
	"hostel-store/internal/product"
	"hostel-store/internal/user"

	"github.com/go-chi/chi/v5"
)

// Services are the application services the JSON surface exposes.
type Services struct {
	Products product.Service
	Orders   order.Service
	Users    user.Service
}

func NewRouter(svcs Services, registry *Registry) http.Handler {
	authHandler := NewAuthHandler()
	productHandler := NewProductHandler(svcs.Products)
	cartHandler := NewCartHandler()
	orderHandler := NewOrderHandler(svcs.Orders)
	profileHandler := NewProfileHandler(svcs.Users)

	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(NewRateLimiter().Middleware)
	r.Use(registry.Middleware)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/session", authHandler.GetSession)
	})

	r.Get("/products", productHandler.List)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartHandler.Get)
		r.Delete("/", cartHandler.Clear)
		r.Post("/items", cartHandler.AddItem)
		r.Put("/items/{productID}", cartHandler.UpdateQuantity)
		r.Delete("/items/{productID}", cartHandler.RemoveItem)
	})

	r.Post("/checkout", orderHandler.Checkout)
	r.Get("/orders", orderHandler.List)

	r.Get("/profile", profileHandler.Get)
	r.Put("/profile", profileHandler.Update)

	return r
}
