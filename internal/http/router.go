package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fitvibe/internal/metrics"
)

type Handlers struct {
	Auth    *AuthHandler
	Cart    *CartHandler
	Order   *OrderHandler
	Catalog *CatalogHandler
	Content *ContentHandler
	Profile *ProfileHandler

	// RequireAuth guards the routes that need a logged-in caller.
	RequireAuth func(http.Handler) http.Handler
}

func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(metrics.Middleware("fitvibe-api"))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", Health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/create-account", h.Auth.CreateAccount)
		r.Post("/login", h.Auth.Login)
	})

	r.Get("/products", h.Catalog.List)
	r.Get("/products/{id}", h.Catalog.ByID)
	r.Get("/challenges", h.Content.ListChallenges)
	r.Get("/challenges/{id}", h.Content.ChallengeByID)
	r.Get("/activities/{slug}", h.Content.ActivityBySlug)

	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.Get)
			r.Post("/", h.Cart.Add)
			r.Delete("/{productID}", h.Cart.Remove)
		})
		r.Route("/order", func(r chi.Router) {
			r.Post("/", h.Order.Place)
			r.Get("/", h.Order.List)
		})
		r.Route("/profile", func(r chi.Router) {
			r.Get("/me", h.Profile.Me)
			r.Get("/my-challenges", h.Profile.MyChallenges)
		})
	})

	return r
}
