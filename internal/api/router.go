package api

import (
	"time"

	"github.com/cubahno/apipatterns/internal/catalog"
	"github.com/cubahno/apipatterns/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouteRegister is a function that registers a group of routes on the router.
type RouteRegister func(router *Router) error

// Router is a wrapper around chi.Mux that carries the config and the
// read-only sample collections. The collections are seeded once and
// never mutated, handlers only read them.
type Router struct {
	*chi.Mux

	// Config is a pointer to the global Config instance.
	Config *config.Config

	items   []catalog.Item
	laptops []catalog.Laptop
}

// NewRouter creates a new Router instance from Config and seeds the
// sample collections.
func NewRouter(cfg *config.Config) *Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(ConditionalLoggingMiddleware(cfg))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	app := cfg.GetApp()

	return &Router{
		Mux:     r,
		Config:  cfg,
		items:   catalog.SeedItems(app.ItemCount, app.FakeItemNames),
		laptops: catalog.SampleLaptops,
	}
}

// Items returns the seeded items collection.
func (r *Router) Items() []catalog.Item {
	return r.items
}

// Laptops returns the seeded laptops collection.
func (r *Router) Laptops() []catalog.Laptop {
	return r.laptops
}
