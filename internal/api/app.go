package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/cubahno/apipatterns/internal/config"
)

// App is the main application struct.
type App struct {
	Router *Router

	bluePrints []RouteRegister
	mu         sync.Mutex
}

// NewApp creates a new App instance from Config and registers the
// predefined blueprints.
func NewApp(cfg *config.Config) *App {
	router := NewRouter(cfg)
	res := &App{
		Router: router,
	}

	bluePrints := []RouteRegister{
		createHealthRoutes,
		createItemRoutes,
		createPetRoutes,
		createShapeRoutes,
		createProductRoutes,
		createLaptopRoutes,
		createOpenAPIRoutes,
	}
	res.bluePrints = bluePrints

	for _, bluePrint := range bluePrints {
		if err := bluePrint(router); err != nil {
			slog.Error("failed to load blueprint", "error", err)
		}
	}

	return res
}

// AddBluePrint adds a new blueprint to the application.
func (a *App) AddBluePrint(bluePrint RouteRegister) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.bluePrints = append(a.bluePrints, bluePrint)
	return bluePrint(a.Router)
}

// Run starts the application and the server.
// Blocks until the server is stopped.
func (a *App) Run() {
	port := a.Router.Config.GetApp().Port
	slog.Info("server started", "port", port)

	err := http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), a.Router)
	if err != nil {
		panic(err)
	}
}
