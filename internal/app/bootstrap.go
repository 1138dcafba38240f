package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"jobboard/internal/config"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/routes"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
	sweeper   *handler.SessionSweeper
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	sweeper := registerRoutes(f, c)
	if sweeper != nil {
		sweeper.Start()
	}

	return &App{Fiber: f, Container: c, sweeper: sweeper}
}

// Close stops background work owned by the app.
func (a *App) Close() {
	if a.sweeper != nil {
		a.sweeper.Stop()
	}
}

// Bootstrap builds the container and the HTTP app; the returned cleanup
// releases the app's and the container's resources.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}
	app := New(c)
	cleanup := func() error {
		app.Close()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewSessionMiddleware(c.Sessions, c.Config.Session.TTL, c.Logger).Middleware())
}

func registerRoutes(f *fiber.App, c *Container) *handler.SessionSweeper {
	if f == nil {
		return nil
	}

	jobs := handler.NewJobsHandler(c.Client, c.Logger)
	companies := handler.NewCompaniesHandler(c.Client, c.Logger)
	skills := handler.NewSkillsHandler(c.Client, c.Logger)
	notifications := handler.NewNotificationsHandler(c.Client, 0, c.Logger)

	// Logout and the TTL sweep release these handlers' per-session views
	// and pollers.
	scoped := []handler.SessionScoped{jobs, companies, skills, notifications}

	registry := &routes.Registry{
		Health:        handler.NewHealthHandler(c.Cache),
		Auth:          handler.NewAuthHandler(c.Sessions, c.Logger, scoped...),
		Jobs:          jobs,
		Companies:     companies,
		Skills:        skills,
		Applications:  handler.NewApplicationsHandler(c.Client, c.Logger),
		SavedJobs:     handler.NewSavedJobsHandler(c.Client, c.Logger),
		Notifications: notifications,
		Profiles:      handler.NewProfilesHandler(c.Client, c.Logger),
	}
	registry.Register(f)

	return handler.NewSessionSweeper(c.Config.Session.TTL, c.Logger, scoped...)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
