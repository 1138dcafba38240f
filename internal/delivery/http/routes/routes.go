package routes

import (
	"github.com/gofiber/fiber/v3"

	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
)

// Registry owns the handler set and wires it onto the fiber app: health
// at the root, public browse endpoints under /api, auth endpoints under
// /api/auth, and the guarded group behind the auth middleware.
type Registry struct {
	Health        *handler.HealthHandler
	Auth          *handler.AuthHandler
	Jobs          *handler.JobsHandler
	Companies     *handler.CompaniesHandler
	Skills        *handler.SkillsHandler
	Applications  *handler.ApplicationsHandler
	SavedJobs     *handler.SavedJobsHandler
	Notifications *handler.NotificationsHandler
	Profiles      *handler.ProfilesHandler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")

	r.Jobs.RegisterRoutes(api.Group("/jobs"))
	r.Jobs.RegisterTags(api.Group("/tags"))
	r.Companies.RegisterRoutes(api.Group("/companies"))
	r.Companies.RegisterIndustries(api.Group("/industries"))
	r.Skills.RegisterRoutes(api.Group("/skills"))
	r.Auth.RegisterRoutes(api.Group("/auth"))

	protected := api.Group("", middleware.RequireAuth())
	r.Applications.RegisterRoutes(protected)
	r.SavedJobs.RegisterRoutes(protected.Group("/saved-jobs"))
	r.Notifications.RegisterRoutes(protected.Group("/notifications"))
	r.Profiles.RegisterRoutes(protected.Group("/profiles"))
	r.Companies.RegisterCreate(protected.Group("/companies"))
	r.Skills.RegisterCreate(protected.Group("/skills"))
}
