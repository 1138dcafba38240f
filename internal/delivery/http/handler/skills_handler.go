package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"jobboard/internal/cms"
	"jobboard/internal/datasync"
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/logging"
	"jobboard/internal/pkg/response"
)

type SkillsHandler struct {
	client *cms.Client
	logger *logging.Logger
	views  *viewRegistry[*datasync.Skills]
}

func NewSkillsHandler(client *cms.Client, logger *logging.Logger) *SkillsHandler {
	return &SkillsHandler{client: client, logger: logger, views: newViewRegistry[*datasync.Skills]()}
}

func (h *SkillsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/popular", h.Popular)
	r.Get("/categories", h.Categories)
}

// RegisterCreate mounts the authenticated skill-creation route.
func (h *SkillsHandler) RegisterCreate(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Create)
}

func (h *SkillsHandler) view(c fiber.Ctx) *datasync.Skills {
	sess := middleware.CurrentSession(c)
	return h.views.get(sess.ID, func() *datasync.Skills {
		return datasync.NewSkills(h.client, h.logger)
	})
}

func (h *SkillsHandler) ReleaseSession(sessionID string) {
	h.views.drop(sessionID)
}

func (h *SkillsHandler) ReleaseIdle(cutoff time.Time) {
	h.views.dropIdle(cutoff)
}

func (h *SkillsHandler) List(c fiber.Ctx) error {
	view := h.view(c)

	params := view.Params()
	if name := c.Query("name"); name != "" {
		params.Name = name
	}
	if page := queryInt(c, "page"); page > 0 {
		params.Page = page
	}

	if err := view.UpdateParams(c.Context(), params); err != nil {
		return err
	}
	data, ok := view.Data()
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "No results", nil, view.Err())
	}
	return response.Paginated(c, data)
}

// Create registers a free-form skill; the session's cached skill list is
// updated in place so the new entry shows up without a refetch.
func (h *SkillsHandler) Create(c fiber.Ctx) error {
	req, err := decode[dto.SkillRequest](c)
	if err != nil {
		return err
	}

	view := h.view(c)
	skill, err := view.Create(c.Context(), cms.SkillInput{Name: req.Name, Slug: req.Slug, Category: req.Category})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Skill created", skill)
}

func (h *SkillsHandler) Popular(c fiber.Ctx) error {
	list, err := h.client.PopularSkills(c.Context(), queryInt(c, "limit"))
	if err != nil {
		return err
	}
	return response.Paginated(c, list)
}

func (h *SkillsHandler) Categories(c fiber.Ctx) error {
	list, err := h.client.SkillCategories(c.Context())
	if err != nil {
		return err
	}
	return response.Paginated(c, list)
}
