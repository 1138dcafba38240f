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

type JobsHandler struct {
	client *cms.Client
	logger *logging.Logger
	views  *viewRegistry[*datasync.Jobs]
}

func NewJobsHandler(client *cms.Client, logger *logging.Logger) *JobsHandler {
	return &JobsHandler{client: client, logger: logger, views: newViewRegistry[*datasync.Jobs]()}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/search", h.Search)
	r.Post("/filters", h.ApplyFilters)
	r.Post("/load-more", h.LoadMore)
	r.Post("/reset", h.Reset)
	r.Get("/featured", h.Featured)
	r.Get("/:idOrSlug", h.Detail)
	r.Get("/:id/similar", h.Similar)
}

func (h *JobsHandler) view(c fiber.Ctx) *datasync.Jobs {
	sess := middleware.CurrentSession(c)
	return h.views.get(sess.ID, func() *datasync.Jobs {
		return datasync.NewJobs(h.client, h.logger)
	})
}

// ReleaseSession implements SessionScoped.
func (h *JobsHandler) ReleaseSession(sessionID string) {
	h.views.drop(sessionID)
}

// ReleaseIdle implements SessionScoped.
func (h *JobsHandler) ReleaseIdle(cutoff time.Time) {
	h.views.dropIdle(cutoff)
}

// List serves the session's current job view, honoring simple browse
// parameters from the query string.
func (h *JobsHandler) List(c fiber.Ctx) error {
	view := h.view(c)

	params := view.Params()
	if page := queryInt(c, "page"); page > 0 {
		params.Page = page
	}
	if size := queryInt(c, "pageSize"); size > 0 {
		params.PageSize = size
	}
	if sort := c.Query("sort"); sort != "" {
		params.SortBy = sort
	}

	if err := view.UpdateParams(c.Context(), params); err != nil {
		return err
	}
	return h.respond(c, view)
}

func (h *JobsHandler) Search(c fiber.Ctx) error {
	req, err := decode[dto.JobSearchRequest](c)
	if err != nil {
		return err
	}

	view := h.view(c)
	wanted := req.Params()
	err = view.Search(c.Context(), func(p cms.JobSearchParams) cms.JobSearchParams {
		if wanted.PageSize == 0 {
			wanted.PageSize = p.PageSize
		}
		return wanted
	})
	if err != nil {
		return err
	}
	return h.respond(c, view)
}

func (h *JobsHandler) ApplyFilters(c fiber.Ctx) error {
	req, err := decode[dto.JobFilterRequest](c)
	if err != nil {
		return err
	}

	view := h.view(c)
	if err := view.ApplyFilters(c.Context(), req.State()); err != nil {
		return err
	}
	return h.respond(c, view)
}

func (h *JobsHandler) LoadMore(c fiber.Ctx) error {
	view := h.view(c)
	if err := view.LoadMore(c.Context()); err != nil {
		return err
	}
	return h.respond(c, view)
}

func (h *JobsHandler) Reset(c fiber.Ctx) error {
	view := h.view(c)
	if err := view.Reset(c.Context()); err != nil {
		return err
	}
	return h.respond(c, view)
}

func (h *JobsHandler) respond(c fiber.Ctx, view *datasync.Jobs) error {
	data, ok := view.Data()
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "No results", nil, view.Err())
	}
	return response.Paginated(c, data)
}

func (h *JobsHandler) Detail(c fiber.Ctx) error {
	job, err := h.client.GetJob(c.Context(), c.Params("idOrSlug"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, job)
}

func (h *JobsHandler) Similar(c fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	list, err := h.client.SimilarJobs(c.Context(), id, queryInt(c, "limit"))
	if err != nil {
		return err
	}
	return response.Paginated(c, list)
}

// RegisterTags mounts the popular-tag shelf under its own path.
func (h *JobsHandler) RegisterTags(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/popular", h.PopularTags)
}

func (h *JobsHandler) PopularTags(c fiber.Ctx) error {
	list, err := h.client.PopularTags(c.Context(), queryInt(c, "limit"))
	if err != nil {
		return err
	}
	return response.Paginated(c, list)
}

func (h *JobsHandler) Featured(c fiber.Ctx) error {
	list, err := h.client.FeaturedJobs(c.Context(), queryInt(c, "limit"))
	if err != nil {
		return err
	}
	return response.Paginated(c, list)
}
