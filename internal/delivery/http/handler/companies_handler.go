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

type CompaniesHandler struct {
	client *cms.Client
	logger *logging.Logger
	views  *viewRegistry[*datasync.Companies]
}

func NewCompaniesHandler(client *cms.Client, logger *logging.Logger) *CompaniesHandler {
	return &CompaniesHandler{client: client, logger: logger, views: newViewRegistry[*datasync.Companies]()}
}

func (h *CompaniesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/search", h.Search)
	r.Post("/load-more", h.LoadMore)
	r.Post("/reset", h.Reset)
	r.Get("/trending", h.Trending)
	r.Get("/:id", h.Detail)
	r.Get("/:id/jobs", h.Jobs)
}

// RegisterCreate mounts the authenticated company-creation route.
func (h *CompaniesHandler) RegisterCreate(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Create)
}

func (h *CompaniesHandler) view(c fiber.Ctx) *datasync.Companies {
	sess := middleware.CurrentSession(c)
	return h.views.get(sess.ID, func() *datasync.Companies {
		return datasync.NewCompanies(h.client, h.logger)
	})
}

func (h *CompaniesHandler) ReleaseSession(sessionID string) {
	h.views.drop(sessionID)
}

func (h *CompaniesHandler) ReleaseIdle(cutoff time.Time) {
	h.views.dropIdle(cutoff)
}

func (h *CompaniesHandler) List(c fiber.Ctx) error {
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

func (h *CompaniesHandler) Search(c fiber.Ctx) error {
	req, err := decode[dto.CompanySearchRequest](c)
	if err != nil {
		return err
	}

	view := h.view(c)
	wanted := req.Params()
	err = view.Search(c.Context(), func(p cms.CompanySearchParams) cms.CompanySearchParams {
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

func (h *CompaniesHandler) LoadMore(c fiber.Ctx) error {
	view := h.view(c)
	if err := view.LoadMore(c.Context()); err != nil {
		return err
	}
	return h.respond(c, view)
}

func (h *CompaniesHandler) Reset(c fiber.Ctx) error {
	view := h.view(c)
	if err := view.Reset(c.Context()); err != nil {
		return err
	}
	return h.respond(c, view)
}

func (h *CompaniesHandler) respond(c fiber.Ctx, view *datasync.Companies) error {
	data, ok := view.Data()
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "No results", nil, view.Err())
	}
	return response.Paginated(c, data)
}

func (h *CompaniesHandler) Detail(c fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	company, err := h.client.GetCompany(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, company)
}

func (h *CompaniesHandler) Jobs(c fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	list, err := h.client.CompanyJobs(c.Context(), id, queryInt(c, "page"), queryInt(c, "pageSize"))
	if err != nil {
		return err
	}
	return response.Paginated(c, list)
}

func (h *CompaniesHandler) Trending(c fiber.Ctx) error {
	list, err := h.client.TrendingCompanies(c.Context(), queryInt(c, "limit"))
	if err != nil {
		return err
	}
	return response.Paginated(c, list)
}

// RegisterIndustries mounts the industry directory under its own path.
func (h *CompaniesHandler) RegisterIndustries(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Industries)
}

func (h *CompaniesHandler) Industries(c fiber.Ctx) error {
	list, err := h.client.ListIndustries(c.Context())
	if err != nil {
		return err
	}
	return response.Paginated(c, list)
}

func (h *CompaniesHandler) Create(c fiber.Ctx) error {
	req, err := decode[dto.CompanyRequest](c)
	if err != nil {
		return err
	}
	company, err := h.client.CreateCompany(c.Context(), req.Input())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Company created", company)
}
