package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobboard/internal/cms"
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain"
	"jobboard/internal/pkg/logging"
	"jobboard/internal/pkg/response"
)

type ApplicationsHandler struct {
	client *cms.Client
	logger *logging.Logger
}

func NewApplicationsHandler(client *cms.Client, logger *logging.Logger) *ApplicationsHandler {
	return &ApplicationsHandler{client: client, logger: logger}
}

func (h *ApplicationsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/jobs/:id/apply", h.Apply)
	r.Get("/applications", h.List)
	r.Get("/applications/:id", h.Detail)
	r.Put("/applications/:id/status", h.UpdateStatus)
	r.Post("/upload", h.Upload)
}

// Apply submits an application for one job. A resume uploaded beforehand
// is attached by its asset ID.
func (h *ApplicationsHandler) Apply(c fiber.Ctx) error {
	jobID, err := intParam(c, "id")
	if err != nil {
		return err
	}
	req, err := decode[dto.ApplicationRequest](c)
	if err != nil {
		return err
	}

	input := req.Input()
	if user := middleware.CurrentSession(c).User; user != nil {
		input.ApplicantID = user.ID
	}

	app, err := h.client.SubmitApplication(c.Context(), jobID, input)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Application submitted", app)
}

func (h *ApplicationsHandler) List(c fiber.Ctx) error {
	user := middleware.CurrentSession(c).User
	if user == nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Please log in", nil, nil)
	}
	list, err := h.client.UserApplications(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return response.Paginated(c, list)
}

func (h *ApplicationsHandler) Detail(c fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	app, err := h.client.GetApplication(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, app)
}

func (h *ApplicationsHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	req, err := decode[dto.ApplicationStatusRequest](c)
	if err != nil {
		return err
	}

	app, err := h.client.UpdateApplicationStatus(c.Context(), id, domain.ApplicationStatus(req.Status))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Status updated", app)
}

// Upload accepts a multipart resume file and returns the stored asset.
func (h *ApplicationsHandler) Upload(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing file", nil, err)
	}
	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable file", nil, err)
	}
	defer f.Close()

	asset, err := h.client.UploadFile(c.Context(), fh.Filename, f)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "File uploaded", asset)
}
