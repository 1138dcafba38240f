package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobboard/internal/cms"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/logging"
	"jobboard/internal/pkg/response"
)

type SavedJobsHandler struct {
	client *cms.Client
	logger *logging.Logger
}

func NewSavedJobsHandler(client *cms.Client, logger *logging.Logger) *SavedJobsHandler {
	return &SavedJobsHandler{client: client, logger: logger}
}

func (h *SavedJobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/:jobID", h.Save)
	r.Delete("/:id", h.Remove)
}

func (h *SavedJobsHandler) List(c fiber.Ctx) error {
	user := middleware.CurrentSession(c).User
	if user == nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Please log in", nil, nil)
	}
	list, err := h.client.SavedJobs(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return response.Paginated(c, list)
}

func (h *SavedJobsHandler) Save(c fiber.Ctx) error {
	user := middleware.CurrentSession(c).User
	if user == nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Please log in", nil, nil)
	}
	jobID, err := intParam(c, "jobID")
	if err != nil {
		return err
	}
	saved, err := h.client.SaveJob(c.Context(), user.ID, jobID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Job saved", saved)
}

func (h *SavedJobsHandler) Remove(c fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.client.RemoveSavedJob(c.Context(), id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Job unsaved", nil)
}
