package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobboard/internal/cms"
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/logging"
	"jobboard/internal/pkg/response"
)

type ProfilesHandler struct {
	client *cms.Client
	logger *logging.Logger
}

func NewProfilesHandler(client *cms.Client, logger *logging.Logger) *ProfilesHandler {
	return &ProfilesHandler{client: client, logger: logger}
}

func (h *ProfilesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.Mine)

	seeker := r.Group("/job-seeker")
	seeker.Post("/", h.CreateJobSeeker)
	seeker.Get("/:id", h.GetJobSeeker)
	seeker.Put("/:id", h.UpdateJobSeeker)
	seeker.Put("/:id/skills", h.UpdateSkills)
	seeker.Post("/:id/education", h.AddEducation)
	seeker.Post("/:id/experience", h.AddExperience)
	seeker.Post("/:id/certifications", h.AddCertification)

	employer := r.Group("/employer")
	employer.Post("/", h.CreateEmployer)
	employer.Get("/:id", h.GetEmployer)
	employer.Put("/:id", h.UpdateEmployer)
}

func (h *ProfilesHandler) currentUserID(c fiber.Ctx) (int, error) {
	user := middleware.CurrentSession(c).User
	if user == nil {
		return 0, middleware.NewAppError(fiber.StatusUnauthorized, "Please log in", nil, nil)
	}
	return user.ID, nil
}

// Mine resolves both profile kinds for the signed-in user; either may be
// nil when onboarding is incomplete.
func (h *ProfilesHandler) Mine(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		return err
	}

	seeker, err := h.client.JobSeekerProfileByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	employer, err := h.client.EmployerProfileByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"jobSeekerProfile": seeker,
		"employerProfile":  employer,
	})
}

func (h *ProfilesHandler) CreateJobSeeker(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		return err
	}
	req, err := decode[dto.JobSeekerProfileRequest](c)
	if err != nil {
		return err
	}

	input := req.Input()
	input.UserID = userID
	profile, err := h.client.CreateJobSeekerProfile(c.Context(), input)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Profile created", profile)
}

func (h *ProfilesHandler) GetJobSeeker(c fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	profile, err := h.client.GetJobSeekerProfile(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profile)
}

func (h *ProfilesHandler) UpdateJobSeeker(c fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	req, err := decode[dto.JobSeekerProfileRequest](c)
	if err != nil {
		return err
	}

	profile, err := h.client.UpdateJobSeekerProfile(c.Context(), id, req.Input())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", profile)
}

func (h *ProfilesHandler) UpdateSkills(c fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	req, err := decode[dto.SkillIDsRequest](c)
	if err != nil {
		return err
	}

	if err := h.client.UpdateJobSeekerSkills(c.Context(), id, req.SkillIDs); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Skills updated", nil)
}

func (h *ProfilesHandler) AddEducation(c fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	req, err := decode[dto.EducationRequest](c)
	if err != nil {
		return err
	}

	record, err := h.client.AddEducation(c.Context(), id, req.Record())
	if err != nil {
		return middleware.FromCMS(err)
	}
	return response.Success(c, fiber.StatusCreated, "Education added", record)
}

func (h *ProfilesHandler) AddExperience(c fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	req, err := decode[dto.ExperienceRequest](c)
	if err != nil {
		return err
	}

	record, err := h.client.AddExperience(c.Context(), id, req.Record())
	if err != nil {
		return middleware.FromCMS(err)
	}
	return response.Success(c, fiber.StatusCreated, "Experience added", record)
}

func (h *ProfilesHandler) AddCertification(c fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	req, err := decode[dto.CertificationRequest](c)
	if err != nil {
		return err
	}

	record, err := h.client.AddCertification(c.Context(), id, req.Record())
	if err != nil {
		return middleware.FromCMS(err)
	}
	return response.Success(c, fiber.StatusCreated, "Certification added", record)
}

func (h *ProfilesHandler) CreateEmployer(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		return err
	}
	req, err := decode[dto.EmployerProfileRequest](c)
	if err != nil {
		return err
	}

	input := req.Input()
	input.UserID = userID
	profile, err := h.client.CreateEmployerProfile(c.Context(), input)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Profile created", profile)
}

func (h *ProfilesHandler) GetEmployer(c fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	profile, err := h.client.GetEmployerProfile(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profile)
}

func (h *ProfilesHandler) UpdateEmployer(c fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	req, err := decode[dto.EmployerProfileRequest](c)
	if err != nil {
		return err
	}

	profile, err := h.client.UpdateEmployerProfile(c.Context(), id, req.Input())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", profile)
}
