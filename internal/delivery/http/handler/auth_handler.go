package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/logging"
	"jobboard/internal/pkg/response"
	"jobboard/internal/session"
)

type AuthHandler struct {
	sessions *session.Manager
	logger   *logging.Logger
	scoped   []SessionScoped
}

// NewAuthHandler builds the auth handler; scoped names the handlers whose
// per-session state must be released when the session is torn down.
func NewAuthHandler(sessions *session.Manager, logger *logging.Logger, scoped ...SessionScoped) *AuthHandler {
	return &AuthHandler{sessions: sessions, logger: logger, scoped: scoped}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/login", h.Login)
	r.Post("/register", h.Register)
	r.Post("/forgot-password", h.ForgotPassword)
	r.Post("/reset-password", h.ResetPassword)
	r.Post("/logout", h.Logout)
	r.Get("/me", h.Me)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	req, err := decode[dto.LoginRequest](c)
	if err != nil {
		return err
	}

	user, err := h.sessions.Login(c.Context(), req.Identifier, req.Password)
	if err != nil {
		return middleware.FromCMS(err)
	}
	return response.Success(c, fiber.StatusOK, "Logged in", user)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	req, err := decode[dto.RegisterRequest](c)
	if err != nil {
		return err
	}

	user, err := h.sessions.Register(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return middleware.FromCMS(err)
	}
	return response.Success(c, fiber.StatusCreated, "Registered", user)
}

func (h *AuthHandler) ForgotPassword(c fiber.Ctx) error {
	req, err := decode[dto.ForgotPasswordRequest](c)
	if err != nil {
		return err
	}

	if err := h.sessions.ForgotPassword(c.Context(), req.Email); err != nil {
		return middleware.FromCMS(err)
	}
	return response.Success(c, fiber.StatusOK, "Reset email sent", nil)
}

func (h *AuthHandler) ResetPassword(c fiber.Ctx) error {
	req, err := decode[dto.ResetPasswordRequest](c)
	if err != nil {
		return err
	}

	user, err := h.sessions.ResetPassword(c.Context(), req.Code, req.Password, req.PasswordConfirmation)
	if err != nil {
		return middleware.FromCMS(err)
	}
	return response.Success(c, fiber.StatusOK, "Password reset", user)
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	if err := h.sessions.Logout(c.Context()); err != nil {
		h.logger.Warn("logout failed", "err", err)
	}
	if sess != nil {
		for _, s := range h.scoped {
			s.ReleaseSession(sess.ID)
		}
	}
	return response.Success(c, fiber.StatusOK, "Logged out", nil)
}

// Me revalidates the session against the backend and returns the current
// user, or an unauthenticated payload when no live session exists.
func (h *AuthHandler) Me(c fiber.Ctx) error {
	user, err := h.sessions.Hydrate(c.Context())
	if err != nil {
		return middleware.FromCMS(err)
	}
	if user == nil {
		return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"authenticated": false})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"authenticated": true, "user": user})
}
