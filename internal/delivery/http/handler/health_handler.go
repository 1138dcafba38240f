package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/pkg/response"
)

type HealthHandler struct {
	cache *cache.Redis
}

func NewHealthHandler(c *cache.Redis) *HealthHandler {
	return &HealthHandler{cache: c}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	redisStatus := "ok"
	if err := h.cache.Ping(c.Context()); err != nil {
		redisStatus = "unavailable"
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]string{"redis": redisStatus})
}
