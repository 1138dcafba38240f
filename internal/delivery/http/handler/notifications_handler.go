package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"jobboard/internal/cms"
	"jobboard/internal/datasync"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/logging"
	"jobboard/internal/pkg/response"
	"jobboard/internal/session"
)

type NotificationsHandler struct {
	client       *cms.Client
	logger       *logging.Logger
	pollInterval time.Duration
	views        *viewRegistry[*datasync.Notifications]
	pollers      *viewRegistry[*datasync.NotificationPoller]
}

func NewNotificationsHandler(client *cms.Client, pollInterval time.Duration, logger *logging.Logger) *NotificationsHandler {
	return &NotificationsHandler{
		client:       client,
		logger:       logger,
		pollInterval: pollInterval,
		views:        newViewRegistry[*datasync.Notifications](),
		pollers:      newViewRegistry[*datasync.NotificationPoller](),
	}
}

func (h *NotificationsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/unread-count", h.UnreadCount)
	r.Post("/read-all", h.MarkAllRead)
	r.Post("/poll/start", h.StartPolling)
	r.Post("/poll/stop", h.StopPolling)
	r.Post("/:id/read", h.MarkRead)
	r.Delete("/:id", h.Delete)
}

func (h *NotificationsHandler) requireUser(c fiber.Ctx) (*session.Session, error) {
	sess := middleware.CurrentSession(c)
	if sess == nil || sess.User == nil {
		return nil, middleware.NewAppError(fiber.StatusUnauthorized, "Please log in", nil, nil)
	}
	return sess, nil
}

// invalidateView drops the session's cached notification pages after a
// mutation so the next list request refetches instead of replaying stale
// read flags.
func (h *NotificationsHandler) invalidateView(sessionID string) {
	if view, ok := h.views.peek(sessionID); ok {
		view.Invalidate()
	}
}

// ReleaseSession implements SessionScoped: the view cache is dropped and
// any running poller for the session is stopped.
func (h *NotificationsHandler) ReleaseSession(sessionID string) {
	h.views.drop(sessionID)
	if poller, ok := h.pollers.drop(sessionID); ok {
		poller.Stop()
	}
}

// ReleaseIdle implements SessionScoped.
func (h *NotificationsHandler) ReleaseIdle(cutoff time.Time) {
	h.views.dropIdle(cutoff)
	for _, poller := range h.pollers.dropIdle(cutoff) {
		poller.Stop()
	}
}

func (h *NotificationsHandler) List(c fiber.Ctx) error {
	sess, err := h.requireUser(c)
	if err != nil {
		return err
	}

	view := h.views.get(sess.ID, func() *datasync.Notifications {
		return datasync.NewNotifications(h.client, sess.User.ID, h.logger)
	})

	params := view.Params()
	params.OnlyUnread = c.Query("unread") == "true"
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

func (h *NotificationsHandler) UnreadCount(c fiber.Ctx) error {
	sess, err := h.requireUser(c)
	if err != nil {
		return err
	}

	// Serve the poller's warm count when one is running for this session.
	if poller, ok := h.pollers.peek(sess.ID); ok {
		return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]int{"unread": poller.Unread()})
	}

	count, err := h.client.UnreadCount(c.Context(), sess.User.ID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]int{"unread": count})
}

// StartPolling begins a background unread-count refresh for this session,
// replacing any poller already running.
func (h *NotificationsHandler) StartPolling(c fiber.Ctx) error {
	sess, err := h.requireUser(c)
	if err != nil {
		return err
	}

	poller := h.pollers.get(sess.ID, func() *datasync.NotificationPoller {
		return datasync.NewNotificationPoller(h.client, h.pollInterval, h.logger)
	})

	// The request context dies with the request; the poller gets a
	// detached context carrying the same session.
	ctx := session.WithContext(context.Background(), sess)
	poller.Start(ctx, sess.User.ID)
	return response.Success(c, fiber.StatusOK, "Polling started", nil)
}

func (h *NotificationsHandler) StopPolling(c fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return response.Success(c, fiber.StatusOK, "Polling stopped", nil)
	}
	if poller, ok := h.pollers.drop(sess.ID); ok {
		poller.Stop()
	}
	return response.Success(c, fiber.StatusOK, "Polling stopped", nil)
}

func (h *NotificationsHandler) MarkRead(c fiber.Ctx) error {
	sess, err := h.requireUser(c)
	if err != nil {
		return err
	}
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	n, err := h.client.MarkNotificationRead(c.Context(), id)
	if err != nil {
		return err
	}
	h.invalidateView(sess.ID)
	return response.Success(c, fiber.StatusOK, response.MessageOK, n)
}

func (h *NotificationsHandler) MarkAllRead(c fiber.Ctx) error {
	sess, err := h.requireUser(c)
	if err != nil {
		return err
	}
	if err := h.client.MarkAllNotificationsRead(c.Context(), sess.User.ID); err != nil {
		return err
	}
	h.invalidateView(sess.ID)
	return response.Success(c, fiber.StatusOK, "All notifications marked read", nil)
}

func (h *NotificationsHandler) Delete(c fiber.Ctx) error {
	sess, err := h.requireUser(c)
	if err != nil {
		return err
	}
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.client.DeleteNotification(c.Context(), id); err != nil {
		return err
	}
	h.invalidateView(sess.ID)
	return response.Success(c, fiber.StatusOK, "Notification deleted", nil)
}
