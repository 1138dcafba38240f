package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"jobboard/internal/pkg/logging"
	"jobboard/internal/session"
)

const sessionCookie = "jb_session"

// SessionMiddleware resolves the visitor's session from a cookie and
// attaches it to the request context so the gateway client can read the
// bearer token at call time. A missing or unknown cookie yields a fresh
// anonymous session.
type SessionMiddleware struct {
	manager *session.Manager
	logger  *logging.Logger
	ttl     time.Duration
}

func NewSessionMiddleware(manager *session.Manager, ttl time.Duration, logger *logging.Logger) *SessionMiddleware {
	if logger == nil {
		logger = logging.Nop()
	}
	return &SessionMiddleware{manager: manager, logger: logger, ttl: ttl}
}

func (m *SessionMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		sess, err := m.manager.Resolve(c.Context(), c.Cookies(sessionCookie))
		if err != nil {
			m.logger.Error("session resolution failed", "err", err)
			return NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}

		c.Cookie(&fiber.Cookie{
			Name:     sessionCookie,
			Value:    sess.ID,
			Path:     "/",
			MaxAge:   int(m.ttl.Seconds()),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		c.SetContext(session.WithContext(c.Context(), sess))
		return c.Next()
	}
}

// RequireAuth guards routes that need a signed-in session.
func RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		sess := session.FromContext(c.Context())
		if !sess.Authenticated() {
			return NewAppError(fiber.StatusUnauthorized, "Please log in", nil, nil)
		}
		return c.Next()
	}
}

// CurrentSession is a convenience accessor for handlers.
func CurrentSession(c fiber.Ctx) *session.Session {
	return session.FromContext(c.Context())
}
