package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobboard/internal/cms"
	"jobboard/internal/domain"
	"jobboard/internal/pkg/logging"
)

var ErrNoSession = errors.New("session: no session in context")

// Manager owns session lifecycle and doubles as the gateway client's token
// source: the current token is read from the request context at call time,
// never cached across calls.
type Manager struct {
	store  Store
	client *cms.Client
	logger *logging.Logger
}

func NewManager(store Store, logger *logging.Logger) *Manager {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Manager{store: store, logger: logger}
}

// Bind wires the gateway client after construction. The client itself is
// built with the manager as its token source, so the two reference each
// other.
func (m *Manager) Bind(client *cms.Client) {
	m.client = client
}

// Token implements cms.TokenSource.
func (m *Manager) Token(ctx context.Context) (string, bool) {
	sess := FromContext(ctx)
	if !sess.Authenticated() {
		return "", false
	}
	return sess.Token, true
}

// Evict implements cms.TokenSource. A 401 from any backend call lands
// here: the token and cached user are both dropped so the next guarded
// action sees an unauthenticated session.
func (m *Manager) Evict(ctx context.Context) {
	sess := FromContext(ctx)
	if sess == nil {
		return
	}
	sess.Token = ""
	sess.User = nil
	if err := m.store.Set(ctx, sess); err != nil {
		m.logger.Warn("failed to persist evicted session", "session", sess.ID, "err", err)
	}
}

// Resolve loads the session named by id, or starts a fresh anonymous one
// when id is blank or unknown.
func (m *Manager) Resolve(ctx context.Context, id string) (*Session, error) {
	if id != "" {
		sess, err := m.store.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load session: %w", err)
		}
		if sess != nil {
			return sess, nil
		}
	}
	sess := &Session{ID: uuid.NewString(), CreatedAt: time.Now().UTC()}
	if err := m.store.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

// Login exchanges credentials for a token and binds it to the current
// session.
func (m *Manager) Login(ctx context.Context, identifier, password string) (*domain.User, error) {
	resp, err := m.client.Login(ctx, identifier, password)
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, resp)
}

// Register creates a backend account and signs the session in.
func (m *Manager) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	resp, err := m.client.Register(ctx, username, email, password)
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, resp)
}

// ForgotPassword asks the backend to mail a reset code. No session state
// changes.
func (m *Manager) ForgotPassword(ctx context.Context, email string) error {
	return m.client.ForgotPassword(ctx, email)
}

// ResetPassword completes a password-reset flow; the backend returns a
// fresh token, so the session is signed in afterwards.
func (m *Manager) ResetPassword(ctx context.Context, code, password, confirmation string) (*domain.User, error) {
	resp, err := m.client.ResetPassword(ctx, code, password, confirmation)
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, resp)
}

func (m *Manager) establish(ctx context.Context, resp cms.AuthResponse) (*domain.User, error) {
	sess := FromContext(ctx)
	if sess == nil {
		return nil, ErrNoSession
	}
	user := resp.User
	sess.Token = resp.JWT
	sess.User = &user
	if err := m.store.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return sess.User, nil
}

// Logout drops the session record entirely.
func (m *Manager) Logout(ctx context.Context) error {
	sess := FromContext(ctx)
	if sess == nil {
		return nil
	}
	sess.Token = ""
	sess.User = nil
	return m.store.Delete(ctx, sess.ID)
}

// Hydrate reconciles the stored session against the backend. A cached user
// without a token, or an expired token, is stale state from a lapsed
// session and is cleared. A live token is revalidated against the
// current-user endpoint; any failure clears the session.
func (m *Manager) Hydrate(ctx context.Context) (*domain.User, error) {
	sess := FromContext(ctx)
	if sess == nil {
		return nil, ErrNoSession
	}

	if sess.Token == "" {
		if sess.User != nil {
			sess.User = nil
			if err := m.store.Set(ctx, sess); err != nil {
				m.logger.Warn("failed to clear stale session user", "session", sess.ID, "err", err)
			}
		}
		return nil, nil
	}

	if IsTokenExpired(sess.Token) {
		m.Evict(ctx)
		return nil, nil
	}

	user, err := m.client.Me(ctx)
	if err != nil {
		// A 401 already evicted the token through the token source; any
		// other failure leaves the session unauthenticated too.
		m.Evict(ctx)
		return nil, err
	}
	sess.User = &user
	if err := m.store.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return sess.User, nil
}

// CurrentUser returns the cached user without touching the network.
func (m *Manager) CurrentUser(ctx context.Context) *domain.User {
	sess := FromContext(ctx)
	if sess == nil {
		return nil
	}
	return sess.User
}
