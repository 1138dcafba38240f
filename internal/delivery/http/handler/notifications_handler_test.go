package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"jobboard/internal/cms"
	"jobboard/internal/config"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain"
	"jobboard/internal/pkg/logging"
	"jobboard/internal/session"
)

// notificationsBackend fakes the CMS notification endpoints and counts
// how often each one is hit, so tests can tell a cache hit from a
// refetch.
type notificationsBackend struct {
	listCalls   atomic.Int64
	unreadCalls atomic.Int64
	allRead     atomic.Bool
}

func (b *notificationsBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/notifications":
			if r.URL.Query().Get("pagination[pageSize]") == "1" {
				b.unreadCalls.Add(1)
				fmt.Fprint(w, `{"data": [], "meta": {"pagination": {"page": 1, "pageSize": 1, "pageCount": 1, "total": 3}}}`)
				return
			}
			b.listCalls.Add(1)
			fmt.Fprintf(w, `{"data": [{"id": 1, "title": "Application update", "isRead": %t}], "meta": {"pagination": {"page": 1, "pageSize": 10, "pageCount": 1, "total": 1}}}`, b.allRead.Load())
		case r.Method == http.MethodPost && r.URL.Path == "/api/notifications/mark-all-read":
			b.allRead.Store(true)
			fmt.Fprint(w, `{}`)
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/notifications/"):
			fmt.Fprint(w, `{"data": {"id": 1, "title": "Application update", "isRead": true}}`)
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/notifications/"):
			fmt.Fprint(w, `{}`)
		default:
			http.NotFound(w, r)
		}
	}
}

type notificationsFixture struct {
	app           *fiber.App
	backend       *notificationsBackend
	notifications *NotificationsHandler
}

const testSessionID = "sess-1"

func newNotificationsFixture(t *testing.T, pollInterval time.Duration) *notificationsFixture {
	t.Helper()

	backend := &notificationsBackend{}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore(time.Hour)
	mgr := session.NewManager(store, logging.Nop())
	client := cms.NewClient(config.CMSConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, mgr, logging.Nop())
	mgr.Bind(client)

	sess := &session.Session{ID: testSessionID, Token: "tok", User: &domain.User{ID: 7}, CreatedAt: time.Now()}
	if err := store.Set(context.Background(), sess); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	notifications := NewNotificationsHandler(client, pollInterval, logging.Nop())
	t.Cleanup(func() { notifications.ReleaseSession(testSessionID) })

	app := fiber.New()
	app.Use(middleware.NewSessionMiddleware(mgr, time.Hour, logging.Nop()).Middleware())
	notifications.RegisterRoutes(app.Group("/api/notifications"))
	NewAuthHandler(mgr, logging.Nop(), notifications).RegisterRoutes(app.Group("/api/auth"))

	return &notificationsFixture{app: app, backend: backend, notifications: notifications}
}

func (f *notificationsFixture) request(t *testing.T, method, path string) string {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.AddCookie(&http.Cookie{Name: "jb_session", Value: testSessionID})
	resp, err := f.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("%s %s: status %d, body %s", method, path, resp.StatusCode, body)
	}
	return string(body)
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestNotificationsHandler_MarkAllReadInvalidatesCachedList(t *testing.T) {
	f := newNotificationsFixture(t, time.Hour)

	if body := f.request(t, "GET", "/api/notifications"); !strings.Contains(body, `"isRead":false`) {
		t.Fatalf("first list must show unread items, got %s", body)
	}
	f.request(t, "GET", "/api/notifications")
	if got := f.backend.listCalls.Load(); got != 1 {
		t.Fatalf("identical list request must be served from cache, backend calls = %d", got)
	}

	f.request(t, "POST", "/api/notifications/read-all")

	body := f.request(t, "GET", "/api/notifications")
	if got := f.backend.listCalls.Load(); got != 2 {
		t.Fatalf("list after mark-all-read must refetch, backend calls = %d", got)
	}
	if !strings.Contains(body, `"isRead":true`) {
		t.Fatalf("list after mark-all-read must show read items, got %s", body)
	}
}

func TestNotificationsHandler_MarkReadAndDeleteInvalidateCachedList(t *testing.T) {
	f := newNotificationsFixture(t, time.Hour)

	f.request(t, "GET", "/api/notifications")

	f.request(t, "POST", "/api/notifications/1/read")
	f.request(t, "GET", "/api/notifications")
	if got := f.backend.listCalls.Load(); got != 2 {
		t.Fatalf("list after mark-read must refetch, backend calls = %d", got)
	}

	f.request(t, "DELETE", "/api/notifications/1")
	f.request(t, "GET", "/api/notifications")
	if got := f.backend.listCalls.Load(); got != 3 {
		t.Fatalf("list after delete must refetch, backend calls = %d", got)
	}
}

func TestNotificationsHandler_LogoutStopsPoller(t *testing.T) {
	f := newNotificationsFixture(t, 10*time.Millisecond)

	f.request(t, "POST", "/api/notifications/poll/start")
	waitFor(t, "poller to poll", func() bool { return f.backend.unreadCalls.Load() >= 2 })

	f.request(t, "POST", "/api/auth/logout")

	if _, ok := f.notifications.pollers.peek(testSessionID); ok {
		t.Fatalf("poller must be dropped on logout")
	}
	time.Sleep(20 * time.Millisecond)
	calls := f.backend.unreadCalls.Load()
	time.Sleep(50 * time.Millisecond)
	if got := f.backend.unreadCalls.Load(); got != calls {
		t.Fatalf("poller kept polling after logout: %d then %d", calls, got)
	}
}

func TestSessionSweeper_SweepStopsIdlePollers(t *testing.T) {
	f := newNotificationsFixture(t, 10*time.Millisecond)

	f.request(t, "GET", "/api/notifications")
	f.request(t, "POST", "/api/notifications/poll/start")
	waitFor(t, "poller to poll", func() bool { return f.backend.unreadCalls.Load() >= 1 })

	// Zero TTL puts the cutoff at now, so everything registered counts
	// as idle.
	NewSessionSweeper(0, logging.Nop(), f.notifications).Sweep()

	if _, ok := f.notifications.views.peek(testSessionID); ok {
		t.Fatalf("idle view must be evicted")
	}
	if _, ok := f.notifications.pollers.peek(testSessionID); ok {
		t.Fatalf("idle poller must be evicted")
	}
	time.Sleep(20 * time.Millisecond)
	calls := f.backend.unreadCalls.Load()
	time.Sleep(50 * time.Millisecond)
	if got := f.backend.unreadCalls.Load(); got != calls {
		t.Fatalf("poller kept polling after sweep: %d then %d", calls, got)
	}
}
