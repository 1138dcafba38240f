package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard/internal/cms"
	"jobboard/internal/config"
	"jobboard/internal/domain"
	"jobboard/internal/pkg/logging"
)

func newTestManager(t *testing.T, handler http.HandlerFunc) (*Manager, Store) {
	t.Helper()
	store := NewMemoryStore(time.Hour)
	mgr := NewManager(store, logging.Nop())
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := cms.NewClient(config.CMSConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, mgr, logging.Nop())
	mgr.Bind(client)
	return mgr, store
}

func seedSession(t *testing.T, store Store, sess *Session) context.Context {
	t.Helper()
	if err := store.Set(context.Background(), sess); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return WithContext(context.Background(), sess)
}

func TestManager_LoginEstablishesSession(t *testing.T) {
	mgr, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/local" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"jwt": "tok-1", "user": {"id": 7, "username": "dev", "email": "dev@example.com"}}`))
	})

	sess := &Session{ID: "s1", CreatedAt: time.Now()}
	ctx := seedSession(t, store, sess)

	user, err := mgr.Login(ctx, "dev@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != 7 {
		t.Fatalf("unexpected user: %+v", user)
	}

	stored, err := store.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if stored.Token != "tok-1" || stored.User == nil || stored.User.ID != 7 {
		t.Fatalf("session not persisted: %+v", stored)
	}
	if tok, ok := mgr.Token(ctx); !ok || tok != "tok-1" {
		t.Fatalf("token source must resolve the new token, got %q %v", tok, ok)
	}
}

func TestManager_EvictClearsTokenAndUser(t *testing.T) {
	mgr, store := newTestManager(t, nil)

	sess := &Session{ID: "s2", Token: "tok", User: &domain.User{ID: 1}}
	ctx := seedSession(t, store, sess)

	mgr.Evict(ctx)

	if _, ok := mgr.Token(ctx); ok {
		t.Fatalf("token must be absent after eviction")
	}
	stored, _ := store.Get(context.Background(), "s2")
	if stored.Token != "" || stored.User != nil {
		t.Fatalf("stored session must be cleared: %+v", stored)
	}
}

func TestManager_BackendUnauthorizedEvictsToken(t *testing.T) {
	mgr, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "Invalid token"}}`))
	})

	exp := float64(time.Now().Add(time.Hour).Unix())
	sess := &Session{ID: "s3", Token: forgeToken(t, map[string]any{"exp": exp}), User: &domain.User{ID: 3}}
	ctx := seedSession(t, store, sess)

	if _, err := mgr.Hydrate(ctx); err == nil {
		t.Fatalf("expected error from rejected token")
	}

	stored, _ := store.Get(context.Background(), "s3")
	if stored.Token != "" || stored.User != nil {
		t.Fatalf("401 must clear the session, got %+v", stored)
	}
}

func TestManager_HydrateStaleUserWithoutToken(t *testing.T) {
	called := false
	mgr, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	sess := &Session{ID: "s4", User: &domain.User{ID: 9, Username: "ghost"}}
	ctx := seedSession(t, store, sess)

	user, err := mgr.Hydrate(ctx)
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if user != nil {
		t.Fatalf("session without a token must hydrate unauthenticated, got %+v", user)
	}
	if called {
		t.Fatalf("no token means no current-user call")
	}
	stored, _ := store.Get(context.Background(), "s4")
	if stored.User != nil {
		t.Fatalf("stale user object must be removed, got %+v", stored.User)
	}
}

func TestManager_HydrateExpiredToken(t *testing.T) {
	called := false
	mgr, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	token := forgeToken(t, map[string]any{"exp": time.Now().Add(-time.Minute).Unix()})
	sess := &Session{ID: "s5", Token: token, User: &domain.User{ID: 2}}
	ctx := seedSession(t, store, sess)

	user, err := mgr.Hydrate(ctx)
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if user != nil || called {
		t.Fatalf("expired token must clear the session locally, user=%+v called=%v", user, called)
	}
	stored, _ := store.Get(context.Background(), "s5")
	if stored.Token != "" || stored.User != nil {
		t.Fatalf("expired session must be cleared, got %+v", stored)
	}
}

func TestManager_HydrateRefreshesUser(t *testing.T) {
	mgr, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			t.Errorf("current-user lookup must carry the bearer token")
		}
		_, _ = w.Write([]byte(`{"id": 9, "username": "renamed", "email": "dev@example.com"}`))
	})

	token := forgeToken(t, map[string]any{"exp": time.Now().Add(time.Hour).Unix()})
	sess := &Session{ID: "s6", Token: token, User: &domain.User{ID: 9, Username: "old"}}
	ctx := seedSession(t, store, sess)

	user, err := mgr.Hydrate(ctx)
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if user == nil || user.Username != "renamed" {
		t.Fatalf("hydrate must refresh the cached user, got %+v", user)
	}
	stored, _ := store.Get(context.Background(), "s6")
	if stored.User == nil || stored.User.Username != "renamed" {
		t.Fatalf("refreshed user not persisted: %+v", stored)
	}
}

func TestManager_ResolveUnknownIDStartsFresh(t *testing.T) {
	mgr, store := newTestManager(t, nil)

	sess, err := mgr.Resolve(context.Background(), "never-issued")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if sess.ID == "" || sess.ID == "never-issued" {
		t.Fatalf("expected a fresh session ID, got %q", sess.ID)
	}
	if stored, _ := store.Get(context.Background(), sess.ID); stored == nil {
		t.Fatalf("fresh session not persisted")
	}
}

func TestManager_LogoutDeletesSession(t *testing.T) {
	mgr, store := newTestManager(t, nil)

	sess := &Session{ID: "s7", Token: "tok", User: &domain.User{ID: 4}}
	ctx := seedSession(t, store, sess)

	if err := mgr.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if stored, _ := store.Get(context.Background(), "s7"); stored != nil {
		t.Fatalf("session must be gone after logout, got %+v", stored)
	}
}
