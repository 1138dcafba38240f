package datasync

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"jobboard/internal/cms"
	"jobboard/internal/config"
	"jobboard/internal/pkg/logging"
)

func TestNotificationPoller_RefreshesOnInterval(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"data": [], "meta": {"pagination": {"page":1,"pageSize":1,"pageCount":3,"total":3}}}`))
	}))
	defer srv.Close()
	client := cms.NewClient(config.CMSConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil, logging.Nop())

	p := NewNotificationPoller(client, 20*time.Millisecond, logging.Nop())
	p.Start(context.Background(), 7)

	deadline := time.After(2 * time.Second)
	for calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("poller made only %d calls", calls.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
	if got := p.Unread(); got != 3 {
		t.Fatalf("unread = %d, want 3", got)
	}

	p.Stop()
	settled := calls.Load()
	time.Sleep(60 * time.Millisecond)
	if calls.Load() != settled {
		t.Fatalf("poller kept fetching after Stop")
	}
}

func TestNotificationPoller_KeepsLastCountOnError(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) > 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"data": [], "meta": {"pagination": {"page":1,"pageSize":1,"pageCount":5,"total":5}}}`))
	}))
	defer srv.Close()
	client := cms.NewClient(config.CMSConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil, logging.Nop())

	p := NewNotificationPoller(client, 20*time.Millisecond, logging.Nop())
	p.Start(context.Background(), 7)
	defer p.Stop()

	deadline := time.After(2 * time.Second)
	for calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("poller made only %d calls", calls.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
	if got := p.Unread(); got != 5 {
		t.Fatalf("failed refreshes must not clobber the count, got %d", got)
	}
}

func TestNotificationPoller_StopBeforeStart(t *testing.T) {
	p := NewNotificationPoller(nil, time.Minute, logging.Nop())
	p.Stop()
}
