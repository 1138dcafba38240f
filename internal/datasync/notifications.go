package datasync

import (
	"context"
	"sync"
	"time"

	"jobboard/internal/cms"
	"jobboard/internal/domain"
	"jobboard/internal/pkg/logging"
)

const defaultPollInterval = time.Minute

// NotificationPoller keeps an unread-notification count warm by refetching
// it on a fixed interval while started. Refresh failures are logged and
// the last known count stands; the count is a hint, not a ledger.
type NotificationPoller struct {
	client   *cms.Client
	logger   *logging.Logger
	interval time.Duration

	mu     sync.Mutex
	unread int
	cancel context.CancelFunc
	done   chan struct{}
}

func NewNotificationPoller(client *cms.Client, interval time.Duration, logger *logging.Logger) *NotificationPoller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &NotificationPoller{client: client, logger: logger, interval: interval}
}

// Start begins polling for userID. Calling Start on a running poller
// restarts it. The ctx carries the session whose token authorizes the
// unread-count calls.
func (p *NotificationPoller) Start(ctx context.Context, userID int) {
	p.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	p.mu.Lock()
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	go p.run(ctx, userID, done)
}

func (p *NotificationPoller) run(ctx context.Context, userID int, done chan struct{}) {
	defer close(done)

	p.refresh(ctx, userID)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx, userID)
		}
	}
}

func (p *NotificationPoller) refresh(ctx context.Context, userID int) {
	count, err := p.client.UnreadCount(ctx, userID)
	if err != nil {
		p.logger.Warn("unread count refresh failed", "user", userID, "err", err)
		return
	}
	p.mu.Lock()
	p.unread = count
	p.mu.Unlock()
}

// Stop halts polling and waits for the loop to exit. Safe on a poller that
// was never started.
func (p *NotificationPoller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// Unread returns the last fetched count.
func (p *NotificationPoller) Unread() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.unread
}

// Notifications is the notification-list view for one user.
type Notifications struct {
	*Collection[cms.NotificationListParams, domain.Notification]
}

func NewNotifications(client *cms.Client, userID int, logger *logging.Logger) *Notifications {
	c := NewCollection("notifications", client.ListNotifications, logger)
	c.params = cms.NotificationListParams{UserID: userID}.Defaults()
	return &Notifications{Collection: c}
}
