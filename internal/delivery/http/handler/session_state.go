package handler

import (
	"time"

	"jobboard/internal/pkg/logging"
)

// SessionScoped is implemented by handlers that hold per-session state
// outside the session store, such as view caches and pollers. Released
// state is rebuilt on demand the next time the session shows up.
type SessionScoped interface {
	// ReleaseSession drops everything held for one session.
	ReleaseSession(sessionID string)
	// ReleaseIdle drops state for sessions not seen since cutoff.
	ReleaseIdle(cutoff time.Time)
}

// SessionSweeper periodically releases handler state whose session has
// idled past the store TTL, so view caches and background pollers do not
// outlive the sessions that own them.
type SessionSweeper struct {
	ttl      time.Duration
	interval time.Duration
	logger   *logging.Logger
	targets  []SessionScoped

	stop chan struct{}
	done chan struct{}
}

func NewSessionSweeper(ttl time.Duration, logger *logging.Logger, targets ...SessionScoped) *SessionSweeper {
	if logger == nil {
		logger = logging.Nop()
	}
	interval := ttl / 4
	if interval <= 0 {
		interval = time.Minute
	}
	return &SessionSweeper{ttl: ttl, interval: interval, logger: logger, targets: targets}
}

// Start launches the sweep loop. Starting an already running sweeper is a
// no-op.
func (s *SessionSweeper) Start() {
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run()
}

func (s *SessionSweeper) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep releases state for every session idle longer than the TTL.
func (s *SessionSweeper) Sweep() {
	cutoff := time.Now().Add(-s.ttl)
	for _, t := range s.targets {
		t.ReleaseIdle(cutoff)
	}
}

// Stop halts the sweep loop and waits for it to exit. Safe on a sweeper
// that was never started.
func (s *SessionSweeper) Stop() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
	s.done = nil
}
