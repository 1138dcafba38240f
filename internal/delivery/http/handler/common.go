package handler

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
)

// decode binds the JSON body into T and runs struct validation. Binding
// failures map to 400, validation failures to 422 with a field map.
func decode[T any](c fiber.Ctx) (T, error) {
	var req T
	if err := c.Bind().Body(&req); err != nil {
		return req, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if fields := dto.Validate(req); fields != nil {
		return req, middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", fields, nil)
	}
	return req, nil
}

func intParam(c fiber.Ctx, name string) (int, error) {
	v, err := strconv.Atoi(c.Params(name))
	if err != nil || v <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name, nil, err)
	}
	return v, nil
}

func queryInt(c fiber.Ctx, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}

// viewRegistry keeps one data-sync view per session so parameter state and
// the per-parameter cache survive across requests from the same visitor.
// Entries record when the session last touched them so idle ones can be
// evicted alongside their expired sessions.
type viewRegistry[V any] struct {
	mu sync.Mutex
	m  map[string]*viewEntry[V]
}

type viewEntry[V any] struct {
	view     V
	lastSeen time.Time
}

func newViewRegistry[V any]() *viewRegistry[V] {
	return &viewRegistry[V]{m: make(map[string]*viewEntry[V])}
}

func (r *viewRegistry[V]) get(sessionID string, create func() V) V {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.m[sessionID]; ok {
		e.lastSeen = time.Now()
		return e.view
	}
	v := create()
	r.m[sessionID] = &viewEntry[V]{view: v, lastSeen: time.Now()}
	return v
}

func (r *viewRegistry[V]) peek(sessionID string) (V, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.m[sessionID]
	if !ok {
		var zero V
		return zero, false
	}
	e.lastSeen = time.Now()
	return e.view, true
}

func (r *viewRegistry[V]) drop(sessionID string) (V, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.m[sessionID]
	if !ok {
		var zero V
		return zero, false
	}
	delete(r.m, sessionID)
	return e.view, true
}

// dropIdle removes every entry not touched since cutoff and returns the
// dropped views so callers can release whatever they hold.
func (r *viewRegistry[V]) dropIdle(cutoff time.Time) []V {
	r.mu.Lock()
	defer r.mu.Unlock()
	var dropped []V
	for id, e := range r.m {
		if e.lastSeen.Before(cutoff) {
			dropped = append(dropped, e.view)
			delete(r.m, id)
		}
	}
	return dropped
}
