package datasync

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"jobboard/internal/cms"
	"jobboard/internal/pkg/logging"
)

// Pager is satisfied by every search-parameter type: it exposes the page
// cursor and a way to rebuild the default parameter set.
type Pager[P any] interface {
	CurrentPage() int
	WithPage(page int) P
	Defaults() P
}

// FetchFunc retrieves one page of a resource for a parameter set.
type FetchFunc[P, T any] func(ctx context.Context, params P) (cms.List[T], error)

// Collection tracks one list view of a backend resource: the current
// parameter set, the last successful page, and a per-parameter-set cache
// so an identical request is served without a network call. Concurrent
// refreshes are ordered by a sequence counter; a response that was
// superseded by a newer request is discarded instead of overwriting
// fresher state.
type Collection[P Pager[P], T any] struct {
	resource string
	fetch    FetchFunc[P, T]
	logger   *logging.Logger

	mu        sync.Mutex
	params    P
	data      *cms.List[T]
	err       error
	loading   bool
	searching bool
	seq       uint64
	cache     map[string]cms.List[T]
}

func NewCollection[P Pager[P], T any](resource string, fetch FetchFunc[P, T], logger *logging.Logger) *Collection[P, T] {
	if logger == nil {
		logger = logging.Nop()
	}
	var zero P
	return &Collection[P, T]{
		resource: resource,
		fetch:    fetch,
		logger:   logger,
		params:   zero.Defaults(),
		cache:    make(map[string]cms.List[T]),
	}
}

// Refresh fetches the current parameter set, serving from cache when the
// identical set was fetched before.
func (c *Collection[P, T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	params := c.params
	key := cacheKey(c.resource, params)
	if cached, ok := c.cache[key]; ok {
		hit := cached
		c.data = &hit
		c.err = nil
		c.mu.Unlock()
		c.logger.Debug("collection cache hit", "resource", c.resource, "key", key)
		return nil
	}
	c.seq++
	seq := c.seq
	c.loading = true
	c.mu.Unlock()

	list, err := c.fetch(ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		// A newer request was issued while this one was in flight; its
		// result owns the state now.
		c.logger.Debug("discarding superseded response", "resource", c.resource)
		return nil
	}
	c.loading = false
	if err != nil {
		c.err = err
		return err
	}
	c.err = nil
	c.data = &list
	c.cache[key] = list
	return nil
}

// Search merges a parameter patch over the current set, rewinds to the
// first page and marks the collection as actively searched.
func (c *Collection[P, T]) Search(ctx context.Context, merge func(P) P) error {
	c.mu.Lock()
	c.params = merge(c.params).WithPage(1)
	c.searching = true
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// UpdateParams replaces the parameter set wholesale.
func (c *Collection[P, T]) UpdateParams(ctx context.Context, params P) error {
	c.mu.Lock()
	c.params = params
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// LoadMore advances to the next page. On the last page it is a no-op; the
// fetched page replaces the visible result set rather than appending to it.
func (c *Collection[P, T]) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if c.data == nil || !c.data.Pagination.HasMore() {
		c.mu.Unlock()
		return nil
	}
	c.params = c.params.WithPage(c.data.Pagination.Page + 1)
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Reset restores default parameters, clears the searching flag and fetches
// the unfiltered baseline.
func (c *Collection[P, T]) Reset(ctx context.Context) error {
	c.mu.Lock()
	c.params = c.params.Defaults()
	c.searching = false
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// AppendCached optimistically adds an item created elsewhere to the
// current view and its cache entry, avoiding a refetch.
func (c *Collection[P, T]) AppendCached(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		return
	}
	c.data.Items = append(c.data.Items, item)
	c.data.Pagination.Total++
	key := cacheKey(c.resource, c.params)
	c.cache[key] = *c.data
}

// Invalidate drops every cached page; the next refresh hits the network.
func (c *Collection[P, T]) Invalidate() {
	c.mu.Lock()
	c.cache = make(map[string]cms.List[T])
	c.mu.Unlock()
}

// Data returns the last successful page, if any.
func (c *Collection[P, T]) Data() (cms.List[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		return cms.List[T]{}, false
	}
	return *c.data, true
}

func (c *Collection[P, T]) Params() P {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.params
}

func (c *Collection[P, T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Collection[P, T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Collection[P, T]) Searching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searching
}

// cacheKey derives a stable key from the resource name and the full
// parameter set; any field change, page included, is a distinct key.
func cacheKey(resource string, params any) string {
	b, _ := json.Marshal(params)
	sum := sha256.Sum256(b)
	return resource + ":" + hex.EncodeToString(sum[:])
}
