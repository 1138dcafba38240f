package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Pagination is the list metadata the backend returns alongside every
// collection response.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// HasMore reports whether pages remain after the current one.
func (p Pagination) HasMore() bool {
	return p.Page < p.PageCount
}

// List carries normalized collection items plus pagination metadata.
type List[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type listEnvelope struct {
	Data json.RawMessage `json:"data"`
	Meta struct {
		Pagination Pagination `json:"pagination"`
	} `json:"meta"`
}

type detailEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// getList fetches a collection endpoint and normalizes every entry.
func getList[T any](ctx context.Context, c *Client, path, fallback string) (List[T], error) {
	var env listEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &env, fallback); err != nil {
		return List[T]{}, err
	}
	items, err := decodeEntries[T](env.Data)
	if err != nil {
		return List[T]{}, fmt.Errorf("cms: decode list: %w", err)
	}
	return List[T]{Items: items, Pagination: env.Meta.Pagination}, nil
}

// getOne fetches a detail endpoint and normalizes the single entry.
func getOne[T any](ctx context.Context, c *Client, path, fallback string) (T, error) {
	var zero T
	var env detailEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &env, fallback); err != nil {
		return zero, err
	}
	return decodeEntry[T](env.Data)
}

func decodeEntries[T any](raw json.RawMessage) ([]T, error) {
	norm, err := normalizeRaw(raw)
	if err != nil {
		return nil, err
	}
	var items []T
	if len(norm) == 0 || string(norm) == "null" {
		return []T{}, nil
	}
	if err := json.Unmarshal(norm, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// toPayload converts a writable struct into the generic map shape the
// request envelope helpers operate on.
func toPayload(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeEntry[T any](raw json.RawMessage) (T, error) {
	var out T
	norm, err := normalizeRaw(raw)
	if err != nil {
		return out, err
	}
	if len(norm) == 0 || string(norm) == "null" {
		return out, nil
	}
	err = json.Unmarshal(norm, &out)
	return out, err
}
