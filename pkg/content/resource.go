package content

import (
	"bytes"
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"urmonov-web/pkg/logger"
)

// Result - bitta Fetch natijasi. Xatoda Data bo'sh qiymatda qoladi.
type Result[T any] struct {
	Data T
	Err  error
}

// OK reports whether the fetch succeeded.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Resource is a typed view of one content endpoint. Every Fetch issues its
// own GET; nothing is cached or shared between resources, even for the
// same path.
type Resource[T any] struct {
	client *Client
	path   string
	decode func(json.RawMessage) (T, error)
}

// One binds a single-record endpoint. A failed fetch yields a nil record.
func One[T any](c *Client, path string) *Resource[*T] {
	return &Resource[*T]{
		client: c,
		path:   path,
		decode: func(raw json.RawMessage) (*T, error) {
			var rec *T
			if err := json.Unmarshal(raw, &rec); err != nil {
				return nil, err
			}
			return rec, nil
		},
	}
}

// List binds a list endpoint. A body that is not a JSON array is treated
// as an empty list; a failed fetch yields an empty list as well.
func List[T any](c *Client, path string) *Resource[[]T] {
	return &Resource[[]T]{
		client: c,
		path:   path,
		decode: func(raw json.RawMessage) ([]T, error) {
			if !isArray(raw) {
				return []T{}, nil
			}
			items := []T{}
			if err := json.Unmarshal(raw, &items); err != nil {
				return []T{}, err
			}
			return items, nil
		},
	}
}

// Fetch performs exactly one GET and decodes the body.
func (r *Resource[T]) Fetch(ctx context.Context) Result[T] {
	var raw json.RawMessage
	if err := r.client.Get(ctx, r.path, &raw); err != nil {
		logger.Warn("Content fetch failed", zap.String("path", r.path), zap.Error(err))
		return Result[T]{Data: r.empty(), Err: err}
	}

	data, err := r.decode(raw)
	if err != nil {
		logger.Warn("Content decode failed", zap.String("path", r.path), zap.Error(err))
		return Result[T]{Data: r.empty(), Err: err}
	}
	return Result[T]{Data: data}
}

func (r *Resource[T]) empty() T {
	// decode("null") gives nil for records and an empty slice for lists
	v, _ := r.decode(json.RawMessage("null"))
	return v
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}
