package model

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// Factory builds one typed record from one raw collection item. Every
// resource collection supplies its own.
type Factory[T any] func(raw map[string]any) (T, error)

// Collection is an ordered, read-only sequence of records decoded from a
// payload of the form {"<name>": [item, ...]}. Items keep payload order.
type Collection[T any] struct {
	name  string
	items []T
}

// NewCollection builds a collection from a payload holding exactly one key,
// whatever its name.
func NewCollection[T any](payload map[string]any, factory Factory[T]) (*Collection[T], error) {
	if len(payload) != 1 {
		return nil, schemaError("collection", "", "expected exactly one top-level key, got %d", len(payload))
	}
	var (
		name string
		v    any
	)
	for name, v = range payload {
	}
	return buildCollection(name, v, false, factory)
}

// CollectionFrom builds a collection from the list under key. Other
// top-level keys (paging flags and the like) are ignored.
func CollectionFrom[T any](payload map[string]any, key string, factory Factory[T]) (*Collection[T], error) {
	v, ok := payload[key]
	if !ok {
		return nil, schemaError(key, "", "missing collection key %q", key)
	}
	return buildCollection(key, v, false, factory)
}

// collectionOrEmpty is CollectionFrom for payloads where an absent or null
// list means no items.
func collectionOrEmpty[T any](payload map[string]any, key string, factory Factory[T]) (*Collection[T], error) {
	return buildCollection(key, payload[key], true, factory)
}

func buildCollection[T any](name string, v any, nullIsEmpty bool, factory Factory[T]) (*Collection[T], error) {
	if v == nil && nullIsEmpty {
		return &Collection[T]{name: name, items: []T{}}, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, schemaError(name, "", "expected list, got %s", kindOf(v))
	}

	items := make([]T, 0, len(raw))
	for i, item := range raw {
		path := fmt.Sprintf("[%d]", i)
		m, ok := item.(map[string]any)
		if !ok {
			return nil, schemaError(name, path, "expected object, got %s", kindOf(item))
		}
		rec, err := factory(m)
		if err != nil {
			return nil, rebase(name, path, err)
		}
		items = append(items, rec)
	}
	return &Collection[T]{name: name, items: items}, nil
}

// Name is the payload key the collection was read from.
func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) Len() int {
	return len(c.items)
}

// At returns the item at zero-based position i.
func (c *Collection[T]) At(i int) (T, error) {
	if i < 0 || i >= len(c.items) {
		var zero T
		return zero, fmt.Errorf("%s: %w: index %d, length %d", c.name, ErrIndexOutOfRange, i, len(c.items))
	}
	return c.items[i], nil
}

// Items returns a copy of the decoded records.
func (c *Collection[T]) Items() []T {
	return slices.Clone(c.items)
}

// All iterates positions and records in payload order. Each call starts
// from the first item.
func (c *Collection[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range c.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Values iterates records in payload order.
func (c *Collection[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range c.items {
			if !yield(item) {
				return
			}
		}
	}
}

// MarshalJSON writes the collection back in its keyed wire form. A zero
// Collection has no key and is written as a bare list.
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	items := c.items
	if items == nil {
		items = []T{}
	}
	if c.name == "" {
		return json.Marshal(items)
	}
	return json.Marshal(map[string][]T{c.name: items})
}
