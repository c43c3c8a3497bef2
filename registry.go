// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sgl

import "log/slog"

// maxContexts bounds the process-wide context pool (spec.md §5/§6).
const maxContexts = 32

// registry is the process-wide fixed-size context pool, lazily
// populated and living until process exit (no multithreading concerns
// since the whole system is single-threaded — spec.md §5). Grounded on
// eid.go's slot-reuse identifier pool, generalized from a growable
// entity array to a fixed-capacity-32 slice of *Context.
var registry struct {
	contexts [maxContexts]*Context
	activeID int
	hasActive bool
}

// NewContext creates a Context directly, bypassing the registry — the
// Go-idiomatic entry point for callers that don't need the OpenGL-style
// numeric-id pool. Mirrors eng.go's "func New(...) (Engine, error)"
// constructor shape.
func NewContext(w, h int, attrs ...Attr) (*Context, error) {
	if w <= 0 || h <= 0 {
		return nil, &APIError{Kind: InvalidValue}
	}
	cfg := defaultConfig(w, h)
	for _, a := range attrs {
		a(&cfg)
	}
	return newContext(-1, cfg), nil
}

// CreateContext allocates a context in the process-wide registry and
// returns its id, or out_of_resources if all 32 slots are occupied.
func CreateContext(w, h int, attrs ...Attr) (int, error) {
	if w <= 0 || h <= 0 {
		return 0, &APIError{Kind: InvalidValue}
	}
	for i, c := range registry.contexts {
		if c == nil {
			cfg := defaultConfig(w, h)
			for _, a := range attrs {
				a(&cfg)
			}
			registry.contexts[i] = newContext(i, cfg)
			return i, nil
		}
	}
	slog.Warn("sgl: context registry exhausted", "capacity", maxContexts)
	return 0, &APIError{Kind: OutOfResources}
}

// Destroy removes context id from the registry. Destroying the current
// context is refused (spec.md §5/§6).
func Destroy(id int) error {
	c, err := lookup(id)
	if err != nil {
		return err
	}
	if registry.hasActive && registry.activeID == id {
		return &APIError{Kind: InvalidOperation}
	}
	c.alive = false
	registry.contexts[id] = nil
	return nil
}

// SetActive makes id the current context.
func SetActive(id int) error {
	if _, err := lookup(id); err != nil {
		return err
	}
	registry.activeID = id
	registry.hasActive = true
	return nil
}

// ActiveID returns the current context's id and whether one is set.
func ActiveID() (int, bool) {
	return registry.activeID, registry.hasActive
}

// Active returns the current context, or nil if none is set.
func Active() *Context {
	if !registry.hasActive {
		return nil
	}
	return registry.contexts[registry.activeID]
}

// ColorBuffer returns the row-major 3*W*H RGB color buffer of context id.
func ColorBuffer(id int) ([]float32, error) {
	c, err := lookup(id)
	if err != nil {
		return nil, err
	}
	return c.fb.Color, nil
}

func lookup(id int) (*Context, error) {
	if id < 0 || id >= maxContexts || registry.contexts[id] == nil {
		return nil, &APIError{Kind: InvalidValue}
	}
	return registry.contexts[id], nil
}
