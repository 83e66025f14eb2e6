package params

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var ErrHandlerAlreadyRegistered = errors.New("param handler already registered")

type handlerRegistry struct {
	mu      sync.RWMutex
	entries []Handler
}

func newHandlerRegistry() *handlerRegistry {
	return &handlerRegistry{}
}

func (r *handlerRegistry) register(h Handler) error {
	if h == nil {
		return fmt.Errorf("cannot register nil param handler")
	}
	name := strings.TrimSpace(h.Name())
	if name == "" {
		return fmt.Errorf("cannot register param handler with empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.entries {
		if entry.Name() == name {
			return fmt.Errorf("%w: %q", ErrHandlerAlreadyRegistered, name)
		}
	}
	r.entries = append(r.entries, h)
	return nil
}

// snapshot returns the handlers in registration order. The order is part
// of the engine's semantics: it decides which rule claims a field first
// and in which order defaults and fallbacks apply.
func (r *handlerRegistry) snapshot() []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Handler, len(r.entries))
	copy(out, r.entries)
	return out
}

var defaultHandlerRegistry = newHandlerRegistry()

// Register adds a translation rule to the process-wide registry. All
// registration must happen before the first translation pass; the
// registry is read-only from then on.
func Register(h Handler) error {
	return defaultHandlerRegistry.register(h)
}

// KnownHandlers returns all registered rules in registration order.
func KnownHandlers() []Handler {
	return defaultHandlerRegistry.snapshot()
}

func init() {
	for _, h := range builtinHandlers() {
		if err := defaultHandlerRegistry.register(h); err != nil {
			panic(err)
		}
	}
}
