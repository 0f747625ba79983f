// Package functions holds the runtime side of generated procedures: the
// library of functions an Apply expression can name, and the host calls the
// rendered scripts use to read their name-value context.
package functions

import (
	"fmt"
	"slices"
	"sync"

	"github.com/caoguofeng92/drools/platform/data"
)

// Function is a library function. ctx is the name-value context of the calling
// procedure; args are the already evaluated operands, nil when missing.
type Function func(ctx data.Context, args ...any) (any, error)

// Library is a concurrency-safe registry of functions by name.
type Library struct {
	mu    sync.RWMutex
	funcs map[string]Function
}

// NewLibrary returns an empty Library.
func NewLibrary() *Library {
	return &Library{funcs: make(map[string]Function)}
}

// Default returns a new Library holding the built-in functions.
func Default() *Library {
	l := NewLibrary()
	for name, fn := range builtins() {
		l.funcs[name] = fn
	}
	return l
}

// Register adds fn under name. Names are unique.
func (l *Library) Register(name string, fn Function) error {
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return fmt.Errorf("%w: %s", ErrNilFunction, name)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.funcs[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateFunction, name)
	}
	l.funcs[name] = fn
	return nil
}

// Lookup returns the function registered under name.
func (l *Library) Lookup(name string) (Function, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn, ok := l.funcs[name]
	return fn, ok
}

// Call invokes the function registered under name.
func (l *Library) Call(ctx data.Context, name string, args ...any) (any, error) {
	fn, ok := l.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}

	result, err := fn(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return result, nil
}

// Names returns the registered names, sorted.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.funcs))
	for name := range l.funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
