package data

import (
	"context"
	"fmt"

	"github.com/caoguofeng92/drools/platform/constants"
)

// ContextProvider retrieves and stores data in the context using a specified key.
type ContextProvider struct {
	contextKey constants.ContextKey
}

// NewContextProvider creates a new ContextProvider with the given context key.
// The context key determines where data is stored in the context object.
func NewContextProvider(contextKey constants.ContextKey) *ContextProvider {
	return &ContextProvider{
		contextKey: contextKey,
	}
}

// GetData extracts data from the context using the configured context key.
func (p *ContextProvider) GetData(ctx context.Context) (Context, error) {
	if p.contextKey == "" {
		return nil, ErrEmptyContextKey
	}

	value := ctx.Value(p.contextKey)
	if value == nil {
		return Context{}, nil
	}

	d, ok := value.(Context)
	if !ok {
		return nil, fmt.Errorf("invalid input data type: expected data.Context, got %T", value)
	}

	return d.Clone(), nil
}

// AddDataToContext appends the provided entries to the ones already stored in
// the context. Entries keep their order; earlier entries win on lookup.
func (p *ContextProvider) AddDataToContext(
	ctx context.Context,
	d ...Context,
) (context.Context, error) {
	if p.contextKey == "" {
		return ctx, ErrEmptyContextKey
	}

	var toStore Context
	if existing, ok := ctx.Value(p.contextKey).(Context); ok {
		toStore = existing.Clone()
	}

	for _, entries := range d {
		for _, nv := range entries {
			if nv.Name == "" {
				return ctx, fmt.Errorf("%w: empty names are not allowed", ErrInvalidPair)
			}
		}
		toStore = append(toStore, entries...)
	}

	return context.WithValue(ctx, p.contextKey, toStore), nil
}
