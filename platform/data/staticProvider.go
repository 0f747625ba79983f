package data

import (
	"context"
)

// StaticProvider returns a predefined name-value context regardless of the
// context.Context it is asked with. It's useful for tests and for inputs known
// when the evaluator is built.
type StaticProvider struct {
	data Context
}

// NewStaticProvider creates a new StaticProvider with the provided entries
func NewStaticProvider(d Context) *StaticProvider {
	return &StaticProvider{
		data: d.Clone(),
	}
}

// GetData returns a copy of the static entries
func (p *StaticProvider) GetData(_ context.Context) (Context, error) {
	return p.data.Clone(), nil
}

// AddDataToContext always fails: static data is fixed at construction time.
func (p *StaticProvider) AddDataToContext(
	ctx context.Context,
	_ ...Context,
) (context.Context, error) {
	return ctx, ErrStaticProviderNoRuntimeUpdates
}
