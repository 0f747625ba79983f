package data

import (
	"context"
	"errors"
	"fmt"
)

// CompositeProvider combines multiple providers, with later providers
// overriding values from earlier ones in the chain.
type CompositeProvider struct {
	providers []Provider
}

// NewCompositeProvider creates a provider that queries given providers in order.
func NewCompositeProvider(providers ...Provider) *CompositeProvider {
	return &CompositeProvider{
		providers: providers,
	}
}

// GetData concatenates the data of every provider. Lookups are first-match, so
// entries of later providers are placed first: a runtime value shadows a static
// one with the same name. Returns error on first provider failure.
func (p *CompositeProvider) GetData(ctx context.Context) (Context, error) {
	var result Context

	for i := len(p.providers) - 1; i >= 0; i-- {
		provider := p.providers[i]
		if provider == nil {
			continue
		}

		d, err := provider.GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("error from provider %d: %w", i, err)
		}
		result = append(result, d...)
	}

	if result == nil {
		result = Context{}
	}
	return result, nil
}

// AddDataToContext distributes data to all providers in the chain.
// Continues through all providers even if some fail. StaticProvider refusals
// are only reported when no other provider is present.
func (p *CompositeProvider) AddDataToContext(
	ctx context.Context,
	d ...Context,
) (context.Context, error) {
	finalCtx := ctx

	var errs []error
	var staticErrs []error
	successCount := 0
	totalCount := 0

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		nextCtx, err := provider.AddDataToContext(finalCtx, d...)
		if errors.Is(err, ErrStaticProviderNoRuntimeUpdates) {
			staticErrs = append(staticErrs, fmt.Errorf("error from provider %d: %w", i, err))
			continue
		}

		totalCount++
		if err != nil {
			errs = append(errs, fmt.Errorf("error from provider %d: %w", i, err))
			continue
		}

		finalCtx = nextCtx
		successCount++
	}

	if totalCount == 0 && len(staticErrs) > 0 {
		return ctx, errors.Join(staticErrs...)
	}

	if totalCount > 0 && successCount == 0 && len(errs) > 0 {
		return ctx, errors.Join(errs...)
	}

	return finalCtx, nil
}
