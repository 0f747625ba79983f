package data

import (
	"context"
	"fmt"
	"log/slog"
)

// AddDataToContextHelper implements the common logic engines use to add input
// data to a context before evaluation.
//
// Parameters:
//   - ctx: The base context to enrich
//   - logger: A logger instance for recording operations
//   - provider: The data provider to use for storing data
//   - d: Name-value entries to add to the context
//
// Returns:
//   - enrichedCtx: The context with added data
//   - err: Any error encountered during the operation
func AddDataToContextHelper(
	ctx context.Context,
	logger *slog.Logger,
	provider Provider,
	d ...Context,
) (context.Context, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if provider == nil {
		logger.WarnContext(ctx, "no data provider available for context preparation")
		return ctx, fmt.Errorf("no data provider available")
	}

	enrichedCtx, err := provider.AddDataToContext(ctx, d...)
	if err != nil {
		return ctx, fmt.Errorf("failed to prepare context: %w", err)
	}

	logger.DebugContext(ctx, "context prepared", "entries", len(d))
	return enrichedCtx, nil
}
