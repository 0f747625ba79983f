package data

import (
	"context"
)

// Getter defines the interface for retrieving the name-value context of an evaluation.
type Getter interface {
	GetData(ctx context.Context) (Context, error)
}

// Setter prepares data for evaluation by enriching a context.
// This interface supports separating data preparation from evaluation, enabling
// architectures where these steps happen in different places.
type Setter interface {
	// AddDataToContext appends the given name-value entries, in order, to the data
	// stored in ctx and returns the enriched context.
	//
	// Example:
	//  input := data.Context{{Name: "age", Value: 42}}
	//  enrichedCtx, err := evaluator.AddDataToContext(ctx, input)
	//  if err != nil {
	//      return err
	//  }
	//  result, err := evaluator.Eval(enrichedCtx)
	AddDataToContext(ctx context.Context, d ...Context) (context.Context, error)
}

// Provider defines the interface for accessing runtime data for procedure evaluation.
type Provider interface {
	// Getter retrieves associated data from a context during eval.
	Getter

	// Setter enriches a context with data, to be read back by the Getter.
	Setter
}
