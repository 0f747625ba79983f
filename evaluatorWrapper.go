package drools

import (
	"context"

	"github.com/caoguofeng92/drools/engines/types"
	"github.com/caoguofeng92/drools/platform"
	"github.com/caoguofeng92/drools/platform/data"
	"github.com/caoguofeng92/drools/procedure"
)

// EvaluatorWrapper wraps an engine-specific evaluator and keeps the compiled
// module, so callers can inspect what is being evaluated.
type EvaluatorWrapper struct {
	delegate   platform.Evaluator
	module     *procedure.Module
	engineType types.Type
}

// NewEvaluatorWrapper creates a new evaluator wrapper
func NewEvaluatorWrapper(
	delegate platform.Evaluator,
	module *procedure.Module,
	engineType types.Type,
) *EvaluatorWrapper {
	return &EvaluatorWrapper{
		delegate:   delegate,
		module:     module,
		engineType: engineType,
	}
}

// Eval implements the platform.EvalOnly interface
func (e *EvaluatorWrapper) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	return e.delegate.Eval(ctx)
}

// Call implements the platform.Caller interface
func (e *EvaluatorWrapper) Call(ctx context.Context, procedure string, input data.Context) (any, error) {
	return e.delegate.Call(ctx, procedure, input)
}

// AddDataToContext implements the data.Setter interface
func (e *EvaluatorWrapper) AddDataToContext(ctx context.Context, d ...data.Context) (context.Context, error) {
	return e.delegate.AddDataToContext(ctx, d...)
}

// GetModule returns the compiled module
func (e *EvaluatorWrapper) GetModule() *procedure.Module {
	return e.module
}

// GetEngineType returns the engine the module runs on
func (e *EvaluatorWrapper) GetEngineType() types.Type {
	return e.engineType
}
