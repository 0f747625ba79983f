package platform

import (
	"context"

	"github.com/caoguofeng92/drools/platform/data"
)

// EvalOnly is the interface for evaluating a compiled model.
type EvalOnly interface {
	// Eval computes every derived field of the model, in model order, from the
	// context supplied by the unit's data provider. Each output is appended to
	// the working context, so later fields can read earlier ones.
	//
	// Compilation happens once, when the evaluator is created; Eval can be
	// called any number of times, concurrently, with different contexts.
	Eval(ctx context.Context) (EvaluatorResponse, error)
}

// Caller invokes a single procedure of a compiled model.
type Caller interface {
	// Call runs the procedure named procedure with input as its context
	// parameter and returns its result as a Go value.
	Call(ctx context.Context, procedure string, input data.Context) (any, error)
}

// Evaluator combines evaluation, single procedure calls and data preparation.
type Evaluator interface {
	EvalOnly
	Caller
	data.Setter
}

// EvaluatorResponse is the result of Eval.
type EvaluatorResponse interface {
	// Outputs returns the derived fields in evaluation order.
	Outputs() data.Context

	// Interface returns the outputs as a map from field name to value.
	Interface() any

	// Inspect returns a printable representation of the outputs.
	Inspect() string

	// GetScriptExeID returns the ID of the executable unit that produced it.
	GetScriptExeID() string

	// GetExecTime returns how long the evaluation took.
	GetExecTime() string
}
