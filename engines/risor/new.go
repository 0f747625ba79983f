// Package risor evaluates compiled PMML models on the Risor engine.
package risor

import (
	"fmt"
	"log/slog"

	"github.com/caoguofeng92/drools/engines/risor/compiler"
	"github.com/caoguofeng92/drools/engines/risor/evaluator"
	"github.com/caoguofeng92/drools/platform/constants"
	"github.com/caoguofeng92/drools/platform/data"
	"github.com/caoguofeng92/drools/platform/functions"
	"github.com/caoguofeng92/drools/platform/script"
	"github.com/caoguofeng92/drools/procedure"
)

// FromModule creates a Risor evaluator for module that reads its input
// from the context (ContextProvider).
func FromModule(
	logHandler slog.Handler,
	module *procedure.Module,
) (*evaluator.Evaluator, error) {
	return NewEvaluator(
		logHandler,
		module,
		data.NewContextProvider(constants.EvalData),
		nil,
	)
}

// FromModuleWithData creates a Risor evaluator with both static and
// runtime input. Runtime entries added with AddDataToContext shadow static
// entries of the same name.
func FromModuleWithData(
	logHandler slog.Handler,
	module *procedure.Module,
	staticData data.Context,
) (*evaluator.Evaluator, error) {
	provider := data.NewCompositeProvider(
		data.NewStaticProvider(staticData),
		data.NewContextProvider(constants.EvalData),
	)
	return NewEvaluator(logHandler, module, provider, nil)
}

// NewCompiler creates a new Risor compiler using the functional options pattern.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// NewEvaluator compiles module and returns an evaluator ready for execution.
// A nil host calls into the default function library.
func NewEvaluator(
	logHandler slog.Handler,
	module *procedure.Module,
	dataProvider data.Provider,
	host *functions.Host,
) (*evaluator.Evaluator, error) {
	if dataProvider == nil {
		return nil, fmt.Errorf("provider is nil")
	}

	var opts []compiler.FunctionalOption
	if logHandler != nil {
		opts = append(opts, compiler.WithLogHandler(logHandler))
	}

	c, err := NewCompiler(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Risor compiler: %w", err)
	}

	execUnit, err := script.NewExecutableUnit(logHandler, "", module, c, dataProvider)
	if err != nil {
		return nil, err
	}

	return evaluator.New(logHandler, execUnit, host), nil
}
