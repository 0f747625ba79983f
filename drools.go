// Package drools compiles the transformations of a PMML model into procedures
// and evaluates them on an embedded script engine.
//
// A model is compiled once, when the evaluator is created, and can then be
// evaluated any number of times with different input:
//
//	eval, err := drools.FromPMMLFile("model.pmml")
//	ctx, err := eval.AddDataToContext(ctx, data.Context{{Name: "age", Value: 30}})
//	resp, err := eval.Eval(ctx)
//	fmt.Println(resp.Outputs())
package drools

import (
	"fmt"
	"log/slog"

	risorEngine "github.com/caoguofeng92/drools/engines/risor"
	starlarkEngine "github.com/caoguofeng92/drools/engines/starlark"
	"github.com/caoguofeng92/drools/engines/types"
	"github.com/caoguofeng92/drools/model"
	"github.com/caoguofeng92/drools/options"
	"github.com/caoguofeng92/drools/platform"
	"github.com/caoguofeng92/drools/platform/functions"
	"github.com/caoguofeng92/drools/platform/script/loader"
	"github.com/caoguofeng92/drools/pmml"
	"github.com/caoguofeng92/drools/procedure"
)

// NewStarlarkEvaluator creates an evaluator that runs the model on Starlark
func NewStarlarkEvaluator(opts ...options.Option) (*EvaluatorWrapper, error) {
	return NewEvaluator(types.Starlark, opts...)
}

// NewRisorEvaluator creates an evaluator that runs the model on Risor
func NewRisorEvaluator(opts ...options.Option) (*EvaluatorWrapper, error) {
	return NewEvaluator(types.Risor, opts...)
}

// NewEvaluator creates an evaluator for engineType
func NewEvaluator(engineType types.Type, opts ...options.Option) (*EvaluatorWrapper, error) {
	cfg := options.DefaultConfig(engineType)

	// Apply all options
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	// Apply defaults option as final step to fill in any missing values
	if err := options.WithDefaults()(cfg); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return createEvaluator(cfg)
}

// createEvaluator compiles the configured model and hands it to the engine
func createEvaluator(cfg *options.Config) (*EvaluatorWrapper, error) {
	module, err := CompileModel(cfg.GetHandler(), cfg.GetLoader(), cfg.GetSkipUnsupported())
	if err != nil {
		return nil, err
	}

	host := functions.NewHost(cfg.GetLibrary())

	var delegate platform.Evaluator
	switch cfg.GetEngineType() {
	case types.Starlark:
		delegate, err = starlarkEngine.NewEvaluator(cfg.GetHandler(), module, cfg.GetDataProvider(), host)
	case types.Risor:
		delegate, err = risorEngine.NewEvaluator(cfg.GetHandler(), module, cfg.GetDataProvider(), host)
	default:
		return nil, fmt.Errorf("unsupported engine type: %s", cfg.GetEngineType())
	}
	if err != nil {
		return nil, err
	}

	return NewEvaluatorWrapper(delegate, module, cfg.GetEngineType()), nil
}

// CompileModel loads the PMML document from l and compiles it into a module.
// When skipUnsupported is set, fields using an unsupported expression kind are
// left out with a warning instead of failing the compilation.
func CompileModel(
	handler slog.Handler,
	l loader.Loader,
	skipUnsupported bool,
) (*procedure.Module, error) {
	doc, err := pmml.Load(l)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}

	opts := []model.FunctionalOption{model.WithSkipUnsupported(skipUnsupported)}
	if handler != nil {
		opts = append(opts, model.WithLogHandler(handler))
	}
	c, err := model.New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Compile(doc)
}

// FromPMMLString creates a Starlark evaluator from PMML text
func FromPMMLString(content string, opts ...options.Option) (*EvaluatorWrapper, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}

	// Combine options, adding the loader
	allOpts := append([]options.Option{options.WithLoader(l)}, opts...)
	return NewStarlarkEvaluator(allOpts...)
}

// FromPMMLFile creates a Starlark evaluator from a PMML file
func FromPMMLFile(path string, opts ...options.Option) (*EvaluatorWrapper, error) {
	l, err := loader.NewFromDisk(path)
	if err != nil {
		return nil, err
	}

	allOpts := append([]options.Option{options.WithLoader(l)}, opts...)
	return NewStarlarkEvaluator(allOpts...)
}
