// Package evaluator runs Risor-compiled procedure modules.
package evaluator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caoguofeng92/drools/engines/risor/compiler"
	"github.com/caoguofeng92/drools/engines/risor/internal"
	"github.com/caoguofeng92/drools/internal/helpers"
	"github.com/caoguofeng92/drools/platform"
	"github.com/caoguofeng92/drools/platform/constants"
	"github.com/caoguofeng92/drools/platform/data"
	"github.com/caoguofeng92/drools/platform/functions"
	"github.com/caoguofeng92/drools/platform/script"
	risorLib "github.com/risor-io/risor"
)

var ErrUnknownProcedure = errors.New("unknown procedure")

// Evaluator is an abstraction layer for evaluating procedures on the Risor engine
type Evaluator struct {
	// ctxKey is the variable name used to access input data inside the engine (ctx)
	ctxKey string

	// hostOpts inject the host builtins into every VM
	hostOpts []risorLib.Option

	// execUnit contains the compiled module and data provider
	execUnit *script.ExecutableUnit

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new Evaluator. A nil host calls into the default function
// library.
func New(
	handler slog.Handler,
	execUnit *script.ExecutableUnit,
	host *functions.Host,
) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "risor", "Evaluator")
	if host == nil {
		host = functions.NewHost(nil)
	}

	return &Evaluator{
		ctxKey:     constants.Ctx,
		hostOpts:   internal.HostOptions(host),
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
}

func (be *Evaluator) String() string {
	return "risor.Evaluator"
}

func (be *Evaluator) programs() (compiler.Programs, error) {
	if be.execUnit == nil {
		return nil, fmt.Errorf("executable unit is nil")
	}
	if be.execUnit.GetContent() == nil {
		return nil, fmt.Errorf("content is nil")
	}

	bytecode := be.execUnit.GetContent().GetByteCode()
	if bytecode == nil {
		return nil, fmt.Errorf("bytecode is nil")
	}

	programs, ok := bytecode.(compiler.Programs)
	if !ok {
		return nil, fmt.Errorf(
			"unable to type assert bytecode into compiler.Programs, got %T",
			bytecode,
		)
	}
	return programs, nil
}

// loadInputData retrieves the name-value context from the unit's data provider.
func (be *Evaluator) loadInputData(ctx context.Context) (data.Context, error) {
	logger := be.logger.WithGroup("loadInputData")

	if be.execUnit == nil || be.execUnit.GetDataProvider() == nil {
		logger.WarnContext(ctx, "no data provider available, using empty data")
		return data.Context{}, nil
	}

	inputData, err := be.execUnit.GetDataProvider().GetData(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get input data from provider", "error", err)
		return nil, err
	}

	if len(inputData) == 0 {
		logger.WarnContext(ctx, "empty input data returned from provider")
	}
	logger.DebugContext(ctx, "input data loaded from provider", "entries", len(inputData))
	return inputData, nil
}

// exec runs the entry program of procedure on a fresh VM.
func (be *Evaluator) exec(
	ctx context.Context,
	programs compiler.Programs,
	procedure string,
	input data.Context,
) (any, error) {
	bytecode, ok := programs[procedure]
	if !ok || bytecode == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProcedure, procedure)
	}

	ctxOpts, err := internal.ConvertToRisorOptions(be.ctxKey, input)
	if err != nil {
		return nil, err
	}
	opts := append(ctxOpts, be.hostOpts...)

	result, err := risorLib.EvalCode(ctx, bytecode, opts...)
	if err != nil {
		return nil, fmt.Errorf("risor execution error: %w", err)
	}

	switch result.Type() {
	case "error":
		return nil, fmt.Errorf("error returned from script: %s", result.Inspect())
	case "function":
		return nil, fmt.Errorf("function object returned from script: %s", result.Inspect())
	}
	return internal.ConvertRisorObjectToInterface(result)
}

// Call runs a single procedure with input as its context.
func (be *Evaluator) Call(ctx context.Context, procedure string, input data.Context) (any, error) {
	programs, err := be.programs()
	if err != nil {
		return nil, err
	}
	return be.exec(ctx, programs, procedure, input)
}

// Eval computes every derived field of the unit's module from the context
// supplied by its data provider.
func (be *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	logger := be.logger.WithGroup("Eval")

	programs, err := be.programs()
	if err != nil {
		return nil, err
	}

	exeID := be.execUnit.GetID()
	if exeID == "" {
		return nil, fmt.Errorf("exeID is empty")
	}
	logger = logger.With("exeID", exeID)

	input, err := be.loadInputData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get input data: %w", err)
	}

	startTime := time.Now()
	outputs, err := platform.EvalOutputs(ctx, be.execUnit.GetModule(), input,
		func(ctx context.Context, procedure string, in data.Context) (any, error) {
			return be.exec(ctx, programs, procedure, in)
		})
	if err != nil {
		return nil, fmt.Errorf("exec error: %w", err)
	}

	result := platform.NewResponse(outputs, time.Since(startTime), exeID)
	logger.DebugContext(ctx, "exec complete", "result", result)
	return result, nil
}

// AddDataToContext implements the data.Setter interface which stores runtime
// data for a later Eval.
func (be *Evaluator) AddDataToContext(
	ctx context.Context,
	d ...data.Context,
) (context.Context, error) {
	logger := be.logger.WithGroup("AddDataToContext")

	if be.execUnit == nil || be.execUnit.GetDataProvider() == nil {
		return ctx, fmt.Errorf("no data provider available")
	}

	return data.AddDataToContextHelper(
		ctx,
		logger,
		be.execUnit.GetDataProvider(),
		d...,
	)
}
