// Package evaluator runs Starlark-compiled procedure modules.
package evaluator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/caoguofeng92/drools/engines/starlark/internal"
	"github.com/caoguofeng92/drools/internal/helpers"
	"github.com/caoguofeng92/drools/platform"
	"github.com/caoguofeng92/drools/platform/data"
	"github.com/caoguofeng92/drools/platform/functions"
	"github.com/caoguofeng92/drools/platform/script"
	starlarkLib "go.starlark.net/starlark"
)

var ErrUnknownProcedure = errors.New("unknown procedure")

// Evaluator is an abstraction layer for evaluating procedures on the Starlark engine
type Evaluator struct {
	// universe holds the standard modules and the host builtins
	universe starlarkLib.StringDict

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
	handler, logger := helpers.SetupLogger(handler, "starlark", "Evaluator")
	if host == nil {
		host = functions.NewHost(nil)
	}

	universe := internal.StarlarkModules()
	maps.Copy(universe, internal.HostBuiltins(host))

	return &Evaluator{
		universe:   universe,
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
}

func (be *Evaluator) String() string {
	return "starlark.Evaluator"
}

func (be *Evaluator) program() (*starlarkLib.Program, error) {
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

	prog, ok := bytecode.(*starlarkLib.Program)
	if !ok {
		return nil, fmt.Errorf(
			"invalid bytecode type: expected *starlark.Program, got %T",
			bytecode,
		)
	}
	return prog, nil
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

// session is one initialized program bound to a thread.
type session struct {
	thread  *starlarkLib.Thread
	globals starlarkLib.StringDict
	stop    func() bool
}

// newSession initializes the program on a fresh thread. The thread is
// cancelled when ctx is done; callers must call stop when finished.
func (be *Evaluator) newSession(ctx context.Context, prog *starlarkLib.Program) (*session, error) {
	logger := be.logger.WithGroup("session")

	thread := &starlarkLib.Thread{
		Name: "eval",
		Print: func(thread *starlarkLib.Thread, msg string) {
			logger.InfoContext(ctx, msg, "starlark-thread", thread.Name)
		},
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})

	globals, err := prog.Init(thread, be.universe)
	if err != nil {
		stop()
		return nil, fmt.Errorf("starlark initialization error: %w", err)
	}
	globals.Freeze()

	return &session{thread: thread, globals: globals, stop: stop}, nil
}

func (s *session) call(procedure string, input data.Context) (any, error) {
	fn, ok := s.globals[procedure].(starlarkLib.Callable)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProcedure, procedure)
	}

	arg, err := internal.ConvertToStarlarkValue(input)
	if err != nil {
		return nil, fmt.Errorf("failed to convert input data: %w", err)
	}

	val, err := starlarkLib.Call(s.thread, fn, starlarkLib.Tuple{arg}, nil)
	if err != nil {
		return nil, fmt.Errorf("starlark execution error: %w", err)
	}
	val.Freeze()
	return internal.ConvertStarlarkValueToInterface(val)
}

// Call runs a single procedure with input as its context.
func (be *Evaluator) Call(ctx context.Context, procedure string, input data.Context) (any, error) {
	prog, err := be.program()
	if err != nil {
		return nil, err
	}

	s, err := be.newSession(ctx, prog)
	if err != nil {
		return nil, err
	}
	defer s.stop()

	return s.call(procedure, input)
}

// Eval computes every derived field of the unit's module from the context
// supplied by its data provider.
func (be *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	logger := be.logger.WithGroup("Eval")

	prog, err := be.program()
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
	s, err := be.newSession(ctx, prog)
	if err != nil {
		return nil, fmt.Errorf("exec error: %w", err)
	}
	defer s.stop()

	outputs, err := platform.EvalOutputs(ctx, be.execUnit.GetModule(), input,
		func(_ context.Context, procedure string, in data.Context) (any, error) {
			return s.call(procedure, in)
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
