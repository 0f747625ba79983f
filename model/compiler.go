// Package model compiles the transformations of a PMML document into a
// procedure module: one procedure per user-defined function and per derived
// field, named after the kind of its root expression.
package model

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caoguofeng92/drools/compiler"
	"github.com/caoguofeng92/drools/expression"
	"github.com/caoguofeng92/drools/pmml"
	"github.com/caoguofeng92/drools/procedure"
)

// Compiler turns pmml.Documents into procedure.Modules.
type Compiler struct {
	synth           *compiler.Synthesizer
	skipUnsupported bool

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a model Compiler.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}
	if err := c.applyDefaults(); err != nil {
		return nil, err
	}
	c.setupLogger()
	return c, nil
}

func (c *Compiler) String() string {
	return "model.Compiler"
}

// compilation holds the state of one Compile call.
type compilation struct {
	*Compiler
	module  *procedure.Module
	serial  int
	skipped map[string]struct{}
}

// Compile builds a module from doc. Functions are compiled first, then the
// derived fields in document order. Procedure names are the root kind of the
// expression followed by a serial number that starts at 1 for every call, so
// the same document always yields the same names.
func (c *Compiler) Compile(doc *pmml.Document) (*procedure.Module, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	logger := c.logger.WithGroup("Compile")

	run := &compilation{
		Compiler: c,
		module:   procedure.NewModule(),
		skipped:  make(map[string]struct{}),
	}

	for _, fn := range doc.Functions {
		if callee, ok := run.appliesSkipped(fn.Expression); ok {
			run.serial++
			run.skipped[fn.Name] = struct{}{}
			logger.Warn("skipping function that applies a skipped function",
				"function", fn.Name, "applies", callee)
			continue
		}

		name, ok, err := run.procedure(fn.Expression, fn.DataType)
		if err != nil {
			return nil, fmt.Errorf("function %q: %w", fn.Name, err)
		}
		if !ok {
			run.skipped[fn.Name] = struct{}{}
			logger.Warn("skipping function with unsupported expression", "function", fn.Name)
			continue
		}
		ref := procedure.FunctionRef{Procedure: name, Params: fn.ParamNames()}
		if err := run.module.AddFunction(fn.Name, ref); err != nil {
			return nil, err
		}
		logger.Debug("function compiled", "function", fn.Name, "procedure", name)
	}

	seen := make(map[string]struct{}, len(doc.DerivedFields))
	for _, field := range doc.DerivedFields {
		if _, dup := seen[field.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, field.Name)
		}
		seen[field.Name] = struct{}{}

		if callee, ok := run.appliesSkipped(field.Expression); ok {
			run.serial++
			logger.Warn("skipping derived field that applies a skipped function",
				"field", field.Name, "applies", callee)
			continue
		}

		name, ok, err := run.procedure(field.Expression, field.DataType)
		if err != nil {
			return nil, fmt.Errorf("derived field %q: %w", field.Name, err)
		}
		if !ok {
			logger.Warn("skipping derived field with unsupported expression", "field", field.Name)
			continue
		}
		if err := run.module.AddOutput(field.Name, name); err != nil {
			return nil, err
		}
		logger.Debug("derived field compiled", "field", field.Name, "procedure", name)
	}

	logger.Info("model compiled",
		"procedures", run.module.Len(),
		"functions", len(doc.Functions),
		"derivedFields", len(run.module.Outputs()),
	)
	return run.module, nil
}

// procedure compiles node and registers it under the next serial name. ok is
// false when node was skipped as unsupported.
func (run *compilation) procedure(
	node expression.Expression,
	dt expression.DataType,
) (name string, ok bool, err error) {
	run.serial++
	if node == nil {
		return "", false, fmt.Errorf("%w: expression is nil", ErrCompileProcedure)
	}
	name = compiler.ProcedureName(node.Kind(), run.serial)

	def, err := run.synth.CompileProcedure(name, node, procedure.TypeFor(dt), procedure.ContextParameters())
	if err != nil {
		if run.skipUnsupported && errors.Is(err, compiler.ErrUnsupportedExpressionKind) {
			var kindErr *compiler.UnsupportedKindError
			if errors.As(err, &kindErr) {
				run.logger.Debug("unsupported kind", "procedure", name, "kind", kindErr.Kind.String())
			}
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w %s: %w", ErrCompileProcedure, name, err)
	}

	if err := run.module.Register(def); err != nil {
		return "", false, err
	}
	return name, true, nil
}

// appliesSkipped returns the first skipped function that node applies at any
// depth. Such a node would only fail at evaluation time.
func (run *compilation) appliesSkipped(node expression.Expression) (string, bool) {
	if len(run.skipped) == 0 {
		return "", false
	}
	var callee string
	_ = expression.Walk(node, func(e expression.Expression) error {
		if apply, ok := e.(*expression.Apply); ok && callee == "" {
			if _, skipped := run.skipped[apply.Function]; skipped {
				callee = apply.Function
			}
		}
		return nil
	})
	return callee, callee != ""
}
