// Package compiler turns expression trees into procedure definitions.
//
// SynthesizeStatements produces the ordered statements that leave the value of
// one expression bound to an output variable. CompileProcedure wraps those
// statements into a named procedure that takes a name-value context and returns
// the output variable. Both are pure: they keep no state between calls and only
// read the expression tree, so independent trees may be compiled concurrently.
package compiler

import (
	"fmt"

	"github.com/caoguofeng92/drools/expression"
	"github.com/caoguofeng92/drools/procedure"
)

var defaultSynthesizer = &Synthesizer{
	shapes:  procedure.DefaultShapeBuilder{},
	filters: procedure.DefaultFilterBuilder{},
}

// Synthesizer compiles expressions with a given pair of builders.
type Synthesizer struct {
	shapes  procedure.ShapeBuilder
	filters procedure.FilterBuilder
}

// New creates a Synthesizer. Builders that are not configured default to
// procedure.DefaultShapeBuilder and procedure.DefaultFilterBuilder.
func New(opts ...FunctionalOption) (*Synthesizer, error) {
	s := &Synthesizer{}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("error applying synthesizer option: %w", err)
		}
	}
	s.applyDefaults()
	return s, nil
}

func (s *Synthesizer) String() string {
	return "compiler.Synthesizer"
}

// SynthesizeStatements compiles node with the default builders.
func SynthesizeStatements(
	outputVariable string,
	node expression.Expression,
	returnType procedure.Type,
	paramTypes []procedure.Type,
) ([]procedure.Statement, error) {
	return defaultSynthesizer.SynthesizeStatements(outputVariable, node, returnType, paramTypes)
}

// CompileProcedure compiles node into a procedure with the default builders.
func CompileProcedure(
	procedureName string,
	node expression.Expression,
	returnType procedure.Type,
	paramTypes []procedure.Type,
) (*procedure.Definition, error) {
	return defaultSynthesizer.CompileProcedure(procedureName, node, returnType, paramTypes)
}

// CompileProcedure builds the procedure procedureName whose body computes node
// and returns it as returnType. The output variable is RootVariableName of the
// node's kind. Errors from the statement synthesis are returned unchanged and
// no definition is produced.
func (s *Synthesizer) CompileProcedure(
	procedureName string,
	node expression.Expression,
	returnType procedure.Type,
	paramTypes []procedure.Type,
) (*procedure.Definition, error) {
	if node == nil {
		return nil, unrecognized(nil)
	}

	output := RootVariableName(node.Kind())
	body, err := s.SynthesizeStatements(output, node, returnType, paramTypes)
	if err != nil {
		return nil, err
	}

	def := s.shapes.Shell(procedureName, paramTypes)
	def.ReturnType = returnType
	def.AddStatements(body...)
	def.AddStatements(&procedure.Return{Name: output})
	return def, nil
}

// SynthesizeStatements returns the statements that bind the value of node,
// typed as returnType, to outputVariable.
func (s *Synthesizer) SynthesizeStatements(
	outputVariable string,
	node expression.Expression,
	returnType procedure.Type,
	paramTypes []procedure.Type,
) ([]procedure.Statement, error) {
	switch n := node.(type) {
	case *expression.Apply:
		if n == nil {
			return nil, unrecognized(nil)
		}
		return s.apply(outputVariable, n, returnType, paramTypes)
	case *expression.Constant:
		if n == nil {
			return nil, unrecognized(nil)
		}
		return s.constant(outputVariable, n, returnType), nil
	case *expression.FieldRef:
		if n == nil {
			return nil, unrecognized(nil)
		}
		return s.fieldRef(outputVariable, n, returnType, paramTypes), nil
	case *expression.Aggregate,
		*expression.Discretize,
		*expression.Lag,
		*expression.MapValues,
		*expression.NormContinuous,
		*expression.NormDiscrete,
		*expression.TextIndex:
		return nil, unsupported(n.Kind())
	default:
		return nil, unrecognized(node)
	}
}

// constant emits
//
//	<returnType> <output> = <literal>;
func (s *Synthesizer) constant(
	output string,
	c *expression.Constant,
	returnType procedure.Type,
) []procedure.Statement {
	return []procedure.Statement{
		&procedure.Declare{Name: output, Type: returnType, Value: literal(c)},
	}
}

// fieldRef emits
//
//	optional <output>Match = param1.first(<field>);
//	<returnType> <output> = (<returnType>) <output>Match.valueOrElse(<mapMissingTo>);
func (s *Synthesizer) fieldRef(
	output string,
	f *expression.FieldRef,
	returnType procedure.Type,
	paramTypes []procedure.Type,
) []procedure.Statement {
	match := matchVariableName(output)

	var fallback procedure.Expr = &procedure.Null{}
	if f.MapMissingTo != nil {
		fallback = &procedure.StringLiteral{Value: *f.MapMissingTo}
	}

	return []procedure.Statement{
		s.filters.Filter(match, s.contextParam(paramTypes), f.Field),
		&procedure.Declare{
			Name: output,
			Type: returnType,
			Value: &procedure.Cast{
				Type:  returnType,
				Value: &procedure.OrElse{Match: match, Default: fallback},
			},
		},
	}
}

// apply compiles every operand into its own object-typed variable, then emits
//
//	<returnType> <output> = <function>(param1, <operand variables>...);
func (s *Synthesizer) apply(
	output string,
	a *expression.Apply,
	returnType procedure.Type,
	paramTypes []procedure.Type,
) ([]procedure.Statement, error) {
	ctxParam := s.contextParam(paramTypes)

	var body []procedure.Statement
	args := make([]procedure.Expr, 0, len(a.Expressions)+1)
	args = append(args, &procedure.Ident{Name: ctxParam})

	for i, operand := range a.Expressions {
		if operand == nil {
			return nil, unrecognized(nil)
		}
		name := VariableName(output, operand.Kind(), i+1)
		stmts, err := s.SynthesizeStatements(name, operand, procedure.TypeObject, paramTypes)
		if err != nil {
			return nil, err
		}
		body = append(body, stmts...)
		args = append(args, &procedure.Ident{Name: name})
	}

	body = append(body, &procedure.Declare{
		Name:  output,
		Type:  returnType,
		Value: &procedure.Call{Function: a.Function, Args: args},
	})
	return body, nil
}

// contextParam is the name the shape builder gives the context parameter.
func (s *Synthesizer) contextParam(paramTypes []procedure.Type) string {
	if name := s.shapes.Shell("", paramTypes).ContextParam(); name != "" {
		return name
	}
	return procedure.ParamName(1)
}
