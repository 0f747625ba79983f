// Package expression holds the typed tree of PMML expressions that the compiler
// turns into procedures. Trees are built once (usually by the pmml loader) and
// only read afterwards.
package expression

// Expression is one node of an expression tree. The set of implementations is
// closed: only the variants declared in this package satisfy it.
type Expression interface {
	Kind() Kind
	isExpression()
}

// Constant is a literal value. Value holds the typed Go value (string, float64,
// int64, bool, ...). Missing marks a constant that stands for a missing value.
type Constant struct {
	Value    any
	DataType DataType
	Missing  bool
}

// FieldRef reads a named field from the evaluation context. MapMissingTo, when
// set, is used if the field is absent.
type FieldRef struct {
	Field        string
	MapMissingTo *string
}

// Apply invokes Function with the values of Expressions, in order.
type Apply struct {
	Function    string
	Expressions []Expression
}

// Aggregate summarizes a field over groups of records.
type Aggregate struct {
	Field      string
	Function   string
	GroupField string
}

// Discretize maps a continuous field onto bins.
type Discretize struct {
	Field        string
	MapMissingTo *string
	DefaultValue *string
}

// Lag reads a previous value of a field.
type Lag struct {
	Field string
	N     int
}

// MapValues maps input column combinations onto an output column of a table.
type MapValues struct {
	OutputColumn string
	MapMissingTo *string
	DefaultValue *string
}

// NormContinuous normalizes a continuous field with linear pieces.
type NormContinuous struct {
	Field        string
	MapMissingTo *string
}

// NormDiscrete encodes a categorical value as an indicator.
type NormDiscrete struct {
	Field        string
	Value        string
	MapMissingTo *string
}

// TextIndex counts term occurrences in a text field.
type TextIndex struct {
	TextField  string
	Expression Expression
}

func (*Constant) Kind() Kind       { return KindConstant }
func (*FieldRef) Kind() Kind       { return KindFieldRef }
func (*Apply) Kind() Kind          { return KindApply }
func (*Aggregate) Kind() Kind      { return KindAggregate }
func (*Discretize) Kind() Kind     { return KindDiscretize }
func (*Lag) Kind() Kind            { return KindLag }
func (*MapValues) Kind() Kind      { return KindMapValues }
func (*NormContinuous) Kind() Kind { return KindNormContinuous }
func (*NormDiscrete) Kind() Kind   { return KindNormDiscrete }
func (*TextIndex) Kind() Kind      { return KindTextIndex }

func (*Constant) isExpression()       {}
func (*FieldRef) isExpression()       {}
func (*Apply) isExpression()          {}
func (*Aggregate) isExpression()      {}
func (*Discretize) isExpression()     {}
func (*Lag) isExpression()            {}
func (*MapValues) isExpression()      {}
func (*NormContinuous) isExpression() {}
func (*NormDiscrete) isExpression()   {}
func (*TextIndex) isExpression()      {}

// NewConstant returns a Constant holding value with the given data type.
func NewConstant(value any, dataType DataType) *Constant {
	return &Constant{Value: value, DataType: dataType}
}

// NewFieldRef returns a FieldRef without a missing-value replacement.
func NewFieldRef(field string) *FieldRef {
	return &FieldRef{Field: field}
}

// NewFieldRefWithDefault returns a FieldRef that yields mapMissingTo when the
// field is absent.
func NewFieldRefWithDefault(field, mapMissingTo string) *FieldRef {
	return &FieldRef{Field: field, MapMissingTo: &mapMissingTo}
}

// NewApply returns an Apply of function over the given operands.
func NewApply(function string, operands ...Expression) *Apply {
	return &Apply{Function: function, Expressions: operands}
}

// Walk calls fn for node and every nested expression, depth first, in operand
// order. Walking stops at the first error.
func Walk(node Expression, fn func(Expression) error) error {
	if node == nil {
		return nil
	}
	if err := fn(node); err != nil {
		return err
	}
	switch n := node.(type) {
	case *Apply:
		for _, operand := range n.Expressions {
			if err := Walk(operand, fn); err != nil {
				return err
			}
		}
	case *TextIndex:
		return Walk(n.Expression, fn)
	}
	return nil
}
