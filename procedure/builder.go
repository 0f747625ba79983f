package procedure

import "strconv"

// ParamPrefix is the prefix of generated parameter names: param1, param2, ...
const ParamPrefix = "param"

// ShapeBuilder creates an empty procedure shell: name and parameter
// declarations, with an empty body.
type ShapeBuilder interface {
	Shell(name string, paramTypes []Type) *Definition
}

// FilterBuilder creates the statement that binds matchName to the optional
// first entry of contextParam named field.
type FilterBuilder interface {
	Filter(matchName, contextParam, field string) Statement
}

// DefaultShapeBuilder names parameters param1..paramN in declaration order.
type DefaultShapeBuilder struct{}

// Shell implements ShapeBuilder.
func (DefaultShapeBuilder) Shell(name string, paramTypes []Type) *Definition {
	params := make([]Param, len(paramTypes))
	for i, t := range paramTypes {
		params[i] = Param{Name: ParamName(i + 1), Type: t}
	}
	return &Definition{
		Name:   name,
		Params: params,
		Body:   []Statement{},
	}
}

// DefaultFilterBuilder emits a Lookup statement.
type DefaultFilterBuilder struct{}

// Filter implements FilterBuilder.
func (DefaultFilterBuilder) Filter(matchName, contextParam, field string) Statement {
	return &Lookup{Name: matchName, Context: contextParam, Field: field}
}

// ParamName returns the generated name of the parameter at 1-based position pos.
func ParamName(pos int) string {
	return ParamPrefix + strconv.Itoa(pos)
}
