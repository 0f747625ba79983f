// Package pmml reads the transformation parts of a PMML document: data fields,
// user-defined functions and derived fields with their expression trees.
package pmml

import "github.com/caoguofeng92/drools/expression"

// Document is the subset of a PMML document the model compiler consumes.
type Document struct {
	Version       string
	DataFields    []DataField
	Functions     []DefineFunction
	DerivedFields []DerivedField
}

// DataField is an input field of the data dictionary.
type DataField struct {
	Name     string
	DataType expression.DataType
}

// ParameterField is a parameter of a DefineFunction.
type ParameterField struct {
	Name     string
	DataType expression.DataType
}

// DefineFunction is a user-defined function of the transformation dictionary.
type DefineFunction struct {
	Name       string
	DataType   expression.DataType
	Params     []ParameterField
	Expression expression.Expression
}

// ParamNames returns the parameter names in declaration order.
func (f DefineFunction) ParamNames() []string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return names
}

// DerivedField is a field computed from an expression.
type DerivedField struct {
	Name       string
	DataType   expression.DataType
	Expression expression.Expression
}
