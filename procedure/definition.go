// Package procedure is the output model of the expression compiler: ordered
// statement lists, procedure definitions and the module that collects them.
// Nothing here depends on a particular target language; the engines lower
// these structures into Starlark or Risor source.
package procedure

import "fmt"

// Param is one formal parameter of a procedure.
type Param struct {
	Name string
	Type Type
}

// Definition is a complete, named procedure.
type Definition struct {
	Name       string
	Params     []Param
	ReturnType Type
	Body       []Statement
}

// ContextParam returns the name of the first parameter, which carries the
// name-value context. It returns an empty string for a procedure without
// parameters.
func (d *Definition) ContextParam() string {
	if len(d.Params) == 0 {
		return ""
	}
	return d.Params[0].Name
}

// AddStatements appends statements to the body.
func (d *Definition) AddStatements(stmts ...Statement) {
	d.Body = append(d.Body, stmts...)
}

func (d *Definition) String() string {
	return fmt.Sprintf("Definition{Name: %s, Params: %d, ReturnType: %s, Statements: %d}",
		d.Name, len(d.Params), d.ReturnType, len(d.Body))
}
