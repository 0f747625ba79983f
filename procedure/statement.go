package procedure

// Statement is one step of a procedure body. Implementations are limited to
// the types in this file.
type Statement interface {
	isStatement()
}

// Declare binds Name, of declared type Type, to the value of Value.
type Declare struct {
	Name  string
	Type  Type
	Value Expr
}

// Lookup binds Name to the optional first entry of the Context parameter whose
// name equals Field.
type Lookup struct {
	Name    string
	Context string
	Field   string
}

// Return ends the procedure with the value bound to Name.
type Return struct {
	Name string
}

func (*Declare) isStatement() {}
func (*Lookup) isStatement()  {}
func (*Return) isStatement()  {}

// Expr is the right-hand side of a declaration.
type Expr interface {
	isExpr()
}

// StringLiteral is a quoted text literal.
type StringLiteral struct {
	Value string
}

// Token is a literal emitted verbatim, e.g. "34.6" or "true".
type Token struct {
	Text string
}

// Null is the absent-value marker.
type Null struct{}

// Ident references a variable or parameter by name.
type Ident struct {
	Name string
}

// Cast converts Value to Type.
type Cast struct {
	Type  Type
	Value Expr
}

// OrElse yields the value carried by the optional match bound to Match, or
// Default when there is no match.
type OrElse struct {
	Match   string
	Default Expr
}

// Call invokes Function with Args.
type Call struct {
	Function string
	Args     []Expr
}

func (*StringLiteral) isExpr() {}
func (*Token) isExpr()         {}
func (*Null) isExpr()          {}
func (*Ident) isExpr()         {}
func (*Cast) isExpr()          {}
func (*OrElse) isExpr()        {}
func (*Call) isExpr()          {}

// DeclaredNames returns the names bound by the statements, in order.
func DeclaredNames(body []Statement) []string {
	names := make([]string, 0, len(body))
	for _, stmt := range body {
		switch s := stmt.(type) {
		case *Declare:
			names = append(names, s.Name)
		case *Lookup:
			names = append(names, s.Name)
		}
	}
	return names
}
