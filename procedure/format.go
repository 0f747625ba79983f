package procedure

import (
	"fmt"
	"strconv"
	"strings"
)

const indent = "    "

// Format renders a definition as a readable listing, for diagnostics and tests:
//
//	double Constant10(context param1) {
//	    double constantVariable = 34.6;
//	    return constantVariable;
//	}
func Format(def *Definition) string {
	var sb strings.Builder
	params := make([]string, len(def.Params))
	for i, p := range def.Params {
		params[i] = fmt.Sprintf("%s %s", p.Type, p.Name)
	}
	fmt.Fprintf(&sb, "%s %s(%s) {\n", def.ReturnType, def.Name, strings.Join(params, ", "))
	for _, stmt := range def.Body {
		sb.WriteString(indent)
		sb.WriteString(FormatStatement(stmt))
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

// FormatStatements renders a statement list, one statement per line.
func FormatStatements(body []Statement) string {
	lines := make([]string, len(body))
	for i, stmt := range body {
		lines[i] = FormatStatement(stmt)
	}
	return strings.Join(lines, "\n")
}

// FormatStatement renders a single statement.
func FormatStatement(stmt Statement) string {
	switch s := stmt.(type) {
	case *Declare:
		return fmt.Sprintf("%s %s = %s;", s.Type, s.Name, FormatExpr(s.Value))
	case *Lookup:
		return fmt.Sprintf("optional %s = %s.first(%s);", s.Name, s.Context, strconv.Quote(s.Field))
	case *Return:
		return fmt.Sprintf("return %s;", s.Name)
	default:
		return fmt.Sprintf("/* %T */", stmt)
	}
}

// FormatExpr renders an expression.
func FormatExpr(expr Expr) string {
	switch e := expr.(type) {
	case *StringLiteral:
		return strconv.Quote(e.Value)
	case *Token:
		return e.Text
	case *Null:
		return "null"
	case *Ident:
		return e.Name
	case *Cast:
		return fmt.Sprintf("(%s) %s", e.Type, FormatExpr(e.Value))
	case *OrElse:
		return fmt.Sprintf("%s.valueOrElse(%s)", e.Match, FormatExpr(e.Default))
	case *Call:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = FormatExpr(a)
		}
		return fmt.Sprintf("%s(%s)", e.Function, strings.Join(args, ", "))
	default:
		return fmt.Sprintf("/* %T */", expr)
	}
}
