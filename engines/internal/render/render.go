// Package render lowers procedure modules into script source. Both engines use
// the same lowering and differ only in the Dialect.
package render

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/caoguofeng92/drools/platform/constants"
	"github.com/caoguofeng92/drools/procedure"
)

var (
	ErrNilModule            = errors.New("module is nil")
	ErrUnsupportedStatement = errors.New("unsupported statement")
	ErrUnsupportedExpr      = errors.New("unsupported expression")
)

// Dialect describes the surface syntax of a target language.
type Dialect struct {
	// Null, True and False spell the corresponding literals.
	Null  string
	True  string
	False string

	// Quote turns text into a string literal.
	Quote func(string) string

	// Open and Close surround a procedure body. Open receives the procedure
	// name and its parameter list, already joined.
	Open  func(name, params string) string
	Close string

	// Assign separates a variable from its value in a first binding.
	Assign string

	// Indent prefixes every body line.
	Indent string
}

// Module renders every procedure of m, in registration order.
func (d Dialect) Module(m *procedure.Module) (string, error) {
	if m == nil {
		return "", ErrNilModule
	}

	var sb strings.Builder
	for i, def := range m.Procedures() {
		if i > 0 {
			sb.WriteString("\n")
		}
		src, err := d.Definition(m, def)
		if err != nil {
			return "", fmt.Errorf("procedure %s: %w", def.Name, err)
		}
		sb.WriteString(src)
	}
	return sb.String(), nil
}

// Definition renders one procedure. m resolves calls to user-defined
// functions and may be nil.
func (d Dialect) Definition(m *procedure.Module, def *procedure.Definition) (string, error) {
	params := make([]string, len(def.Params))
	for i, p := range def.Params {
		params[i] = p.Name
	}

	var sb strings.Builder
	sb.WriteString(d.Open(def.Name, strings.Join(params, ", ")))
	sb.WriteString("\n")
	for _, stmt := range def.Body {
		line, err := d.statement(m, stmt)
		if err != nil {
			return "", err
		}
		sb.WriteString(d.Indent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if d.Close != "" {
		sb.WriteString(d.Close)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func (d Dialect) statement(m *procedure.Module, stmt procedure.Statement) (string, error) {
	switch s := stmt.(type) {
	case *procedure.Declare:
		value, err := d.expr(m, s.Value)
		if err != nil {
			return "", err
		}
		if needsCast(s) {
			value = d.call(constants.HostCast, d.Quote(string(s.Type)), value)
		}
		return s.Name + d.Assign + value, nil
	case *procedure.Lookup:
		return s.Name + d.Assign + d.call(constants.HostLookup, s.Context, d.Quote(s.Field)), nil
	case *procedure.Return:
		return "return " + s.Name, nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedStatement, stmt)
	}
}

// needsCast reports whether a declaration must convert its value at runtime
// to honour the declared type.
func needsCast(s *procedure.Declare) bool {
	switch s.Type {
	case procedure.TypeObject, procedure.TypeContext, "":
		return false
	}
	switch s.Value.(type) {
	case *procedure.Cast, *procedure.Null:
		return false
	}
	return true
}

func (d Dialect) expr(m *procedure.Module, e procedure.Expr) (string, error) {
	switch x := e.(type) {
	case *procedure.StringLiteral:
		return d.Quote(x.Value), nil
	case *procedure.Token:
		switch x.Text {
		case "true":
			return d.True, nil
		case "false":
			return d.False, nil
		}
		if nonFinite(x.Text) {
			return d.call(constants.HostCast, d.Quote(string(procedure.TypeDouble)), d.Quote(x.Text)), nil
		}
		return x.Text, nil
	case *procedure.Null:
		return d.Null, nil
	case *procedure.Ident:
		return x.Name, nil
	case *procedure.Cast:
		value, err := d.expr(m, x.Value)
		if err != nil {
			return "", err
		}
		if x.Type == procedure.TypeObject {
			return value, nil
		}
		return d.call(constants.HostCast, d.Quote(string(x.Type)), value), nil
	case *procedure.OrElse:
		fallback, err := d.expr(m, x.Default)
		if err != nil {
			return "", err
		}
		return d.call(constants.HostOrElse, x.Match, fallback), nil
	case *procedure.Call:
		return d.callExpr(m, x)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedExpr, e)
	}
}

// callExpr renders an application. The first argument is the caller's
// context. User-defined functions are called directly with a context bound
// from their parameter names; anything else goes through the library.
func (d Dialect) callExpr(m *procedure.Module, c *procedure.Call) (string, error) {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		s, err := d.expr(m, a)
		if err != nil {
			return "", err
		}
		args[i] = s
	}

	if m != nil {
		if ref, ok := m.Function(c.Function); ok && len(args) > 0 {
			names := make([]string, len(ref.Params))
			for i, p := range ref.Params {
				names[i] = d.Quote(p)
			}
			bound := d.call(constants.HostBind, d.list(names), d.list(args[1:]))
			return d.call(ref.Procedure, bound), nil
		}
	}

	return d.call(constants.HostCall, append([]string{d.Quote(c.Function)}, args...)...), nil
}

// nonFinite reports whether a literal spells NaN or an infinity, which
// neither engine has a literal for.
func nonFinite(text string) bool {
	f, err := strconv.ParseFloat(text, 64)
	return err == nil && (math.IsNaN(f) || math.IsInf(f, 0))
}

func (d Dialect) call(fn string, args ...string) string {
	return fn + "(" + strings.Join(args, ", ") + ")"
}

func (d Dialect) list(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
