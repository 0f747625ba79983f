package functions

import (
	"fmt"
	"math"
	"strings"

	"github.com/caoguofeng92/drools/platform/data"
	"github.com/caoguofeng92/drools/procedure"
)

func builtins() map[string]Function {
	return map[string]Function{
		"+": binary(func(x, y float64) (any, error) { return x + y, nil }),
		"-": binary(func(x, y float64) (any, error) { return x - y, nil }),
		"*": binary(func(x, y float64) (any, error) { return x * y, nil }),
		"/": binary(func(x, y float64) (any, error) {
			if y == 0 {
				return nil, ErrDivisionByZero
			}
			return x / y, nil
		}),

		"min":     aggregate(func(xs []float64) float64 { return reduce(xs, math.Min) }),
		"max":     aggregate(func(xs []float64) float64 { return reduce(xs, math.Max) }),
		"sum":     aggregate(func(xs []float64) float64 { return reduce(xs, func(a, b float64) float64 { return a + b }) }),
		"product": aggregate(func(xs []float64) float64 { return reduce(xs, func(a, b float64) float64 { return a * b }) }),
		"avg": aggregate(func(xs []float64) float64 {
			return reduce(xs, func(a, b float64) float64 { return a + b }) / float64(len(xs))
		}),

		"log10": unary(math.Log10),
		"ln":    unary(math.Log),
		"sqrt":  unary(math.Sqrt),
		"abs":   unary(math.Abs),
		"exp":   unary(math.Exp),
		"floor": integral(math.Floor),
		"ceil":  integral(math.Ceil),
		"round": integral(func(x float64) float64 { return math.Floor(x + 0.5) }),
		"pow":   binary(func(x, y float64) (any, error) { return math.Pow(x, y), nil }),
		"threshold": binary(func(x, y float64) (any, error) {
			if x > y {
				return int64(1), nil
			}
			return int64(0), nil
		}),

		"isMissing": func(_ data.Context, args ...any) (any, error) {
			if err := arity(args, 1); err != nil {
				return nil, err
			}
			return args[0] == nil, nil
		},
		"isNotMissing": func(_ data.Context, args ...any) (any, error) {
			if err := arity(args, 1); err != nil {
				return nil, err
			}
			return args[0] != nil, nil
		},

		"equal":          comparison(func(c int) bool { return c == 0 }),
		"notEqual":       comparison(func(c int) bool { return c != 0 }),
		"lessThan":       comparison(func(c int) bool { return c < 0 }),
		"lessOrEqual":    comparison(func(c int) bool { return c <= 0 }),
		"greaterThan":    comparison(func(c int) bool { return c > 0 }),
		"greaterOrEqual": comparison(func(c int) bool { return c >= 0 }),

		"and": logical(func(acc, b bool) bool { return acc && b }, true),
		"or":  logical(func(acc, b bool) bool { return acc || b }, false),
		"not": func(_ data.Context, args ...any) (any, error) {
			if err := arity(args, 1); err != nil {
				return nil, err
			}
			if args[0] == nil {
				return nil, nil
			}
			b, err := data.Cast(procedure.TypeBoolean, args[0])
			if err != nil {
				return nil, err
			}
			return !b.(bool), nil
		},
		"if": ifThenElse,

		"concat":     concat,
		"uppercase":  text(strings.ToUpper),
		"lowercase":  text(strings.ToLower),
		"trimBlanks": text(strings.TrimSpace),
		"substring":  substring,
	}
}

func arity(args []any, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: expected %d, got %d", ErrArity, n, len(args))
	}
	return nil
}

func reduce(xs []float64, fn func(a, b float64) float64) float64 {
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = fn(acc, x)
	}
	return acc
}

// unary applies fn to one numeric operand. A missing operand yields missing.
func unary(fn func(float64) float64) Function {
	return func(_ data.Context, args ...any) (any, error) {
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		if args[0] == nil {
			return nil, nil
		}
		x, err := data.ToFloat(args[0])
		if err != nil {
			return nil, err
		}
		return fn(x), nil
	}
}

func integral(fn func(float64) float64) Function {
	f := unary(fn)
	return func(ctx data.Context, args ...any) (any, error) {
		v, err := f(ctx, args...)
		if v == nil || err != nil {
			return v, err
		}
		return data.ToInt(v)
	}
}

// binary applies fn to two numeric operands. A missing operand yields missing.
func binary(fn func(x, y float64) (any, error)) Function {
	return func(_ data.Context, args ...any) (any, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		if args[0] == nil || args[1] == nil {
			return nil, nil
		}
		x, err := data.ToFloat(args[0])
		if err != nil {
			return nil, err
		}
		y, err := data.ToFloat(args[1])
		if err != nil {
			return nil, err
		}
		return fn(x, y)
	}
}

// aggregate applies fn to every present operand. Missing operands are skipped;
// when none is present the result is missing.
func aggregate(fn func([]float64) float64) Function {
	return func(_ data.Context, args ...any) (any, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: expected at least 1", ErrArity)
		}
		xs := make([]float64, 0, len(args))
		for _, arg := range args {
			if arg == nil {
				continue
			}
			x, err := data.ToFloat(arg)
			if err != nil {
				return nil, err
			}
			xs = append(xs, x)
		}
		if len(xs) == 0 {
			return nil, nil
		}
		return fn(xs), nil
	}
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

// compare orders two present values. Numbers compare numerically, strings
// lexically; a string compared with a number is parsed as a number.
func compare(a, b any) (int, error) {
	sa, aIsString := a.(string)
	sb, bIsString := b.(string)
	if aIsString && bIsString {
		return strings.Compare(sa, sb), nil
	}
	if ba, ok := a.(bool); ok {
		bb, ok := b.(bool)
		if !ok {
			return 0, fmt.Errorf("%w: cannot compare %T with %T", ErrArgumentType, a, b)
		}
		switch {
		case ba == bb:
			return 0, nil
		case !ba:
			return -1, nil
		default:
			return 1, nil
		}
	}
	if !(isNumber(a) || aIsString) || !(isNumber(b) || bIsString) {
		return 0, fmt.Errorf("%w: cannot compare %T with %T", ErrArgumentType, a, b)
	}

	x, err := data.ToFloat(a)
	if err != nil {
		return 0, err
	}
	y, err := data.ToFloat(b)
	if err != nil {
		return 0, err
	}
	switch {
	case x < y:
		return -1, nil
	case x > y:
		return 1, nil
	default:
		return 0, nil
	}
}

func comparison(accept func(int) bool) Function {
	return func(_ data.Context, args ...any) (any, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		if args[0] == nil || args[1] == nil {
			return nil, nil
		}
		c, err := compare(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return accept(c), nil
	}
}

func logical(fn func(acc, b bool) bool, identity bool) Function {
	return func(_ data.Context, args ...any) (any, error) {
		if len(args) < 2 {
			return nil, fmt.Errorf("%w: expected at least 2, got %d", ErrArity, len(args))
		}
		acc := identity
		for _, arg := range args {
			if arg == nil {
				return nil, nil
			}
			b, err := data.Cast(procedure.TypeBoolean, arg)
			if err != nil {
				return nil, err
			}
			acc = fn(acc, b.(bool))
		}
		return acc, nil
	}
}

func ifThenElse(_ data.Context, args ...any) (any, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, fmt.Errorf("%w: expected 2 or 3, got %d", ErrArity, len(args))
	}
	if args[0] == nil {
		return nil, nil
	}
	cond, err := data.Cast(procedure.TypeBoolean, args[0])
	if err != nil {
		return nil, err
	}
	if cond.(bool) {
		return args[1], nil
	}
	if len(args) == 3 {
		return args[2], nil
	}
	return nil, nil
}

func concat(_ data.Context, args ...any) (any, error) {
	var sb strings.Builder
	for _, arg := range args {
		if arg == nil {
			continue
		}
		s, err := data.Cast(procedure.TypeString, arg)
		if err != nil {
			return nil, err
		}
		sb.WriteString(s.(string))
	}
	return sb.String(), nil
}

func text(fn func(string) string) Function {
	return func(_ data.Context, args ...any) (any, error) {
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		if args[0] == nil {
			return nil, nil
		}
		s, err := data.Cast(procedure.TypeString, args[0])
		if err != nil {
			return nil, err
		}
		return fn(s.(string)), nil
	}
}

// substring takes a 1-based start position and a length, counted in runes.
// Out of range bounds are clamped.
func substring(_ data.Context, args ...any) (any, error) {
	if err := arity(args, 3); err != nil {
		return nil, err
	}
	if args[0] == nil || args[1] == nil || args[2] == nil {
		return nil, nil
	}
	s, err := data.Cast(procedure.TypeString, args[0])
	if err != nil {
		return nil, err
	}
	start, err := data.ToInt(args[1])
	if err != nil {
		return nil, err
	}
	length, err := data.ToInt(args[2])
	if err != nil {
		return nil, err
	}

	runes := []rune(s.(string))
	from := max(start-1, 0)
	if from >= int64(len(runes)) || length <= 0 {
		return "", nil
	}
	to := min(from+length, int64(len(runes)))
	return string(runes[from:to]), nil
}
