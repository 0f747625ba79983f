package functions

import (
	"fmt"

	"github.com/caoguofeng92/drools/platform/constants"
	"github.com/caoguofeng92/drools/platform/data"
	"github.com/caoguofeng92/drools/procedure"
)

// Host implements the calls rendered procedures make into Go. Engines only
// convert values: a context travels as a list of [name, value] pairs and an
// optional match as a [found, value] pair.
type Host struct {
	library *Library
}

// NewHost returns a Host calling into library, or into Default when library
// is nil.
func NewHost(library *Library) *Host {
	if library == nil {
		library = Default()
	}
	return &Host{library: library}
}

// Library returns the function library the host calls into.
func (h *Host) Library() *Library {
	return h.library
}

// Lookup returns the first entry of ctx named field.
func (h *Host) Lookup(ctx data.Context, field string) data.Match {
	return ctx.FirstMatch(field)
}

// OrElse returns the matched value, or fallback.
func (h *Host) OrElse(m data.Match, fallback any) any {
	return m.ValueOrElse(fallback)
}

// Cast converts v to t.
func (h *Host) Cast(t procedure.Type, v any) (any, error) {
	return data.Cast(t, v)
}

// Call invokes the library function name.
func (h *Host) Call(ctx data.Context, name string, args ...any) (any, error) {
	return h.library.Call(ctx, name, args...)
}

// Bind builds the context a user-defined function is called with: one entry
// per parameter, in parameter order.
func (h *Host) Bind(names []string, values []any) (data.Context, error) {
	if len(names) != len(values) {
		return nil, fmt.Errorf("%w: %d parameters, %d arguments", ErrBindMismatch, len(names), len(values))
	}
	c := make(data.Context, len(names))
	for i, name := range names {
		c[i] = data.NameValue{Name: name, Value: values[i]}
	}
	return c, nil
}

// Invoke dispatches the host function name with arguments already converted
// to Go values, and returns a Go value for the engine to convert back.
func (h *Host) Invoke(name string, args []any) (any, error) {
	switch name {
	case constants.HostLookup:
		if err := arity(args, 2); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		ctx, err := contextArg(args[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		field, ok := args[1].(string)
		if !ok {
			return nil, fmt.Errorf("%s: %w: field is %T", name, ErrArgumentType, args[1])
		}
		return MatchPair(h.Lookup(ctx, field)), nil

	case constants.HostOrElse:
		if err := arity(args, 2); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		m, err := MatchFromPair(args[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return h.OrElse(m, args[1]), nil

	case constants.HostCast:
		if err := arity(args, 2); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		t, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("%s: %w: type is %T", name, ErrArgumentType, args[0])
		}
		return h.Cast(procedure.Type(t), args[1])

	case constants.HostCall:
		if len(args) < 2 {
			return nil, fmt.Errorf("%s: %w: expected at least 2, got %d", name, ErrArity, len(args))
		}
		fn, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("%s: %w: function is %T", name, ErrArgumentType, args[0])
		}
		ctx, err := contextArg(args[1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return h.Call(ctx, fn, args[2:]...)

	case constants.HostBind:
		if err := arity(args, 2); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		rawNames, ok := args[0].([]any)
		if !ok {
			return nil, fmt.Errorf("%s: %w: names are %T", name, ErrArgumentType, args[0])
		}
		values, ok := args[1].([]any)
		if !ok {
			return nil, fmt.Errorf("%s: %w: values are %T", name, ErrArgumentType, args[1])
		}
		names := make([]string, len(rawNames))
		for i, n := range rawNames {
			if names[i], ok = n.(string); !ok {
				return nil, fmt.Errorf("%s: %w: name %d is %T", name, ErrArgumentType, i, n)
			}
		}
		c, err := h.Bind(names, values)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return c.Pairs(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownHostCall, name)
	}
}

func contextArg(v any) (data.Context, error) {
	switch c := v.(type) {
	case data.Context:
		return c, nil
	case []any:
		return data.FromPairs(c)
	case nil:
		return data.Context{}, nil
	default:
		return nil, fmt.Errorf("%w: context is %T", ErrArgumentType, v)
	}
}

// MatchPair converts m to its engine-neutral form.
func MatchPair(m data.Match) []any {
	return []any{m.Found, m.Value}
}

// MatchFromPair is the inverse of MatchPair.
func MatchFromPair(v any) (data.Match, error) {
	pair, ok := v.([]any)
	if !ok || len(pair) != 2 {
		return data.Match{}, fmt.Errorf("%w: match is %T", ErrArgumentType, v)
	}
	found, ok := pair[0].(bool)
	if !ok {
		return data.Match{}, fmt.Errorf("%w: match flag is %T", ErrArgumentType, pair[0])
	}
	return data.Match{Found: found, Value: pair[1]}, nil
}
