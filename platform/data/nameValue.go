package data

import (
	"fmt"
	"slices"
	"strings"
)

// NameValue is one named input value.
type NameValue struct {
	Name  string
	Value any
}

func (nv NameValue) String() string {
	return fmt.Sprintf("%s=%v", nv.Name, nv.Value)
}

// Context is the ordered collection of named values a procedure reads its
// fields from. Names are not required to be unique.
type Context []NameValue

// Match is the optional result of a lookup.
type Match struct {
	Value any
	Found bool
}

// FirstMatch returns the first entry named field, in iteration order. Later
// entries with the same name are never consulted.
func (c Context) FirstMatch(field string) Match {
	for _, nv := range c {
		if nv.Name == field {
			return Match{Value: nv.Value, Found: true}
		}
	}
	return Match{}
}

// ValueOrElse returns the matched value, or fallback when nothing matched or
// the matched entry carries no value.
func (m Match) ValueOrElse(fallback any) any {
	if m.Found && m.Value != nil {
		return m.Value
	}
	return fallback
}

// With returns a copy of c with entries appended.
func (c Context) With(entries ...NameValue) Context {
	out := make(Context, 0, len(c)+len(entries))
	out = append(out, c...)
	return append(out, entries...)
}

// Names returns the entry names in order.
func (c Context) Names() []string {
	names := make([]string, len(c))
	for i, nv := range c {
		names[i] = nv.Name
	}
	return names
}

// Clone returns a shallow copy of c.
func (c Context) Clone() Context {
	return slices.Clone(c)
}

func (c Context) String() string {
	parts := make([]string, len(c))
	for i, nv := range c {
		parts[i] = nv.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Pairs converts c into the engine-neutral form handed to script engines: a
// list of two-element lists.
func (c Context) Pairs() []any {
	pairs := make([]any, len(c))
	for i, nv := range c {
		pairs[i] = []any{nv.Name, nv.Value}
	}
	return pairs
}

// FromPairs is the inverse of Context.Pairs. Each pair may be a []any or a
// NameValue.
func FromPairs(pairs []any) (Context, error) {
	c := make(Context, 0, len(pairs))
	for i, p := range pairs {
		switch pair := p.(type) {
		case NameValue:
			c = append(c, pair)
		case []any:
			if len(pair) != 2 {
				return nil, fmt.Errorf("%w: entry %d has %d elements", ErrInvalidPair, i, len(pair))
			}
			name, ok := pair[0].(string)
			if !ok {
				return nil, fmt.Errorf("%w: entry %d name is %T", ErrInvalidPair, i, pair[0])
			}
			c = append(c, NameValue{Name: name, Value: pair[1]})
		default:
			return nil, fmt.Errorf("%w: entry %d is %T", ErrInvalidPair, i, p)
		}
	}
	return c, nil
}

// FromMap builds a Context from a map, with entries sorted by name so the
// result is deterministic.
func FromMap(m map[string]any) Context {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	slices.Sort(names)

	c := make(Context, len(names))
	for i, name := range names {
		c[i] = NameValue{Name: name, Value: m[name]}
	}
	return c
}
