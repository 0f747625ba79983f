// Package types names the script engines a model can be rendered for.
package types

import "fmt"

// Type is the name of a script engine.
type Type string

const (
	// Risor engine: https://github.com/risor-io/risor
	Risor Type = "risor"

	// Starlark engine: https://github.com/google/starlark-go
	Starlark Type = "starlark"
)

// All returns every supported engine type.
func All() []Type {
	return []Type{Risor, Starlark}
}

// Parse returns the engine type named s.
func Parse(s string) (Type, error) {
	for _, t := range All() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown engine type %q", s)
}
