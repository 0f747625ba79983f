package compile

import (
	"fmt"

	"github.com/caoguofeng92/drools/engines/starlark/internal"
	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Compile parses and resolves source against the standard modules plus the
// extra predeclared names, which are only bound at evaluation time.
func Compile(source string, predeclared []string) (*starlarkLib.Program, error) {
	names := internal.StarlarkModules()
	for _, name := range predeclared {
		if !names.Has(name) {
			names[name] = starlarkLib.None
		}
	}

	opts := &syntax.FileOptions{}
	f, err := opts.Parse("model.star", source, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	prog, err := starlarkLib.FileProgram(f, names.Has)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}
	return prog, nil
}
