// Package compiler renders procedure modules to Starlark and compiles them.
package compiler

import (
	"fmt"
	"log/slog"

	"github.com/caoguofeng92/drools/engines/starlark/compiler/internal/compile"
	"github.com/caoguofeng92/drools/platform/constants"
	"github.com/caoguofeng92/drools/platform/script"
	"github.com/caoguofeng92/drools/procedure"
)

// Compiler implements script.Compiler for Starlark.
type Compiler struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Starlark Compiler.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}
	c.applyDefaults()
	c.setupLogger()
	return c, nil
}

func (c *Compiler) String() string {
	return "starlark.Compiler"
}

// Compile renders module as one Starlark file holding a function per
// procedure, and compiles it with the host functions predeclared.
func (c *Compiler) Compile(module *procedure.Module) (script.ExecutableContent, error) {
	logger := c.logger.WithGroup("compile")
	if module == nil {
		return nil, ErrModuleNil
	}

	source, err := dialect.Module(module)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	logger.Debug("module rendered", "procedures", module.Len(), "bytes", len(source))

	program, err := compile.Compile(source, constants.HostNames())
	if err != nil {
		logger.Warn("compilation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	exe := newExecutable(source, program)
	if exe == nil {
		return nil, ErrBytecodeNil
	}
	return exe, nil
}
