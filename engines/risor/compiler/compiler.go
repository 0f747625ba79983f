// Package compiler renders procedure modules to Risor and compiles them.
package compiler

import (
	"fmt"
	"log/slog"

	"github.com/caoguofeng92/drools/engines/risor/compiler/internal/compile"
	"github.com/caoguofeng92/drools/platform/constants"
	"github.com/caoguofeng92/drools/platform/script"
	"github.com/caoguofeng92/drools/procedure"
)

// Compiler implements script.Compiler for Risor.
type Compiler struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Risor Compiler.
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
	return "risor.Compiler"
}

// globals are the names the compiled programs expect to be injected.
func globals() []string {
	return append(constants.HostNames(), constants.Ctx)
}

// Compile renders module as Risor source and compiles one entry program per
// procedure. Each entry program declares every procedure and then calls its
// own with the context global.
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

	programs := make(Programs, module.Len())
	for _, def := range module.Procedures() {
		bc, err := compile.Compile(entry(source, def.Name, constants.Ctx), globals())
		if err != nil {
			logger.Warn("compilation failed", "procedure", def.Name, "error", err)
			return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
		programs[def.Name] = bc
	}

	exe, err := newExecutable(source, programs)
	if err != nil {
		logger.Error("invalid bytecode", "error", err)
		return nil, err
	}
	logger.Debug("compilation successful", "programs", len(programs))
	return exe, nil
}
