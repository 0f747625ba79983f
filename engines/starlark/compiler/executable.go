package compiler

import (
	engineTypes "github.com/caoguofeng92/drools/engines/types"
	starlarkLib "go.starlark.net/starlark"
)

// Executable is a module rendered to Starlark and compiled.
type Executable struct {
	source  string
	program *starlarkLib.Program
}

func newExecutable(source string, program *starlarkLib.Program) *Executable {
	if program == nil {
		return nil
	}
	return &Executable{source: source, program: program}
}

func (e *Executable) GetSource() string {
	return e.source
}

func (e *Executable) GetByteCode() any {
	return e.program
}

// GetStarlarkByteCode returns the compiled program.
func (e *Executable) GetStarlarkByteCode() *starlarkLib.Program {
	return e.program
}

func (e *Executable) GetEngineType() engineTypes.Type {
	return engineTypes.Starlark
}
