package compiler

import (
	"fmt"

	engineTypes "github.com/caoguofeng92/drools/engines/types"
	risorCompiler "github.com/risor-io/risor/compiler"
)

// Programs maps each procedure name to the bytecode that runs it.
type Programs map[string]*risorCompiler.Code

// Executable is a module rendered to Risor and compiled once per procedure.
type Executable struct {
	source   string
	programs Programs
}

func newExecutable(source string, programs Programs) (*Executable, error) {
	for name, code := range programs {
		if code == nil {
			return nil, ErrBytecodeNil
		}
		if code.InstructionCount() == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoInstructions, name)
		}
	}
	return &Executable{source: source, programs: programs}, nil
}

func (e *Executable) GetSource() string {
	return e.source
}

func (e *Executable) GetByteCode() any {
	return e.programs
}

// GetRisorByteCode returns the compiled program for procedure, or nil.
func (e *Executable) GetRisorByteCode(procedure string) *risorCompiler.Code {
	return e.programs[procedure]
}

func (e *Executable) GetEngineType() engineTypes.Type {
	return engineTypes.Risor
}
