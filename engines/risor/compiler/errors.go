package compiler

import "errors"

var (
	ErrBytecodeNil      = errors.New("risor bytecode is nil")
	ErrNilLogger        = errors.New("logger or log handler is nil")
	ErrModuleNil        = errors.New("module is nil")
	ErrRenderFailed     = errors.New("failed to render module")
	ErrNoInstructions   = errors.New("risor bytecode has zero instructions")
	ErrValidationFailed = errors.New("risor script validation error")
)
