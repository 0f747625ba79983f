package compiler

import "errors"

var (
	ErrBytecodeNil      = errors.New("starlark bytecode is nil")
	ErrNilLogger        = errors.New("logger or log handler is nil")
	ErrModuleNil        = errors.New("module is nil")
	ErrRenderFailed     = errors.New("failed to render module")
	ErrValidationFailed = errors.New("starlark script validation error")
)
