package functions

import "errors"

var (
	ErrEmptyName         = errors.New("function name is empty")
	ErrNilFunction       = errors.New("function is nil")
	ErrDuplicateFunction = errors.New("function already registered")
	ErrUnknownFunction   = errors.New("unknown function")
	ErrArity             = errors.New("wrong number of arguments")
	ErrArgumentType      = errors.New("invalid argument type")
	ErrBindMismatch      = errors.New("parameter and argument counts differ")
	ErrUnknownHostCall   = errors.New("unknown host function")
)

var ErrDivisionByZero = errors.New("division by zero")
