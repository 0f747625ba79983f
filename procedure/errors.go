package procedure

import "errors"

var (
	ErrNilDefinition      = errors.New("procedure definition is nil")
	ErrEmptyName          = errors.New("procedure name is empty")
	ErrDuplicateProcedure = errors.New("procedure already registered")
	ErrDuplicateFunction  = errors.New("function already registered")
	ErrUnknownProcedure   = errors.New("procedure not registered")
)
