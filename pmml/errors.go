package pmml

import "errors"

var (
	ErrNoPMMLElement     = errors.New("document has no PMML root element")
	ErrUnknownElement    = errors.New("unknown expression element")
	ErrMissingExpression = errors.New("missing expression")
	ErrInvalidConstant   = errors.New("invalid constant")
	ErrMissingAttribute  = errors.New("missing required attribute")
	ErrInvalidDataType   = errors.New("invalid dataType")
)
