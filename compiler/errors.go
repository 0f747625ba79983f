package compiler

import (
	"errors"
	"fmt"

	"github.com/caoguofeng92/drools/expression"
)

var (
	ErrUnsupportedExpressionKind  = errors.New("unsupported expression kind")
	ErrUnrecognizedExpressionKind = errors.New("unrecognized expression kind")
	ErrNilBuilder                 = errors.New("builder cannot be nil")
)

// UnsupportedKindError reports an expression kind the compiler does not
// implement yet. It matches ErrUnsupportedExpressionKind with errors.Is.
type UnsupportedKindError struct {
	Kind expression.Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("%s: %s not managed, yet", ErrUnsupportedExpressionKind, e.Kind)
}

func (e *UnsupportedKindError) Unwrap() error {
	return ErrUnsupportedExpressionKind
}

func unsupported(kind expression.Kind) error {
	return &UnsupportedKindError{Kind: kind}
}

func unrecognized(node expression.Expression) error {
	if node == nil {
		return fmt.Errorf("%w: nil expression", ErrUnrecognizedExpressionKind)
	}
	return fmt.Errorf("%w: %T", ErrUnrecognizedExpressionKind, node)
}
