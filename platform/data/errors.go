package data

import "errors"

var (
	ErrInvalidPair                    = errors.New("invalid name-value pair")
	ErrInvalidCast                    = errors.New("invalid cast")
	ErrStaticProviderNoRuntimeUpdates = errors.New("static provider does not support runtime updates")
	ErrEmptyContextKey                = errors.New("context key is empty")
	ErrNotAMapping                    = errors.New("input document is not a mapping")
)
