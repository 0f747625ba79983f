package model

import "errors"

var (
	ErrNilDocument      = errors.New("document is nil")
	ErrDuplicateField   = errors.New("duplicate derived field")
	ErrNilSynthesizer   = errors.New("synthesizer cannot be nil")
	ErrCompileProcedure = errors.New("failed to compile procedure")
)
