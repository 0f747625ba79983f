package compiler

import (
	"fmt"

	"github.com/caoguofeng92/drools/procedure"
)

// FunctionalOption is a function that configures a Synthesizer instance
type FunctionalOption func(*Synthesizer) error

// WithShapeBuilder sets the builder that creates empty procedure shells.
func WithShapeBuilder(b procedure.ShapeBuilder) FunctionalOption {
	return func(s *Synthesizer) error {
		if b == nil {
			return fmt.Errorf("%w: shape builder", ErrNilBuilder)
		}
		s.shapes = b
		return nil
	}
}

// WithFilterBuilder sets the builder that emits the context lookup of a FieldRef.
func WithFilterBuilder(b procedure.FilterBuilder) FunctionalOption {
	return func(s *Synthesizer) error {
		if b == nil {
			return fmt.Errorf("%w: filter builder", ErrNilBuilder)
		}
		s.filters = b
		return nil
	}
}

// applyDefaults fills in the builders that were not configured
func (s *Synthesizer) applyDefaults() {
	if s.shapes == nil {
		s.shapes = procedure.DefaultShapeBuilder{}
	}
	if s.filters == nil {
		s.filters = procedure.DefaultFilterBuilder{}
	}
}
