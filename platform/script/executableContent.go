// Package script holds compiled models: the engine-specific content produced
// by a Compiler and the ExecutableUnit that pairs it with its data source.
package script

import (
	engineTypes "github.com/caoguofeng92/drools/engines/types"
	"github.com/caoguofeng92/drools/procedure"
)

// Compiler renders a procedure module into code for one engine and compiles it.
type Compiler interface {
	Compile(module *procedure.Module) (ExecutableContent, error)
}

// ExecutableContent is a module compiled for an engine.
type ExecutableContent interface {
	// GetSource returns the rendered script.
	GetSource() string

	// GetByteCode returns the compiled form, in the representation the
	// engine expects. Engines type-assert it and fail at eval time when the
	// representation does not match.
	GetByteCode() any

	// GetEngineType returns the engine this content is intended to run on.
	GetEngineType() engineTypes.Type
}
