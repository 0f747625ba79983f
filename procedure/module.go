package procedure

import (
	"fmt"
	"slices"
	"sync"
)

// Registrar accepts finished procedure definitions.
type Registrar interface {
	Register(def *Definition) error
}

// Output ties a derived field to the procedure that computes it.
type Output struct {
	Field     string
	Procedure string
}

// FunctionRef ties a user-defined function to its procedure. Params are the
// names the call arguments are bound to, in order, when the function is applied.
type FunctionRef struct {
	Procedure string
	Params    []string
}

// Module is an ordered set of procedures compiled from one model, together
// with the derived fields they compute and the functions they define.
type Module struct {
	mu         sync.RWMutex
	procedures []*Definition
	index      map[string]int
	outputs    []Output
	functions  map[string]FunctionRef
}

// NewModule returns an empty Module.
func NewModule() *Module {
	return &Module{
		index:     make(map[string]int),
		functions: make(map[string]FunctionRef),
	}
}

// Register implements Registrar. Procedure names must be unique.
func (m *Module) Register(def *Definition) error {
	if def == nil {
		return ErrNilDefinition
	}
	if def.Name == "" {
		return ErrEmptyName
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.index[def.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateProcedure, def.Name)
	}
	m.index[def.Name] = len(m.procedures)
	m.procedures = append(m.procedures, def)
	return nil
}

// AddOutput records that procedure computes field. The procedure must already
// be registered.
func (m *Module) AddOutput(field, procedure string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.index[procedure]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProcedure, procedure)
	}
	m.outputs = append(m.outputs, Output{Field: field, Procedure: procedure})
	return nil
}

// AddFunction records a user-defined function. The procedure must already be
// registered and the function name must be new.
func (m *Module) AddFunction(name string, ref FunctionRef) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.index[ref.Procedure]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProcedure, ref.Procedure)
	}
	if _, exists := m.functions[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateFunction, name)
	}
	m.functions[name] = FunctionRef{Procedure: ref.Procedure, Params: slices.Clone(ref.Params)}
	return nil
}

// Procedures returns the registered procedures in registration order.
func (m *Module) Procedures() []*Definition {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.procedures)
}

// Procedure returns the procedure registered under name.
func (m *Module) Procedure(name string) (*Definition, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.index[name]
	if !ok {
		return nil, false
	}
	return m.procedures[i], true
}

// Outputs returns the derived-field outputs in the order they were added.
func (m *Module) Outputs() []Output {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.outputs)
}

// Function returns the user-defined function registered under name.
func (m *Module) Function(name string) (FunctionRef, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ref, ok := m.functions[name]
	return ref, ok
}

// Len returns the number of registered procedures.
func (m *Module) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.procedures)
}
