package mocks

import (
	"github.com/caoguofeng92/drools/platform/data"
	"github.com/stretchr/testify/mock"
)

// EvaluatorResponse is a mock implementation of the platform.EvaluatorResponse interface.
type EvaluatorResponse struct {
	mock.Mock
}

// Outputs returns a mockable context. A map is accepted and converted with
// data.FromMap.
func (m *EvaluatorResponse) Outputs() data.Context {
	args := m.Called()
	switch val := args.Get(0).(type) {
	case data.Context:
		return val
	case map[string]any:
		return data.FromMap(val)
	case nil:
		return nil
	default:
		panic("unknown outputs type")
	}
}

// Inspect returns a mockable string.
func (m *EvaluatorResponse) Inspect() string {
	args := m.Called()
	return args.String(0)
}

// Interface returns a mockable value of "any" type, and must be type asserted to the correct type.
func (m *EvaluatorResponse) Interface() any {
	args := m.Called()
	return args.Get(0)
}

// GetScriptExeID returns a mockable script version.
func (m *EvaluatorResponse) GetScriptExeID() string {
	args := m.Called()
	return args.String(0)
}

// GetExecTime returns a mockable execution time.
func (m *EvaluatorResponse) GetExecTime() string {
	args := m.Called()
	return args.String(0)
}
