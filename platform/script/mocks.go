package script

import (
	engineTypes "github.com/caoguofeng92/drools/engines/types"
	"github.com/caoguofeng92/drools/procedure"
	"github.com/stretchr/testify/mock"
)

// MockCompiler is a mock implementation of the Compiler interface.
type MockCompiler struct {
	mock.Mock
}

func (m *MockCompiler) Compile(module *procedure.Module) (ExecutableContent, error) {
	args := m.Called(module)
	content, ok := args.Get(0).(ExecutableContent)
	if !ok {
		return nil, args.Error(1)
	}
	return content, args.Error(1)
}

// MockExecutableContent is a mock implementation of the ExecutableContent interface.
type MockExecutableContent struct {
	mock.Mock
}

func (m *MockExecutableContent) GetSource() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockExecutableContent) GetByteCode() any {
	args := m.Called()
	return args.Get(0)
}

func (m *MockExecutableContent) GetEngineType() engineTypes.Type {
	args := m.Called()
	return args.Get(0).(engineTypes.Type)
}
