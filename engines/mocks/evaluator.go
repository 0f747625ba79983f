package mocks

import (
	"context"

	"github.com/caoguofeng92/drools/platform"
	"github.com/caoguofeng92/drools/platform/data"
	"github.com/stretchr/testify/mock"
)

// Evaluator is a mock implementation of platform.Evaluator for testing purposes.
type Evaluator struct {
	mock.Mock
}

// Eval is a mock implementation of the Eval method.
func (m *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	args := m.Called(ctx)
	resp, ok := args.Get(0).(platform.EvaluatorResponse)
	if !ok {
		return nil, args.Error(1)
	}
	return resp, args.Error(1)
}

// Call is a mock implementation of the Call method.
func (m *Evaluator) Call(ctx context.Context, procedure string, input data.Context) (any, error) {
	args := m.Called(ctx, procedure, input)
	return args.Get(0), args.Error(1)
}

// AddDataToContext is a mock implementation of the AddDataToContext method.
func (m *Evaluator) AddDataToContext(ctx context.Context, d ...data.Context) (context.Context, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(context.Context), args.Error(1)
}
