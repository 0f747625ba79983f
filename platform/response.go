package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/caoguofeng92/drools/platform/data"
	"github.com/caoguofeng92/drools/procedure"
)

// Response is the EvaluatorResponse shared by every engine.
type Response struct {
	outputs     data.Context
	execTime    time.Duration
	scriptExeID string
}

// NewResponse returns a Response for outputs.
func NewResponse(outputs data.Context, execTime time.Duration, scriptExeID string) *Response {
	if outputs == nil {
		outputs = data.Context{}
	}
	return &Response{
		outputs:     outputs,
		execTime:    execTime,
		scriptExeID: scriptExeID,
	}
}

func (r *Response) String() string {
	return fmt.Sprintf("Response{Outputs: %s, ExecTime: %s, ScriptExeID: %s}",
		r.outputs, r.GetExecTime(), r.scriptExeID)
}

func (r *Response) Outputs() data.Context {
	return r.outputs.Clone()
}

// Interface returns a map[string]any; when a field repeats, the first value
// is kept.
func (r *Response) Interface() any {
	m := make(map[string]any, len(r.outputs))
	for _, nv := range r.outputs {
		if _, seen := m[nv.Name]; !seen {
			m[nv.Name] = nv.Value
		}
	}
	return m
}

func (r *Response) Inspect() string {
	return r.outputs.String()
}

func (r *Response) GetScriptExeID() string {
	return r.scriptExeID
}

func (r *Response) GetExecTime() string {
	return r.execTime.String()
}

// CallFunc runs one procedure of a module.
type CallFunc func(ctx context.Context, procedure string, input data.Context) (any, error)

// EvalOutputs evaluates every output of module in order, starting from input.
// Each result is appended to the working context before the next output is
// computed. It stops at the first failure or when ctx is done.
func EvalOutputs(
	ctx context.Context,
	module *procedure.Module,
	input data.Context,
	call CallFunc,
) (data.Context, error) {
	outputs := module.Outputs()
	working := input.Clone()
	results := make(data.Context, 0, len(outputs))

	for _, out := range outputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		value, err := call(ctx, out.Procedure, working)
		if err != nil {
			return nil, fmt.Errorf("derived field %q: %w", out.Field, err)
		}

		nv := data.NameValue{Name: out.Field, Value: value}
		working = append(working, nv)
		results = append(results, nv)
	}
	return results, nil
}
