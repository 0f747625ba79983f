package evaluator

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	synth "github.com/caoguofeng92/drools/compiler"
	"github.com/caoguofeng92/drools/engines/internal/enginetest"
	"github.com/caoguofeng92/drools/engines/risor/compiler"
	"github.com/caoguofeng92/drools/expression"
	"github.com/caoguofeng92/drools/platform/constants"
	"github.com/caoguofeng92/drools/platform/data"
	"github.com/caoguofeng92/drools/platform/functions"
	"github.com/caoguofeng92/drools/platform/script"
	"github.com/caoguofeng92/drools/procedure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testHandler() slog.Handler {
	return slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})
}

// evalBuilder compiles module and wraps it in an evaluator reading from provider.
func evalBuilder(
	t *testing.T,
	module *procedure.Module,
	provider data.Provider,
	host *functions.Host,
) *Evaluator {
	t.Helper()
	handler := testHandler()

	c, err := compiler.New(compiler.WithLogHandler(handler))
	require.NoError(t, err)

	exe, err := script.NewExecutableUnit(handler, "", module, c, provider)
	require.NoError(t, err)

	evaluator := New(handler, exe, host)
	require.NotNil(t, evaluator)
	return evaluator
}

// MockProvider mocks the data.Provider interface
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetData(ctx context.Context) (data.Context, error) {
	args := m.Called(ctx)
	if d, ok := args.Get(0).(data.Context); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProvider) AddDataToContext(ctx context.Context, d ...data.Context) (context.Context, error) {
	args := m.Called(ctx, d)
	if c, ok := args.Get(0).(context.Context); ok {
		return c, args.Error(1)
	}
	return ctx, args.Error(1)
}

func TestEvaluator_Eval(t *testing.T) {
	t.Parallel()

	t.Run("derived fields from context data", func(t *testing.T) {
		evaluator := evalBuilder(t, enginetest.Module(t), data.NewContextProvider(constants.EvalData), nil)
		assert.Equal(t, "risor.Evaluator", evaluator.String())

		ctx, err := evaluator.AddDataToContext(context.Background(), enginetest.Input())
		require.NoError(t, err)

		response, err := evaluator.Eval(ctx)
		require.NoError(t, err)
		assert.Equal(t, enginetest.Expected(), response.Outputs())
		assert.Equal(t, 62.0, response.Interface().(map[string]any)["ageDoubled"])
		assert.NotEmpty(t, response.GetScriptExeID())
	})

	t.Run("present name wins over default", func(t *testing.T) {
		input := data.Context{{Name: "age", Value: 1}, {Name: "name", Value: "ada"}, {Name: "name", Value: "bob"}}
		evaluator := evalBuilder(t, enginetest.Module(t), data.NewStaticProvider(input), nil)

		response, err := evaluator.Eval(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ada", response.Outputs().FirstMatch("label").Value)
	})

	t.Run("missing operand propagates", func(t *testing.T) {
		evaluator := evalBuilder(t, enginetest.Module(t), data.NewStaticProvider(nil), nil)

		response, err := evaluator.Eval(context.Background())
		require.NoError(t, err)
		outputs := response.Outputs()
		assert.Equal(t, data.Match{Found: true}, outputs.FirstMatch("ageNext"))
		assert.Equal(t, data.Match{Found: true}, outputs.FirstMatch("ageDoubled"))
		assert.Equal(t, 10.0, outputs.FirstMatch("ten").Value)
	})

	t.Run("provider error", func(t *testing.T) {
		provider := new(MockProvider)
		boom := errors.New("boom")
		provider.On("GetData", mock.Anything).Return(nil, boom)

		evaluator := evalBuilder(t, enginetest.Module(t), provider, nil)
		_, err := evaluator.Eval(context.Background())
		require.ErrorIs(t, err, boom)
		provider.AssertExpectations(t)
	})

	t.Run("runtime error", func(t *testing.T) {
		m := procedure.NewModule()
		def, err := procedureFor("Apply1", expression.NewApply("/",
			expression.NewConstant(1.0, expression.DataTypeDouble),
			expression.NewConstant(0.0, expression.DataTypeDouble)))
		require.NoError(t, err)
		require.NoError(t, m.Register(def))
		require.NoError(t, m.AddOutput("ratio", "Apply1"))

		evaluator := evalBuilder(t, m, data.NewStaticProvider(nil), nil)
		_, err = evaluator.Eval(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), functions.ErrDivisionByZero.Error())
		assert.Contains(t, err.Error(), `"ratio"`)
	})

	t.Run("custom library function", func(t *testing.T) {
		library := functions.Default()
		require.NoError(t, library.Register("answer", func(data.Context, ...any) (any, error) {
			return 42.0, nil
		}))

		m := procedure.NewModule()
		def, err := procedureFor("Apply1", expression.NewApply("answer"))
		require.NoError(t, err)
		require.NoError(t, m.Register(def))
		require.NoError(t, m.AddOutput("answer", "Apply1"))

		evaluator := evalBuilder(t, m, data.NewStaticProvider(nil), functions.NewHost(library))
		response, err := evaluator.Eval(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 42.0, response.Outputs().FirstMatch("answer").Value)
	})

	t.Run("nil executable unit", func(t *testing.T) {
		evaluator := New(testHandler(), nil, nil)
		_, err := evaluator.Eval(context.Background())
		require.Error(t, err)
	})

	t.Run("wrong bytecode type", func(t *testing.T) {
		content := new(script.MockExecutableContent)
		content.On("GetByteCode").Return("not a program")
		exe := &script.ExecutableUnit{ID: "x", Content: content, Module: procedure.NewModule()}

		_, err := New(testHandler(), exe, nil).Eval(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to type assert bytecode")
	})
}

func procedureFor(name string, node expression.Expression) (*procedure.Definition, error) {
	return synth.CompileProcedure(name, node, procedure.TypeDouble, procedure.ContextParameters())
}

func TestEvaluator_Call(t *testing.T) {
	t.Parallel()

	evaluator := evalBuilder(t, enginetest.Module(t), data.NewStaticProvider(nil), nil)

	t.Run("user-defined function procedure", func(t *testing.T) {
		got, err := evaluator.Call(context.Background(), "Apply1", data.Context{{Name: "p", Value: 4}})
		require.NoError(t, err)
		assert.Equal(t, 8.0, got)
	})

	t.Run("unknown procedure", func(t *testing.T) {
		_, err := evaluator.Call(context.Background(), "Nope", nil)
		require.ErrorIs(t, err, ErrUnknownProcedure)
	})

	t.Run("concurrent calls", func(t *testing.T) {
		done := make(chan struct{})
		for i := 0; i < 8; i++ {
			i := i
			go func() {
				defer func() { done <- struct{}{} }()
				got, err := evaluator.Call(context.Background(), "Apply2", data.Context{{Name: "age", Value: i}})
				assert.NoError(t, err)
				assert.Equal(t, float64(i+1), got)
			}()
		}
		for i := 0; i < 8; i++ {
			<-done
		}
	})
}

func TestEvaluator_Cancellation(t *testing.T) {
	t.Parallel()

	library := functions.Default()
	release := make(chan struct{})
	require.NoError(t, library.Register("slow", func(data.Context, ...any) (any, error) {
		<-release
		return 1.0, nil
	}))

	m := procedure.NewModule()
	first, err := procedureFor("Apply1", expression.NewApply("slow"))
	require.NoError(t, err)
	second, err := procedureFor("Apply2", expression.NewApply("slow"))
	require.NoError(t, err)
	require.NoError(t, m.Register(first))
	require.NoError(t, m.Register(second))
	require.NoError(t, m.AddOutput("a", "Apply1"))
	require.NoError(t, m.AddOutput("b", "Apply2"))

	evaluator := evalBuilder(t, m, data.NewStaticProvider(nil), functions.NewHost(library))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		cancel()
		time.Sleep(10 * time.Millisecond)
		close(release)
	}()

	_, err = evaluator.Eval(ctx)
	require.Error(t, err)
}

func TestEvaluator_AddDataToContext(t *testing.T) {
	t.Parallel()

	t.Run("static provider refuses", func(t *testing.T) {
		evaluator := evalBuilder(t, enginetest.Module(t), data.NewStaticProvider(nil), nil)
		_, err := evaluator.AddDataToContext(context.Background(), enginetest.Input())
		require.ErrorIs(t, err, data.ErrStaticProviderNoRuntimeUpdates)
	})

	t.Run("no provider", func(t *testing.T) {
		_, err := New(testHandler(), nil, nil).AddDataToContext(context.Background())
		require.Error(t, err)
	})
}
