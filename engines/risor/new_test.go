package risor

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/caoguofeng92/drools/engines/internal/enginetest"
	"github.com/caoguofeng92/drools/engines/risor/compiler"
	"github.com/caoguofeng92/drools/engines/types"
	"github.com/caoguofeng92/drools/platform/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromModule(t *testing.T) {
	t.Parallel()
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})

	evaluator, err := FromModule(handler, enginetest.Module(t))
	require.NoError(t, err)

	ctx, err := evaluator.AddDataToContext(context.Background(), enginetest.Input())
	require.NoError(t, err)

	response, err := evaluator.Eval(ctx)
	require.NoError(t, err)
	assert.Equal(t, enginetest.Expected(), response.Outputs())
}

func TestFromModuleWithData(t *testing.T) {
	t.Parallel()

	static := data.Context{{Name: "age", Value: 1}, {Name: "name", Value: "static"}}
	evaluator, err := FromModuleWithData(nil, enginetest.Module(t), static)
	require.NoError(t, err)

	t.Run("static only", func(t *testing.T) {
		response, err := evaluator.Eval(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2.0, response.Outputs().FirstMatch("ageNext").Value)
		assert.Equal(t, "static", response.Outputs().FirstMatch("label").Value)
	})

	t.Run("runtime shadows static", func(t *testing.T) {
		ctx, err := evaluator.AddDataToContext(context.Background(), enginetest.Input())
		require.NoError(t, err)

		response, err := evaluator.Eval(ctx)
		require.NoError(t, err)
		assert.Equal(t, 31.0, response.Outputs().FirstMatch("ageNext").Value)
		assert.Equal(t, "static", response.Outputs().FirstMatch("label").Value)
	})
}

func TestNewEvaluator(t *testing.T) {
	t.Parallel()

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewEvaluator(nil, enginetest.Module(t), nil, nil)
		require.Error(t, err)
	})

	t.Run("nil module", func(t *testing.T) {
		_, err := NewEvaluator(nil, nil, data.NewStaticProvider(nil), nil)
		require.Error(t, err)
	})
}

func TestNewCompiler(t *testing.T) {
	t.Parallel()

	c, err := NewCompiler(compiler.WithLogHandler(slog.Default().Handler()))
	require.NoError(t, err)

	content, err := c.Compile(enginetest.Module(t))
	require.NoError(t, err)
	assert.Equal(t, types.Risor, content.GetEngineType())
	assert.Contains(t, content.GetSource(), "func Apply1(param1) {")
}
