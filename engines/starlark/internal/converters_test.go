package internal

import (
	"testing"

	"github.com/caoguofeng92/drools/platform/constants"
	"github.com/caoguofeng92/drools/platform/data"
	"github.com/caoguofeng92/drools/platform/functions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	starlarkLib "go.starlark.net/starlark"
)

func TestConvertRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{"nil", nil, nil},
		{"bool", true, true},
		{"int", 42, int64(42)},
		{"int64", int64(-7), int64(-7)},
		{"float", 1.5, 1.5},
		{"string", "hello", "hello"},
		{"list", []any{1, "a", nil}, []any{int64(1), "a", nil}},
		{"map", map[string]any{"b": 2.0, "a": []any{}}, map[string]any{"b": 2.0, "a": []any{}}},
		{"context", data.Context{{Name: "x", Value: 1.0}}, []any{[]any{"x", 1.0}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sv, err := ConvertToStarlarkValue(tt.input)
			require.NoError(t, err)
			got, err := ConvertStarlarkValueToInterface(sv)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConvertErrors(t *testing.T) {
	t.Parallel()

	_, err := ConvertToStarlarkValue(struct{}{})
	require.Error(t, err)
	_, err = ConvertToStarlarkValue([]any{struct{}{}})
	require.Error(t, err)

	set := starlarkLib.NewSet(1)
	_, err = ConvertStarlarkValueToInterface(set)
	require.Error(t, err)

	dict := starlarkLib.NewDict(1)
	require.NoError(t, dict.SetKey(starlarkLib.MakeInt(1), starlarkLib.None))
	_, err = ConvertStarlarkValueToInterface(dict)
	require.Error(t, err)
}

func TestConvertTuple(t *testing.T) {
	t.Parallel()

	got, err := ConvertStarlarkValueToInterface(starlarkLib.Tuple{starlarkLib.String("a"), starlarkLib.Float(1)})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", 1.0}, got)
}

func TestStarlarkModules(t *testing.T) {
	t.Parallel()

	modules := StarlarkModules()
	for _, name := range []string{"json", "math", "time", "len", "None"} {
		assert.True(t, modules.Has(name), name)
	}
	assert.False(t, starlarkLib.Universe.Has("json"), "universe must not be modified")
}

func TestHostBuiltins(t *testing.T) {
	t.Parallel()

	builtins := HostBuiltins(functions.NewHost(nil))
	require.Len(t, builtins, len(constants.HostNames()))

	thread := &starlarkLib.Thread{Name: "test"}
	ctx, err := ConvertToStarlarkValue(data.Context{{Name: "age", Value: 30}})
	require.NoError(t, err)

	t.Run("lookup", func(t *testing.T) {
		v, err := starlarkLib.Call(thread, builtins[constants.HostLookup],
			starlarkLib.Tuple{ctx, starlarkLib.String("age")}, nil)
		require.NoError(t, err)
		got, err := ConvertStarlarkValueToInterface(v)
		require.NoError(t, err)
		assert.Equal(t, []any{true, int64(30)}, got)
	})

	t.Run("call", func(t *testing.T) {
		v, err := starlarkLib.Call(thread, builtins[constants.HostCall],
			starlarkLib.Tuple{starlarkLib.String("+"), ctx, starlarkLib.MakeInt(1), starlarkLib.Float(2)}, nil)
		require.NoError(t, err)
		assert.Equal(t, starlarkLib.Float(3), v)
	})

	t.Run("host error", func(t *testing.T) {
		_, err := starlarkLib.Call(thread, builtins[constants.HostCall],
			starlarkLib.Tuple{starlarkLib.String("/"), ctx, starlarkLib.MakeInt(1), starlarkLib.MakeInt(0)}, nil)
		require.ErrorIs(t, err, functions.ErrDivisionByZero)
	})

	t.Run("keyword arguments", func(t *testing.T) {
		_, err := starlarkLib.Call(thread, builtins[constants.HostCast],
			nil, []starlarkLib.Tuple{{starlarkLib.String("t"), starlarkLib.String("double")}})
		require.Error(t, err)
	})
}
