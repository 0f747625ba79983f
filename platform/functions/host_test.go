package functions

import (
	"testing"

	"github.com/caoguofeng92/drools/platform/constants"
	"github.com/caoguofeng92/drools/platform/data"
	"github.com/caoguofeng92/drools/procedure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHost_Typed(t *testing.T) {
	t.Parallel()

	h := NewHost(nil)
	require.NotNil(t, h.Library())

	ctx := data.Context{{Name: "age", Value: 30}, {Name: "age", Value: 40}}
	m := h.Lookup(ctx, "age")
	assert.Equal(t, data.Match{Value: 30, Found: true}, m)
	assert.Equal(t, "d", h.OrElse(h.Lookup(ctx, "none"), "d"))

	v, err := h.Cast(procedure.TypeDouble, "5")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	sum, err := h.Call(ctx, "sum", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, sum)

	bound, err := h.Bind([]string{"a", "b"}, []any{1, nil})
	require.NoError(t, err)
	assert.Equal(t, data.Context{{Name: "a", Value: 1}, {Name: "b", Value: nil}}, bound)

	_, err = h.Bind([]string{"a"}, nil)
	require.ErrorIs(t, err, ErrBindMismatch)
}

func TestHost_Invoke(t *testing.T) {
	t.Parallel()

	h := NewHost(Default())
	pairs := data.Context{{Name: "age", Value: int64(30)}}.Pairs()

	tests := []struct {
		name     string
		host     string
		args     []any
		expected any
	}{
		{"lookup found", constants.HostLookup, []any{pairs, "age"}, []any{true, int64(30)}},
		{"lookup absent", constants.HostLookup, []any{pairs, "x"}, []any{false, nil}},
		{"lookup nil context", constants.HostLookup, []any{nil, "x"}, []any{false, nil}},
		{"or else matched", constants.HostOrElse, []any{[]any{true, 1}, "d"}, 1},
		{"or else fallback", constants.HostOrElse, []any{[]any{false, nil}, "d"}, "d"},
		{"or else nil value", constants.HostOrElse, []any{[]any{true, nil}, "d"}, "d"},
		{"cast", constants.HostCast, []any{"double", "2.5"}, 2.5},
		{"cast nil", constants.HostCast, []any{"int", nil}, nil},
		{"call", constants.HostCall, []any{"+", pairs, 1, 2}, 3.0},
		{"bind", constants.HostBind, []any{[]any{"p"}, []any{7}}, []any{[]any{"p", 7}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := h.Invoke(tt.host, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHost_InvokeErrors(t *testing.T) {
	t.Parallel()

	h := NewHost(nil)

	tests := []struct {
		name string
		host string
		args []any
		err  error
	}{
		{"unknown host", "pmml_nope", nil, ErrUnknownHostCall},
		{"lookup arity", constants.HostLookup, []any{nil}, ErrArity},
		{"lookup bad context", constants.HostLookup, []any{42, "x"}, ErrArgumentType},
		{"lookup bad pair", constants.HostLookup, []any{[]any{"x"}, "x"}, data.ErrInvalidPair},
		{"lookup bad field", constants.HostLookup, []any{nil, 1}, ErrArgumentType},
		{"or else bad match", constants.HostOrElse, []any{"m", 1}, ErrArgumentType},
		{"or else bad flag", constants.HostOrElse, []any{[]any{1, 1}, 1}, ErrArgumentType},
		{"cast bad type", constants.HostCast, []any{1, 1}, ErrArgumentType},
		{"cast unknown type", constants.HostCast, []any{"decimal", 1}, data.ErrInvalidCast},
		{"call arity", constants.HostCall, []any{"+"}, ErrArity},
		{"call unknown", constants.HostCall, []any{"nope", nil}, ErrUnknownFunction},
		{"bind mismatch", constants.HostBind, []any{[]any{"a"}, []any{}}, ErrBindMismatch},
		{"bind bad name", constants.HostBind, []any{[]any{1}, []any{1}}, ErrArgumentType},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := h.Invoke(tt.host, tt.args)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestMatchPair(t *testing.T) {
	t.Parallel()

	m := data.Match{Value: "x", Found: true}
	back, err := MatchFromPair(MatchPair(m))
	require.NoError(t, err)
	assert.Equal(t, m, back)
}
