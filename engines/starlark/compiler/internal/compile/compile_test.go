package compile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	t.Run("predeclared names resolve", func(t *testing.T) {
		src := "def F(param1):\n    return pmml_lookup(param1, \"x\")\n"
		prog, err := Compile(src, []string{"pmml_lookup"})
		require.NoError(t, err)
		assert.NotNil(t, prog)
	})

	t.Run("undeclared name", func(t *testing.T) {
		src := "def F(param1):\n    return pmml_lookup(param1, \"x\")\n"
		_, err := Compile(src, nil)
		require.ErrorIs(t, err, ErrCompileFailed)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := Compile("def F(:\n", nil)
		require.ErrorIs(t, err, ErrCompileFailed)
	})

	t.Run("empty", func(t *testing.T) {
		prog, err := Compile("", nil)
		require.NoError(t, err)
		assert.NotNil(t, prog)
	})
}
