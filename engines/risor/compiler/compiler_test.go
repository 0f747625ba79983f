package compiler

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/caoguofeng92/drools/engines/internal/enginetest"
	engineTypes "github.com/caoguofeng92/drools/engines/types"
	"github.com/caoguofeng92/drools/procedure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("basic creation", func(t *testing.T) {
		comp, err := New(
			WithLogHandler(slog.NewTextHandler(os.Stdout, nil)),
		)
		require.NoError(t, err)
		require.NotNil(t, comp)
		require.Equal(t, "risor.Compiler", comp.String())
	})

	t.Run("with logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		comp, err := New(WithLogger(logger))
		require.NoError(t, err)
		assert.Equal(t, logger, comp.logger)
	})

	t.Run("defaults", func(t *testing.T) {
		comp, err := New()
		require.NoError(t, err)
		assert.NotNil(t, comp.logger)
		assert.NotNil(t, comp.logHandler)
	})

	t.Run("nil options", func(t *testing.T) {
		_, err := New(WithLogHandler(nil))
		require.ErrorIs(t, err, ErrNilLogger)
		_, err = New(WithLogger(nil))
		require.ErrorIs(t, err, ErrNilLogger)
	})
}

func TestQuote(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"plain":        `"plain"`,
		`say "hi"`:     `"say \"hi\""`,
		`back\slash`:   `"back\\slash"`,
		"line\nbreak":  `"line\nbreak"`,
		"tab\there":    `"tab\there"`,
		"naïve façade": `"naïve façade"`,
		"nul\x00byte":  `"nul\x00byte"`,
		"bell\a":       `"bell\x07"`,
		"esc\x1b[0m":   `"esc\x1b[0m"`,
		"del\x7f":      `"del\x7f"`,
		"\v\f":         `"\x0b\x0c"`,
	}
	for in, want := range tests {
		assert.Equal(t, want, quote(in), in)
	}
}

func TestCompiler_Compile(t *testing.T) {
	t.Parallel()

	t.Run("module", func(t *testing.T) {
		comp, err := New()
		require.NoError(t, err)

		content, err := comp.Compile(enginetest.Module(t))
		require.NoError(t, err)
		assert.Equal(t, engineTypes.Risor, content.GetEngineType())

		src := content.GetSource()
		assert.Contains(t, src, "func Apply1(param1) {\n")
		assert.Contains(t, src, "    applyVariable := pmml_cast(\"double\", ")
		assert.Contains(t, src, "Apply1(pmml_bind([\"p\"], [applyVariableFieldRef1]))")
		assert.Contains(t, src, "fieldRefVariable := pmml_cast(\"string\", pmml_or_else(fieldRefVariableMatch, \"unknown\"))")

		programs, ok := content.GetByteCode().(Programs)
		require.True(t, ok)
		assert.Len(t, programs, 5)

		exe, ok := content.(*Executable)
		require.True(t, ok)
		assert.NotNil(t, exe.GetRisorByteCode("Apply3"))
		assert.Nil(t, exe.GetRisorByteCode("Nope"))
	})

	t.Run("empty module", func(t *testing.T) {
		comp, err := New()
		require.NoError(t, err)
		content, err := comp.Compile(procedure.NewModule())
		require.NoError(t, err)
		assert.Empty(t, content.GetSource())
		assert.Empty(t, content.GetByteCode())
	})

	t.Run("nil module", func(t *testing.T) {
		comp, err := New()
		require.NoError(t, err)
		_, err = comp.Compile(nil)
		require.ErrorIs(t, err, ErrModuleNil)
	})

	t.Run("render failure", func(t *testing.T) {
		m := procedure.NewModule()
		require.NoError(t, m.Register(&procedure.Definition{
			Name: "Bad",
			Body: []procedure.Statement{&procedure.Declare{Name: "x", Type: procedure.TypeObject}},
		}))

		comp, err := New()
		require.NoError(t, err)
		_, err = comp.Compile(m)
		require.ErrorIs(t, err, ErrRenderFailed)
	})

	t.Run("undefined variable", func(t *testing.T) {
		m := procedure.NewModule()
		require.NoError(t, m.Register(&procedure.Definition{
			Name:   "Bad",
			Params: []procedure.Param{{Name: "param1", Type: procedure.TypeContext}},
			Body:   []procedure.Statement{&procedure.Return{Name: "undefined_variable"}},
		}))

		comp, err := New()
		require.NoError(t, err)
		_, err = comp.Compile(m)
		require.ErrorIs(t, err, ErrValidationFailed)
	})
}
