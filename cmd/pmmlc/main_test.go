package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes pmmlc with args and returns what it wrote to stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCompile(t *testing.T) {
	t.Parallel()

	t.Run("ir", func(t *testing.T) {
		t.Parallel()
		out, _, err := run(t, "", "compile", "testdata/model.pmml")
		require.NoError(t, err)
		assert.Contains(t, out, "double Apply1(context param1) {")
		assert.Contains(t, out, "double Constant5(context param1) {")
	})

	t.Run("starlark", func(t *testing.T) {
		t.Parallel()
		out, _, err := run(t, "", "compile", "--engine", "starlark", "testdata/model.pmml")
		require.NoError(t, err)
		assert.Contains(t, out, "def Apply1(param1):\n")
	})

	t.Run("risor", func(t *testing.T) {
		t.Parallel()
		out, _, err := run(t, "", "compile", "--engine", "risor", "testdata/model.pmml")
		require.NoError(t, err)
		assert.Contains(t, out, "func Apply1(param1) {\n")
	})

	t.Run("stdin", func(t *testing.T) {
		t.Parallel()
		model, err := os.ReadFile("testdata/model.pmml")
		require.NoError(t, err)
		out, _, err := run(t, string(model), "compile", "-")
		require.NoError(t, err)
		assert.Contains(t, out, "Apply3")
	})

	t.Run("unknown engine", func(t *testing.T) {
		t.Parallel()
		_, _, err := run(t, "", "compile", "--engine", "lua", "testdata/model.pmml")
		require.Error(t, err)
	})

	t.Run("missing model", func(t *testing.T) {
		t.Parallel()
		_, _, err := run(t, "", "compile", "testdata/missing.pmml")
		require.Error(t, err)
	})

	t.Run("no arguments", func(t *testing.T) {
		t.Parallel()
		_, _, err := run(t, "", "compile")
		require.Error(t, err)
	})
}

func TestEval(t *testing.T) {
	t.Parallel()

	for _, engine := range []string{"starlark", "risor"} {
		engine := engine
		t.Run(engine, func(t *testing.T) {
			t.Parallel()
			out, _, err := run(t, "", "eval", "--engine", engine, "--input", "testdata/input.yaml", "testdata/model.pmml")
			require.NoError(t, err)
			assert.Equal(t, "ageNext: 31\nageDoubled: 62\nlabel: ada\nten: 10\n", out)
		})
	}

	t.Run("json from stdin", func(t *testing.T) {
		t.Parallel()
		out, _, err := run(t, `{"age": 1}`, "eval", "--input", "-", "testdata/model.pmml")
		require.NoError(t, err)
		assert.Contains(t, out, "ageNext: 2\n")
		assert.Contains(t, out, "label: unknown\n")
	})

	t.Run("no input", func(t *testing.T) {
		t.Parallel()
		out, _, err := run(t, "", "eval", "testdata/model.pmml")
		require.NoError(t, err)
		assert.Contains(t, out, "ageNext: null\n")
	})

	t.Run("both from stdin", func(t *testing.T) {
		t.Parallel()
		_, _, err := run(t, "", "eval", "--input", "-", "-")
		require.Error(t, err)
	})

	t.Run("bad input", func(t *testing.T) {
		t.Parallel()
		_, _, err := run(t, "- 1\n", "eval", "--input", "-", "testdata/model.pmml")
		require.Error(t, err)
	})
}

func TestSkipUnsupported(t *testing.T) {
	t.Parallel()

	const model = `<PMML><TransformationDictionary>
		<DerivedField name="n" dataType="double"><NormContinuous field="a"/></DerivedField>
		<DerivedField name="c" dataType="double"><Constant>1</Constant></DerivedField>
	</TransformationDictionary></PMML>`

	_, _, err := run(t, model, "compile", "-")
	require.Error(t, err)

	out, logs, err := run(t, model, "--skip-unsupported", "--log-level", "debug", "compile", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Constant2")
	assert.NotContains(t, out, "NormContinuous1")
	assert.Contains(t, logs, "skipping derived field")
}

func TestLogLevel(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "", "--log-level", "loud", "compile", "testdata/model.pmml")
	require.Error(t, err)

	_, logs, err := run(t, "", "--log-level", "error", "compile", "testdata/model.pmml")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "pmmlc version dev")
}
