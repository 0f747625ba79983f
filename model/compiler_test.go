package model

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/caoguofeng92/drools/compiler"
	"github.com/caoguofeng92/drools/expression"
	"github.com/caoguofeng92/drools/pmml"
	"github.com/caoguofeng92/drools/procedure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transformations = `<PMML version="4.4">
  <TransformationDictionary>
    <DefineFunction name="double" dataType="double">
      <ParameterField name="p"/>
      <Apply function="*"><FieldRef field="p"/><Constant dataType="double">2</Constant></Apply>
    </DefineFunction>
    <DerivedField name="ageNext" dataType="double">
      <Apply function="+"><FieldRef field="age"/><Constant dataType="double">1</Constant></Apply>
    </DerivedField>
    <DerivedField name="norm" dataType="double">
      <NormContinuous field="age"/>
    </DerivedField>
    <DerivedField name="ageDoubled" dataType="double">
      <Apply function="double"><FieldRef field="ageNext"/></Apply>
    </DerivedField>
  </TransformationDictionary>
  <LocalTransformations>
    <DerivedField name="label" dataType="string">
      <FieldRef field="name" mapMissingTo="unknown"/>
    </DerivedField>
  </LocalTransformations>
</PMML>`

func parse(t *testing.T, doc string) *pmml.Document {
	t.Helper()
	d, err := pmml.ParseString(doc)
	require.NoError(t, err)
	return d
}

func procedureNames(m *procedure.Module) []string {
	var names []string
	for _, def := range m.Procedures() {
		names = append(names, def.Name)
	}
	return names
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		c, err := New()
		require.NoError(t, err)
		assert.Equal(t, "model.Compiler", c.String())
		assert.NotNil(t, c.synth)
		assert.NotNil(t, c.logger)
		assert.False(t, c.skipUnsupported)
	})

	t.Run("options", func(t *testing.T) {
		s, err := compiler.New()
		require.NoError(t, err)
		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

		c, err := New(WithSynthesizer(s), WithLogger(logger), WithSkipUnsupported(true))
		require.NoError(t, err)
		assert.Same(t, s, c.synth)
		assert.Equal(t, logger.Handler(), c.logHandler)
		assert.True(t, c.skipUnsupported)
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := New(WithSynthesizer(nil))
		require.ErrorIs(t, err, ErrNilSynthesizer)
		_, err = New(WithLogHandler(nil))
		require.Error(t, err)
		_, err = New(WithLogger(nil))
		require.Error(t, err)
	})
}

func TestCompiler_Compile(t *testing.T) {
	t.Parallel()

	t.Run("unsupported aborts by default", func(t *testing.T) {
		c, err := New()
		require.NoError(t, err)

		_, err = c.Compile(parse(t, transformations))
		require.ErrorIs(t, err, compiler.ErrUnsupportedExpressionKind)
		require.ErrorIs(t, err, ErrCompileProcedure)
		assert.Contains(t, err.Error(), `"norm"`)

		var kindErr *compiler.UnsupportedKindError
		require.ErrorAs(t, err, &kindErr)
		assert.Equal(t, expression.KindNormContinuous, kindErr.Kind)
	})

	t.Run("skip unsupported", func(t *testing.T) {
		var logs bytes.Buffer
		c, err := New(
			WithLogHandler(slog.NewTextHandler(&logs, nil)),
			WithSkipUnsupported(true),
		)
		require.NoError(t, err)

		m, err := c.Compile(parse(t, transformations))
		require.NoError(t, err)

		// the skipped field still consumes serial 3
		assert.Equal(t, []string{"Apply1", "Apply2", "Apply4", "FieldRef5"}, procedureNames(m))
		assert.Equal(t, []procedure.Output{
			{Field: "ageNext", Procedure: "Apply2"},
			{Field: "ageDoubled", Procedure: "Apply4"},
			{Field: "label", Procedure: "FieldRef5"},
		}, m.Outputs())

		ref, ok := m.Function("double")
		require.True(t, ok)
		assert.Equal(t, procedure.FunctionRef{Procedure: "Apply1", Params: []string{"p"}}, ref)

		label, ok := m.Procedure("FieldRef5")
		require.True(t, ok)
		assert.Equal(t, procedure.TypeString, label.ReturnType)
		assert.Equal(t, "param1", label.ContextParam())

		assert.Contains(t, logs.String(), "skipping derived field with unsupported expression")
		assert.Contains(t, logs.String(), "field=norm")
	})

	t.Run("deterministic names", func(t *testing.T) {
		c, err := New(WithSkipUnsupported(true))
		require.NoError(t, err)

		doc := parse(t, transformations)
		first, err := c.Compile(doc)
		require.NoError(t, err)
		second, err := c.Compile(doc)
		require.NoError(t, err)
		assert.Equal(t, procedureNames(first), procedureNames(second))
		assert.Equal(t, procedure.Format(first.Procedures()[1]), procedure.Format(second.Procedures()[1]))
	})

	t.Run("unsupported function skipped", func(t *testing.T) {
		c, err := New(WithSkipUnsupported(true))
		require.NoError(t, err)

		m, err := c.Compile(parse(t, `<PMML><TransformationDictionary>
			<DefineFunction name="f"><ParameterField name="p"/><Lag field="p"/></DefineFunction>
			<DerivedField name="c" dataType="integer"><Constant>1</Constant></DerivedField>
		</TransformationDictionary></PMML>`))
		require.NoError(t, err)
		_, ok := m.Function("f")
		assert.False(t, ok)
		assert.Equal(t, []string{"Constant2"}, procedureNames(m))
	})

	t.Run("fields applying a skipped function are skipped", func(t *testing.T) {
		var logs bytes.Buffer
		c, err := New(
			WithLogHandler(slog.NewTextHandler(&logs, nil)),
			WithSkipUnsupported(true),
		)
		require.NoError(t, err)

		m, err := c.Compile(parse(t, `<PMML><TransformationDictionary>
			<DefineFunction name="norm"><ParameterField name="p"/><NormContinuous field="p"/></DefineFunction>
			<DefineFunction name="twice"><ParameterField name="p"/>
				<Apply function="*"><Apply function="norm"><FieldRef field="p"/></Apply><Constant>2</Constant></Apply>
			</DefineFunction>
			<DerivedField name="a" dataType="double"><FieldRef field="x"/></DerivedField>
			<DerivedField name="b" dataType="double">
				<Apply function="+"><Constant>1</Constant><Apply function="norm"><FieldRef field="x"/></Apply></Apply>
			</DerivedField>
			<DerivedField name="c" dataType="double"><Apply function="twice"><FieldRef field="x"/></Apply></DerivedField>
			<DerivedField name="d" dataType="double"><Apply function="+"><FieldRef field="a"/><Constant>1</Constant></Apply></DerivedField>
		</TransformationDictionary></PMML>`))
		require.NoError(t, err)

		_, ok := m.Function("norm")
		assert.False(t, ok)
		_, ok = m.Function("twice")
		assert.False(t, ok)
		assert.Equal(t, []string{"FieldRef3", "Apply6"}, procedureNames(m))
		assert.Equal(t, []procedure.Output{
			{Field: "a", Procedure: "FieldRef3"},
			{Field: "d", Procedure: "Apply6"},
		}, m.Outputs())
		assert.Contains(t, logs.String(), "skipping function that applies a skipped function")
		assert.Contains(t, logs.String(), "function=twice")
		assert.Contains(t, logs.String(), "field=b")
		assert.Contains(t, logs.String(), "applies=norm")
		assert.Contains(t, logs.String(), "field=c")
		assert.Contains(t, logs.String(), "applies=twice")
	})

	t.Run("duplicate derived field", func(t *testing.T) {
		c, err := New()
		require.NoError(t, err)

		_, err = c.Compile(parse(t, `<PMML><TransformationDictionary>
			<DerivedField name="a"><Constant>1</Constant></DerivedField>
			<DerivedField name="a"><Constant>2</Constant></DerivedField>
		</TransformationDictionary></PMML>`))
		require.ErrorIs(t, err, ErrDuplicateField)
	})

	t.Run("duplicate function", func(t *testing.T) {
		c, err := New()
		require.NoError(t, err)

		_, err = c.Compile(parse(t, `<PMML><TransformationDictionary>
			<DefineFunction name="f"><Constant>1</Constant></DefineFunction>
			<DefineFunction name="f"><Constant>2</Constant></DefineFunction>
		</TransformationDictionary></PMML>`))
		require.ErrorIs(t, err, procedure.ErrDuplicateFunction)
	})

	t.Run("nil expression", func(t *testing.T) {
		c, err := New()
		require.NoError(t, err)

		_, err = c.Compile(&pmml.Document{DerivedFields: []pmml.DerivedField{{Name: "x"}}})
		require.ErrorIs(t, err, ErrCompileProcedure)
	})

	t.Run("nil document", func(t *testing.T) {
		c, err := New()
		require.NoError(t, err)
		_, err = c.Compile(nil)
		require.ErrorIs(t, err, ErrNilDocument)
	})

	t.Run("empty document", func(t *testing.T) {
		c, err := New()
		require.NoError(t, err)
		m, err := c.Compile(&pmml.Document{})
		require.NoError(t, err)
		assert.Equal(t, 0, m.Len())
	})
}
