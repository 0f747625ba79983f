// Package enginetest builds the procedure module the engine tests share.
package enginetest

import (
	"testing"

	"github.com/caoguofeng92/drools/compiler"
	"github.com/caoguofeng92/drools/expression"
	"github.com/caoguofeng92/drools/platform/data"
	"github.com/caoguofeng92/drools/procedure"
	"github.com/stretchr/testify/require"
)

// Module returns a module with one user-defined function and four derived
// fields:
//
//	double(p)  = p * 2
//	ageNext    = age + 1
//	ageDoubled = double(ageNext)
//	label      = name, "unknown" when missing
//	ten        = 10
func Module(t testing.TB) *procedure.Module {
	t.Helper()
	m := procedure.NewModule()

	add := func(name string, node expression.Expression, rt procedure.Type) {
		t.Helper()
		def, err := compiler.CompileProcedure(name, node, rt, procedure.ContextParameters())
		require.NoError(t, err)
		require.NoError(t, m.Register(def))
	}

	add("Apply1", expression.NewApply("*",
		expression.NewFieldRef("p"),
		expression.NewConstant(2.0, expression.DataTypeDouble),
	), procedure.TypeDouble)
	require.NoError(t, m.AddFunction("double", procedure.FunctionRef{Procedure: "Apply1", Params: []string{"p"}}))

	add("Apply2", expression.NewApply("+",
		expression.NewFieldRef("age"),
		expression.NewConstant(1.0, expression.DataTypeDouble),
	), procedure.TypeDouble)
	require.NoError(t, m.AddOutput("ageNext", "Apply2"))

	add("Apply3", expression.NewApply("double", expression.NewFieldRef("ageNext")), procedure.TypeDouble)
	require.NoError(t, m.AddOutput("ageDoubled", "Apply3"))

	add("FieldRef4", expression.NewFieldRefWithDefault("name", "unknown"), procedure.TypeString)
	require.NoError(t, m.AddOutput("label", "FieldRef4"))

	add("Constant5", expression.NewConstant(int64(10), expression.DataTypeInteger), procedure.TypeDouble)
	require.NoError(t, m.AddOutput("ten", "Constant5"))

	return m
}

// Input is the context Module is evaluated with in the engine tests.
func Input() data.Context {
	return data.Context{{Name: "age", Value: 30}}
}

// Expected is the result of evaluating Module with Input.
func Expected() data.Context {
	return data.Context{
		{Name: "ageNext", Value: 31.0},
		{Name: "ageDoubled", Value: 62.0},
		{Name: "label", Value: "unknown"},
		{Name: "ten", Value: 10.0},
	}
}
