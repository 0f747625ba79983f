package procedure

import "github.com/caoguofeng92/drools/expression"

// Type is the declared type of a procedure result, a variable or a parameter.
// It only shapes the generated code (declarations and casts); it is never
// evaluated by the compiler.
type Type string

const (
	TypeObject  Type = "object"
	TypeDouble  Type = "double"
	TypeFloat   Type = "float"
	TypeInteger Type = "int"
	TypeBoolean Type = "boolean"
	TypeString  Type = "string"

	// TypeContext is the type of the name-value context parameter.
	TypeContext Type = "context"
)

// ContextParameters is the parameter list every generated procedure takes: a
// single name-value context.
func ContextParameters() []Type {
	return []Type{TypeContext}
}

// TypeFor maps a PMML dataType onto the declared type used for generated code.
// Types without a dedicated representation map to TypeObject.
func TypeFor(dt expression.DataType) Type {
	switch dt {
	case expression.DataTypeDouble:
		return TypeDouble
	case expression.DataTypeFloat:
		return TypeFloat
	case expression.DataTypeInteger:
		return TypeInteger
	case expression.DataTypeBoolean:
		return TypeBoolean
	case expression.DataTypeString:
		return TypeString
	default:
		return TypeObject
	}
}
