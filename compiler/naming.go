package compiler

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/caoguofeng92/drools/expression"
)

// matchSuffix names the optional-match variable of a FieldRef lookup. Operand
// names always end in a digit, so the suffix cannot collide with them.
const matchSuffix = "Match"

// VariableName returns the name of the operand at 1-based position pos, of
// kind kind, nested under the variable base. base already encodes every
// ancestor, so names stay unique at any depth as long as each root is distinct.
func VariableName(base string, kind expression.Kind, pos int) string {
	return base + kind.String() + strconv.Itoa(pos)
}

// RootVariableName is the output variable of a procedure compiled from an
// expression of the given kind: applyVariable, constantVariable, ...
func RootVariableName(kind expression.Kind) string {
	return lowerFirst(kind.String()) + "Variable"
}

// ProcedureName returns the conventional procedure name for the serial-th
// compiled expression of the given kind, e.g. Constant10.
func ProcedureName(kind expression.Kind, serial int) string {
	return kind.String() + strconv.Itoa(serial)
}

func matchVariableName(output string) string {
	return output + matchSuffix
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
