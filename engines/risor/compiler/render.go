package compiler

import (
	"fmt"
	"strings"

	"github.com/caoguofeng92/drools/engines/internal/render"
)

// dialect renders procedures as Risor functions:
//
//	func Apply1(param1) {
//	    applyVariable := pmml_call("+", param1, ...)
//	    return applyVariable
//	}
var dialect = render.Dialect{
	Null:  "nil",
	True:  "true",
	False: "false",
	Quote: quote,
	Open: func(name, params string) string {
		return "func " + name + "(" + params + ") {"
	},
	Close:  "}",
	Assign: " := ",
	Indent: "    ",
}

// quote writes s as a double-quoted Risor string. Control characters are
// written as \xNN escapes; a raw NUL or newline would end the literal.
func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == '"':
			sb.WriteString(`\"`)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&sb, `\x%02x`, r)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// entry is the program that runs procedure with the context global.
func entry(moduleSource, procedure, ctxName string) string {
	return moduleSource + "\n" + procedure + "(" + ctxName + ")\n"
}
