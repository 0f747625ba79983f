package compiler

import (
	"strconv"

	"github.com/caoguofeng92/drools/engines/internal/render"
)

// dialect renders procedures as Starlark functions:
//
//	def Apply1(param1):
//	    applyVariable = pmml_call("+", param1, ...)
//	    return applyVariable
var dialect = render.Dialect{
	Null:  "None",
	True:  "True",
	False: "False",
	Quote: strconv.Quote,
	Open: func(name, params string) string {
		return "def " + name + "(" + params + "):"
	},
	Assign: " = ",
	Indent: "    ",
}
