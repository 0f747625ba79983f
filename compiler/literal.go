package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caoguofeng92/drools/expression"
	"github.com/caoguofeng92/drools/procedure"
)

// literal transcribes a constant. Text becomes a quoted literal; anything else
// becomes its textual form, unparsed and unvalidated.
func literal(c *expression.Constant) procedure.Expr {
	if c.Missing || c.Value == nil {
		return &procedure.Null{}
	}

	switch v := c.Value.(type) {
	case string:
		return &procedure.StringLiteral{Value: v}
	case float64:
		return &procedure.Token{Text: floatToken(v, 64)}
	case float32:
		return &procedure.Token{Text: floatToken(float64(v), 32)}
	case bool:
		return &procedure.Token{Text: strconv.FormatBool(v)}
	default:
		return &procedure.Token{Text: fmt.Sprint(v)}
	}
}

// floatToken keeps floats recognizable as floats: 100 is written 100.0.
func floatToken(v float64, bitSize int) string {
	s := strconv.FormatFloat(v, 'g', -1, bitSize)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}
