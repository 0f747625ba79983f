// Description: This file contains constants used for accessing values from context objects.
package constants

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// EvalData is the key used to store evaluation data in the context
	EvalData ContextKey = "eval_data" // name-value context added to ctx objects sent to the evaluator

	// Ctx is the top-scope variable name holding the name-value context inside an engine
	Ctx = "ctx"
)

// Names of the host functions that generated procedures call. Both engines bind
// the same names, so rendered code only differs in syntax.
const (
	HostLookup = "pmml_lookup"  // first entry of a context with a given name, as an optional
	HostOrElse = "pmml_or_else" // value carried by an optional, or a fallback
	HostCast   = "pmml_cast"    // conversion to a declared type
	HostCall   = "pmml_call"    // invocation of a library function
	HostBind   = "pmml_bind"    // new context from parameter names and argument values
)

// HostNames lists every host function name.
func HostNames() []string {
	return []string{HostLookup, HostOrElse, HostCast, HostCall, HostBind}
}
