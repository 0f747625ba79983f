package internal

import (
	"fmt"

	"github.com/caoguofeng92/drools/platform/constants"
	"github.com/caoguofeng92/drools/platform/functions"
	starlarkLib "go.starlark.net/starlark"
)

// HostBuiltins returns one builtin per host function, each converting its
// arguments to Go, dispatching to host and converting the result back.
func HostBuiltins(host *functions.Host) starlarkLib.StringDict {
	builtins := make(starlarkLib.StringDict, len(constants.HostNames()))
	for _, name := range constants.HostNames() {
		builtins[name] = starlarkLib.NewBuiltin(name, hostBuiltin(host))
	}
	return builtins
}

func hostBuiltin(host *functions.Host) func(
	*starlarkLib.Thread, *starlarkLib.Builtin, starlarkLib.Tuple, []starlarkLib.Tuple,
) (starlarkLib.Value, error) {
	return func(
		_ *starlarkLib.Thread,
		b *starlarkLib.Builtin,
		args starlarkLib.Tuple,
		kwargs []starlarkLib.Tuple,
	) (starlarkLib.Value, error) {
		if len(kwargs) > 0 {
			return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
		}

		goArgs := make([]any, len(args))
		for i, arg := range args {
			v, err := ConvertStarlarkValueToInterface(arg)
			if err != nil {
				return nil, fmt.Errorf("%s: argument %d: %w", b.Name(), i, err)
			}
			goArgs[i] = v
		}

		result, err := host.Invoke(b.Name(), goArgs)
		if err != nil {
			return nil, err
		}
		return ConvertToStarlarkValue(result)
	}
}
