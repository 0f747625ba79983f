package internal

import (
	"context"
	"fmt"

	"github.com/caoguofeng92/drools/platform/constants"
	"github.com/caoguofeng92/drools/platform/functions"
	risorLib "github.com/risor-io/risor"
	"github.com/risor-io/risor/object"
)

// HostOptions returns one global builtin per host function, each converting
// its arguments to Go, dispatching to host and converting the result back.
func HostOptions(host *functions.Host) []risorLib.Option {
	names := constants.HostNames()
	opts := make([]risorLib.Option, len(names))
	for i, name := range names {
		opts[i] = risorLib.WithGlobal(name, HostBuiltin(host, name))
	}
	return opts
}

// HostBuiltin returns the builtin that dispatches name to host.
func HostBuiltin(host *functions.Host, name string) *object.Builtin {
	return object.NewBuiltin(name, func(_ context.Context, args ...object.Object) object.Object {
		goArgs := make([]any, len(args))
		for i, arg := range args {
			v, err := ConvertRisorObjectToInterface(arg)
			if err != nil {
				return object.NewError(fmt.Errorf("%s: argument %d: %w", name, i, err))
			}
			goArgs[i] = v
		}

		result, err := host.Invoke(name, goArgs)
		if err != nil {
			return object.NewError(err)
		}

		obj, err := ConvertToRisorObject(result)
		if err != nil {
			return object.NewError(fmt.Errorf("%s: result: %w", name, err))
		}
		return obj
	})
}
