package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger returns handler together with a logger grouped under groupName.
// A nil handler is replaced by a text handler on stderr, grouped under
// component, so logs never mix with procedure listings on stdout.
func SetupLogger(handler slog.Handler, component string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, nil).WithGroup(component)
		slog.New(handler).Warn("Handler is nil, using the default logger configuration.")
	}

	if groupName == "" {
		return handler, slog.New(handler)
	}
	return handler, slog.New(handler.WithGroup(groupName))
}
