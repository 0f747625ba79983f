package model

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caoguofeng92/drools/compiler"
	"github.com/caoguofeng92/drools/internal/helpers"
)

// FunctionalOption is a function that configures a Compiler instance
type FunctionalOption func(*Compiler) error

// WithLogHandler creates an option to set the log handler for the model compiler.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(c *Compiler) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		c.logHandler = handler
		c.logger = nil
		return nil
	}
}

// WithLogger creates an option to set a specific logger for the model compiler.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(c *Compiler) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = logger
		c.logHandler = nil
		return nil
	}
}

// WithSkipUnsupported makes the compiler leave out fields and functions whose
// expression uses a kind the synthesizer does not support, instead of failing.
func WithSkipUnsupported(skip bool) FunctionalOption {
	return func(c *Compiler) error {
		c.skipUnsupported = skip
		return nil
	}
}

// WithSynthesizer sets the synthesizer that compiles each expression.
func WithSynthesizer(s *compiler.Synthesizer) FunctionalOption {
	return func(c *Compiler) error {
		if s == nil {
			return ErrNilSynthesizer
		}
		c.synth = s
		return nil
	}
}

func (c *Compiler) setupLogger() {
	if c.logger != nil {
		c.logHandler = c.logger.Handler()
	} else {
		c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "model", "Compiler")
	}
}

func (c *Compiler) applyDefaults() error {
	if c.logHandler == nil && c.logger == nil {
		c.logHandler = slog.NewTextHandler(os.Stderr, nil)
	}
	if c.synth == nil {
		s, err := compiler.New()
		if err != nil {
			return err
		}
		c.synth = s
	}
	return nil
}
