// Package options configures evaluators built by the drools package.
package options

import (
	"fmt"
	"log/slog"

	"github.com/caoguofeng92/drools/engines/types"
	"github.com/caoguofeng92/drools/platform/data"
	"github.com/caoguofeng92/drools/platform/functions"
	"github.com/caoguofeng92/drools/platform/script/loader"
)

// Config holds all configuration for creating an evaluator
type Config struct {
	// Logger for the engine
	handler slog.Handler
	// Type of engine to use (starlark, risor)
	engineType types.Type
	// Data provider for passing values to the model
	dataProvider data.Provider
	// Loader for the PMML document
	loader loader.Loader
	// Library the generated procedures call into
	library *functions.Library
	// Leave out fields whose expression kind is not supported
	skipUnsupported bool
}

// Option is a function that modifies Config
type Option func(*Config) error

// WithLogger sets the logger for the evaluator
func WithLogger(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler != nil {
			c.handler = handler
		}
		return nil
	}
}

// WithDataProvider sets the data provider for the evaluator
func WithDataProvider(provider data.Provider) Option {
	return func(c *Config) error {
		if provider != nil {
			c.dataProvider = provider
		}
		return nil
	}
}

// WithStaticData makes d available to every evaluation. Runtime data added
// with AddDataToContext shadows entries of the same name.
func WithStaticData(d data.Context) Option {
	return func(c *Config) error {
		c.dataProvider = data.NewCompositeProvider(
			data.NewStaticProvider(d),
			DefaultDataProvider(),
		)
		return nil
	}
}

// WithLoader sets the PMML document loader
func WithLoader(l loader.Loader) Option {
	return func(c *Config) error {
		if l != nil {
			c.loader = l
		}
		return nil
	}
}

// WithLibrary sets the function library that Apply expressions call into.
func WithLibrary(library *functions.Library) Option {
	return func(c *Config) error {
		if library == nil {
			return fmt.Errorf("library cannot be nil")
		}
		c.library = library
		return nil
	}
}

// WithSkipUnsupported leaves out derived fields and functions whose expression
// uses an unsupported kind instead of failing.
func WithSkipUnsupported(skip bool) Option {
	return func(c *Config) error {
		c.skipUnsupported = skip
		return nil
	}
}

// Validate performs basic validation on the configuration
func (c *Config) Validate() error {
	if c.loader == nil {
		return fmt.Errorf("no loader specified")
	}
	if c.engineType == "" {
		return fmt.Errorf("no engine type specified")
	}
	if _, err := types.Parse(string(c.engineType)); err != nil {
		return err
	}
	return nil
}

// GetHandler returns the configured logger
func (c *Config) GetHandler() slog.Handler {
	return c.handler
}

// SetHandler sets the logger
func (c *Config) SetHandler(handler slog.Handler) {
	c.handler = handler
}

// GetEngineType returns the configured engine type
func (c *Config) GetEngineType() types.Type {
	return c.engineType
}

// SetEngineType sets the engine type
func (c *Config) SetEngineType(engineType types.Type) {
	c.engineType = engineType
}

// GetDataProvider returns the configured data provider
func (c *Config) GetDataProvider() data.Provider {
	return c.dataProvider
}

// SetDataProvider sets the data provider
func (c *Config) SetDataProvider(provider data.Provider) {
	c.dataProvider = provider
}

// GetLoader returns the configured loader
func (c *Config) GetLoader() loader.Loader {
	return c.loader
}

// GetLibrary returns the configured function library
func (c *Config) GetLibrary() *functions.Library {
	return c.library
}

// GetSkipUnsupported reports whether unsupported expressions are skipped
func (c *Config) GetSkipUnsupported() bool {
	return c.skipUnsupported
}
