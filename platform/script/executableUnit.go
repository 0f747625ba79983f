package script

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	engineTypes "github.com/caoguofeng92/drools/engines/types"
	"github.com/caoguofeng92/drools/internal/helpers"
	"github.com/caoguofeng92/drools/platform/data"
	"github.com/caoguofeng92/drools/procedure"
)

const checksumLength = 12

var (
	ErrNilCompiler = errors.New("compiler is nil")
	ErrNilModule   = errors.New("module is nil")
)

// ExecutableUnit is one compiled version of a model: the procedure module, its
// engine-specific content, and the provider of the data it is evaluated with.
type ExecutableUnit struct {
	// ID identifies this version, by default the first characters of the
	// SHA-256 of the rendered source.
	ID string

	// CreatedAt records when the unit was compiled.
	CreatedAt time.Time

	// Module holds the procedures and the derived fields they compute.
	Module *procedure.Module

	// Content holds the rendered source and its compiled form.
	Content ExecutableContent

	// DataProvider supplies the name-value context at evaluation time.
	DataProvider data.Provider

	logger *slog.Logger
}

// NewExecutableUnit compiles module with compiler. An empty versionID is
// replaced by a checksum of the rendered source.
func NewExecutableUnit(
	handler slog.Handler,
	versionID string,
	module *procedure.Module,
	compiler Compiler,
	dataProvider data.Provider,
) (*ExecutableUnit, error) {
	_, logger := helpers.SetupLogger(handler, "script", "ExecutableUnit")

	if compiler == nil {
		return nil, ErrNilCompiler
	}
	if module == nil {
		return nil, ErrNilModule
	}

	content, err := compiler.Compile(module)
	if err != nil {
		return nil, fmt.Errorf("compiler failed: %w", err)
	}

	if versionID == "" {
		versionID = helpers.Checksum(content.GetSource(), checksumLength)
	}
	logger = logger.With("ID", versionID)
	logger.Debug("executable unit created", "procedures", module.Len(), "engine", content.GetEngineType())

	return &ExecutableUnit{
		ID:           versionID,
		CreatedAt:    time.Now(),
		Module:       module,
		Content:      content,
		DataProvider: dataProvider,
		logger:       logger,
	}, nil
}

func (exe *ExecutableUnit) String() string {
	return fmt.Sprintf("ExecutableUnit{ID: %s, CreatedAt: %s, Procedures: %d}",
		exe.ID, exe.CreatedAt.Format(time.RFC3339), exe.Module.Len())
}

// GetID returns the version identifier.
func (exe *ExecutableUnit) GetID() string {
	return exe.ID
}

// GetContent returns the compiled content.
func (exe *ExecutableUnit) GetContent() ExecutableContent {
	return exe.Content
}

// GetModule returns the procedure module.
func (exe *ExecutableUnit) GetModule() *procedure.Module {
	return exe.Module
}

func (exe *ExecutableUnit) GetCreatedAt() time.Time {
	return exe.CreatedAt
}

// GetEngineType returns the engine the content was compiled for.
func (exe *ExecutableUnit) GetEngineType() engineTypes.Type {
	return exe.Content.GetEngineType()
}

// GetDataProvider returns the data provider for this unit.
func (exe *ExecutableUnit) GetDataProvider() data.Provider {
	return exe.DataProvider
}
