package commands

import (
	"fmt"
	"log/slog"

	"github.com/macropower/here/pkg/here"
)

type RootArgs struct {
	logger     *slog.Logger
	logLevel   *string
	logFormat  *string
	projectDir *string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logger:     slog.Default(),
		logLevel:   new(string),
		logFormat:  new(string),
		projectDir: new(string),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetProjectDir() string {
	return *a.projectDir
}

// NewHere builds a [here.Here] from the root flag.
func (a *RootArgs) NewHere(overrides here.Overrides) (*here.Here, error) {
	if a.GetProjectDir() == "" {
		return nil, fmt.Errorf("%w: --root or $%s is required", ErrInvalidArgument, EnvProjectDir)
	}

	h, err := here.New(a.GetProjectDir(),
		here.WithLogger(a.logger),
		here.WithOverrides(overrides),
	)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}

	return h, nil
}
