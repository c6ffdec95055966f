package here

import (
	"errors"
	"fmt"
)

var (
	// ErrRootNotFound indicates the project directory is not a segment of the
	// working directory.
	ErrRootNotFound = errors.New("project directory not found in working path")

	// ErrInvalidProjectDir indicates the project directory name is empty after
	// normalization.
	ErrInvalidProjectDir = errors.New("invalid project directory name")

	// ErrUnknownOption indicates an override key outside the fixed key set.
	ErrUnknownOption = errors.New("unknown option")

	// ErrAmbiguousFormat indicates that neither textual nor structured output
	// was selected.
	ErrAmbiguousFormat = errors.New("no output format selected")

	// ErrWorkingDir indicates the working directory could not be read.
	ErrWorkingDir = errors.New("get working directory")
)

// RootNotFoundError is returned by [New] when the project directory does not
// appear in the working directory.
type RootNotFoundError struct {
	Name       string
	WorkingDir string
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q is not a parent of %q; ensure the project directory exists above the working directory",
		ErrRootNotFound, e.Name, e.WorkingDir)
}

func (e *RootNotFoundError) Is(target error) bool {
	return target == ErrRootNotFound
}
