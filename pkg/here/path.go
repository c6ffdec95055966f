package here

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"syscall"
)

// Result is either a [Text] or a [Path], depending on the configured
// [Format].
type Result interface {
	fmt.Stringer

	result()
}

// Text is an absolute path using forward slashes on every platform.
type Text string

func (t Text) String() string {
	return string(t)
}

func (Text) result() {}

// Path is an absolute path held as ordered segments. On posix systems the
// first segment is empty, standing in for the leading slash.
type Path struct {
	segments []string
}

func (Path) result() {}

// String returns the path with forward slashes.
func (p Path) String() string {
	return strings.Join(p.segments, "/")
}

// FilePath returns the path using the platform's separator.
func (p Path) FilePath() string {
	return filepath.FromSlash(p.String())
}

// Segments returns a copy of the path's segments.
func (p Path) Segments() []string {
	return slices.Clone(p.segments)
}

// Base returns the last segment.
func (p Path) Base() string {
	if len(p.segments) == 0 {
		return ""
	}

	return p.segments[len(p.segments)-1]
}

// Join returns a new [Path] with fragments appended. Each fragment may
// contain forward or backward slashes.
func (p Path) Join(fragments ...string) Path {
	return Path{segments: append(slices.Clone(p.segments), relativeSegments(fragments)...)}
}

// Equal reports whether p and o have identical segments.
func (p Path) Equal(o Path) bool {
	return slices.Equal(p.segments, o.segments)
}

// Exists reports whether a file or directory exists at p. A missing path,
// or one that runs through a regular file, is not an error.
func (p Path) Exists() (bool, error) {
	_, err := os.Stat(p.FilePath())
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return false, nil
	}

	return false, fmt.Errorf("check path: %w", err)
}
