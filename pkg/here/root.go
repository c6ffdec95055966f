package here

import (
	"slices"
	"strings"
)

// NormalizeProjectDir reduces name to a bare directory name. Backslashes are
// treated as separators, all separators are removed, and leading dots are
// trimmed, so "./my_project/" and ".\\my_project" both yield "my_project".
func NormalizeProjectDir(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = strings.ReplaceAll(name, "/", "")

	return strings.TrimLeft(name, ".")
}

// SplitPath converts p to forward slashes and splits it into segments. An
// absolute posix path produces a leading empty segment, which keeps the
// leading slash when the segments are joined again.
func SplitPath(p string) []string {
	return strings.Split(strings.ReplaceAll(p, `\`, "/"), "/")
}

// FindRootPrefix returns the segments from the start of segments up to and
// including the first occurrence of name. The returned slice never aliases
// segments.
func FindRootPrefix(segments []string, name string) ([]string, error) {
	if name == "" {
		return nil, ErrInvalidProjectDir
	}

	i := slices.Index(segments, name)
	if i < 0 {
		return nil, ErrRootNotFound
	}

	return slices.Clone(segments[:i+1]), nil
}

// relativeSegments flattens caller-supplied path fragments into clean
// segments. Empty and "." parts are dropped; ".." is kept as-is.
func relativeSegments(fragments []string) []string {
	out := make([]string, 0, len(fragments))
	for _, f := range fragments {
		for _, s := range SplitPath(f) {
			if s == "" || s == "." {
				continue
			}

			out = append(out, s)
		}
	}

	return out
}
