package bump

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const versionPrefix = "version = "

var (
	ErrInvalidPart    = errors.New("invalid version part")
	ErrInvalidVersion = errors.New("invalid version")
	ErrNoVersionLine  = errors.New("no 'version = x.x.x' line")
	ErrInvalidTOML    = errors.New("result is not valid TOML")
)

// Part selects the version component to increment.
type Part int

const (
	Major Part = iota + 1
	Minor
	Patch
)

// ParsePart parses "1", "2" or "3", or the names "major", "minor", "patch".
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(s) {
	case "1", "major":
		return Major, nil
	case "2", "minor":
		return Minor, nil
	case "3", "patch":
		return Patch, nil
	}

	return 0, fmt.Errorf("%w: %q, want 1 (major), 2 (minor) or 3 (patch)", ErrInvalidPart, s)
}

func (p Part) String() string {
	switch p {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Patch:
		return "patch"
	}

	return fmt.Sprintf("Part(%d)", int(p))
}

// Increment returns v with part incremented and every later part reset to
// zero. Each part keeps at least its original width, so "00.00.09" becomes
// "00.00.10" and "1.09.03" becomes "1.10.00" for [Minor]. Unpadded parts stay
// unpadded: "1.2.3" becomes "1.2.4" for [Patch].
func Increment(v string, part Part) (string, error) {
	if part < Major || part > Patch {
		return "", fmt.Errorf("%w: %d", ErrInvalidPart, int(part))
	}

	parts := strings.Split(v, ".")
	if len(parts) < int(part) {
		return "", fmt.Errorf("%w: %q has no %s part", ErrInvalidVersion, v, part)
	}

	for i := int(part) - 1; i < len(parts); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return "", fmt.Errorf("%w: %q: part %d is not a number", ErrInvalidVersion, v, i+1)
		}

		if i == int(part)-1 {
			n++
		} else {
			n = 0
		}

		parts[i] = fmt.Sprintf("%0*d", len(parts[i]), n)
	}

	return strings.Join(parts, "."), nil
}

// Change is a planned version increment for a single file.
type Change struct {
	Path    string
	Old     string
	New     string
	Line    int
	content []byte
	mode    os.FileMode
}

// Plan reads the file at path and computes the increment without writing
// anything. The first line starting with `version = ` is used.
func Plan(path string, part Part) (*Change, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is resolved from the project root.
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	lines := strings.SplitAfter(string(data), "\n")

	idx := -1
	for i, line := range lines {
		if strings.HasPrefix(line, versionPrefix) {
			idx = i

			break
		}
	}

	if idx < 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoVersionLine, path)
	}

	line := lines[idx]
	body := strings.TrimRight(line, "\r\n")
	eol := line[len(body):]

	old, tail := splitVersionValue(strings.TrimPrefix(body, versionPrefix))

	next, err := Increment(old, part)
	if err != nil {
		return nil, err
	}

	lines[idx] = versionPrefix + strconv.Quote(next) + tail + eol
	content := []byte(strings.Join(lines, ""))

	var doc map[string]any
	if err := toml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTOML, err)
	}

	return &Change{
		Path:    path,
		Old:     old,
		New:     next,
		Line:    idx + 1,
		content: content,
		mode:    fi.Mode().Perm(),
	}, nil
}

// splitVersionValue returns the version value at the start of s and whatever
// follows it, such as a trailing comment. A quoted value ends at its closing
// quote; a bare value ends at the first '#'.
func splitVersionValue(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return "", ""
	}

	if q := s[0]; q == '"' || q == '\'' {
		end := strings.IndexByte(s[1:], q)
		if end < 0 {
			return strings.TrimSpace(s[1:]), ""
		}

		return s[1 : end+1], s[end+2:]
	}

	end := strings.IndexByte(s, '#')
	if end < 0 {
		end = len(s)
	}

	value := strings.TrimRight(s[:end], " \t")

	return value, s[len(value):]
}

// Apply writes the planned content back to the file.
func (c *Change) Apply() error {
	if err := os.WriteFile(c.Path, c.content, c.mode); err != nil {
		return fmt.Errorf("write %q: %w", c.Path, err)
	}

	return nil
}
