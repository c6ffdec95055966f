package here

import (
	"fmt"
	"maps"
	"slices"

	"github.com/hashicorp/go-multierror"
)

// Recognized configuration keys.
const (
	KeyAsStr  = "as_str"
	KeyAsPath = "as_path"
)

// Format is the representation returned by [Here.Resolve].
type Format int

const (
	// FormatText returns a forward-slash [Text] path.
	FormatText Format = iota
	// FormatPath returns a structured [Path].
	FormatPath
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatPath:
		return "path"
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// Overrides maps configuration keys to values. Keys outside [Keys] are
// ignored.
type Overrides map[string]bool

// Config is an immutable set of output options. The zero value selects no
// output format; use [DefaultConfig] for the defaults.
type Config struct {
	asStr  bool
	asPath bool
}

// DefaultConfig returns textual output.
func DefaultConfig() Config {
	return Config{asStr: true}
}

// Keys returns the fixed set of recognized configuration keys.
func Keys() []string {
	return []string{KeyAsPath, KeyAsStr}
}

func (c Config) AsStr() bool {
	return c.asStr
}

func (c Config) AsPath() bool {
	return c.asPath
}

// Map returns the configuration as a fresh [Overrides] map.
func (c Config) Map() Overrides {
	return Overrides{
		KeyAsStr:  c.asStr,
		KeyAsPath: c.asPath,
	}
}

// Merge returns a copy of c with o applied. Neither c nor o is modified.
//
// Setting one of as_str or as_path to true without mentioning the other
// clears the other. Unknown keys are skipped and reported in the returned
// error, which wraps [ErrUnknownOption] once per key. The returned [Config]
// is always usable, even when the error is non-nil.
func (c Config) Merge(o Overrides) (Config, error) {
	var merr *multierror.Error

	out := c
	for _, k := range slices.Sorted(maps.Keys(o)) {
		switch k {
		case KeyAsStr:
			out.asStr = o[k]
		case KeyAsPath:
			out.asPath = o[k]
		default:
			merr = multierror.Append(merr, fmt.Errorf("%w: %q", ErrUnknownOption, k))
		}
	}

	_, hasStr := o[KeyAsStr]
	_, hasPath := o[KeyAsPath]

	switch {
	case hasStr && !hasPath && out.asStr:
		out.asPath = false
	case hasPath && !hasStr && out.asPath:
		out.asStr = false
	}

	return out, merr.ErrorOrNil()
}

// Format reports the selected output format. Text takes precedence when both
// options are set. When neither is set, it returns [FormatText] together with
// [ErrAmbiguousFormat].
func (c Config) Format() (Format, error) {
	switch {
	case c.asStr:
		return FormatText, nil
	case c.asPath:
		return FormatPath, nil
	}

	return FormatText, fmt.Errorf("%w: %s and %s are both false", ErrAmbiguousFormat, KeyAsStr, KeyAsPath)
}
