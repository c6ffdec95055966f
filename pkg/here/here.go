package here

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// Here resolves paths against a fixed project root. It is safe for
// concurrent use once constructed.
type Here struct {
	log    *slog.Logger
	root   Path
	config Config
}

type options struct {
	getwd     func() (string, error)
	logger    *slog.Logger
	overrides Overrides
}

// Opts configures [New].
type Opts func(*options)

// WithOverrides sets the default configuration for the new [Here].
func WithOverrides(o Overrides) Opts {
	return func(opts *options) {
		opts.overrides = o
	}
}

// WithLogger sets the logger used for diagnostics. Defaults to
// [slog.Default].
func WithLogger(l *slog.Logger) Opts {
	return func(opts *options) {
		opts.logger = l
	}
}

// WithWorkingDir searches dir instead of the process working directory. dir
// should be absolute.
func WithWorkingDir(dir string) Opts {
	return func(opts *options) {
		opts.getwd = func() (string, error) {
			return dir, nil
		}
	}
}

// WithGetwd replaces [os.Getwd].
func WithGetwd(f func() (string, error)) Opts {
	return func(opts *options) {
		opts.getwd = f
	}
}

// New finds projectDir in the working directory and returns a [Here] rooted
// at its shallowest occurrence. projectDir is normalized with
// [NormalizeProjectDir] first.
//
// If projectDir is not a segment of the working directory, New returns a
// [*RootNotFoundError].
func New(projectDir string, opts ...Opts) (*Here, error) {
	o := &options{
		getwd:  os.Getwd,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}

	name := NormalizeProjectDir(projectDir)
	if name == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProjectDir, projectDir)
	}

	wd, err := o.getwd()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWorkingDir, err)
	}

	o.logger.Debug("looking for project root",
		slog.String("name", name),
		slog.String("path", wd),
	)

	segments, err := FindRootPrefix(SplitPath(wd), name)
	if errors.Is(err, ErrRootNotFound) {
		return nil, &RootNotFoundError{Name: name, WorkingDir: wd}
	} else if err != nil {
		return nil, fmt.Errorf("find project root: %w", err)
	}

	h := &Here{
		log:  o.logger,
		root: Path{segments: segments},
	}

	h.config, err = DefaultConfig().Merge(o.overrides)
	if err != nil {
		h.log.Warn("ignoring invalid options", slog.Any("err", err))
	}

	h.log.Debug("found project root", slog.String("path", h.root.String()))

	return h, nil
}

// Resolve joins segments onto the root. The result is a [Text] or a [Path]
// according to the stored configuration with overrides applied for this call
// only. Unknown override keys are logged and ignored. Resolve never touches
// the filesystem.
func (h *Here) Resolve(overrides Overrides, segments ...string) Result {
	p := h.root.Join(segments...)

	cfg := h.config
	if len(overrides) > 0 {
		merged, err := cfg.Merge(overrides)
		if err != nil {
			h.log.Warn("ignoring invalid options", slog.Any("err", err))
		}

		cfg = merged
	}

	format, err := cfg.Format()
	if err != nil {
		h.log.Warn("defaulting to text output", slog.Any("err", err))
	}

	if format == FormatPath {
		return p
	}

	return Text(p.String())
}

// Here returns segments joined onto the root as forward-slash text,
// regardless of configuration.
func (h *Here) Here(segments ...string) string {
	return h.root.Join(segments...).String()
}

// Path returns segments joined onto the root as a [Path], regardless of
// configuration.
func (h *Here) Path(segments ...string) Path {
	return h.root.Join(segments...)
}

// Exists reports whether segments joined onto the root name an existing file
// or directory.
func (h *Here) Exists(segments ...string) (bool, error) {
	return h.root.Join(segments...).Exists()
}

// Root returns the project root.
func (h *Here) Root() Path {
	return h.root.Join()
}

// Config returns the stored configuration.
func (h *Here) Config() Config {
	return h.config
}

func (h *Here) String() string {
	return h.root.String()
}
