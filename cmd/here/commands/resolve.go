package commands

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/here/pkg/here"
)

// ErrPathNotFound is returned by `exists --quiet` for a missing path.
var ErrPathNotFound = errors.New("path does not exist")

const (
	resolveDesc = `This command prints a path relative to the project root.
`
	resolveExample = `  # Print the project root
  here -r my_project resolve

  # Print a file inside the project
  here -r my_project resolve data/raw input.csv

  # Print using the platform's separator
  here -r my_project resolve data --as_path
`
)

// NewResolveCmd returns the resolve command.
func NewResolveCmd(args *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resolve [segment]...",
		Short:   "Resolve a path relative to the project root",
		Long:    resolveDesc,
		Example: resolveExample,
		RunE: func(cc *cobra.Command, segments []string) error {
			overrides, err := formatOverrides(cc)
			if err != nil {
				return err
			}

			h, err := args.NewHere(nil)
			if err != nil {
				return err
			}

			switch p := h.Resolve(overrides, segments...).(type) {
			case here.Path:
				cc.Println(p.FilePath())
			default:
				cc.Println(p.String())
			}

			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().Bool(here.KeyAsPath, false, "Print the structured path using the platform's separator")
	cmd.Flags().Bool(here.KeyAsStr, false, "Print the path with forward slashes")

	return cmd
}

// NewExistsCmd returns the exists command.
func NewExistsCmd(args *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exists [segment]...",
		Short: "Check whether a path exists relative to the project root",
		RunE: func(cc *cobra.Command, segments []string) error {
			quiet, err := cc.Flags().GetBool("quiet")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			h, err := args.NewHere(nil)
			if err != nil {
				return err
			}

			ok, err := h.Exists(segments...)
			if err != nil {
				return fmt.Errorf("check %q: %w", h.Here(segments...), err)
			}

			if quiet {
				if !ok {
					return fmt.Errorf("%w: %s", ErrPathNotFound, h.Here(segments...))
				}

				return nil
			}

			cc.Println(ok)

			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolP("quiet", "q", false, "Print nothing; fail if the path does not exist")

	return cmd
}

// NewRootPathCmd returns the root command, which prints the project root.
func NewRootPathCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Print the project root",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			h, err := args.NewHere(nil)
			if err != nil {
				return err
			}

			cc.Println(h.String())

			return nil
		},
		SilenceUsage: true,
	}
}

// formatOverrides collects the output flags that were set explicitly.
func formatOverrides(cc *cobra.Command) (here.Overrides, error) {
	var merr error

	overrides := here.Overrides{}
	for _, key := range here.Keys() {
		if !cc.Flags().Changed(key) {
			continue
		}

		v, err := cc.Flags().GetBool(key)
		if err != nil {
			merr = multierror.Append(merr, err)

			continue
		}

		overrides[key] = v
	}

	if merr != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
	}

	return overrides, nil
}
