package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/macropower/here/pkg/bump"
)

var (
	ErrCanceled             = errors.New("canceled")
	ErrConfirmationRequired = errors.New("confirmation required")
)

const (
	bumpDesc = `This command increments the version in a file under the project root.

The first line starting with 'version = ' is updated. PART is 1 (major),
2 (minor) or 3 (patch); later parts are reset to zero.
`
	bumpExample = `  # Increment the patch version in pyproject.toml
  here -r my_project bump 3

  # Increment the minor version in another file without prompting
  here -r my_project bump minor --file config/version.toml --yes
`
)

// NewBumpCmd returns the bump command.
func NewBumpCmd(args *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bump PART",
		Short:   "Increment a version number",
		Long:    bumpDesc,
		Example: bumpExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			var merr error

			flags := cc.Flags()
			file, err := flags.GetString("file")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			yes, err := flags.GetBool("yes")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			part, err := bump.ParsePart(pArgs[0])
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
			}

			h, err := args.NewHere(nil)
			if err != nil {
				return err
			}

			c, err := bump.Plan(h.Path(file).FilePath(), part)
			if err != nil {
				return fmt.Errorf("plan version bump: %w", err)
			}

			summary := fmt.Sprintf("Incrementing version from %s to %s.",
				highlight(cc.OutOrStdout(), c.Old), highlight(cc.OutOrStdout(), c.New))

			if !yes {
				ok, err := confirm(cc.InOrStdin(), cc.OutOrStdout(), summary+" Continue? [y/n]: ")
				if err != nil {
					return err
				}

				if !ok {
					return ErrCanceled
				}
			} else {
				cc.Println(summary)
			}

			if err := c.Apply(); err != nil {
				return fmt.Errorf("apply version bump: %w", err)
			}

			args.logger.Info("version updated",
				"path", c.Path,
				"line", c.Line,
				"old", c.Old,
				"new", c.New,
			)

			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringP("file", "f", "pyproject.toml", "File to update, relative to the project root")
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	must(cmd.MarkFlagFilename("file", "toml"))

	return cmd
}

func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if f, ok := in.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false, fmt.Errorf("%w: stdin is not a terminal, use --yes", ErrConfirmationRequired)
	}

	fmt.Fprint(out, prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y"), nil
}

var highlightStyle = lipgloss.NewStyle().Bold(true)

func highlight(w io.Writer, s string) string {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return highlightStyle.Render(s)
	}

	return s
}
