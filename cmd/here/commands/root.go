package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/macropower/here/pkg/log"
)

// EnvProjectDir supplies the default for --root.
const EnvProjectDir = "HERE_PROJECT_DIR"

var (
	ErrLogHandlerFailed = errors.New("log handler failed")
	ErrInvalidArgument  = errors.New("invalid argument")
)

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringVarP(args.projectDir, "root", "r", os.Getenv(EnvProjectDir),
		"Name of the project root directory (default $"+EnvProjectDir+")")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		h, err := log.CreateHandlerWithStrings(
			cc.ErrOrStderr(),
			args.GetLogLevel(),
			args.GetLogFormat(),
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		args.logger = slog.New(h)
		slog.SetDefault(args.logger)

		slog.Debug("ready to go")

		return nil
	}

	cmd.AddCommand(NewResolveCmd(args))
	cmd.AddCommand(NewExistsCmd(args))
	cmd.AddCommand(NewRootPathCmd(args))
	cmd.AddCommand(NewBumpCmd(args))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
