package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/devconf/internal/core/domain"
	"github.com/yndnr/devconf/internal/infra/buildinfo"
	"github.com/yndnr/devconf/internal/telemetry/logger"
)

// App creates the CLI application for the given variant.
func App(variant domain.Variant) *cli.App {
	return &cli.App{
		Name:            variant.Command(),
		Usage:           "write device connection settings to a KEY=value file",
		UsageText:       writeUsage(variant),
		Version:         buildinfo.String(),
		HideHelpCommand: true,
		Flags:           append(writeFlags(variant), globalFlags()...),
		Commands: []*cli.Command{
			ShowCommand(variant),
			VersionCommand(),
		},
		Before:       setupLogging,
		Action:       func(c *cli.Context) error { return writeAction(c, variant) },
		OnUsageError: onUsageError,
	}
}

// globalFlags returns the flags that configure diagnostics.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging on stderr",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: console, json",
			Value: "console",
		},
	}
}

// setupLogging installs a logger and a fresh run ID in the command context
// and makes the logger the process default.
func setupLogging(c *cli.Context) error {
	verbose := c.Bool("verbose")
	level := "warn"
	if verbose {
		level = "debug"
	}

	l, err := logger.New(logger.Config{
		Level:     level,
		Format:    c.String("log-format"),
		Output:    c.App.ErrWriter,
		AddSource: verbose,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(l)

	ctx := logger.WithRunID(c.Context, logger.NewRunID())
	c.Context = logger.WithLogger(ctx, l)
	return nil
}

// usageFailure prints the usage line of the current command to stderr and
// returns an ErrUsage carrying msg.
func usageFailure(c *cli.Context, cause error, format string, args ...any) error {
	usage := c.App.UsageText
	if c.Command != nil && c.Command.UsageText != "" && c.Command.Name != c.App.Name {
		usage = c.Command.UsageText
	}
	fmt.Fprintf(c.App.ErrWriter, "usage: %s\n", usage)

	err := domain.ErrUsage.WithDetails(fmt.Sprintf(format, args...))
	if cause != nil {
		return err.Wrap(cause)
	}
	return err
}

// onUsageError turns flag parse failures into ErrUsage.
func onUsageError(c *cli.Context, err error, _ bool) error {
	return usageFailure(c, err, "bad flags")
}

// ExitCode maps an error returned by App().Run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if domain.GetErrorCode(err) == domain.ErrUsage.Code {
		return 2
	}
	return 1
}
