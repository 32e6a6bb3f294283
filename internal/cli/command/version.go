package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/devconf/internal/cli/output"
	"github.com/yndnr/devconf/internal/infra/buildinfo"
)

// VersionCommand returns the version subcommand.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   output.FormatUsage() + " (default: one line)",
			},
		},
		Action: func(c *cli.Context) error {
			format := c.String("output")
			if format == "" {
				_, err := fmt.Fprintln(c.App.Writer, buildinfo.String())
				return err
			}
			return output.NewFormatter(output.Format(format)).Format(c.App.Writer, buildinfo.Get())
		},
		OnUsageError: onUsageError,
	}
}
