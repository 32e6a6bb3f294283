package command

import (
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/devconf/internal/cli/config"
	"github.com/yndnr/devconf/internal/core/domain"
	"github.com/yndnr/devconf/internal/telemetry/logger"
)

// writeUsage returns the one-line synopsis of the write action.
func writeUsage(variant domain.Variant) string {
	usage := variant.Command() + " -d DEVICE [-H HOST] [-p PORT]"
	if variant.HasMedia() {
		usage += " -m MEDIA"
	}
	return usage + " [-f FILE]"
}

// writeFlags returns the flags of the write action.
func writeFlags(variant domain.Variant) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "device",
			Aliases: []string{"d"},
			Usage:   "Device ID (required)",
		},
		&cli.StringFlag{
			Name:    "host",
			Aliases: []string{"H"},
			Usage:   "Remote server host",
			Value:   domain.DefaultRemoteHost,
		},
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "Remote server port (decimal)",
			Value:   strconv.Itoa(domain.DefaultRemotePort),
		},
	}
	if variant.HasMedia() {
		flags = append(flags, &cli.StringFlag{
			Name:    "media",
			Aliases: []string{"m"},
			Usage:   "Absolute path of the media directory (required)",
		})
	}
	return append(flags, fileFlag("Output file"))
}

func fileFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   usage,
		Value:   config.DefaultFile,
	}
}

// writeAction writes the configuration file. Required flags are checked
// here rather than through cli.Flag.Required so that subcommands do not
// inherit the requirement.
func writeAction(c *cli.Context, variant domain.Variant) error {
	if c.NArg() > 0 {
		return usageFailure(c, nil, "unexpected arguments: %s", strings.Join(c.Args().Slice(), " "))
	}

	var missing []string
	if !c.IsSet("device") {
		missing = append(missing, "--device")
	}
	if variant.HasMedia() && !c.IsSet("media") {
		missing = append(missing, "--media")
	}
	if len(missing) > 0 {
		return usageFailure(c, nil, "required flags not set: %s", strings.Join(missing, ", "))
	}

	// Base 10 only: 010 is ten, 0x1F90 is rejected.
	port, err := strconv.Atoi(c.String("port"))
	if err != nil {
		return usageFailure(c, err, "invalid value %q for flag --port", c.String("port"))
	}

	rec := domain.NewRecord(c.String("device"))
	rec.RemoteHost = c.String("host")
	rec.RemotePort = port
	if variant.HasMedia() {
		rec.Media = c.String("media")
	}

	path := c.String("file")
	log := logger.L(c.Context).With("path", path, "variant", variant.String())

	if err := config.Save(rec, variant, path); err != nil {
		log.Debug("write failed", "code", domain.GetErrorCode(err), "error", err)
		return err
	}

	log.Debug("configuration written",
		"device", rec.Device,
		"remote_host", rec.RemoteHost,
		"remote_port", rec.RemotePort,
	)
	return nil
}
