package command

import (
	"context"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/devconf/internal/cli/config"
	"github.com/yndnr/devconf/internal/cli/output"
	"github.com/yndnr/devconf/internal/core/domain"
	"github.com/yndnr/devconf/internal/infra/confloader"
	"github.com/yndnr/devconf/internal/infra/shutdown"
	"github.com/yndnr/devconf/internal/telemetry/logger"
)

const watchStopTimeout = 2 * time.Second

// ShowCommand returns the show subcommand.
func ShowCommand(variant domain.Variant) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the configuration file",
		UsageText: variant.Command() + " show [-f FILE] [-o table|json|yaml] [--watch]",
		Flags: []cli.Flag{
			fileFlag("Configuration file to read"),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   output.FormatUsage(),
				Value:   string(output.FormatTable),
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Print again whenever the file changes, until interrupted",
			},
		},
		Action: func(c *cli.Context) error {
			return showAction(c, variant)
		},
		OnUsageError: onUsageError,
	}
}

func showAction(c *cli.Context, variant domain.Variant) error {
	if c.NArg() > 0 {
		return usageFailure(c, nil, "unexpected arguments")
	}

	path := c.String("file")
	format := output.Format(c.String("output"))

	if !c.Bool("watch") {
		return render(c.App.Writer, path, format, variant)
	}
	return watch(c, path, format, variant)
}

// render loads path and prints it in the requested format.
func render(w io.Writer, path string, format output.Format, variant domain.Variant) error {
	rec, err := config.Load(path)
	if err != nil {
		return err
	}

	var data any = rec
	if format != output.FormatJSON && format != output.FormatYAML {
		data = recordTable(rec, variant)
	}
	return output.NewFormatter(format).Format(w, data)
}

// recordTable lists the variant's keys in write order, then MEDIA if the
// variant lacks it but the file has it, then unknown keys sorted.
func recordTable(rec *domain.Record, variant domain.Variant) *output.Table {
	t := &output.Table{Headers: []string{"KEY", "VALUE"}}
	for _, k := range variant.Keys() {
		t.AddRow(k, rec.Value(k))
	}
	if !variant.HasMedia() && rec.Media != "" {
		t.AddRow(domain.KeyMedia, rec.Media)
	}
	for _, k := range config.ExtraKeys(rec) {
		t.AddRow(k, rec.Extra[k])
	}
	return t
}

// watch prints the file once, then again on every write or re-creation,
// until a termination signal or cancellation of the command context.
func watch(c *cli.Context, path string, format output.Format, variant domain.Variant) error {
	log := logger.L(c.Context).With("path", path)

	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return err
	}
	if err := w.Watch(path); err != nil {
		_ = w.Stop()
		return err
	}

	show := func() {
		err := render(c.App.Writer, path, format, variant)
		switch {
		case err == nil:
		case domain.IsDomainError(err, domain.ErrFileNotFound.Code):
			log.Debug("waiting for configuration file")
		default:
			log.Warn("cannot show configuration", "code", domain.GetErrorCode(err), "error", err)
		}
	}
	show()
	w.OnChange(func(string) { show() })
	w.StartAsync()

	h := shutdown.NewHandler(watchStopTimeout)
	h.OnShutdown(func(ctx context.Context) error {
		return w.Stop()
	})
	return h.Wait(c.Context)
}
