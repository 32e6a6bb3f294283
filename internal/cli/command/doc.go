// Package command defines the devconf command tree on urfave/cli/v2.
//
//   - root.go: App, global flags, logging setup, usage errors, exit codes
//   - write.go: the root action, which writes the configuration file
//   - show.go: show subcommand (read back, optional watch)
//   - version.go: version subcommand
//
// Both binaries build the same tree; domain.Variant decides whether the
// media flag exists and is required.
package command
