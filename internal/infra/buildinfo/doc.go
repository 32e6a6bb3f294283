// Package buildinfo provides build information for devconf.
//
// Values are injected via ldflags; when they are not, Get falls back to the
// module and VCS data the Go toolchain embeds in the binary.
//
// Usage:
//
//	go build -ldflags "-X github.com/yndnr/devconf/internal/infra/buildinfo.Version=v1.0.0"
package buildinfo
