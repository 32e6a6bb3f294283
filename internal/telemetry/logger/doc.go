// Package logger provides structured logging for devconf.
//
// This package wraps zap for structured logging:
//
//   - logger.go: Logger interface, configuration, level control
//   - zap.go: zap-backed implementation
//   - context.go: context propagation of the logger and the run ID
//
// Every CLI invocation gets a run ID (a ULID) which is attached to log
// entries obtained through L(ctx).
package logger
