// Package shutdown runs cleanup hooks when a long-running command stops.
//
// A command stops on SIGINT, SIGTERM or cancellation of its context.
// Hooks run in reverse registration order under a shared timeout.
//
// Usage:
//
//	h := shutdown.NewHandler(2 * time.Second)
//	h.OnShutdown(func(ctx context.Context) error { return w.Stop() })
//	return h.Wait(ctx)
package shutdown
