package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/yndnr/devconf/internal/core/domain"
)

// syncBuffer is a bytes.Buffer safe for a writer goroutine and a reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type runResult struct {
	stdout string
	stderr string
	err    error
}

// runApp runs the variant's app with args and captures its output.
func runApp(t *testing.T, variant domain.Variant, args ...string) runResult {
	t.Helper()
	return runAppContext(context.Background(), variant, nil, nil, args...)
}

func runAppContext(ctx context.Context, variant domain.Variant, stdout, stderr *syncBuffer, args ...string) runResult {
	if stdout == nil {
		stdout = &syncBuffer{}
	}
	if stderr == nil {
		stderr = &syncBuffer{}
	}

	app := App(variant)
	app.Writer = stdout
	app.ErrWriter = stderr

	err := app.RunContext(ctx, append([]string{app.Name}, args...))
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// envPath returns a path for an output file inside a fresh temp dir.
func envPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".env")
}

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := envPath(t)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func readEnv(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	return string(b)
}
