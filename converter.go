package mdsite

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Converter abstracts document body to HTML conversion.
type Converter interface {
	ToHTML(ctx context.Context, body string) (string, error)
}

// Compile-time interface checks.
var (
	_ Converter = (*ExecConverter)(nil)
	_ Converter = (*GoldmarkConverter)(nil)
)

// commandRunner abstracts subprocess execution to enable testing without
// real subprocesses.
type commandRunner interface {
	Run(ctx context.Context, stdin, name string, args ...string) (stdout, stderr string, err error)
}

// execRunner implements commandRunner using os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, stdin, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// ExecConverter converts a document body by piping it through an external
// converter process: body on stdin, whole HTML output buffered from
// stdout. The conversion grammar lives entirely in the external tool, so
// any invocation failure is fatal to the build.
type ExecConverter struct {
	argv   []string
	runner commandRunner
}

// NewExecConverter creates an ExecConverter for the given argv. An empty
// argv falls back to DefaultConverterArgs (pandoc).
func NewExecConverter(argv []string) *ExecConverter {
	if len(argv) == 0 {
		argv = DefaultConverterArgs
	}
	return &ExecConverter{argv: argv, runner: execRunner{}}
}

// ToHTML runs the converter process once, synchronously. Stderr is folded
// into the returned error so the converter's own diagnostics surface.
func (c *ExecConverter) ToHTML(ctx context.Context, body string) (string, error) {
	stdout, stderr, err := c.runner.Run(ctx, body, c.argv[0], c.argv[1:]...)
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return "", fmt.Errorf("%w: %s: %s: %v", ErrConverter, c.argv[0], msg, err)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrConverter, c.argv[0], err)
	}
	return stdout, nil
}

// GoldmarkConverter converts markdown to HTML in-process using goldmark.
// It renders a fragment for the page templates to wrap. No highlighting
// extension: code blocks are highlighted in a later pipeline stage so
// subprocess-converted documents get identical treatment.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts markdown to an HTML fragment. Supports context
// cancellation via goroutine + select since goldmark doesn't natively
// support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(body), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrConverter, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
