package mdsite

// Notes:
// - ExecConverter: stdin plumbing, stdout capture, stderr folded into errors,
//   via a fake commandRunner (no real subprocesses)
// - GoldmarkConverter: fragment output, GFM, context cancellation

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeRunner records the invocation and returns canned results.
type fakeRunner struct {
	gotStdin string
	gotName  string
	gotArgs  []string

	stdout string
	stderr string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, stdin, name string, args ...string) (string, string, error) {
	f.gotStdin = stdin
	f.gotName = name
	f.gotArgs = args
	return f.stdout, f.stderr, f.err
}

// ---------------------------------------------------------------------------
// TestExecConverter - External Converter Process
// ---------------------------------------------------------------------------

func TestExecConverter_ToHTML(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{stdout: "<p>Hello</p>\n"}
	c := NewExecConverter([]string{"pandoc", "-f", "markdown", "-t", "html"})
	c.runner = runner

	got, err := c.ToHTML(context.Background(), "Hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<p>Hello</p>\n" {
		t.Errorf("got %q, want converter stdout verbatim", got)
	}
	if runner.gotStdin != "Hello" {
		t.Errorf("stdin = %q, want document body", runner.gotStdin)
	}
	if runner.gotName != "pandoc" {
		t.Errorf("command = %q, want pandoc", runner.gotName)
	}
	if len(runner.gotArgs) != 4 {
		t.Errorf("args = %v, want 4 arguments", runner.gotArgs)
	}
}

func TestExecConverter_ToHTML_Error(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{stderr: "pandoc: unknown format\n", err: errors.New("exit status 2")}
	c := NewExecConverter(nil)
	c.runner = runner

	_, err := c.ToHTML(context.Background(), "Hello")
	if !errors.Is(err, ErrConverter) {
		t.Fatalf("error = %v, want ErrConverter", err)
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("error %q should carry the converter's stderr", err)
	}
}

func TestNewExecConverter_DefaultArgs(t *testing.T) {
	t.Parallel()

	c := NewExecConverter(nil)
	if c.argv[0] != "pandoc" {
		t.Errorf("default converter = %q, want pandoc", c.argv[0])
	}
}

// ---------------------------------------------------------------------------
// TestGoldmarkConverter - In-Process Engine
// ---------------------------------------------------------------------------

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "paragraph",
			body: "Hello",
			want: "<p>Hello</p>",
		},
		{
			name: "heading",
			body: "# Title",
			want: "<h1",
		},
		{
			name: "fenced code keeps language class",
			body: "```go\npackage main\n```",
			want: `language-go`,
		},
		{
			name: "gfm strikethrough",
			body: "~~gone~~",
			want: "<del>",
		},
	}

	c := NewGoldmarkConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.ToHTML(context.Background(), tt.body)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("output %q does not contain %q", got, tt.want)
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewGoldmarkConverter()
	if _, err := c.ToHTML(ctx, "Hello"); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
