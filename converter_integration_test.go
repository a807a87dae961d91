//go:build integration

package mdsite

// Notes:
// - Exercises the real pandoc binary; run with -tags integration

import (
	"context"
	"os/exec"
	"strings"
	"testing"
)

func TestExecConverter_ToHTML_Pandoc(t *testing.T) {
	if _, err := exec.LookPath("pandoc"); err != nil {
		t.Skip("pandoc not installed")
	}

	c := NewExecConverter(nil)
	got, err := c.ToHTML(context.Background(), "# Hello\n\nWorld")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "<h1") {
		t.Errorf("expected output to contain <h1>, got %q", got)
	}
	if !strings.Contains(got, "World") {
		t.Errorf("expected output to contain the body text, got %q", got)
	}
}

func TestExecConverter_ToHTML_MissingBinary(t *testing.T) {
	c := NewExecConverter([]string{"definitely-not-a-converter"})
	if _, err := c.ToHTML(context.Background(), "Hello"); err == nil {
		t.Fatal("missing converter binary should fail the conversion")
	}
}
