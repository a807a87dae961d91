package mdsite

// Notes:
// - Compile: data URI embedding, family from file name stem, listing order
// - Missing fonts directory: logged skip, zero faces
// - Unrecognized files: logged skip

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testFontTemplate = `{{ range .Faces }}@font-face{font-family:"{{ .Family }}";src:url("{{ .DataURI }}") format("{{ .Format }}")}
{{ end }}`

func TestFontCompiler_Compile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := []byte("not a real font, but bytes all the same")
	if err := os.WriteFile(filepath.Join(dir, "Inter.woff2"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := NewFontCompiler(dir, testFontTemplate, func(string, ...any) {})
	if err != nil {
		t.Fatalf("NewFontCompiler: %v", err)
	}
	got, err := c.Compile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, `font-family:"Inter"`) {
		t.Errorf("family should come from the file name stem, got %q", got)
	}
	wantURI := "data:font/woff2;base64," + base64.StdEncoding.EncodeToString(data)
	if !strings.Contains(got, wantURI) {
		t.Error("font binary should be inlined as a base64 data URI")
	}
	if !strings.Contains(got, `format("woff2")`) {
		t.Errorf("missing format hint, got %q", got)
	}
}

func TestFontCompiler_Compile_MissingDir(t *testing.T) {
	t.Parallel()

	var logged []string
	logf := func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	c, err := NewFontCompiler(filepath.Join(t.TempDir(), "absent"), testFontTemplate, logf)
	if err != nil {
		t.Fatalf("NewFontCompiler: %v", err)
	}
	got, err := c.Compile()
	if err != nil {
		t.Fatalf("missing fonts dir should not fail the build: %v", err)
	}
	if strings.Contains(got, "@font-face") {
		t.Errorf("no fonts means no faces, got %q", got)
	}
	if len(logged) == 0 || !strings.Contains(logged[0], "skipping font embedding") {
		t.Errorf("missing directory should be logged, got %v", logged)
	}
}

func TestFontCompiler_Compile_SkipsUnrecognized(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "README.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Mono.ttf"), []byte("ttf bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	var logged []string
	logf := func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	c, err := NewFontCompiler(dir, testFontTemplate, logf)
	if err != nil {
		t.Fatalf("NewFontCompiler: %v", err)
	}
	got, err := c.Compile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(got, "README") {
		t.Error("non-font files must not become faces")
	}
	if !strings.Contains(got, `font-family:"Mono"`) {
		t.Errorf("ttf font should be embedded, got %q", got)
	}
	if !strings.Contains(got, `format("truetype")`) {
		t.Errorf("ttf should map to the truetype format hint, got %q", got)
	}

	var skipLogged bool
	for _, line := range logged {
		if strings.Contains(line, "README.txt") {
			skipLogged = true
		}
	}
	if !skipLogged {
		t.Errorf("skipped file should be logged, got %v", logged)
	}
}
