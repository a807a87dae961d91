package mdsite

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// StyleBuilder assembles the site stylesheet: the base CSS followed by
// the generated highlighting theme CSS. The sheet is rebuilt on every
// render; rebuilds are whole-process so caching buys nothing.
type StyleBuilder struct {
	base  string
	theme string
}

// NewStyleBuilder creates a StyleBuilder from the base CSS text and a
// chroma style name. Unknown style names fall back to chroma's default.
func NewStyleBuilder(base, theme string) *StyleBuilder {
	return &StyleBuilder{base: base, theme: theme}
}

// Stylesheet returns the full site CSS for one render.
func (b *StyleBuilder) Stylesheet() (string, error) {
	formatter := chromahtml.New(chromahtml.WithClasses(true))

	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, styles.Get(b.theme)); err != nil {
		return "", fmt.Errorf("writing theme CSS: %w", err)
	}

	return b.base + "\n" + buf.String(), nil
}
