package mdsite

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// fontMIMETypes maps recognized font extensions to data URI MIME types.
var fontMIMETypes = map[string]string{
	".woff2": "font/woff2",
	".woff":  "font/woff",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
}

// fontFormats maps extensions to the format() hint used in @font-face.
var fontFormats = map[string]string{
	".woff2": "woff2",
	".woff":  "woff",
	".ttf":   "truetype",
	".otf":   "opentype",
}

// FontFace is one embedded font, as seen by the font stylesheet template.
type FontFace struct {
	// Family is the font-family name, derived from the file name stem.
	Family string
	// Format is the @font-face format() hint.
	Format string
	// DataURI is the complete base64 data URI for the font binary.
	DataURI string
}

// FontCompiler inlines font binaries as data URIs into a CSS template,
// producing a single self-contained font stylesheet.
type FontCompiler struct {
	dir  string
	tmpl *template.Template
	logf func(format string, args ...any)
}

// NewFontCompiler parses the font stylesheet template for the given
// fonts directory.
func NewFontCompiler(dir, tmplText string, logf func(string, ...any)) (*FontCompiler, error) {
	tmpl, err := template.New("fonts").Parse(tmplText)
	if err != nil {
		return nil, fmt.Errorf("%w: font stylesheet: %v", ErrTemplateParse, err)
	}
	return &FontCompiler{dir: dir, tmpl: tmpl, logf: logf}, nil
}

// Compile reads every recognized font binary in the fonts directory, in
// listing order, and renders the stylesheet. A missing directory means a
// site without embedded fonts: logged, zero faces, not an error. Any
// other read failure is fatal.
func (c *FontCompiler) Compile() (string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("reading fonts directory: %w", err)
		}
		c.logf("fonts: directory %s not found, skipping font embedding", c.dir)
	}

	var faces []FontFace
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		mime, ok := fontMIMETypes[ext]
		if !ok {
			c.logf("fonts: skipping %s: not a font file", entry.Name())
			continue
		}

		data, err := os.ReadFile(filepath.Join(c.dir, entry.Name()))
		if err != nil {
			return "", fmt.Errorf("reading font %s: %w", entry.Name(), err)
		}

		faces = append(faces, FontFace{
			Family:  strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Format:  fontFormats[ext],
			DataURI: "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
		})
	}

	var buf strings.Builder
	if err := c.tmpl.Execute(&buf, struct{ Faces []FontFace }{faces}); err != nil {
		return "", fmt.Errorf("%w: font stylesheet: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}
