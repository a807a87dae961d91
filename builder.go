package mdsite

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// documentExtensions are the source extensions recognized as documents.
// Anything else in the documents directory is skipped with a log line.
var documentExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// fontStylesheetPath is where the compiled font stylesheet lands,
// relative to the output root.
const fontStylesheetPath = "assets/fonts.css"

// Builder orchestrates one whole-site build. Fully synchronous: each
// stage blocks until complete and the first error aborts the build.
type Builder struct {
	cfg       Config
	loader    assets.Loader
	converter Converter
	logf      func(format string, args ...any)
}

// Option configures a Builder.
type Option func(*Builder)

// WithConverter overrides the document converter (e.g. the in-process
// goldmark engine instead of the pandoc subprocess).
func WithConverter(c Converter) Option {
	return func(b *Builder) { b.converter = c }
}

// WithLogger overrides the build log destination. The default writes to
// stderr.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(b *Builder) { b.logf = logf }
}

// NewBuilder creates a Builder for the given config, applying defaults
// to any unset config fields.
func NewBuilder(cfg Config, opts ...Option) (*Builder, error) {
	cfg = cfg.withDefaults()

	b := &Builder{
		cfg: cfg,
		loader: assets.NewResolver(assets.Dirs{
			Templates: cfg.TemplatesDir,
			Partials:  cfg.PartialsDir,
			Styles:    cfg.StylesDir,
		}),
		logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.converter == nil {
		b.converter = NewExecConverter(cfg.ConverterArgs)
	}
	return b, nil
}

// Build runs the whole pipeline: asset directory, font stylesheet,
// templates, document load, index page, one page per document.
func (b *Builder) Build(ctx context.Context) error {
	if err := fileutil.EnsureDir(filepath.Join(b.cfg.OutputDir, "assets")); err != nil {
		return err
	}

	optimizer := NewOptimizer(NewHighlighter(b.cfg.Theme), b.logf)

	if err := b.writeFontStylesheet(optimizer); err != nil {
		return err
	}

	base, err := b.loader.Style("base")
	if err != nil {
		return fmt.Errorf("loading base stylesheet: %w", err)
	}
	renderer, err := NewRenderer(b.cfg, b.loader, NewStyleBuilder(base, b.cfg.Theme))
	if err != nil {
		return err
	}

	docs, err := b.loadDocuments(ctx)
	if err != nil {
		return err
	}

	indexHTML, err := renderer.RenderIndex(docs)
	if err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}
	if err := b.writePage(optimizer, "index.html", indexHTML); err != nil {
		return err
	}

	for _, doc := range docs {
		pageHTML, err := renderer.RenderPost(doc)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", doc.SourcePath, err)
		}
		if err := b.writePage(optimizer, doc.OutputPath, pageHTML); err != nil {
			return err
		}
	}
	return nil
}

// writeFontStylesheet compiles, minifies, and writes assets/fonts.css.
func (b *Builder) writeFontStylesheet(o *Optimizer) error {
	tmplText, err := b.loader.FontTemplate()
	if err != nil {
		return fmt.Errorf("loading font stylesheet template: %w", err)
	}

	compiler, err := NewFontCompiler(b.cfg.FontsDir, tmplText, b.logf)
	if err != nil {
		return err
	}
	cssText, err := compiler.Compile()
	if err != nil {
		return err
	}
	minified, err := o.MinifyCSS(cssText)
	if err != nil {
		return fmt.Errorf("minifying font stylesheet: %w", err)
	}

	dest := filepath.Join(b.cfg.OutputDir, filepath.FromSlash(fontStylesheetPath))
	if err := fileutil.WriteFile(dest, []byte(minified)); err != nil {
		return err
	}
	b.logf("wrote %s", dest)
	return nil
}

// loadDocuments reads the documents directory in listing order and loads
// every recognized document.
func (b *Builder) loadDocuments(ctx context.Context) ([]*Document, error) {
	entries, err := os.ReadDir(b.cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("reading documents directory: %w", err)
	}

	var docs []*Document
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || !documentExtensions[ext] {
			b.logf("skipping %s: not a document", entry.Name())
			continue
		}
		doc, err := b.loadDocument(ctx, entry.Name())
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// loadDocument reads one source file, parses its header, converts its
// body, and resolves its output location.
func (b *Builder) loadDocument(ctx context.Context, name string) (*Document, error) {
	raw, err := os.ReadFile(filepath.Join(b.cfg.ContentDir, name))
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", name, err)
	}

	header, body := SplitDocument(string(raw))
	bodyHTML, err := b.converter.ToHTML(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", name, err)
	}

	return &Document{
		SourcePath: name,
		OutputPath: OutputPath(name),
		Href:       Href(name),
		Meta:       ParseMetadata(header),
		Body:       template.HTML(bodyHTML),
	}, nil
}

// writePage optimizes one rendered page and persists it under the output
// root, creating parent directories on demand and overwriting any
// previous build's file.
func (b *Builder) writePage(o *Optimizer, outPath, pageHTML string) error {
	final, err := o.Optimize(pageHTML)
	if err != nil {
		return fmt.Errorf("optimizing %s: %w", outPath, err)
	}

	dest := filepath.Join(b.cfg.OutputDir, filepath.FromSlash(outPath))
	if err := fileutil.WriteFile(dest, []byte(final)); err != nil {
		return err
	}
	b.logf("wrote %s", dest)
	return nil
}
