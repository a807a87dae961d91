package mdsite

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-mdsite/internal/assets"
)

// PageData is the context passed to a page template. Every render gets
// the site name, a computed title, and the full stylesheet; post renders
// carry one Document, the index render carries them all.
type PageData struct {
	Site      string
	Title     string
	Styles    template.CSS
	Document  *Document
	Documents []*Document
}

// Renderer holds the two page templates, compiled once at startup
// together with every partial. Rendering is pure: no I/O after load.
type Renderer struct {
	siteName string
	titleSep string
	post     *template.Template
	index    *template.Template
	styles   *StyleBuilder
}

// NewRenderer loads and compiles the post and index page templates plus
// the partials, resolved custom-first with embedded defaults as fallback.
func NewRenderer(cfg Config, loader assets.Loader, styles *StyleBuilder) (*Renderer, error) {
	partials, err := loader.Partials()
	if err != nil {
		return nil, fmt.Errorf("loading partials: %w", err)
	}

	post, err := compilePage("post", loader, partials)
	if err != nil {
		return nil, err
	}
	index, err := compilePage("index", loader, partials)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		siteName: cfg.Name,
		titleSep: cfg.TitleSeparator,
		post:     post,
		index:    index,
		styles:   styles,
	}, nil
}

// compilePage compiles one page template with all partials associated so
// the page can invoke them by name.
func compilePage(name string, loader assets.Loader, partials map[string]string) (*template.Template, error) {
	src, err := loader.Template(name)
	if err != nil {
		return nil, fmt.Errorf("loading %s template: %w", name, err)
	}

	t := template.New(name)
	for pname, psrc := range partials {
		if _, err := t.New(pname).Parse(psrc); err != nil {
			return nil, fmt.Errorf("%w: partial %q: %v", ErrTemplateParse, pname, err)
		}
	}
	if _, err := t.Parse(src); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
	}
	return t, nil
}

// RenderPost renders one document's page.
func (r *Renderer) RenderPost(doc *Document) (string, error) {
	data, err := r.pageData(doc, nil)
	if err != nil {
		return "", err
	}
	return r.render(r.post, data)
}

// RenderIndex renders the site index from the full document list. An
// empty list still renders a valid page with the site title.
func (r *Renderer) RenderIndex(docs []*Document) (string, error) {
	data, err := r.pageData(nil, docs)
	if err != nil {
		return "", err
	}
	return r.render(r.index, data)
}

// pageData builds the render context: the computed page title (document
// title plus site suffix, or the bare site name) and a fresh stylesheet.
func (r *Renderer) pageData(doc *Document, docs []*Document) (PageData, error) {
	css, err := r.styles.Stylesheet()
	if err != nil {
		return PageData{}, err
	}

	title := r.siteName
	if doc != nil {
		if t := doc.Title(); t != "" {
			title = t + r.titleSep + r.siteName
		}
	}

	return PageData{
		Site:      r.siteName,
		Title:     title,
		Styles:    template.CSS(css),
		Document:  doc,
		Documents: docs,
	}, nil
}

func (r *Renderer) render(t *template.Template, data PageData) (string, error) {
	var buf strings.Builder
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateRender, t.Name(), err)
	}
	return buf.String(), nil
}
