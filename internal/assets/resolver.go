package assets

import "errors"

// Resolver tries the site's own directories first and falls back to the
// embedded defaults for anything missing. Only not-found errors trigger
// the fallback; validation and I/O errors propagate.
type Resolver struct {
	custom   Loader
	embedded Loader
}

// NewResolver creates a Resolver over the given site directories.
func NewResolver(dirs Dirs) *Resolver {
	return &Resolver{
		custom:   NewFilesystem(dirs),
		embedded: Embedded{},
	}
}

// Template loads a page template, custom-first.
func (r *Resolver) Template(name string) (string, error) {
	return r.load(func(l Loader) (string, error) { return l.Template(name) })
}

// Partials loads the partial set, custom-first. The custom set replaces
// the embedded one entirely when present.
func (r *Resolver) Partials() (map[string]string, error) {
	partials, err := r.custom.Partials()
	if err == nil {
		return partials, nil
	}
	if !isNotFound(err) {
		return nil, err
	}
	return r.embedded.Partials()
}

// Style loads a stylesheet, custom-first.
func (r *Resolver) Style(name string) (string, error) {
	return r.load(func(l Loader) (string, error) { return l.Style(name) })
}

// FontTemplate loads the font stylesheet template, custom-first.
func (r *Resolver) FontTemplate() (string, error) {
	return r.load(func(l Loader) (string, error) { return l.FontTemplate() })
}

// load implements the custom-first, fallback-to-embedded logic.
func (r *Resolver) load(fn func(Loader) (string, error)) (string, error) {
	content, err := fn(r.custom)
	if err == nil {
		return content, nil
	}
	if !isNotFound(err) {
		return "", err
	}
	return fn(r.embedded)
}

// isNotFound checks if the error indicates the asset was not found.
func isNotFound(err error) bool {
	return errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrStyleNotFound) ||
		errors.Is(err, ErrFontTemplateNotFound) ||
		errors.Is(err, ErrNoPartials)
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
