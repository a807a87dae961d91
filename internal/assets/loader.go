package assets

import (
	"fmt"
	"strings"
)

// Loader loads page templates, partials, and stylesheets.
// Implementations may load from embedded assets or the filesystem.
type Loader interface {
	// Template loads a page template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	Template(name string) (string, error)

	// Partials loads every partial, keyed by name (extension stripped).
	// Returns ErrNoPartials if the partials location doesn't exist.
	Partials() (map[string]string, error)

	// Style loads a CSS stylesheet by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	Style(name string) (string, error)

	// FontTemplate loads the font stylesheet template.
	FontTemplate() (string, error)
}

// validateName rejects names that could escape the asset location.
func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
