package assets

import (
	"embed"
	"fmt"
	"path"
	"strings"
)

// fontTemplateFile is the font stylesheet template's file name.
const fontTemplateFile = "fonts.css.tmpl"

//go:embed templates/* partials/* styles/*
var defaults embed.FS

// Embedded loads the default assets compiled into the binary.
// Implements Loader.
type Embedded struct{}

// Template loads a default page template by name.
func (Embedded) Template(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	content, err := defaults.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// Partials loads every default partial, keyed by file name stem.
func (Embedded) Partials() (map[string]string, error) {
	entries, err := defaults.ReadDir("partials")
	if err != nil {
		return nil, fmt.Errorf("%w: embedded", ErrNoPartials)
	}

	partials := make(map[string]string, len(entries))
	for _, entry := range entries {
		content, err := defaults.ReadFile("partials/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRead, err)
		}
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		partials[name] = string(content)
	}
	return partials, nil
}

// Style loads a default stylesheet by name.
func (Embedded) Style(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	content, err := defaults.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// FontTemplate loads the default font stylesheet template.
func (Embedded) FontTemplate() (string, error) {
	content, err := defaults.ReadFile("styles/" + fontTemplateFile)
	if err != nil {
		return "", fmt.Errorf("%w: embedded", ErrFontTemplateNotFound)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ Loader = Embedded{}
