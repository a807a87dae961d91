package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dirs names the site directories assets are loaded from. Empty or
// missing directories simply report not-found so a resolver can fall
// back to the embedded defaults.
type Dirs struct {
	Templates string
	Partials  string
	Styles    string
}

// Filesystem loads assets from the site's own directories.
// Implements Loader.
type Filesystem struct {
	dirs Dirs
}

// NewFilesystem creates a Filesystem loader over the given directories.
func NewFilesystem(dirs Dirs) *Filesystem {
	return &Filesystem{dirs: dirs}
}

// Template loads a page template from {templates}/{name}.html.
func (f *Filesystem) Template(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	if f.dirs.Templates == "" {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return readAsset(filepath.Join(f.dirs.Templates, name+".html"), ErrTemplateNotFound, name)
}

// Partials loads every file in the partials directory; each becomes a
// named partial (extension stripped). A site's partials directory
// replaces the embedded set wholesale, it is not merged with it.
func (f *Filesystem) Partials() (map[string]string, error) {
	if f.dirs.Partials == "" {
		return nil, fmt.Errorf("%w: %q", ErrNoPartials, f.dirs.Partials)
	}
	entries, err := os.ReadDir(f.dirs.Partials)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNoPartials, f.dirs.Partials)
		}
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	partials := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(f.dirs.Partials, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRead, err)
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		partials[name] = string(content)
	}
	return partials, nil
}

// Style loads a stylesheet from {styles}/{name}.css.
func (f *Filesystem) Style(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	if f.dirs.Styles == "" {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return readAsset(filepath.Join(f.dirs.Styles, name+".css"), ErrStyleNotFound, name)
}

// FontTemplate loads the font stylesheet template from the styles
// directory.
func (f *Filesystem) FontTemplate() (string, error) {
	if f.dirs.Styles == "" {
		return "", fmt.Errorf("%w: %q", ErrFontTemplateNotFound, f.dirs.Styles)
	}
	return readAsset(filepath.Join(f.dirs.Styles, fontTemplateFile), ErrFontTemplateNotFound, fontTemplateFile)
}

// readAsset reads one asset file, mapping a missing file to the given
// not-found sentinel and any other failure to ErrRead.
func readAsset(path string, notFound error, name string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", notFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ Loader = (*Filesystem)(nil)
