package mdsite

import (
	"path"
	"strings"
)

// OutputPath maps a source path to its output location, enforcing the
// pretty-URL convention: every document becomes a directory holding an
// index file. A source whose name normalizes to index.html keeps its
// path so it can serve as a directory index directly.
//
//	welcome.md        -> welcome/index.html
//	notes/setup.md    -> notes/setup/index.html
//	index.md          -> index.html
//	notes/index.md    -> notes/index.html
//
// Pure and total; paths are slash-separated.
func OutputPath(src string) string {
	p := withHTMLExt(src)
	if path.Base(p) == "index.html" {
		return p
	}
	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	return path.Join(path.Dir(p), name, "index.html")
}

// Href returns the public URL for a source path: the directory component
// of its output path, always ending in a slash.
func Href(src string) string {
	dir := path.Dir(OutputPath(src))
	if dir == "." {
		return "/"
	}
	return "/" + dir + "/"
}

// withHTMLExt swaps the source extension for .html.
func withHTMLExt(p string) string {
	return strings.TrimSuffix(p, path.Ext(p)) + ".html"
}
