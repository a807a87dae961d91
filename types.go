package mdsite

import "html/template"

// Metadata maps header keys to values. Keys are stored verbatim; values
// have surrounding whitespace trimmed. A header line without a colon
// contributes no entry, so consumers must treat absence as "no field",
// never as an error.
type Metadata map[string]string

// Get returns the value for key and whether the key was present.
func (m Metadata) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Field returns the value for key, or the empty string when absent.
// Single-return so it is callable from templates.
func (m Metadata) Field(key string) string {
	return m[key]
}

// Document is one source content file plus everything derived from it
// during load. Documents are built once and never mutated; the build
// holds them in directory-listing order.
type Document struct {
	// SourcePath is the file name relative to the documents directory.
	SourcePath string
	// OutputPath is the pretty-URL location relative to the output root,
	// slash-separated (e.g. "welcome/index.html").
	OutputPath string
	// Href is the public URL the document is served at (e.g. "/welcome/").
	Href string
	// Meta is the parsed header mapping.
	Meta Metadata
	// Body is the converted body HTML. Marked safe for templates because
	// it is produced by the converter, not taken from the header.
	Body template.HTML
}

// Title returns the document's title header field, or "" when absent.
func (d *Document) Title() string {
	return d.Meta.Field("title")
}
