package mdsite

import "strings"

// headerSeparator divides the metadata header from the document body.
const headerSeparator = "\n---\n"

// SplitDocument splits a raw document into its header block and body.
// Only the first separator counts; later "---" lines belong to the body.
// A document without a separator is all body with an empty header.
func SplitDocument(raw string) (header, body string) {
	if i := strings.Index(raw, headerSeparator); i >= 0 {
		return raw[:i], raw[i+len(headerSeparator):]
	}
	return "", raw
}

// ParseMetadata parses a header block into a Metadata mapping. Each line
// is split on its first colon so values may themselves contain colons
// (URLs, timestamps). Values are trimmed, keys kept verbatim, duplicate
// keys resolve last-write-wins, and a line without a colon yields no
// entry at all. Parsing is pure and idempotent.
func ParseMetadata(header string) Metadata {
	meta := Metadata{}
	for _, line := range strings.Split(header, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		meta[key] = strings.TrimSpace(value)
	}
	return meta
}
