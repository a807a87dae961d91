// Package mdsite builds a static site from markdown documents that carry
// a key:value header block.
//
// Each document is split on the "---" separator, its header parsed into a
// metadata mapping, and its body converted to HTML - either by an external
// converter subprocess (pandoc by default) or by the in-process goldmark
// engine. Converted documents are merged into compiled page templates,
// code blocks are syntax-highlighted with chroma, and the result is
// minified and written under pretty URLs (name.md becomes name/index.html).
//
// The build is single-threaded and recomputes everything on every run:
// there is no caching, no incremental rebuild, and no server.
package mdsite
