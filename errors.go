package mdsite

import "errors"

// Sentinel errors for build pipeline operations.
var (
	ErrConverter      = errors.New("HTML conversion failed")
	ErrTemplateParse  = errors.New("template compilation failed")
	ErrTemplateRender = errors.New("template rendering failed")
	ErrHighlight      = errors.New("syntax highlighting failed")
	ErrMinify         = errors.New("minification failed")
	ErrScriptMinify   = errors.New("script minification failed")
)
