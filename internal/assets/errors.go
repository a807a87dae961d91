package assets

import "errors"

// Sentinel errors for asset loading.
var (
	ErrTemplateNotFound     = errors.New("template not found")
	ErrStyleNotFound        = errors.New("style not found")
	ErrFontTemplateNotFound = errors.New("font stylesheet template not found")
	ErrNoPartials           = errors.New("partials directory not found")
	ErrInvalidName          = errors.New("invalid asset name")
	ErrRead                 = errors.New("asset read failed")
)
