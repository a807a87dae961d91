// Package assets loads the site's templates, partials, and stylesheets.
// A site's own directories take precedence; embedded defaults fill in
// anything missing, so a bare documents directory is already a working
// site.
package assets
