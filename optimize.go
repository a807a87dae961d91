package mdsite

import (
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

// scriptMediatype matches every JS mediatype inline scripts can carry.
var scriptMediatype = regexp.MustCompile(`^(application|text)/(x-)?(java|ecma)script$`)

// Optimizer produces the final page text: syntax highlighting followed
// by HTML minification, with embedded CSS and inline scripts minified by
// their own minifiers.
type Optimizer struct {
	highlighter *Highlighter
	m           *minify.M
	logf        func(format string, args ...any)
}

// NewOptimizer creates an Optimizer. logf receives the offending script
// when inline JS fails to minify, just before the build aborts.
func NewOptimizer(highlighter *Highlighter, logf func(string, ...any)) *Optimizer {
	o := &Optimizer{highlighter: highlighter, logf: logf}

	m := minify.New()
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags: true, // output stays a complete HTML document
	})
	m.Add("text/css", &css.Minifier{})
	m.AddFuncRegexp(scriptMediatype, o.minifyScript)
	o.m = m

	return o
}

// Optimize highlights code blocks and minifies the result.
func (o *Optimizer) Optimize(htmlText string) (string, error) {
	highlighted, err := o.highlighter.Highlight(htmlText)
	if err != nil {
		return "", err
	}

	out, err := o.m.String("text/html", highlighted)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMinify, err)
	}
	return out, nil
}

// MinifyCSS minifies a standalone stylesheet (the font stylesheet).
func (o *Optimizer) MinifyCSS(cssText string) (string, error) {
	out, err := o.m.String("text/css", cssText)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMinify, err)
	}
	return out, nil
}

// minifyScript minifies one inline script. A failing script is logged in
// full before the error propagates, so the offending code is visible in
// the build output.
func (o *Optimizer) minifyScript(m *minify.M, w io.Writer, r io.Reader, params map[string]string) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := (&js.Minifier{}).Minify(m, &buf, bytes.NewReader(src), params); err != nil {
		o.logf("script minification failed, offending script:\n%s", src)
		return fmt.Errorf("%w: %v", ErrScriptMinify, err)
	}

	_, err = w.Write(buf.Bytes())
	return err
}
