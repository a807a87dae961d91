package mdsite

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// languageClassPrefix is the class converters put on fenced code blocks.
const languageClassPrefix = "language-"

// highlightedClass marks a code block that has been highlighted. The
// theme CSS targets this class.
const highlightedClass = "chroma"

// Highlighter rewrites <pre><code> blocks in rendered HTML with
// chroma-highlighted markup. Not idempotent: running it over its own
// output would re-tokenise the generated spans, so apply once per render.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHighlighter creates a Highlighter for the given chroma style name.
func NewHighlighter(theme string) *Highlighter {
	return &Highlighter{
		style: styles.Get(theme),
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
	}
}

// Highlight parses the HTML, replaces the content of every code block
// with a highlighted version, tags each block with the marker class, and
// returns the serialized document.
func (h *Highlighter) Highlight(htmlText string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var hlErr error
	doc.Find("pre > code").Each(func(_ int, s *goquery.Selection) {
		if hlErr != nil {
			return
		}
		code := s.Text()

		lexer := chroma.Coalesce(h.lexerFor(s, code))
		iterator, err := lexer.Tokenise(nil, code)
		if err != nil {
			hlErr = fmt.Errorf("%w: %v", ErrHighlight, err)
			return
		}

		var buf bytes.Buffer
		if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
			hlErr = fmt.Errorf("%w: %v", ErrHighlight, err)
			return
		}

		s.SetHtml(buf.String())
		s.AddClass(highlightedClass)
	})
	if hlErr != nil {
		return "", hlErr
	}

	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return out, nil
}

// lexerFor picks a lexer from the block's language-* class when present,
// otherwise by analysing the code itself.
func (h *Highlighter) lexerFor(s *goquery.Selection, code string) chroma.Lexer {
	if class, ok := s.Attr("class"); ok {
		for _, c := range strings.Fields(class) {
			lang, found := strings.CutPrefix(c, languageClassPrefix)
			if !found {
				continue
			}
			if lexer := lexers.Get(lang); lexer != nil {
				return lexer
			}
		}
	}
	if lexer := lexers.Analyse(code); lexer != nil {
		return lexer
	}
	return lexers.Fallback
}
