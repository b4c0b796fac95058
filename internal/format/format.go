// Package format turns captured values and raw text bodies into highlighted
// HTML markup, beautifying source text first where a formatter exists.
package format

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"go.uber.org/zap"

	"github.com/qadeck/callreport/internal/classify"
)

// Formatter highlights text for the fixed set of supported languages.
// Safe for concurrent use; the underlying lexer registry is read-only
// after initialization.
type Formatter struct {
	log  *zap.Logger
	html *chromahtml.Formatter
}

// New returns a Formatter logging recoverable failures to log.
func New(log *zap.Logger) *Formatter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Formatter{
		log:  log,
		html: chromahtml.New(chromahtml.WithClasses(true), chromahtml.TabWidth(4)),
	}
}

// Structured serializes a value as 4-space-indented JSON and highlights it.
// The input is never mutated. Values the JSON encoder rejects fall back to
// their fmt projection so rendering always produces output.
func (f *Formatter) Structured(v any) string {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		f.log.Debug("structured value not JSON-serializable, using fmt projection",
			zap.Error(err))
		return f.Highlight(fmt.Sprintf("%+v", v), classify.Plaintext)
	}
	return f.Highlight(string(data), classify.JSON)
}

// Text beautifies source text for languages that have a formatter and
// highlights the result. Beautification failure falls back to the original
// text; it never aborts rendering.
func (f *Formatter) Text(text string, lang classify.Language) string {
	return f.Highlight(f.beautify(text, lang), lang)
}

// beautify re-formats source text. The beautifiers are tolerant of broken
// input but not guaranteed panic-free, so failures are contained here.
func (f *Formatter) beautify(text string, lang classify.Language) (out string) {
	out = text
	defer func() {
		if r := recover(); r != nil {
			f.log.Debug("beautifier failed, keeping original text",
				zap.String("language", string(lang)), zap.Any("panic", r))
			out = text
		}
	}()

	switch lang {
	case classify.HTML:
		out = beautifyHTML(text)
	case classify.XML:
		out = beautifyXML(text)
	case classify.JSON:
		out = beautifyJSON(text)
	case classify.CSS, classify.JavaScript:
		out = reindent(text)
	}
	return out
}

// Highlight renders text as highlighted HTML markup for the given language.
// Markup-significant characters in the input always come out escaped.
func (f *Formatter) Highlight(text string, lang classify.Language) string {
	lexer := lexers.Get(string(lang))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		f.log.Debug("tokenise failed, emitting escaped text",
			zap.String("language", string(lang)), zap.Error(err))
		return "<pre class=\"chroma\">" + html.EscapeString(text) + "</pre>"
	}

	var sb strings.Builder
	if err := f.html.Format(&sb, styles.Fallback, it); err != nil {
		return "<pre class=\"chroma\">" + html.EscapeString(text) + "</pre>"
	}
	return sb.String()
}

// StylesheetCSS emits the highlighting stylesheet for a chroma style name,
// matching the class names Highlight produces.
func (f *Formatter) StylesheetCSS(styleName string) (string, error) {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	var sb strings.Builder
	if err := f.html.WriteCSS(&sb, style); err != nil {
		return "", fmt.Errorf("write highlight css: %w", err)
	}
	return sb.String(), nil
}
