// Package classify picks a highlighting language for a response text body
// and decides whether it should also be rendered as live HTML.
package classify

import "strings"

// Language is a highlighting language understood by the formatter.
type Language string

const (
	HTML       Language = "html"
	XML        Language = "xml"
	CSS        Language = "css"
	JavaScript Language = "javascript"
	JSON       Language = "json"
	Plaintext  Language = "plaintext"
)

// Classify inspects a declared content type first and falls back to sniffing
// the body text. The returned isHTML flag marks bodies that should get a
// rendered (iframe) tab in addition to the highlighted source.
// Deterministic for identical inputs; no side effects.
func Classify(text, contentType string) (lang Language, isHTML bool) {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "html"):
		return HTML, true
	case strings.Contains(ct, "xml"):
		return XML, false
	case strings.Contains(ct, "css"):
		return CSS, false
	case strings.Contains(ct, "javascript"):
		return JavaScript, false
	case strings.Contains(ct, "json"):
		return JSON, false
	}

	trimmed := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.HasPrefix(trimmed, "<!doctype"), strings.HasPrefix(trimmed, "<html"):
		return HTML, true
	case strings.HasPrefix(trimmed, "<?xml"):
		return XML, false
	}

	return Plaintext, false
}
