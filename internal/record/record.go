package record

import (
	"errors"
	"fmt"
	"strings"
)

// RequestRecord describes one captured outgoing HTTP request.
// Optional fields left nil produce no section in the rendered card.
type RequestRecord struct {
	URL          string
	Method       string
	Headers      map[string]string
	Body         any
	Params       map[string]string
	Auth         map[string]any
	Proxy        map[string]any
	Functions    map[string]any
	OtherOptions map[string]any

	// OriginCall labels the higher-level call that triggered this request,
	// e.g. a test step name. Empty when unknown.
	OriginCall string
}

// Validate reports whether the record carries the minimum needed to render it.
func (r RequestRecord) Validate() error {
	if r.URL == "" {
		return errors.New("request record has no url")
	}
	if r.Method == "" {
		return errors.New("request record has no method")
	}
	return nil
}

// CanonicalMethod returns the upper-cased HTTP method.
func (r RequestRecord) CanonicalMethod() string {
	return strings.ToUpper(r.Method)
}

// ResponseRecord describes the response paired with a RequestRecord.
type ResponseRecord struct {
	Status      int
	StatusClass string
	StatusText  string
	Headers     map[string]string
	Body        *Body

	// Duration is the round-trip time in milliseconds. Valid only when
	// HasDuration is set.
	Duration    int
	HasDuration bool
}

func (r ResponseRecord) Validate() error {
	if r.Status == 0 {
		return errors.New("response record has no status")
	}
	return nil
}

// Class returns the status class used for color-coding, preferring the
// recorded one and deriving "1xx".."5xx" from the code otherwise.
func (r ResponseRecord) Class() string {
	if r.StatusClass != "" {
		return r.StatusClass
	}
	if r.Status >= 100 && r.Status < 600 {
		return fmt.Sprintf("%dxx", r.Status/100)
	}
	return "5xx"
}

// Call is one request/response pair as handed over by the call tracer.
type Call struct {
	Request  RequestRecord
	Response ResponseRecord
}

// bodyKind discriminates the two representations of a response body.
type bodyKind int

const (
	bodyStructured bodyKind = iota
	bodyText
)

// Body is a response body in exactly one of two forms: a structured value
// (anything JSON-serializable) or raw text with a declared content type.
// The two cases are mutually exclusive by construction.
type Body struct {
	kind        bodyKind
	structured  any
	text        string
	contentType string
}

// StructuredBody wraps a JSON-serializable value.
func StructuredBody(v any) *Body {
	return &Body{kind: bodyStructured, structured: v}
}

// TextBody wraps raw text together with its declared content type.
func TextBody(text, contentType string) *Body {
	return &Body{kind: bodyText, text: text, contentType: contentType}
}

// Structured returns the structured value, if this is a structured body.
func (b *Body) Structured() (any, bool) {
	if b == nil || b.kind != bodyStructured {
		return nil, false
	}
	return b.structured, true
}

// Text returns the raw text and declared content type, if this is a text body.
func (b *Body) Text() (text, contentType string, ok bool) {
	if b == nil || b.kind != bodyText {
		return "", "", false
	}
	return b.text, b.contentType, true
}

// ProjectFunctions reduces a functions mapping to displayable strings.
// Entries with a nil value are dropped; everything else is stringified, so
// callable-like values get a deterministic projection before formatting.
func ProjectFunctions(fns map[string]any) map[string]string {
	if len(fns) == 0 {
		return nil
	}
	out := make(map[string]string, len(fns))
	for name, v := range fns {
		if v == nil {
			continue
		}
		if s, ok := v.(fmt.Stringer); ok {
			out[name] = s.String()
			continue
		}
		out[name] = fmt.Sprintf("%v", v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
