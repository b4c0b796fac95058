package report

import (
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/qadeck/callreport/internal/classify"
	"github.com/qadeck/callreport/internal/format"
	"github.com/qadeck/callreport/internal/record"
	"github.com/qadeck/callreport/internal/scheme"
)

// AttachmentSink receives one archival document per assembled card.
type AttachmentSink interface {
	Attach(name, contentType string, body []byte) error
}

// Assembler builds one card per request/response pair.
type Assembler struct {
	fmtr *format.Formatter
	sch  *scheme.Scheme
	log  *zap.Logger

	// Sink, when set, receives a standalone document for every card.
	// Sink failures never prevent the card from being returned.
	Sink AttachmentSink

	// newCallID is swappable in tests.
	newCallID func() int
}

// NewAssembler returns an Assembler rendering with f and styling from sch.
func NewAssembler(f *format.Formatter, sch *scheme.Scheme, log *zap.Logger) *Assembler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{fmtr: f, sch: sch, log: log, newCallID: newCallID}
}

// newCallID draws an 8-digit id scoping DOM element ids to one card.
// Collision-resistant within a rendered page, not globally unique.
func newCallID() int {
	return 10000000 + rand.Intn(90000000)
}

// Card assembles the request and response sections of one call into a card
// fragment and returns it with the generated call id. Records missing their
// minimal fields are a hard failure; everything recoverable inside
// formatting has already degraded to a fallback by the time it gets here.
func (a *Assembler) Card(req record.RequestRecord, res record.ResponseRecord) (string, int, error) {
	if err := req.Validate(); err != nil {
		return "", 0, fmt.Errorf("assemble card: %w", err)
	}
	if err := res.Validate(); err != nil {
		return "", 0, fmt.Errorf("assemble card: %w", err)
	}

	callID := a.newCallID()

	var sb strings.Builder
	fmt.Fprintf(&sb, `<div class="api-call" id="api-call-%d">`, callID)
	sb.WriteString(a.requestSection(req, callID))
	sb.WriteString(`<hr class="call-rule">`)
	sb.WriteString(a.responseSection(res, callID))
	sb.WriteString(`</div>`)
	card := sb.String()

	a.attach(req, card)

	return card, callID, nil
}

// requestSection renders the request title, URL and tab group. Absent
// optional fields contribute no tab; the first present tab is checked.
func (a *Assembler) requestSection(req record.RequestRecord, callID int) string {
	var sb strings.Builder
	sb.WriteString(`<div class="request">`)

	fmt.Fprintf(&sb, `<div class="section-title"><span class="method">METHOD: %s</span>`, req.CanonicalMethod())
	if req.OriginCall != "" {
		fmt.Fprintf(&sb, ` <span class="origin">%s</span>`, htmlEscape(originAnnotation(req)))
	}
	sb.WriteString(`</div>`)

	fmt.Fprintf(&sb, `<div class="url">%s</div>`, a.fmtr.Highlight(req.URL, classify.Plaintext))

	tabs := []struct {
		label string
		data  string
	}{
		{"BODY", a.formatRequestBody(req.Body)},
		{"HEADERS", a.formatOptional(req.Headers)},
		{"PARAMS", a.formatOptional(req.Params)},
		{"HTTP-BASIC-AUTH", a.formatOptional(req.Auth)},
		{"PROXY", a.formatOptional(req.Proxy)},
		{"FUNCTIONS", a.formatOptional(record.ProjectFunctions(req.Functions))},
		{"OTHER-OPTIONS", a.formatOptional(req.OtherOptions)},
	}

	scope := fmt.Sprintf("request-%d", callID)
	sb.WriteString(`<div class="tab-group">`)
	checked := true
	for _, t := range tabs {
		if t.data == "" {
			continue
		}
		sb.WriteString(BuildTab(t.data, t.label, scope, checked))
		checked = false
	}
	sb.WriteString(`</div></div>`)

	return sb.String()
}

// responseSection renders the status line, duration and tab group. HTML
// text bodies get a RENDERED tab ahead of the highlighted source.
func (a *Assembler) responseSection(res record.ResponseRecord, callID int) string {
	var sb strings.Builder
	sb.WriteString(`<div class="response">`)

	fmt.Fprintf(&sb, `<div class="section-title"><span class="status status-%s">STATUS: %d - %s</span>`,
		res.Class(), res.Status, htmlEscape(res.StatusText))
	if res.HasDuration {
		fmt.Fprintf(&sb, ` <span class="duration">%s</span>`, FormatDuration(res.Duration))
	}
	sb.WriteString(`</div>`)

	// rendered is the raw HTML for the RENDERED tab, when the body is an
	// HTML text body; body is the highlighted source for the BODY tab.
	var rendered, body string
	if text, contentType, ok := res.Body.Text(); ok {
		if text != "" {
			lang, isHTML := classify.Classify(text, contentType)
			if isHTML {
				rendered = text
			}
			body = a.fmtr.Text(text, lang)
		}
	} else if v, ok := res.Body.Structured(); ok {
		body = a.fmtr.Structured(v)
	}

	scope := fmt.Sprintf("response-%d", callID)
	sb.WriteString(`<div class="tab-group">`)
	checked := true
	if rendered != "" {
		sb.WriteString(BuildRenderedTab(rendered, "RENDERED", scope, true))
		checked = false
	}
	if body != "" {
		sb.WriteString(BuildTab(body, "BODY", scope, checked))
		checked = false
	}
	if headers := a.formatOptional(res.Headers); headers != "" {
		sb.WriteString(BuildTab(headers, "HEADERS", scope, checked))
	}

	sb.WriteString(`</div></div>`)
	return sb.String()
}

// formatRequestBody renders a request body: raw strings as plain text,
// anything else as indented JSON.
func (a *Assembler) formatRequestBody(body any) string {
	switch b := body.(type) {
	case nil:
		return ""
	case string:
		if b == "" {
			return ""
		}
		return a.fmtr.Highlight(b, classify.Plaintext)
	default:
		return a.fmtr.Structured(body)
	}
}

// formatOptional renders an optional mapping, or nothing when absent.
func (a *Assembler) formatOptional(m any) string {
	switch v := m.(type) {
	case map[string]string:
		if len(v) == 0 {
			return ""
		}
	case map[string]any:
		if len(v) == 0 {
			return ""
		}
	case nil:
		return ""
	}
	return a.fmtr.Structured(m)
}

// attach hands the standalone document to the sink. Fire and forget: a
// failing sink is logged and the card is still returned to the caller.
func (a *Assembler) attach(req record.RequestRecord, card string) {
	if a.Sink == nil {
		return
	}
	doc := StandaloneDocument(card, a.sch)
	name := AttachmentTitle(req)
	if err := a.Sink.Attach(name, "text/html", []byte(doc)); err != nil {
		a.log.Warn("attachment sink failed",
			zap.String("name", name), zap.Error(err))
	}
}

// AttachmentTitle builds the descriptive name of a card's archival document.
func AttachmentTitle(req record.RequestRecord) string {
	title := "Api request - " + req.CanonicalMethod()
	if req.OriginCall != "" {
		title += " " + originAnnotation(req)
	}
	return title + " - " + req.URL
}

func originAnnotation(req record.RequestRecord) string {
	return "(" + req.OriginCall + ")"
}

// FormatDuration renders a round-trip time: milliseconds under a second,
// fractional seconds above.
func FormatDuration(ms int) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.2fs", float64(ms)/1000)
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
