package record

import (
	"math"

	"github.com/qadeck/callreport/internal/har"
)

// FromHAREntry converts a recorded HAR transaction into a renderable call.
func FromHAREntry(e har.Entry) Call {
	req := RequestRecord{
		URL:     e.Request.URL,
		Method:  e.Request.Method,
		Headers: har.HeaderMap(e.Request.Headers),
	}
	if pd := e.Request.PostData; pd != nil && pd.Text != "" {
		req.Body = pd.Text
	}

	res := ResponseRecord{
		Status:     e.Response.Status,
		StatusText: e.Response.StatusText,
		Headers:    har.HeaderMap(e.Response.Headers),
	}
	res.StatusClass = res.Class()
	if text := e.Response.Content.BodyText(); text != "" {
		res.Body = TextBody(text, e.Response.Content.MimeType)
	}
	if e.Time > 0 {
		res.Duration = int(math.Round(e.Time))
		res.HasDuration = true
	}

	return Call{Request: req, Response: res}
}

// FromHARFile converts every entry of a HAR file.
func FromHARFile(f *har.File) []Call {
	calls := make([]Call, 0, len(f.Log.Entries))
	for _, e := range f.Log.Entries {
		calls = append(calls, FromHAREntry(e))
	}
	return calls
}
