package record

import (
	"encoding/json"
	"fmt"
	"os"
)

// Wire form of a capture file: one JSON document per test run, produced by
// the call tracer. A response body arrives either structured ("body") or as
// raw text with its content type ("bodyText"), never both.
type captureFile struct {
	Calls []captureCall `json:"calls"`
}

type captureCall struct {
	Request  captureRequest  `json:"request"`
	Response captureResponse `json:"response"`
}

type captureRequest struct {
	URL          string            `json:"url"`
	Method       string            `json:"method"`
	Headers      map[string]string `json:"headers"`
	Body         any               `json:"body"`
	Params       map[string]string `json:"params"`
	Auth         map[string]any    `json:"auth"`
	Proxy        map[string]any    `json:"proxy"`
	Functions    map[string]any    `json:"functions"`
	OtherOptions map[string]any    `json:"otherOptions"`
	OriginCall   string            `json:"originCall"`
}

type captureResponse struct {
	Status      int               `json:"status"`
	StatusClass string            `json:"statusClass"`
	StatusText  string            `json:"statusText"`
	Headers     map[string]string `json:"headers"`
	Body        any               `json:"body"`
	BodyText    *captureBodyText  `json:"bodyText"`
	Duration    *int              `json:"duration"`
}

type captureBodyText struct {
	Text        string `json:"text"`
	ContentType string `json:"contentType"`
}

// LoadCaptureFile parses a native capture file into renderable calls.
func LoadCaptureFile(path string) ([]Call, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture file: %w", err)
	}

	var f captureFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse capture file: %w", err)
	}

	calls := make([]Call, 0, len(f.Calls))
	for i, c := range f.Calls {
		call, err := c.toCall()
		if err != nil {
			return nil, fmt.Errorf("capture call %d: %w", i, err)
		}
		calls = append(calls, call)
	}
	return calls, nil
}

func (c captureCall) toCall() (Call, error) {
	res := ResponseRecord{
		Status:      c.Response.Status,
		StatusClass: c.Response.StatusClass,
		StatusText:  c.Response.StatusText,
		Headers:     c.Response.Headers,
	}
	switch {
	case c.Response.BodyText != nil && c.Response.Body != nil:
		return Call{}, fmt.Errorf("response carries both body and bodyText")
	case c.Response.BodyText != nil:
		res.Body = TextBody(c.Response.BodyText.Text, c.Response.BodyText.ContentType)
	case c.Response.Body != nil:
		res.Body = StructuredBody(c.Response.Body)
	}
	if c.Response.Duration != nil {
		res.Duration = *c.Response.Duration
		res.HasDuration = true
	}

	return Call{
		Request: RequestRecord{
			URL:          c.Request.URL,
			Method:       c.Request.Method,
			Headers:      c.Request.Headers,
			Body:         c.Request.Body,
			Params:       c.Request.Params,
			Auth:         c.Request.Auth,
			Proxy:        c.Request.Proxy,
			Functions:    c.Request.Functions,
			OtherOptions: c.Request.OtherOptions,
			OriginCall:   c.Request.OriginCall,
		},
		Response: res,
	}, nil
}
