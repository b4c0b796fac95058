// Package har reads the subset of the HTTP Archive format the report
// renderer consumes: one entry per call with method, URL, headers, bodies,
// status and timing.
package har

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
)

// Header is a single name/value pair.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PostData carries a request body and its declared MIME type.
type PostData struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

// Request is the request half of an entry.
type Request struct {
	Method   string    `json:"method"`
	URL      string    `json:"url"`
	Headers  []Header  `json:"headers"`
	PostData *PostData `json:"postData"`
}

// Content is the recorded response body.
type Content struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
	Encoding string `json:"encoding"`
}

// Response is the response half of an entry.
type Response struct {
	Status     int      `json:"status"`
	StatusText string   `json:"statusText"`
	Headers    []Header `json:"headers"`
	Content    Content  `json:"content"`
}

// Entry is one recorded HTTP transaction.
type Entry struct {
	Request  Request  `json:"request"`
	Response Response `json:"response"`
	// Time is the total round-trip time in milliseconds.
	Time float64 `json:"time"`
}

// File is the root of a HAR document.
type File struct {
	Log struct {
		Entries []Entry `json:"entries"`
	} `json:"log"`
}

// Load parses a HAR file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read har file: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse har file: %w", err)
	}
	return &f, nil
}

// BodyText returns the response body as text, decoding base64-encoded
// content. Undecodable payloads are returned as-is.
func (c Content) BodyText() string {
	if c.Encoding == "base64" && c.Text != "" {
		if decoded, err := base64.StdEncoding.DecodeString(c.Text); err == nil {
			return string(decoded)
		}
	}
	return c.Text
}

// HeaderMap flattens a header list into a map; repeated names keep the
// last value, which is enough for display purposes.
func HeaderMap(headers []Header) map[string]string {
	if len(headers) == 0 {
		return nil
	}
	m := make(map[string]string, len(headers))
	for _, h := range headers {
		m[h.Name] = h.Value
	}
	return m
}
