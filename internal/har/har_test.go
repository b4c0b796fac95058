package har

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.har")
	content := `{
	  "log": {
	    "entries": [{
	      "time": 42.5,
	      "request": {"method": "GET", "url": "https://x.test/a", "headers": []},
	      "response": {
	        "status": 200, "statusText": "OK", "headers": [],
	        "content": {"mimeType": "application/json", "text": "{}"}
	      }
	    }]
	  }
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.Log.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(f.Log.Entries))
	}
	if f.Log.Entries[0].Request.URL != "https://x.test/a" {
		t.Errorf("url = %q", f.Log.Entries[0].Request.URL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.har")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestContentBodyText(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		want    string
	}{
		{
			name:    "plain text passes through",
			content: Content{Text: "hello"},
			want:    "hello",
		},
		{
			name: "base64 decoded",
			content: Content{
				Text:     base64.StdEncoding.EncodeToString([]byte("<html></html>")),
				Encoding: "base64",
			},
			want: "<html></html>",
		},
		{
			name:    "broken base64 kept as-is",
			content: Content{Text: "!!!not-base64!!!", Encoding: "base64"},
			want:    "!!!not-base64!!!",
		},
		{
			name:    "empty",
			content: Content{},
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.content.BodyText(); got != tt.want {
				t.Errorf("BodyText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeaderMap(t *testing.T) {
	headers := []Header{
		{Name: "Accept", Value: "text/html"},
		{Name: "X-Req", Value: "1"},
		{Name: "X-Req", Value: "2"},
	}
	m := HeaderMap(headers)
	if m["Accept"] != "text/html" || m["X-Req"] != "2" {
		t.Errorf("HeaderMap = %v", m)
	}
	if HeaderMap(nil) != nil {
		t.Error("HeaderMap(nil) should be nil")
	}
}
