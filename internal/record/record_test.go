package record

import (
	"reflect"
	"testing"
)

func TestRequestRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     RequestRecord
		wantErr bool
	}{
		{"valid", RequestRecord{URL: "https://x.test", Method: "get"}, false},
		{"missing url", RequestRecord{Method: "get"}, true},
		{"missing method", RequestRecord{URL: "https://x.test"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCanonicalMethod(t *testing.T) {
	req := RequestRecord{Method: "get"}
	if got := req.CanonicalMethod(); got != "GET" {
		t.Errorf("CanonicalMethod() = %q, want GET", got)
	}
}

func TestResponseClass(t *testing.T) {
	tests := []struct {
		name string
		res  ResponseRecord
		want string
	}{
		{"recorded class wins", ResponseRecord{Status: 201, StatusClass: "4xx"}, "4xx"},
		{"derived 2xx", ResponseRecord{Status: 201}, "2xx"},
		{"derived 5xx", ResponseRecord{Status: 503}, "5xx"},
		{"derived 1xx", ResponseRecord{Status: 101}, "1xx"},
		{"out of range", ResponseRecord{Status: 999}, "5xx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.res.Class(); got != tt.want {
				t.Errorf("Class() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBodyVariant(t *testing.T) {
	structured := StructuredBody(map[string]int{"id": 1})
	if _, _, ok := structured.Text(); ok {
		t.Error("structured body answered as text body")
	}
	if v, ok := structured.Structured(); !ok || v == nil {
		t.Error("structured body lost its value")
	}

	text := TextBody("<html></html>", "text/html")
	if _, ok := text.Structured(); ok {
		t.Error("text body answered as structured body")
	}
	raw, ct, ok := text.Text()
	if !ok || raw != "<html></html>" || ct != "text/html" {
		t.Errorf("Text() = (%q, %q, %v)", raw, ct, ok)
	}

	var none *Body
	if _, ok := none.Structured(); ok {
		t.Error("nil body answered as structured")
	}
	if _, _, ok := none.Text(); ok {
		t.Error("nil body answered as text")
	}
}

type stamp struct{}

func (stamp) String() string { return "Stamp()" }

func TestProjectFunctions(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want map[string]string
	}{
		{"nil map", nil, nil},
		{"all nil values dropped", map[string]any{"a": nil}, nil},
		{
			"stringer and plain values",
			map[string]any{"sign": stamp{}, "retries": 3, "skip": nil},
			map[string]string{"sign": "Stamp()", "retries": "3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectFunctions(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ProjectFunctions(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
