package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestDirectorySinkAttach(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewDirectorySink(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewDirectorySink: %v", err)
	}

	name := "Api request - GET (step one) - https://api.example.com/users?page=1"
	if err := sink.Attach(name, "text/html", []byte("<!DOCTYPE html><html></html>")); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d files, want 1", len(entries))
	}

	filename := entries[0].Name()
	if !strings.HasSuffix(filename, ".html") {
		t.Errorf("filename %q missing html extension", filename)
	}
	for _, c := range filename {
		if strings.ContainsRune(`/\:?*"<>|`, c) {
			t.Errorf("unsafe character %q in filename %q", c, filename)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<!DOCTYPE html>") {
		t.Error("document content lost")
	}
}

func TestDirectorySinkRepeatedTitles(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewDirectorySink(dir, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if err := sink.Attach("Api request - GET - https://x.test", "text/html", []byte("x")); err != nil {
			t.Fatalf("Attach %d: %v", i, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("repeated titles overwrote each other: %d files", len(entries))
	}
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"text/html", ".html"},
		{"application/json", ".json"},
		{"text/plain", ".txt"},
	}
	for _, tt := range tests {
		if got := extensionFor(tt.contentType); got != tt.want {
			t.Errorf("extensionFor(%q) = %q, want %q", tt.contentType, got, tt.want)
		}
	}
}
