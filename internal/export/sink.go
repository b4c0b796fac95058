// Package export persists per-call report attachments.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// DirectorySink writes each attachment into a directory, one file per call,
// under a filesystem-safe name derived from the attachment's descriptive
// title. It satisfies report.AttachmentSink.
type DirectorySink struct {
	dir string
	log *zap.Logger

	// seen disambiguates repeated titles within one run.
	seen map[string]int
}

// NewDirectorySink creates the target directory if needed.
func NewDirectorySink(dir string, log *zap.Logger) (*DirectorySink, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create attachment dir: %w", err)
	}
	return &DirectorySink{dir: dir, log: log, seen: make(map[string]int)}, nil
}

// Attach writes one archival document.
func (s *DirectorySink) Attach(name, contentType string, body []byte) error {
	filename := s.filename(name, extensionFor(contentType))
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write attachment: %w", err)
	}
	s.log.Debug("attachment written", zap.String("path", path))
	return nil
}

var unsafeChars = regexp.MustCompile(`[^\w\-.]+`)

// filename reduces a descriptive title to a safe, reasonably short file
// name, numbering repeats.
func (s *DirectorySink) filename(name, ext string) string {
	base := unsafeChars.ReplaceAllString(name, "_")
	base = strings.Trim(base, "_")
	if len(base) > 120 {
		base = base[:120]
	}
	if base == "" {
		base = "attachment"
	}
	n := s.seen[base]
	s.seen[base] = n + 1
	if n > 0 {
		base = fmt.Sprintf("%s_%d", base, n)
	}
	return base + ext
}

func extensionFor(contentType string) string {
	switch {
	case strings.Contains(contentType, "html"):
		return ".html"
	case strings.Contains(contentType, "json"):
		return ".json"
	default:
		return ".txt"
	}
}
