// Package scheme loads the color schemes used to style rendered reports.
// Schemes are YAML documents compiled into the binary; a loaded Scheme is
// immutable for the process lifetime.
package scheme

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed schemes/*.yaml
var schemeFiles embed.FS

// DefaultName is used when the requested scheme is unset or unrecognized.
const DefaultName = "light"

// Scheme is a named set of design tokens plus the chroma style that the
// highlighting stylesheet is generated from.
type Scheme struct {
	Name           string            `yaml:"name"`
	HighlightStyle string            `yaml:"highlightStyle"`
	Tokens         map[string]string `yaml:"tokens"`
}

// requiredTokens are the design tokens the inline stylesheet references.
// A scheme missing any of them fails at load rather than degrading into
// invalid CSS at render time.
var requiredTokens = []string{
	"page-background",
	"card-background",
	"card-border",
	"text",
	"muted",
	"method",
	"url",
	"tab-label",
	"tab-label-active",
	"pane-background",
	"rule",
	"status-1xx",
	"status-2xx",
	"status-3xx",
	"status-4xx",
	"status-5xx",
}

// Load returns the scheme with the given name, matched case-insensitively.
// Unknown or empty names fall back to the default scheme.
func Load(name string) (*Scheme, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "light", "dark", "accessible":
	default:
		n = DefaultName
	}

	data, err := schemeFiles.ReadFile("schemes/" + n + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("read scheme %q: %w", n, err)
	}

	var s Scheme
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scheme %q: %w", n, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scheme %q: %w", n, err)
	}
	return &s, nil
}

func (s *Scheme) validate() error {
	if s.Name == "" {
		return fmt.Errorf("missing name")
	}
	if s.HighlightStyle == "" {
		return fmt.Errorf("missing highlightStyle")
	}
	for _, tok := range requiredTokens {
		if s.Tokens[tok] == "" {
			return fmt.Errorf("missing token %q", tok)
		}
	}
	return nil
}

// Token returns the color value for a design token.
func (s *Scheme) Token(name string) string {
	return s.Tokens[name]
}
