package scheme

import "testing"

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		wantName string
	}{
		{"light", "light", "light"},
		{"dark", "dark", "dark"},
		{"accessible", "accessible", "accessible"},
		{"case insensitive", "DARK", "dark"},
		{"padded", "  Light ", "light"},
		{"unset falls back", "", "light"},
		{"unrecognized falls back", "solarized", "light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(tt.arg)
			if err != nil {
				t.Fatalf("Load(%q): %v", tt.arg, err)
			}
			if s.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.arg, s.Name, tt.wantName)
			}
		})
	}
}

func TestLoadedSchemesAreComplete(t *testing.T) {
	for _, name := range []string{"light", "dark", "accessible"} {
		t.Run(name, func(t *testing.T) {
			s, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q): %v", name, err)
			}
			if s.HighlightStyle == "" {
				t.Error("missing highlight style")
			}
			for _, tok := range requiredTokens {
				if s.Token(tok) == "" {
					t.Errorf("scheme %q missing token %q", name, tok)
				}
			}
		})
	}
}

func TestValidateRejectsIncompleteScheme(t *testing.T) {
	s := &Scheme{Name: "broken", HighlightStyle: "github", Tokens: map[string]string{
		"text": "#000000",
	}}
	if err := s.validate(); err == nil {
		t.Fatal("expected validation error for missing tokens")
	}
}
