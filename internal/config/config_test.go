package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	for _, env := range []string{EnvColorScheme, EnvLiveView, EnvAttachments, EnvAttachmentDir} {
		t.Setenv(env, "")
	}
	// Empty values count as unrecognized and keep the defaults.
	c := FromEnv()
	if !c.LiveView {
		t.Error("live view should default to enabled")
	}
	if c.Attachments {
		t.Error("attachments should default to disabled")
	}
	if c.AttachmentDir == "" {
		t.Error("attachment dir should have a default")
	}
}

func TestFromEnvSwitches(t *testing.T) {
	t.Setenv(EnvColorScheme, "Dark")
	t.Setenv(EnvLiveView, "false")
	t.Setenv(EnvAttachments, "ON")
	t.Setenv(EnvAttachmentDir, "/tmp/att")

	c := FromEnv()
	if c.SchemeName != "Dark" {
		t.Errorf("SchemeName = %q", c.SchemeName)
	}
	if c.LiveView {
		t.Error("live view should be disabled")
	}
	if !c.Attachments {
		t.Error("attachments should be enabled")
	}
	if c.AttachmentDir != "/tmp/att" {
		t.Errorf("AttachmentDir = %q", c.AttachmentDir)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"1", false, true},
		{"true", false, true},
		{"YES", false, true},
		{"on", false, true},
		{"0", true, false},
		{"False", true, false},
		{"off", true, false},
		{"disabled", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
		{"", true, true},
	}
	for _, tt := range tests {
		if got := parseBool(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBool(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}
