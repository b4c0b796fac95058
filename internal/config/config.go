// Package config reads the environment switches recognized by the renderer.
package config

import (
	"os"
	"strings"
)

// Environment variable names.
const (
	EnvColorScheme   = "CALLREPORT_COLOR_SCHEME"
	EnvLiveView      = "CALLREPORT_LIVE_VIEW"
	EnvAttachments   = "CALLREPORT_ATTACHMENTS"
	EnvAttachmentDir = "CALLREPORT_ATTACHMENT_DIR"
)

// Config holds the renderer's process-wide switches. Each switch is
// independent of the others.
type Config struct {
	// SchemeName selects the color scheme; unrecognized values fall back
	// to the default scheme at load time.
	SchemeName string
	// LiveView controls whether the hosting page's content is replaced
	// with the rendered document. Card markup is produced either way.
	LiveView bool
	// Attachments controls whether an archival document is produced per
	// call and handed to the attachment sink.
	Attachments bool
	// AttachmentDir is where the directory sink writes archival documents.
	AttachmentDir string
}

// FromEnv builds a Config from the environment, applying defaults:
// live view on, attachments off.
func FromEnv() Config {
	c := Config{
		SchemeName:    os.Getenv(EnvColorScheme),
		LiveView:      true,
		Attachments:   false,
		AttachmentDir: "callreport-attachments",
	}
	if v, ok := os.LookupEnv(EnvLiveView); ok {
		c.LiveView = parseBool(v, true)
	}
	if v, ok := os.LookupEnv(EnvAttachments); ok {
		c.Attachments = parseBool(v, false)
	}
	if v := os.Getenv(EnvAttachmentDir); v != "" {
		c.AttachmentDir = v
	}
	return c
}

// parseBool maps the usual spellings of a boolean-like switch, keeping the
// default for anything unrecognized.
func parseBool(v string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "enabled":
		return true
	case "0", "false", "no", "off", "disabled":
		return false
	}
	return def
}
