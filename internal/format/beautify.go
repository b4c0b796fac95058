package format

import (
	"strings"

	"github.com/go-xmlfmt/xmlfmt"
	"github.com/tidwall/pretty"
	"github.com/yosssi/gohtml"
)

// wrapColumn is the soft line-length target for beautified output.
const wrapColumn = 120

func beautifyHTML(text string) string {
	return limitBlankRuns(gohtml.Format(text), 2)
}

func beautifyXML(text string) string {
	return limitBlankRuns(strings.TrimLeft(xmlfmt.FormatXML(text, "", "  "), "\r\n"), 2)
}

func beautifyJSON(text string) string {
	opts := &pretty.Options{Indent: "  ", Width: wrapColumn}
	return strings.TrimRight(string(pretty.PrettyOptions([]byte(text), opts)), "\n")
}

// reindent gives JavaScript and CSS a brace-driven 2-space indentation.
// It is deliberately simple: good enough to make minified or ragged source
// readable before highlighting.
func reindent(code string) string {
	lines := strings.Split(code, "\n")
	out := make([]string, 0, len(lines))
	depth := 0

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			out = append(out, "")
			continue
		}

		if strings.HasPrefix(trimmed, "}") || strings.HasPrefix(trimmed, "]") || strings.HasPrefix(trimmed, ")") {
			if depth > 0 {
				depth--
			}
		}

		out = append(out, strings.Repeat("  ", depth)+trimmed)

		if strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, "[") || strings.HasSuffix(trimmed, "(") {
			depth++
		}
	}

	return limitBlankRuns(strings.Join(out, "\n"), 2)
}

// limitBlankRuns collapses runs of blank lines longer than max.
func limitBlankRuns(text string, max int) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blanks := 0

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks > max {
				continue
			}
			out = append(out, "")
			continue
		}
		blanks = 0
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
