package report

import (
	"fmt"
	"strings"

	"github.com/qadeck/callreport/internal/scheme"
)

// baseCSS builds the inline stylesheet from a color scheme. Every token the
// scheme is validated for at load time is referenced here, so a loaded
// scheme can never produce a hole in the emitted CSS.
func baseCSS(sch *scheme.Scheme) string {
	var sb strings.Builder
	w := func(format string, args ...any) {
		fmt.Fprintf(&sb, format+"\n", args...)
	}

	w(`body { background: %s; color: %s; font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 16px; }`,
		sch.Token("page-background"), sch.Token("text"))
	w(`.api-call { background: %s; border: 1px solid %s; border-radius: 6px; padding: 12px 16px; margin-bottom: 16px; }`,
		sch.Token("card-background"), sch.Token("card-border"))
	w(`.call-rule { border: none; border-top: 1px solid %s; margin: 12px 0; }`, sch.Token("rule"))
	w(`.section-title { font-weight: 600; margin-bottom: 4px; }`)
	w(`.method { color: %s; }`, sch.Token("method"))
	w(`.origin, .duration { color: %s; font-weight: 400; font-size: 0.9em; }`, sch.Token("muted"))
	w(`.url { color: %s; font-size: 0.9em; margin-bottom: 8px; word-break: break-all; }`, sch.Token("url"))
	w(`.url pre { margin: 0; background: transparent; }`)
	for _, class := range []string{"1xx", "2xx", "3xx", "4xx", "5xx"} {
		w(`.status-%s { color: %s; }`, class, sch.Token("status-"+class))
	}
	w(`.tab-group { margin-top: 8px; }`)
	w(`.tab-selector { display: none; }`)
	w(`.tab-label { display: inline-block; cursor: pointer; color: %s; padding: 4px 10px; font-size: 0.85em; }`,
		sch.Token("tab-label"))
	w(`.tab-selector:checked + .tab-label { color: %s; border-bottom: 2px solid %s; }`,
		sch.Token("tab-label-active"), sch.Token("tab-label-active"))
	w(`.tab-pane { display: none; background: %s; border: 1px solid %s; border-radius: 4px; padding: 8px; margin-top: 6px; overflow-x: auto; }`,
		sch.Token("pane-background"), sch.Token("rule"))
	w(`.tab-selector:checked + .tab-label + .tab-pane { display: block; order: 99; width: 100%%; }`)
	w(`.tab-group { display: flex; flex-wrap: wrap; }`)
	w(`.tab-pane pre { margin: 0; }`)
	w(`.rendered-frame { width: 100%%; min-height: 320px; border: none; background: #ffffff; }`)

	return sb.String()
}
