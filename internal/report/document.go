package report

import (
	"context"
	"fmt"

	"github.com/qadeck/callreport/internal/config"
	"github.com/qadeck/callreport/internal/scheme"
)

// Page is the hosting browser page the live view renders into. Both
// operations run against an external browser context and must be awaited;
// implementations are supplied by the test-runner integration.
type Page interface {
	// SetContent replaces the page's document with the given HTML.
	SetContent(ctx context.Context, html string) error
	// Evaluate runs a script inside the page.
	Evaluate(ctx context.Context, script string) error
}

// StandaloneDocument wraps a card into a complete document suitable for
// archival as a report attachment.
func StandaloneDocument(card string, sch *scheme.Scheme) string {
	return documentShell(card, sch, false)
}

// LiveDocument wraps a card into the document shown on the hosting page.
func LiveDocument(card string, sch *scheme.Scheme) string {
	return documentShell(card, sch, true)
}

func documentShell(card string, sch *scheme.Scheme, live bool) string {
	body := card
	if live {
		body = `<div id="callreport-root">` + card + `</div>`
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<link rel="stylesheet" href="highlight.css">
<style>
%s</style>
</head>
<body>
%s
</body>
</html>`, baseCSS(sch), body)
}

// ShowLive replaces the hosting page's content with the live document and
// then runs the activation pass. Strictly sequenced: activation depends on
// the replaced DOM being present.
func ShowLive(ctx context.Context, p Page, card string, sch *scheme.Scheme) error {
	if err := p.SetContent(ctx, LiveDocument(card, sch)); err != nil {
		return fmt.Errorf("replace page content: %w", err)
	}
	if err := p.Evaluate(ctx, ActivationScript); err != nil {
		return fmt.Errorf("activate rendered tabs: %w", err)
	}
	return nil
}

// ShowLiveIfEnabled honors the live-view switch: when disabled, the hosting
// page is left untouched and the card markup remains the only artifact.
func ShowLiveIfEnabled(ctx context.Context, cfg config.Config, p Page, card string, sch *scheme.Scheme) error {
	if !cfg.LiveView {
		return nil
	}
	return ShowLive(ctx, p, card, sch)
}

// ActivationScript activates every pending sandboxed embed on the page:
// each container still lacking an activated iframe gets its payload decoded
// and its frame navigated. Failures are contained per container so one bad
// embed cannot block its siblings.
const ActivationScript = `(function(){` +
	`var holders=document.querySelectorAll('[data-rendered-html]');` +
	`for(var i=0;i<holders.length;i++){` +
	`var holder=holders[i];` +
	`var frame=document.getElementById(holder.id.replace(/-data$/,'-frame'));` +
	`if(!frame||frame.src){continue;}` +
	`try{` + activateBody + `}catch(e){` +
	`if(window.console&&console.warn){console.warn('rendered tab activation failed',holder.id,e);}` +
	`}}})();`
