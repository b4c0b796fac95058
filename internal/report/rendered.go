package report

import (
	"encoding/base64"
	"fmt"
)

// BuildRenderedTab emits a tab that renders raw, possibly hostile, HTML
// inside an isolated iframe instead of inlining it into the host document.
// The HTML travels as a base64 payload on a hidden container; activation
// decodes it into a blob-backed document and points the sibling iframe at
// it. An inline script performs the same activation as a fallback for
// documents (like report attachments) that are opened without the external
// activation pass of the live view.
func BuildRenderedTab(rawHTML, label, scopeID string, checked bool) string {
	if rawHTML == "" {
		return ""
	}
	payload := base64.StdEncoding.EncodeToString([]byte(rawHTML))
	id := tabID(scopeID, label)

	content := fmt.Sprintf(
		`<div class="rendered-embed" id="%[1]s-data" data-rendered-html="%[2]s" hidden></div>`+
			`<iframe class="rendered-frame" id="%[1]s-frame" title="Rendered response" sandbox></iframe>`+
			`<script>(function(){`+
			`var holder=document.getElementById('%[1]s-data');`+
			`var frame=document.getElementById('%[1]s-frame');`+
			`if(!holder||!frame||frame.src){return;}`+
			`try{%[3]s}catch(e){}`+
			`})();</script>`,
		id, payload, activateBody)

	return BuildTab(content, label, scopeID, checked)
}

// activateBody decodes a holder's base64 payload byte-for-byte and navigates
// the frame to a UTF-8 HTML blob document built from it. Shared between the
// inline fallback above and the external activation pass in ActivationScript;
// expects `holder` and `frame` in scope.
const activateBody = `var raw=atob(holder.getAttribute('data-rendered-html'));` +
	`var bytes=new Uint8Array(raw.length);` +
	`for(var i=0;i<raw.length;i++){bytes[i]=raw.charCodeAt(i);}` +
	`var blob=new Blob([bytes],{type:'text/html;charset=utf-8'});` +
	`frame.src=URL.createObjectURL(blob);`
