package report

import (
	"html/template"
	"strings"
)

// tabTmpl is one radio-style tab: a hidden selector, its clickable label,
// and the content pane shown while the selector is checked.
var tabTmpl = template.Must(template.New("tab").Parse(
	`<input type="radio" class="tab-selector" name="{{.Scope}}" id="{{.ID}}"{{if .Checked}} checked{{end}}>` +
		`<label class="tab-label" for="{{.ID}}">{{.Label}}</label>` +
		`<div class="tab-pane">{{.Content}}</div>`))

type tabData struct {
	Scope   string
	ID      string
	Label   string
	Checked bool
	Content template.HTML
}

// BuildTab emits one tab holding already-formatted markup. Empty data means
// the section is absent and no tab is rendered. Only the caller knows which
// tab of a group should be checked; exclusivity is not enforced here.
func BuildTab(data, label, scopeID string, checked bool) string {
	if data == "" {
		return ""
	}
	var sb strings.Builder
	err := tabTmpl.Execute(&sb, tabData{
		Scope:   scopeID,
		ID:      tabID(scopeID, label),
		Label:   strings.ToUpper(label),
		Checked: checked,
		Content: template.HTML(data),
	})
	if err != nil {
		// The template only fails on a broken writer; a Builder never is.
		return ""
	}
	return sb.String()
}

// tabID derives a DOM id for a tab from its group scope and label.
func tabID(scopeID, label string) string {
	return scopeID + "-" + slug(label)
}

// slug lowers a label and replaces spaces and the first slash so the result
// is usable inside a DOM id.
func slug(label string) string {
	s := strings.ToLower(label)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.Replace(s, "/", "-", 1)
	return s
}
