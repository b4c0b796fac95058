// Package filter selects which captured calls get rendered.
package filter

import (
	"sort"
	"strings"

	"github.com/qadeck/callreport/internal/record"
	"github.com/qadeck/callreport/internal/util"
)

// State holds the active selection criteria. The zero value selects
// everything.
type State struct {
	// Text keeps calls whose URL, method, status text or origin call
	// contains the substring, case-insensitively.
	Text string
	// Method keeps calls with this HTTP method.
	Method string
	// ErrorsOnly keeps calls with a 4xx/5xx status.
	ErrorsOnly bool
	// SortBySlowest orders the selection by descending duration.
	SortBySlowest bool
}

// Apply returns the indices of the calls matching every active criterion.
// Each criterion produces its own index set; the sets are intersected.
func (s *State) Apply(calls []record.Call) []int {
	result := make([]int, 0, len(calls))
	for i := range calls {
		result = append(result, i)
	}

	if s.Method != "" {
		result = util.Intersect(s.methodIndices(calls), result)
	}
	if s.ErrorsOnly {
		result = util.Intersect(s.errorIndices(calls), result)
	}
	if s.Text != "" {
		result = util.Intersect(s.textIndices(calls), result)
	}

	if s.SortBySlowest {
		sort.SliceStable(result, func(i, j int) bool {
			return calls[result[i]].Response.Duration > calls[result[j]].Response.Duration
		})
	}
	return result
}

func (s *State) methodIndices(calls []record.Call) []int {
	want := strings.ToUpper(s.Method)
	var out []int
	for i, c := range calls {
		if c.Request.CanonicalMethod() == want {
			out = append(out, i)
		}
	}
	return out
}

func (s *State) errorIndices(calls []record.Call) []int {
	var out []int
	for i, c := range calls {
		if c.Response.Status >= 400 {
			out = append(out, i)
		}
	}
	return out
}

func (s *State) textIndices(calls []record.Call) []int {
	needle := strings.ToLower(s.Text)
	var out []int
	for i, c := range calls {
		haystack := strings.ToLower(strings.Join([]string{
			c.Request.URL,
			c.Request.Method,
			c.Request.OriginCall,
			c.Response.StatusText,
		}, "\n"))
		if strings.Contains(haystack, needle) {
			out = append(out, i)
		}
	}
	return out
}
