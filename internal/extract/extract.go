// Package extract recovers the canonical visualization response from raw
// model output. Recovery is staged: a fenced JSON block, then the whole
// text, then a balanced object past any preamble, then free-text
// heuristics. The defaults merge always runs last, so Extract never
// fails; the worst input still yields a complete, drawable response.
package extract

import (
	"encoding/json"
	"log"

	"github.com/henryhcooperr/Math-LLM-sub001/internal/viz"
)

// Extract turns raw model output into a canonical response. Malformed
// input degrades through the stages instead of erroring: after Extract
// returns, every list field is non-nil, the explanation is non-empty and
// the intervals are valid.
func Extract(raw string) viz.Response {
	var r viz.Response
	structured := false
	if candidate, err := structuredCandidate(raw); err == nil {
		if derr := json.Unmarshal(candidate, &r); derr != nil {
			log.Printf("extract: structured candidate rejected: %v", derr)
			r = viz.Response{}
		} else if usable(&r) {
			structured = true
		} else {
			r = viz.Response{}
		}
	}
	if !structured {
		r = freeTextResponse(raw)
	}
	applyDefaults(&r)
	return r
}

// usable reports whether a decoded object carries anything worth keeping.
// An empty or unrelated JSON object falls through to the free-text rules.
func usable(r *viz.Response) bool {
	if r.Explanation != "" {
		return true
	}
	p := r.Params
	if p.Type != "" || p.Expression != "" || len(p.Functions) > 0 ||
		len(p.Elements) > 0 || len(p.Points) > 0 {
		return true
	}
	ed := r.Educational
	if ed.Title != "" || ed.Summary != "" || len(ed.Steps) > 0 ||
		len(ed.KeyInsights) > 0 || len(ed.Exercises) > 0 {
		return true
	}
	return len(r.FollowUpQuestions) > 0
}
