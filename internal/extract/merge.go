package extract

import (
	"fmt"
	"strings"

	"github.com/henryhcooperr/Math-LLM-sub001/internal/viz"
)

// applyDefaults completes a partially built response in place. It always
// runs, whichever stage produced the partial object: the type tag is
// resolved, intervals are validated against the defaults table, and every
// required field receives a value so renderers never null-check.
func applyDefaults(r *viz.Response) {
	p := &r.Params
	p.Expression = strings.TrimSpace(p.Expression)
	if p.Type == "" {
		switch {
		case len(p.Functions) > 0:
			p.Type = "functions2D"
		case len(p.VectorExpressions) > 0:
			p.Type = "vectorField"
		case p.Expression != "":
			p.Type = "function2D"
		default:
			p.Type = "geometry"
		}
	}

	d := viz.DefaultsFor(p.Type)
	p.Domain = viz.FixInterval(p.Domain, d.Domain)
	p.Range = viz.FixInterval(p.Range, d.Range)
	p.ZRange = mergeInterval(p.ZRange, d.ZRange)
	p.ParameterRange = mergeInterval(p.ParameterRange, d.ParameterRange)
	p.URange = mergeInterval(p.URange, d.URange)
	p.VRange = mergeInterval(p.VRange, d.VRange)
	if p.Resolution <= 0 {
		p.Resolution = d.Resolution
	}
	if p.Density <= 0 {
		p.Density = d.Density
	}
	if p.Colormap == "" {
		p.Colormap = d.Colormap
	}
	if p.Distribution == "" {
		p.Distribution = d.Distribution
	}
	if p.Mean == nil {
		p.Mean = d.Mean
	}
	if p.StdDev == nil || *p.StdDev <= 0 {
		p.StdDev = d.StdDev
	}
	if p.Normalize == nil {
		p.Normalize = d.Normalize
	}
	if p.GridLines == nil {
		p.GridLines = d.GridLines
	}
	if p.AxisLabels == nil {
		p.AxisLabels = d.AxisLabels
	}

	if p.Title == "" {
		if p.Expression != "" {
			p.Title = "Plot of " + p.Expression
		} else {
			p.Title = "Mathematical visualization"
		}
	}
	if r.Explanation == "" {
		r.Explanation = fmt.Sprintf("Generated %s visualization.", p.Type)
	}

	ed := &r.Educational
	if ed.Title == "" && ed.Summary == "" && len(ed.Steps) == 0 && len(ed.KeyInsights) == 0 && len(ed.Exercises) == 0 {
		ed.Title = p.Title
		ed.Summary = firstSentence(r.Explanation)
	}
	if ed.Steps == nil {
		ed.Steps = []viz.Step{}
	}
	if ed.KeyInsights == nil {
		ed.KeyInsights = []string{}
	}
	if ed.Exercises == nil {
		ed.Exercises = []viz.Exercise{}
	}
	if r.FollowUpQuestions == nil {
		r.FollowUpQuestions = []string{}
	}
}

func mergeInterval(v, def []float64) []float64 {
	out := viz.FixInterval(v, def)
	if len(out) != 2 {
		return nil
	}
	return out
}

func firstSentence(s string) string {
	for _, sep := range []string{". ", "! ", "? "} {
		if i := strings.Index(s, sep); i >= 0 {
			return s[:i+1]
		}
	}
	if len(s) > 200 {
		return s[:200]
	}
	return s
}
