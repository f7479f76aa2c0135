package normalize

import (
	"math"

	"github.com/henryhcooperr/Math-LLM-sub001/internal/expr"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/viz"
)

// tabularSteps is the sampling resolution for symbolic-to-data lifts.
const tabularSteps = 100

// liftTo3D readies a flat spec for a z-aware renderer. A missing zRange
// defaults to [-1, 1]. Points without a z coordinate get one from the
// surface expression when it evaluates to a finite value, otherwise 0.
func (c *Converter) liftTo3D(s viz.Spec) viz.Spec {
	if len(s.ZRange) != 2 {
		s.ZRange = []float64{-1, 1}
	}
	for i, p := range s.Points {
		if p.Z != nil {
			continue
		}
		z := 0.0
		if s.Expression != "" {
			v, err := c.eval.Eval(s.Expression, map[string]float64{"x": p.X, "y": p.Y})
			if err == nil && isFinite(v) {
				z = v
			}
		}
		s.Points[i].Z = &z
	}
	return s
}

// liftToData tabulates the expression over its domain for renderers
// that plot arrays rather than formulas, and fills in the layout
// fields those renderers expect.
func (c *Converter) liftToData(s viz.Spec, dst profile) viz.Spec {
	if len(s.Data) == 0 && s.Expression != "" && len(s.Domain) == 2 {
		s.Data = c.sample(s.Expression, s.Domain[0], s.Domain[1], tabularSteps)
	}
	if dst.marginLegend {
		if s.Margin == nil {
			s.Margin = &viz.Margin{Top: 20, Right: 20, Bottom: 30, Left: 40}
		}
		if s.Legend == nil {
			s.Legend = &viz.Legend{Show: true, Position: "top"}
		}
	}
	return s
}

// sample evaluates src at steps+1 evenly spaced x values across
// [lo, hi]. Non-finite values (poles, out-of-domain points) are
// skipped, so the result may be shorter than steps+1.
func (c *Converter) sample(src string, lo, hi float64, steps int) []viz.SamplePoint {
	n, err := c.eval.ParseCached(src)
	if err != nil || steps < 1 || hi <= lo {
		return nil
	}
	width := hi - lo
	out := make([]viz.SamplePoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		x := lo + width*float64(i)/float64(steps)
		y := expr.Evaluate(n, map[string]float64{"x": x})
		if !isFinite(y) {
			continue
		}
		out = append(out, viz.SamplePoint{X: x, Y: y})
	}
	return out
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
