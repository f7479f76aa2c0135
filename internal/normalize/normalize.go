// Package normalize converts canonical visualization parameters between
// the conventions of different rendering libraries: bounding regions as
// domain/range pairs or 4-tuples, flat or tagged point lists, two-point
// or point-slope lines, 2D to 3D lifts and symbolic to sampled data. All
// conversions are pure data reshuffles driven by the profile table; none
// of them can fail, because conversion is advisory rather than
// load-bearing for the canonical model.
package normalize

import (
	"github.com/henryhcooperr/Math-LLM-sub001/internal/expr"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/viz"
)

// Converter reshapes specs and expressions between library conventions.
// It owns the expression cache used for notation rewrites and sampling.
type Converter struct {
	eval *expr.Evaluator
}

// NewConverter returns a Converter backed by ev, or by a fresh evaluator
// when ev is nil.
func NewConverter(ev *expr.Evaluator) *Converter {
	if ev == nil {
		ev = expr.New(0)
	}
	return &Converter{eval: ev}
}

// Convert reshapes spec from one library's conventions to another's. The
// input is never mutated; identical or unknown tags return it unchanged.
func (c *Converter) Convert(spec viz.Spec, from, to LibraryTag) viz.Spec {
	if from == to {
		return spec
	}
	src, ok := profiles[from]
	if !ok {
		return spec
	}
	dst, ok := profiles[to]
	if !ok {
		return spec
	}
	canon := c.toCanonical(cloneSpec(spec), src)
	return c.fromCanonical(canon, dst)
}

// ConvertExpression rewrites only the notation of function and constant
// names, never the arithmetic structure. The source notation does not
// matter for parsing, since the grammar accepts both; it gates the
// supported-pair check. Anything unparseable or an unsupported pair
// returns the input unchanged.
func (c *Converter) ConvertExpression(s string, from, to expr.Notation) string {
	if from == to || !validNotation(from) || !validNotation(to) {
		return s
	}
	n, err := c.eval.ParseCached(s)
	if err != nil {
		return s
	}
	return expr.Unparse(n, to)
}

// DefaultsFor returns the default parameter set for a visualization
// type. The table itself lives with the canonical schema so the
// extractor's merge stage and this package share one source of truth.
func DefaultsFor(vizType string) viz.Spec {
	return viz.DefaultsFor(vizType)
}

func validNotation(n expr.Notation) bool {
	return n == expr.NotationBare || n == expr.NotationQualified
}

// rewrite re-emits an expression in the target notation, keeping the
// original text when it does not parse.
func (c *Converter) rewrite(s string, to expr.Notation) string {
	if s == "" {
		return s
	}
	n, err := c.eval.ParseCached(s)
	if err != nil {
		return s
	}
	return expr.Unparse(n, to)
}

func (c *Converter) rewriteAll(list []string, to expr.Notation) []string {
	for i, s := range list {
		list[i] = c.rewrite(s, to)
	}
	return list
}
