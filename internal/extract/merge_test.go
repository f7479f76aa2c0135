package extract

import (
	"testing"

	"github.com/henryhcooperr/Math-LLM-sub001/internal/viz"
)

func TestApplyDefaults_InfersType(t *testing.T) {
	cases := []struct {
		spec viz.Spec
		want string
	}{
		{viz.Spec{Functions: []string{"x", "x*x"}}, "functions2D"},
		{viz.Spec{VectorExpressions: []string{"y", "-x"}}, "vectorField"},
		{viz.Spec{Expression: "x + 1"}, "function2D"},
		{viz.Spec{}, "geometry"},
	}
	for _, c := range cases {
		r := viz.Response{Params: c.spec}
		applyDefaults(&r)
		if r.Params.Type != c.want {
			t.Fatalf("expected %q, got %q", c.want, r.Params.Type)
		}
	}
}

func TestApplyDefaults_KeepsProvidedValues(t *testing.T) {
	r := viz.Response{
		Explanation: "given",
		Params: viz.Spec{
			Type:       "function2D",
			Title:      "My plot",
			Domain:     []float64{-2, 2},
			Resolution: 512,
		},
	}
	applyDefaults(&r)
	if r.Params.Domain[0] != -2 || r.Params.Domain[1] != 2 {
		t.Fatalf("provided domain was replaced: %v", r.Params.Domain)
	}
	if r.Params.Resolution != 512 {
		t.Fatalf("provided resolution was replaced: %d", r.Params.Resolution)
	}
	if r.Params.Title != "My plot" {
		t.Fatalf("provided title was replaced: %q", r.Params.Title)
	}
	if r.Explanation != "given" {
		t.Fatalf("provided explanation was replaced: %q", r.Explanation)
	}
}

func TestApplyDefaults_FillsProbabilityFields(t *testing.T) {
	bad := -2.0
	r := viz.Response{Params: viz.Spec{Type: "probabilityDistribution", StdDev: &bad}}
	applyDefaults(&r)
	if r.Params.Distribution != "normal" {
		t.Fatalf("expected normal distribution, got %q", r.Params.Distribution)
	}
	if r.Params.Mean == nil || *r.Params.Mean != 0 {
		t.Fatalf("expected mean 0, got %v", r.Params.Mean)
	}
	if r.Params.StdDev == nil || *r.Params.StdDev != 1 {
		t.Fatalf("expected non-positive stdDev to reset, got %v", r.Params.StdDev)
	}
}

func TestApplyDefaults_ZRangeOnlyWhereDefaulted(t *testing.T) {
	r := viz.Response{Params: viz.Spec{Type: "function2D"}}
	applyDefaults(&r)
	if r.Params.ZRange != nil {
		t.Fatalf("2D type must not grow a zRange, got %v", r.Params.ZRange)
	}

	r = viz.Response{Params: viz.Spec{Type: "function3D"}}
	applyDefaults(&r)
	if len(r.Params.ZRange) != 2 || r.Params.ZRange[0] != -5 || r.Params.ZRange[1] != 5 {
		t.Fatalf("expected default zRange, got %v", r.Params.ZRange)
	}
	if r.Params.Resolution != 64 || r.Params.Colormap != "viridis" {
		t.Fatalf("expected 3D defaults, got %d %q", r.Params.Resolution, r.Params.Colormap)
	}
}

func TestApplyDefaults_SynthesizesEducationalContent(t *testing.T) {
	r := viz.Response{Explanation: "First sentence. Second one."}
	applyDefaults(&r)
	if r.Educational.Summary != "First sentence." {
		t.Fatalf("expected first sentence summary, got %q", r.Educational.Summary)
	}
	if r.Educational.Title == "" {
		t.Fatalf("expected synthesized title")
	}
}

func TestApplyDefaults_DoesNotOverwriteEducationalContent(t *testing.T) {
	r := viz.Response{
		Explanation: "x",
		Educational: viz.EducationalContent{Title: "Given title"},
	}
	applyDefaults(&r)
	if r.Educational.Title != "Given title" {
		t.Fatalf("expected given title to survive, got %q", r.Educational.Title)
	}
	if r.Educational.Summary != "" {
		t.Fatalf("partial content must not be overwritten, got %q", r.Educational.Summary)
	}
}
