package normalize

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/henryhcooperr/Math-LLM-sub001/internal/expr"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/viz"
)

// testSpecFor builds a minimal spec shaped the way the given library
// expects its bounds and notation.
func testSpecFor(tag LibraryTag) viz.Spec {
	s := viz.Spec{
		Type:       "function2D",
		Title:      "Test plot",
		Expression: "sin(x)",
	}
	if profiles[tag].boundsAsBox {
		s.BoundingBox = []float64{-10, 2, 10, -2}
	} else {
		s.Domain = []float64{-10, 10}
		s.Range = []float64{-2, 2}
	}
	if profiles[tag].notation == expr.NotationQualified {
		s.Expression = "Math.sin(x)"
	}
	return s
}

func boundsOf(t *testing.T, s viz.Spec) (xmin, xmax, ymin, ymax float64) {
	t.Helper()
	if len(s.BoundingBox) == 4 {
		b := s.BoundingBox
		return b[0], b[2], b[3], b[1]
	}
	if len(s.Domain) != 2 || len(s.Range) != 2 {
		t.Fatalf("spec has neither boundingBox nor domain/range: %+v", s)
	}
	return s.Domain[0], s.Domain[1], s.Range[0], s.Range[1]
}

func TestConvert_SameLibraryReturnsInputUnchanged(t *testing.T) {
	c := NewConverter(nil)
	in := testSpecFor(LibMafs)
	got := c.Convert(in, LibMafs, LibMafs)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("expected input back, got %+v", got)
	}
	if &got.Domain[0] != &in.Domain[0] {
		t.Fatalf("expected identity conversion to return the input without copying")
	}
}

func TestConvert_UnknownTagsReturnInputUnchanged(t *testing.T) {
	c := NewConverter(nil)
	in := testSpecFor(LibCanonical)
	pairs := [][2]LibraryTag{
		{"chartjs", LibMafs},
		{LibMafs, "chartjs"},
		{"", LibPlotly},
	}
	for _, pair := range pairs {
		got := c.Convert(in, pair[0], pair[1])
		if !reflect.DeepEqual(got, in) {
			t.Fatalf("convert %q -> %q: expected input back, got %+v", pair[0], pair[1], got)
		}
	}
}

func TestConvert_RoundTripPreservesBounds(t *testing.T) {
	c := NewConverter(nil)
	for _, from := range Libraries() {
		for _, to := range Libraries() {
			if from == to {
				continue
			}
			in := testSpecFor(from)
			back := c.Convert(c.Convert(in, from, to), to, from)
			wantXmin, wantXmax, wantYmin, wantYmax := boundsOf(t, in)
			xmin, xmax, ymin, ymax := boundsOf(t, back)
			if xmin != wantXmin || xmax != wantXmax || ymin != wantYmin || ymax != wantYmax {
				t.Fatalf("%s -> %s -> %s: bounds [%v %v %v %v], want [%v %v %v %v]",
					from, to, from, xmin, xmax, ymin, ymax, wantXmin, wantXmax, wantYmin, wantYmax)
			}
		}
	}
}

func TestConvert_BoundingBoxLayout(t *testing.T) {
	c := NewConverter(nil)
	in := viz.Spec{
		Type:       "function2D",
		Expression: "x",
		Domain:     []float64{-10, 10},
		Range:      []float64{-2, 2},
	}
	got := c.Convert(in, LibCanonical, LibJSXGraph)
	want := []float64{-10, 2, 10, -2}
	if !reflect.DeepEqual(got.BoundingBox, want) {
		t.Fatalf("expected boundingBox %v, got %v", want, got.BoundingBox)
	}
	if got.Domain != nil || got.Range != nil {
		t.Fatalf("expected domain/range cleared, got %v / %v", got.Domain, got.Range)
	}
	back := c.Convert(got, LibJSXGraph, LibCanonical)
	if !reflect.DeepEqual(back.Domain, in.Domain) || !reflect.DeepEqual(back.Range, in.Range) {
		t.Fatalf("expected domain %v range %v back, got %v / %v", in.Domain, in.Range, back.Domain, back.Range)
	}
	if back.BoundingBox != nil {
		t.Fatalf("expected boundingBox cleared, got %v", back.BoundingBox)
	}
}

func TestConvert_PointsTaggedForJSXGraph(t *testing.T) {
	c := NewConverter(nil)
	in := viz.Spec{
		Type:   "geometry",
		Domain: []float64{-5, 5},
		Range:  []float64{-5, 5},
		Points: []viz.Point{{X: 1, Y: 2, Label: "A", Color: "#ff0000"}},
	}
	got := c.Convert(in, LibCanonical, LibJSXGraph)
	if got.Points != nil {
		t.Fatalf("expected flat points folded into elements, got %+v", got.Points)
	}
	if len(got.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(got.Elements))
	}
	el := got.Elements[0]
	if el.Type != "point" || !reflect.DeepEqual(el.Coords, []float64{1, 2}) {
		t.Fatalf("unexpected tagged point: %+v", el)
	}
	if el.Name != "A" || el.Color != "#ff0000" || el.Label != "" {
		t.Fatalf("expected label carried as name, got %+v", el)
	}
	back := c.Convert(got, LibJSXGraph, LibCanonical)
	if len(back.Points) != 1 {
		t.Fatalf("expected flat point restored, got %+v", back.Points)
	}
	p := back.Points[0]
	if p.X != 1 || p.Y != 2 || p.Label != "A" || p.Color != "#ff0000" {
		t.Fatalf("unexpected restored point: %+v", p)
	}
	if len(back.Elements) != 0 {
		t.Fatalf("expected no elements left, got %+v", back.Elements)
	}
}

func TestConvert_LinesToPointSlopeForMafs(t *testing.T) {
	c := NewConverter(nil)
	in := viz.Spec{
		Type:   "geometry",
		Domain: []float64{-5, 5},
		Range:  []float64{-5, 5},
		Elements: []viz.Element{
			{Type: "line", Point1: []float64{0, 1}, Point2: []float64{2, 5}},
			{Type: "line", Point1: []float64{3, 0}, Point2: []float64{3, 4}},
		},
	}
	got := c.Convert(in, LibCanonical, LibMafs)
	sloped := got.Elements[0]
	if !reflect.DeepEqual(sloped.Point, []float64{0, 1}) || sloped.Slope == nil || *sloped.Slope != 2 || sloped.Vertical {
		t.Fatalf("unexpected sloped line: %+v", sloped)
	}
	if sloped.Point1 != nil || sloped.Point2 != nil {
		t.Fatalf("expected two-point form cleared, got %+v", sloped)
	}
	vertical := got.Elements[1]
	if !vertical.Vertical || vertical.Slope != nil || !reflect.DeepEqual(vertical.Point, []float64{3, 0}) {
		t.Fatalf("expected vertical line flagged without a slope, got %+v", vertical)
	}

	back := c.Convert(got, LibMafs, LibCanonical)
	if !reflect.DeepEqual(back.Elements[0].Point1, []float64{0, 1}) || !reflect.DeepEqual(back.Elements[0].Point2, []float64{1, 3}) {
		t.Fatalf("expected two-point line reconstructed, got %+v", back.Elements[0])
	}
	vb := back.Elements[1]
	if !reflect.DeepEqual(vb.Point1, []float64{3, 0}) || !reflect.DeepEqual(vb.Point2, []float64{3, 1}) {
		t.Fatalf("expected vertical line reconstructed, got %+v", vb)
	}
	if vb.Vertical || vb.Slope != nil {
		t.Fatalf("expected point-slope form cleared, got %+v", vb)
	}
}

func TestConvert_NotationFollowsTarget(t *testing.T) {
	c := NewConverter(nil)
	in := viz.Spec{
		Type:       "function2D",
		Expression: "sin(x) + cos(x) * 2",
		Functions:  []string{"sin(x)", "cos(x)"},
		Domain:     []float64{-5, 5},
		Range:      []float64{-2, 2},
	}
	got := c.Convert(in, LibCanonical, LibMathBox)
	if got.Expression != "Math.sin(x) + Math.cos(x) * 2" {
		t.Fatalf("expected qualified expression, got %q", got.Expression)
	}
	if got.Functions[0] != "Math.sin(x)" || got.Functions[1] != "Math.cos(x)" {
		t.Fatalf("expected qualified functions, got %v", got.Functions)
	}
	back := c.Convert(got, LibMathBox, LibCanonical)
	if back.Expression != "sin(x) + cos(x) * 2" {
		t.Fatalf("expected bare expression back, got %q", back.Expression)
	}
}

func TestConvert_LiftTo3D(t *testing.T) {
	c := NewConverter(nil)
	kept := 7.0
	in := viz.Spec{
		Type:       "function2D",
		Expression: "x * y",
		Domain:     []float64{-5, 5},
		Range:      []float64{-5, 5},
		Points:     []viz.Point{{X: 2, Y: 3}, {X: 1, Y: 1, Z: &kept}},
	}
	got := c.Convert(in, LibCanonical, LibMathBox)
	if !reflect.DeepEqual(got.ZRange, []float64{-1, 1}) {
		t.Fatalf("expected default zRange [-1 1], got %v", got.ZRange)
	}
	if got.Points[0].Z == nil || *got.Points[0].Z != 6 {
		t.Fatalf("expected z from surface evaluation, got %+v", got.Points[0])
	}
	if got.Points[1].Z == nil || *got.Points[1].Z != 7 {
		t.Fatalf("expected existing z kept, got %+v", got.Points[1])
	}
}

func TestConvert_LiftTo3DNonFiniteSurfaceValue(t *testing.T) {
	c := NewConverter(nil)
	in := viz.Spec{
		Type:       "function2D",
		Expression: "1 / x",
		Domain:     []float64{-5, 5},
		Range:      []float64{-5, 5},
		Points:     []viz.Point{{X: 0, Y: 0}},
	}
	got := c.Convert(in, LibCanonical, LibThree)
	if got.Points[0].Z == nil || *got.Points[0].Z != 0 {
		t.Fatalf("expected z 0 when the surface value is not finite, got %+v", got.Points[0])
	}
}

func TestConvert_TabularLiftForPlotly(t *testing.T) {
	c := NewConverter(nil)
	in := viz.Spec{
		Type:       "function2D",
		Expression: "x * x",
		Domain:     []float64{0, 10},
		Range:      []float64{0, 100},
	}
	got := c.Convert(in, LibCanonical, LibPlotly)
	if len(got.Data) != tabularSteps+1 {
		t.Fatalf("expected %d samples, got %d", tabularSteps+1, len(got.Data))
	}
	first, last := got.Data[0], got.Data[len(got.Data)-1]
	if first.X != 0 || first.Y != 0 {
		t.Fatalf("unexpected first sample %+v", first)
	}
	if last.X != 10 || last.Y != 100 {
		t.Fatalf("unexpected last sample %+v", last)
	}
	if got.Margin == nil || *got.Margin != (viz.Margin{Top: 20, Right: 20, Bottom: 30, Left: 40}) {
		t.Fatalf("unexpected margin %+v", got.Margin)
	}
	if got.Legend == nil || !got.Legend.Show || got.Legend.Position != "top" {
		t.Fatalf("unexpected legend %+v", got.Legend)
	}
	if got.Expression != "x * x" {
		t.Fatalf("expected expression kept alongside data, got %q", got.Expression)
	}
}

func TestConvert_TabularLiftSkipsNonFiniteSamples(t *testing.T) {
	c := NewConverter(nil)
	in := viz.Spec{
		Type:       "function2D",
		Expression: "sqrt(x)",
		Domain:     []float64{-1, 1},
		Range:      []float64{0, 1},
	}
	got := c.Convert(in, LibCanonical, LibD3)
	if len(got.Data) != 51 {
		t.Fatalf("expected 51 finite samples, got %d", len(got.Data))
	}
	for _, p := range got.Data {
		if p.X < 0 || math.IsNaN(p.Y) {
			t.Fatalf("non-finite sample leaked through: %+v", p)
		}
	}
}

func TestConvert_DataDrivenLayoutStrippedOnExit(t *testing.T) {
	c := NewConverter(nil)
	in := viz.Spec{
		Type:       "function2D",
		Expression: "x",
		Domain:     []float64{-5, 5},
		Range:      []float64{-5, 5},
		Margin:     &viz.Margin{Top: 1, Right: 2, Bottom: 3, Left: 4},
		Legend:     &viz.Legend{Show: true, Position: "right"},
	}
	got := c.Convert(in, LibPlotly, LibMafs)
	if got.Margin != nil || got.Legend != nil {
		t.Fatalf("expected margin/legend stripped, got %+v / %+v", got.Margin, got.Legend)
	}
}

func TestConvert_DoesNotMutateInput(t *testing.T) {
	c := NewConverter(nil)
	slope := 2.0
	in := viz.Spec{
		Type:       "geometry",
		Expression: "sin(x)",
		Domain:     []float64{-10, 10},
		Range:      []float64{-2, 2},
		Points:     []viz.Point{{X: 1, Y: 2, Label: "A"}},
		Elements: []viz.Element{
			{Type: "line", Point: []float64{0, 0}, Slope: &slope},
		},
		Extra: map[string]json.RawMessage{"glow": json.RawMessage(`true`)},
	}
	before, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal input: %v", err)
	}
	for _, to := range Libraries() {
		c.Convert(in, LibMafs, to)
	}
	after, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal input: %v", err)
	}
	if string(before) != string(after) {
		t.Fatalf("input mutated by conversion:\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestConvertExpression(t *testing.T) {
	c := NewConverter(nil)
	cases := []struct {
		in       string
		from, to expr.Notation
		want     string
	}{
		{"sin(x) + cos(x)", expr.NotationBare, expr.NotationQualified, "Math.sin(x) + Math.cos(x)"},
		{"Math.pow(x, 2) * Math.PI", expr.NotationQualified, expr.NotationBare, "pow(x, 2) * PI"},
		{"sin(x)", expr.NotationBare, expr.NotationBare, "sin(x)"},
		{"2 + * 3", expr.NotationBare, expr.NotationQualified, "2 + * 3"},
		{"sin(x)", expr.Notation("latex"), expr.NotationQualified, "sin(x)"},
		{"sin(x)", expr.NotationBare, expr.Notation("latex"), "sin(x)"},
	}
	for _, tc := range cases {
		if got := c.ConvertExpression(tc.in, tc.from, tc.to); got != tc.want {
			t.Fatalf("convert %q %s -> %s: got %q, want %q", tc.in, tc.from, tc.to, got, tc.want)
		}
	}
}

func TestKnown(t *testing.T) {
	for _, tag := range Libraries() {
		if !Known(tag) {
			t.Fatalf("expected %q to be known", tag)
		}
	}
	for _, tag := range []LibraryTag{"", "chartjs", "Mafs", "JSXGRAPH"} {
		if Known(tag) {
			t.Fatalf("expected %q to be unknown", tag)
		}
	}
}
