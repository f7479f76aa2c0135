package normalize

import (
	"encoding/json"

	"github.com/henryhcooperr/Math-LLM-sub001/internal/expr"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/viz"
)

// toCanonical undoes the source profile's conventions. The spec has
// already been cloned, so rewrites happen in place.
func (c *Converter) toCanonical(s viz.Spec, src profile) viz.Spec {
	if src.boundsAsBox && len(s.BoundingBox) == 4 {
		b := s.BoundingBox
		s.Domain = []float64{b[0], b[2]}
		s.Range = []float64{b[3], b[1]}
		s.BoundingBox = nil
	}
	if src.taggedPoints {
		s = untagPoints(s)
	}
	if src.pointSlope {
		for i, el := range s.Elements {
			s.Elements[i] = lineToTwoPoint(el)
		}
	}
	if src.dataDriven {
		s.Margin = nil
		s.Legend = nil
	}
	s.Expression = c.rewrite(s.Expression, expr.NotationBare)
	s.Functions = c.rewriteAll(s.Functions, expr.NotationBare)
	s.VectorExpressions = c.rewriteAll(s.VectorExpressions, expr.NotationBare)
	return s
}

// fromCanonical applies the target profile's conventions.
func (c *Converter) fromCanonical(s viz.Spec, dst profile) viz.Spec {
	if dst.boundsAsBox && len(s.Domain) == 2 && len(s.Range) == 2 {
		s.BoundingBox = []float64{s.Domain[0], s.Range[1], s.Domain[1], s.Range[0]}
		s.Domain = nil
		s.Range = nil
	}
	if dst.taggedPoints {
		s = tagPoints(s)
	}
	if dst.pointSlope {
		for i, el := range s.Elements {
			s.Elements[i] = lineToPointSlope(el)
		}
	}
	if dst.threeD {
		s = c.liftTo3D(s)
	}
	if dst.dataDriven {
		s = c.liftToData(s, dst)
	}
	s.Expression = c.rewrite(s.Expression, dst.notation)
	s.Functions = c.rewriteAll(s.Functions, dst.notation)
	s.VectorExpressions = c.rewriteAll(s.VectorExpressions, dst.notation)
	return s
}

// untagPoints moves point elements into the flat list and renames
// elements back from "name" to "label".
func untagPoints(s viz.Spec) viz.Spec {
	if len(s.Elements) == 0 {
		return s
	}
	var rest []viz.Element
	for _, el := range s.Elements {
		if el.Type == "point" {
			p := viz.Point{Color: el.Color, Label: el.Name}
			if p.Label == "" {
				p.Label = el.Label
			}
			switch {
			case len(el.Coords) >= 2:
				p.X, p.Y = el.Coords[0], el.Coords[1]
				if len(el.Coords) >= 3 {
					z := el.Coords[2]
					p.Z = &z
				}
			case el.X != nil && el.Y != nil:
				p.X, p.Y = *el.X, *el.Y
			default:
				rest = append(rest, el)
				continue
			}
			s.Points = append(s.Points, p)
			continue
		}
		if el.Name != "" && el.Label == "" {
			el.Label = el.Name
			el.Name = ""
		}
		rest = append(rest, el)
	}
	s.Elements = rest
	return s
}

// tagPoints folds the flat point list into tagged elements and renames
// labels to "name".
func tagPoints(s viz.Spec) viz.Spec {
	for _, p := range s.Points {
		el := viz.Element{Type: "point", Coords: []float64{p.X, p.Y}, Color: p.Color, Name: p.Label}
		if p.Z != nil {
			el.Coords = append(el.Coords, *p.Z)
		}
		s.Elements = append(s.Elements, el)
	}
	s.Points = nil
	for i, el := range s.Elements {
		if el.Label != "" && el.Name == "" {
			s.Elements[i].Name = el.Label
			s.Elements[i].Label = ""
		}
	}
	return s
}

// lineToTwoPoint reconstructs a second point from point+slope form. The
// synthetic point sits one x unit away, or one y unit up for vertical
// lines, which inverts exactly back to the same slope.
func lineToTwoPoint(el viz.Element) viz.Element {
	if el.Type != "line" || len(el.Point) < 2 {
		return el
	}
	x, y := el.Point[0], el.Point[1]
	el.Point1 = []float64{x, y}
	switch {
	case el.Vertical:
		el.Point2 = []float64{x, y + 1}
	case el.Slope != nil:
		el.Point2 = []float64{x + 1, y + *el.Slope}
	default:
		el.Point2 = []float64{x + 1, y}
	}
	el.Point = nil
	el.Slope = nil
	el.Vertical = false
	return el
}

// lineToPointSlope computes slope from two points. A vertical line has
// no finite slope, so it is flagged instead of dividing by zero.
func lineToPointSlope(el viz.Element) viz.Element {
	if el.Type != "line" || len(el.Point1) < 2 || len(el.Point2) < 2 {
		return el
	}
	x1, y1 := el.Point1[0], el.Point1[1]
	x2, y2 := el.Point2[0], el.Point2[1]
	el.Point = []float64{x1, y1}
	if x2 == x1 {
		el.Vertical = true
		el.Slope = nil
	} else {
		slope := (y2 - y1) / (x2 - x1)
		el.Slope = &slope
		el.Vertical = false
	}
	el.Point1 = nil
	el.Point2 = nil
	return el
}

func cloneSpec(s viz.Spec) viz.Spec {
	out := s
	out.Functions = cloneStrings(s.Functions)
	out.Domain = cloneFloats(s.Domain)
	out.Range = cloneFloats(s.Range)
	out.ZRange = cloneFloats(s.ZRange)
	out.BoundingBox = cloneFloats(s.BoundingBox)
	out.ParameterRange = cloneFloats(s.ParameterRange)
	out.URange = cloneFloats(s.URange)
	out.VRange = cloneFloats(s.VRange)
	out.Normalize = cloneBoolPtr(s.Normalize)
	out.VectorExpressions = cloneStrings(s.VectorExpressions)
	out.Mean = cloneFloatPtr(s.Mean)
	out.StdDev = cloneFloatPtr(s.StdDev)
	out.Matrix = cloneMatrix(s.Matrix)
	out.Vectors = cloneMatrix(s.Vectors)
	out.Points = clonePoints(s.Points)
	out.Elements = cloneElements(s.Elements)
	out.Data = cloneData(s.Data)
	out.GridLines = cloneBoolPtr(s.GridLines)
	out.AxisLabels = cloneBoolPtr(s.AxisLabels)
	out.Margin = cloneMarginPtr(s.Margin)
	out.Legend = cloneLegendPtr(s.Legend)
	out.Extra = cloneExtra(s.Extra)
	return out
}

func cloneFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

func cloneStrings(v []string) []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}

func cloneMatrix(v [][]float64) [][]float64 {
	if v == nil {
		return nil
	}
	out := make([][]float64, len(v))
	for i, row := range v {
		out[i] = cloneFloats(row)
	}
	return out
}

func clonePoints(v []viz.Point) []viz.Point {
	if v == nil {
		return nil
	}
	out := make([]viz.Point, len(v))
	copy(out, v)
	for i := range out {
		out[i].Z = cloneFloatPtr(out[i].Z)
	}
	return out
}

func cloneElements(v []viz.Element) []viz.Element {
	if v == nil {
		return nil
	}
	out := make([]viz.Element, len(v))
	copy(out, v)
	for i := range out {
		out[i].Coords = cloneFloats(out[i].Coords)
		out[i].X = cloneFloatPtr(out[i].X)
		out[i].Y = cloneFloatPtr(out[i].Y)
		out[i].Point1 = cloneFloats(out[i].Point1)
		out[i].Point2 = cloneFloats(out[i].Point2)
		out[i].Point = cloneFloats(out[i].Point)
		out[i].Slope = cloneFloatPtr(out[i].Slope)
	}
	return out
}

func cloneData(v []viz.SamplePoint) []viz.SamplePoint {
	if v == nil {
		return nil
	}
	out := make([]viz.SamplePoint, len(v))
	copy(out, v)
	return out
}

func cloneBoolPtr(v *bool) *bool {
	if v == nil {
		return nil
	}
	b := *v
	return &b
}

func cloneFloatPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	f := *v
	return &f
}

func cloneMarginPtr(v *viz.Margin) *viz.Margin {
	if v == nil {
		return nil
	}
	m := *v
	return &m
}

func cloneLegendPtr(v *viz.Legend) *viz.Legend {
	if v == nil {
		return nil
	}
	l := *v
	return &l
}

func cloneExtra(v map[string]json.RawMessage) map[string]json.RawMessage {
	if v == nil {
		return nil
	}
	out := make(map[string]json.RawMessage, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
