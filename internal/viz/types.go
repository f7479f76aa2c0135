// Package viz defines the canonical visualization schema shared by the
// extractor, the normalizer and the HTTP surface, together with the
// per-type defaults table both consult.
package viz

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
)

// Response is the validated root object recovered from model output.
// After extraction every list field is non-nil and the explanation is
// non-empty, so renderers never null-check.
type Response struct {
	Explanation       string             `json:"explanation"`
	Params            Spec               `json:"visualizationParams"`
	Educational       EducationalContent `json:"educationalContent"`
	FollowUpQuestions []string           `json:"followUpQuestions"`
}

type EducationalContent struct {
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Steps       []Step     `json:"steps"`
	KeyInsights []string   `json:"keyInsights"`
	Exercises   []Exercise `json:"exercises"`
}

type Step struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Exercise struct {
	Question string `json:"question"`
	Solution string `json:"solution"`
}

// Spec describes one visualization. It is a tagged union keyed by Type;
// variant fields are optional and their absence never invalidates the
// object, it only narrows what a renderer can draw. Keys that are not
// bound to a typed field survive decode and re-encode through Extra, so
// renderer-defined parameters pass through untouched.
type Spec struct {
	Type               string        `json:"type,omitempty"`
	Title              string        `json:"title,omitempty"`
	Expression         string        `json:"expression,omitempty"`
	Functions          []string      `json:"functions,omitempty"`
	Domain             []float64     `json:"domain,omitempty"`
	Range              []float64     `json:"range,omitempty"`
	ZRange             []float64     `json:"zRange,omitempty"`
	BoundingBox        []float64     `json:"boundingBox,omitempty"`
	ParameterRange     []float64     `json:"parameterRange,omitempty"`
	URange             []float64     `json:"uRange,omitempty"`
	VRange             []float64     `json:"vRange,omitempty"`
	Resolution         int           `json:"resolution,omitempty"`
	Colormap           string        `json:"colormap,omitempty"`
	Density            int           `json:"density,omitempty"`
	Normalize          *bool         `json:"normalize,omitempty"`
	VectorExpressions  []string      `json:"vectorExpressions,omitempty"`
	Distribution       string        `json:"distribution,omitempty"`
	Mean               *float64      `json:"mean,omitempty"`
	StdDev             *float64      `json:"stdDev,omitempty"`
	Matrix             [][]float64   `json:"matrix,omitempty"`
	Vectors            [][]float64   `json:"vectors,omitempty"`
	Points             []Point       `json:"points,omitempty"`
	Elements           []Element     `json:"elements,omitempty"`
	Data               []SamplePoint `json:"data,omitempty"`
	GridLines          *bool         `json:"gridLines,omitempty"`
	AxisLabels         *bool         `json:"axisLabels,omitempty"`
	Margin             *Margin       `json:"margin,omitempty"`
	Legend             *Legend       `json:"legend,omitempty"`
	RecommendedLibrary string        `json:"recommendedLibrary,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Point is a flat 2D marker, optionally lifted to 3D.
type Point struct {
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Z     *float64 `json:"z,omitempty"`
	Color string   `json:"color,omitempty"`
	Label string   `json:"label,omitempty"`
}

// Element is a tagged geometry primitive. The populated field subset
// depends on Type and on the library shape it was converted for: points
// carry Coords or X/Y, lines carry either two points or a point with a
// slope. Vertical lines set Vertical instead of Slope.
type Element struct {
	Type     string    `json:"type"`
	Coords   []float64 `json:"coords,omitempty"`
	X        *float64  `json:"x,omitempty"`
	Y        *float64  `json:"y,omitempty"`
	Point1   []float64 `json:"point1,omitempty"`
	Point2   []float64 `json:"point2,omitempty"`
	Point    []float64 `json:"point,omitempty"`
	Slope    *float64  `json:"slope,omitempty"`
	Vertical bool      `json:"vertical,omitempty"`
	Color    string    `json:"color,omitempty"`
	Label    string    `json:"label,omitempty"`
	Name     string    `json:"name,omitempty"`
}

// SamplePoint is one tabulated function sample.
type SamplePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Margin struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

type Legend struct {
	Show     bool   `json:"show"`
	Position string `json:"position,omitempty"`
}

// specFields holds the JSON keys bound to typed Spec fields, taken from
// the struct tags so the set cannot drift from the declaration.
var specFields = func() map[string]bool {
	keys := map[string]bool{}
	t := reflect.TypeOf(Spec{})
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			keys[name] = true
		}
	}
	return keys
}()

func (s *Spec) UnmarshalJSON(b []byte) error {
	type alias Spec
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for k := range raw {
		if specFields[k] {
			delete(raw, k)
		}
	}
	*s = Spec(a)
	if len(raw) > 0 {
		s.Extra = raw
	}
	return nil
}

func (s Spec) MarshalJSON() ([]byte, error) {
	type alias Spec
	b, err := json.Marshal(alias(s))
	if err != nil {
		return nil, err
	}
	if len(s.Extra) == 0 {
		return b, nil
	}
	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	for k, v := range s.Extra {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
	return json.Marshal(m)
}

// FixInterval returns a valid 2-element interval derived from v: inverted
// bounds are swapped, while missing, non-finite or degenerate bounds fall
// back to def. The result is always a fresh slice.
func FixInterval(v, def []float64) []float64 {
	if len(v) != 2 || !isFinite(v[0]) || !isFinite(v[1]) || v[0] == v[1] {
		out := make([]float64, len(def))
		copy(out, def)
		return out
	}
	lo, hi := v[0], v[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	return []float64{lo, hi}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
