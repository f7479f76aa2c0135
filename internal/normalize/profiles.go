package normalize

import "github.com/henryhcooperr/Math-LLM-sub001/internal/expr"

// LibraryTag identifies a rendering back-end's parameter conventions.
type LibraryTag string

const (
	// LibCanonical is the shape the extractor produces: domain/range
	// pairs, flat points, two-point lines, bare notation.
	LibCanonical LibraryTag = "canonical"
	LibMafs      LibraryTag = "mafs"
	LibJSXGraph  LibraryTag = "jsxgraph"
	LibMathBox   LibraryTag = "mathbox"
	LibThree     LibraryTag = "three"
	LibPlotly    LibraryTag = "plotly"
	LibD3        LibraryTag = "d3"
)

// profile captures everything a conversion needs to know about a
// library's parameter shape. Conversions are table-driven off these
// flags; libraries differ in data shape, not behavior.
type profile struct {
	boundsAsBox  bool // bounding region as [xmin, ymax, xmax, ymin]
	taggedPoints bool // points as tagged elements named via "name"
	pointSlope   bool // lines as point+slope instead of two points
	threeD       bool // requires a z axis
	dataDriven   bool // requires sampled data instead of an expression
	marginLegend bool // expects margin/legend configuration
	notation     expr.Notation
}

var profiles = map[LibraryTag]profile{
	LibCanonical: {notation: expr.NotationBare},
	LibMafs:      {pointSlope: true, notation: expr.NotationBare},
	LibJSXGraph:  {boundsAsBox: true, taggedPoints: true, notation: expr.NotationBare},
	LibMathBox:   {threeD: true, notation: expr.NotationQualified},
	LibThree:     {threeD: true, notation: expr.NotationQualified},
	LibPlotly:    {dataDriven: true, marginLegend: true, notation: expr.NotationBare},
	LibD3:        {dataDriven: true, marginLegend: true, notation: expr.NotationBare},
}

// Known reports whether tag names a supported library shape.
func Known(tag LibraryTag) bool {
	_, ok := profiles[tag]
	return ok
}

// Libraries lists the supported tags in a stable order.
func Libraries() []LibraryTag {
	return []LibraryTag{LibCanonical, LibMafs, LibJSXGraph, LibMathBox, LibThree, LibPlotly, LibD3}
}
