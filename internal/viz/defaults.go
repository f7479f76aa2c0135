package viz

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// defaultsFile mirrors defaults.yaml. Immutable after loading.
type defaultsFile struct {
	Types   map[string]defaultsEntry `yaml:"types"`
	Generic defaultsEntry            `yaml:"generic"`
}

type defaultsEntry struct {
	Domain         []float64 `yaml:"domain"`
	Range          []float64 `yaml:"range"`
	ZRange         []float64 `yaml:"zRange"`
	ParameterRange []float64 `yaml:"parameterRange"`
	URange         []float64 `yaml:"uRange"`
	VRange         []float64 `yaml:"vRange"`
	Resolution     int       `yaml:"resolution"`
	Colormap       string    `yaml:"colormap"`
	Density        int       `yaml:"density"`
	Normalize      *bool     `yaml:"normalize"`
	Distribution   string    `yaml:"distribution"`
	Mean           *float64  `yaml:"mean"`
	StdDev         *float64  `yaml:"stdDev"`
	GridLines      *bool     `yaml:"gridLines"`
	AxisLabels     *bool     `yaml:"axisLabels"`
}

var (
	defaultsOnce   sync.Once
	loadedDefaults defaultsFile
)

func loadDefaults() defaultsFile {
	defaultsOnce.Do(func() {
		if err := yaml.Unmarshal(defaultsYAML, &loadedDefaults); err != nil {
			panic(fmt.Sprintf("viz: embedded defaults.yaml is invalid: %v", err))
		}
	})
	return loadedDefaults
}

// KnownType reports whether t belongs to the closed visualization type
// enum.
func KnownType(t string) bool {
	_, ok := loadDefaults().Types[t]
	return ok
}

// DefaultsFor returns the default parameter set for a visualization type.
// Unknown types get the generic entry, which carries domain and range
// only, so the result is always drawable. The returned Spec shares no
// memory with the table.
func DefaultsFor(vizType string) Spec {
	table := loadDefaults()
	entry, ok := table.Types[vizType]
	if !ok {
		entry = table.Generic
	}
	s := Spec{
		Type:           vizType,
		Domain:         cloneFloats(entry.Domain),
		Range:          cloneFloats(entry.Range),
		ZRange:         cloneFloats(entry.ZRange),
		ParameterRange: cloneFloats(entry.ParameterRange),
		URange:         cloneFloats(entry.URange),
		VRange:         cloneFloats(entry.VRange),
		Resolution:     entry.Resolution,
		Colormap:       entry.Colormap,
		Density:        entry.Density,
		Distribution:   entry.Distribution,
	}
	s.Normalize = cloneBool(entry.Normalize)
	s.GridLines = cloneBool(entry.GridLines)
	s.AxisLabels = cloneBool(entry.AxisLabels)
	s.Mean = cloneFloat(entry.Mean)
	s.StdDev = cloneFloat(entry.StdDev)
	return s
}

func cloneFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

func cloneBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	b := *v
	return &b
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	f := *v
	return &f
}
