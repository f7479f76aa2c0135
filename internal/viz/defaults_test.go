package viz

import "testing"

func TestDefaultsFor_Function2D(t *testing.T) {
	d := DefaultsFor("function2D")
	if len(d.Domain) != 2 || d.Domain[0] != -10 || d.Domain[1] != 10 {
		t.Fatalf("expected domain [-10 10], got %v", d.Domain)
	}
	if len(d.Range) != 2 || d.Range[0] != -10 || d.Range[1] != 10 {
		t.Fatalf("expected range [-10 10], got %v", d.Range)
	}
	if d.GridLines == nil || !*d.GridLines {
		t.Fatalf("expected grid lines enabled")
	}
	if d.AxisLabels == nil || !*d.AxisLabels {
		t.Fatalf("expected axis labels enabled")
	}
}

func TestDefaultsFor_Function3D(t *testing.T) {
	d := DefaultsFor("function3D")
	if d.Resolution != 64 {
		t.Fatalf("expected resolution 64, got %d", d.Resolution)
	}
	if d.Colormap != "viridis" {
		t.Fatalf("expected viridis colormap, got %q", d.Colormap)
	}
	if len(d.ZRange) != 2 || d.ZRange[0] >= d.ZRange[1] {
		t.Fatalf("expected valid zRange, got %v", d.ZRange)
	}
}

func TestDefaultsFor_VectorField(t *testing.T) {
	d := DefaultsFor("vectorField")
	if d.Density != 10 {
		t.Fatalf("expected density 10, got %d", d.Density)
	}
	if d.Normalize == nil || !*d.Normalize {
		t.Fatalf("expected normalize enabled")
	}
}

func TestDefaultsFor_UnknownTypeGetsGenericBounds(t *testing.T) {
	d := DefaultsFor("holographicManifold")
	if d.Type != "holographicManifold" {
		t.Fatalf("expected unknown tag to be preserved, got %q", d.Type)
	}
	if len(d.Domain) != 2 || d.Domain[0] >= d.Domain[1] {
		t.Fatalf("expected valid generic domain, got %v", d.Domain)
	}
	if len(d.Range) != 2 || d.Range[0] >= d.Range[1] {
		t.Fatalf("expected valid generic range, got %v", d.Range)
	}
	if d.Resolution != 0 || d.Colormap != "" {
		t.Fatalf("expected generic entry to carry bounds only")
	}
}

func TestDefaultsFor_ReturnsFreshMemory(t *testing.T) {
	a := DefaultsFor("function2D")
	a.Domain[0] = 999
	b := DefaultsFor("function2D")
	if b.Domain[0] != -10 {
		t.Fatalf("mutating a result leaked into the table: %v", b.Domain)
	}
}

func TestKnownType(t *testing.T) {
	for _, typ := range []string{
		"function2D", "functions2D", "function3D", "parametric2D",
		"parametric3D", "vectorField", "geometry", "calculus",
		"probabilityDistribution", "linearAlgebra",
	} {
		if !KnownType(typ) {
			t.Fatalf("expected %q to be known", typ)
		}
	}
	if KnownType("holographicManifold") {
		t.Fatalf("expected unknown tag to be reported unknown")
	}
}
