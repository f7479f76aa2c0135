package expr

import "testing"

func TestEvaluator_ReusesParsedAST(t *testing.T) {
	e := New(8)
	n1, err := e.ParseCached("x * x + 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	n2, err := e.ParseCached("x * x + 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n1 != n2 {
		t.Fatalf("expected cached AST to be reused")
	}
	if e.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", e.Len())
	}
}

func TestEvaluator_EvictsLeastRecentlyUsed(t *testing.T) {
	e := New(2)
	nx, _ := e.ParseCached("x")
	e.ParseCached("y")
	e.ParseCached("x")
	e.ParseCached("t")
	if e.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", e.Len())
	}
	nx2, _ := e.ParseCached("x")
	if nx != nx2 {
		t.Fatalf("expected recently used entry to survive eviction")
	}
	if e.Len() != 2 {
		t.Fatalf("expected capacity to hold, got %d", e.Len())
	}
}

func TestEvaluator_CachesParseFailures(t *testing.T) {
	e := New(4)
	_, err1 := e.ParseCached("((x")
	if err1 == nil {
		t.Fatalf("expected parse error")
	}
	_, err2 := e.ParseCached("((x")
	if err2 == nil {
		t.Fatalf("expected parse error")
	}
	if err1 != err2 {
		t.Fatalf("expected cached error to be reused")
	}
	if e.Len() != 1 {
		t.Fatalf("expected failed parse to occupy 1 entry, got %d", e.Len())
	}
}

func TestEvaluator_Eval(t *testing.T) {
	e := New(0)
	got, err := e.Eval("x * x", map[string]float64{"x": 3})
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if got != 9 {
		t.Fatalf("expected 9, got %v", got)
	}
	if _, err := e.Eval("(", nil); err == nil {
		t.Fatalf("expected error for bad expression")
	}
}

func TestEvaluator_Reset(t *testing.T) {
	e := New(4)
	e.ParseCached("x + 1")
	e.ParseCached("x + 2")
	if e.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", e.Len())
	}
	e.Reset()
	if e.Len() != 0 {
		t.Fatalf("expected empty cache after reset, got %d", e.Len())
	}
}
