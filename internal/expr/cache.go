package expr

import (
	"container/list"
	"sync"
)

// DefaultCacheSize bounds the AST memo. A single visualization samples the
// same expression hundreds of times, so even a small cache removes nearly
// all parsing work.
const DefaultCacheSize = 256

// Evaluator parses through a bounded least-recently-used memo keyed by the
// raw expression string. Failed parses are cached too, so a renderer
// retrying a bad expression does not re-lex it every frame. Safe for
// concurrent use. The zero value is not usable; call New.
type Evaluator struct {
	mu    sync.Mutex
	cap   int
	order *list.List
	items map[string]*list.Element
}

type cacheEntry struct {
	key  string
	node Node
	err  *EvalError
}

// New returns an Evaluator whose memo holds up to size entries. Sizes
// below one fall back to DefaultCacheSize.
func New(size int) *Evaluator {
	if size < 1 {
		size = DefaultCacheSize
	}
	return &Evaluator{
		cap:   size,
		order: list.New(),
		items: make(map[string]*list.Element, size),
	}
}

// ParseCached is Parse with memoization.
func (e *Evaluator) ParseCached(s string) (Node, error) {
	e.mu.Lock()
	if el, ok := e.items[s]; ok {
		e.order.MoveToFront(el)
		ent := el.Value.(*cacheEntry)
		e.mu.Unlock()
		if ent.err != nil {
			return nil, ent.err
		}
		return ent.node, nil
	}
	e.mu.Unlock()

	n, perr := parseString(s)
	ent := &cacheEntry{key: s, node: n, err: perr}

	e.mu.Lock()
	if _, ok := e.items[s]; !ok {
		e.items[s] = e.order.PushFront(ent)
		if e.order.Len() > e.cap {
			back := e.order.Back()
			e.order.Remove(back)
			delete(e.items, back.Value.(*cacheEntry).key)
		}
	}
	e.mu.Unlock()

	if perr != nil {
		return nil, perr
	}
	return n, nil
}

// Eval parses s through the memo and evaluates it at vars.
func (e *Evaluator) Eval(s string, vars map[string]float64) (float64, error) {
	n, err := e.ParseCached(s)
	if err != nil {
		return 0, err
	}
	return Evaluate(n, vars), nil
}

// Len reports how many entries the memo currently holds.
func (e *Evaluator) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.order.Len()
}

// Reset empties the memo.
func (e *Evaluator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.order.Init()
	e.items = make(map[string]*list.Element, e.cap)
}
