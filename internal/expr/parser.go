package expr

import "strings"

// namespacePrefix is the qualified-notation namespace. Math.sin and sin
// parse to the same Call node; the tree keeps no notation information.
const namespacePrefix = "Math."

// maxDepth caps parser recursion so a hostile parenthesis or exponent
// chain cannot exhaust the stack.
const maxDepth = 100

// Parse turns an expression string into its AST. The returned error, when
// non-nil, is always a *EvalError.
func Parse(s string) (Node, error) {
	n, err := parseString(s)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func parseString(s string) (Node, *EvalError) {
	toks, err := lex(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	if p.cur().kind == tokEOF {
		return nil, syntaxErr(0, "empty expression")
	}
	n, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	if t := p.cur(); t.kind != tokEOF {
		return nil, syntaxErr(t.pos, "unexpected trailing input %q", t.text)
	}
	return n, nil
}

type parser struct {
	toks  []token
	i     int
	depth int
}

func (p *parser) cur() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func binPrec(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	case "^":
		return 3
	}
	return 0
}

func (p *parser) parseExpr(min int) (Node, *EvalError) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.cur()
		if t.kind != tokOp {
			break
		}
		prec := binPrec(t.text)
		if prec < min {
			break
		}
		p.next()
		nextMin := prec + 1
		if t.text == "^" {
			nextMin = prec
		}
		rhs, err := p.parseExpr(nextMin)
		if err != nil {
			return nil, err
		}
		lhs = &Binary{Op: t.text[0], X: lhs, Y: rhs}
	}
	return lhs, nil
}

// parseUnary handles sign prefixes. Unary minus binds tighter than * and /
// but looser than ^, so -x^2 reads as -(x^2).
func (p *parser) parseUnary() (Node, *EvalError) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return nil, syntaxErr(p.cur().pos, "expression too deeply nested")
	}
	t := p.cur()
	if t.kind == tokOp && (t.text == "-" || t.text == "+") {
		p.next()
		x, err := p.parseExpr(3)
		if err != nil {
			return nil, err
		}
		if t.text == "+" {
			return x, nil
		}
		return &Unary{X: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, *EvalError) {
	t := p.next()
	switch t.kind {
	case tokNum:
		return &Num{Value: t.val}, nil
	case tokLParen:
		x, err := p.parseExpr(1)
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != tokRParen {
			return nil, syntaxErr(c.pos, "missing closing parenthesis")
		}
		return x, nil
	case tokIdent:
		return p.parseIdent(t)
	case tokOp:
		return nil, syntaxErr(t.pos, "unexpected operator %q", t.text)
	case tokRParen, tokComma:
		return nil, syntaxErr(t.pos, "unexpected %q", t.text)
	default:
		return nil, syntaxErr(t.pos, "unexpected end of expression")
	}
}

func (p *parser) parseIdent(t token) (Node, *EvalError) {
	name := t.text
	qualified := false
	if strings.HasPrefix(name, namespacePrefix) {
		name = name[len(namespacePrefix):]
		qualified = true
	} else if strings.Contains(name, ".") {
		return nil, unknownErr(t.pos, t.text)
	}
	if p.cur().kind == tokLParen {
		arity, ok := funcArity[name]
		if !ok {
			return nil, unknownErr(t.pos, t.text)
		}
		p.next()
		var args []Node
		if p.cur().kind != tokRParen {
			for {
				a, err := p.parseExpr(1)
				if err != nil {
					return nil, err
				}
				args = append(args, a)
				if p.cur().kind != tokComma {
					break
				}
				p.next()
			}
		}
		if c := p.next(); c.kind != tokRParen {
			return nil, syntaxErr(c.pos, "missing closing parenthesis")
		}
		if len(args) != arity {
			return nil, syntaxErr(t.pos, "%s takes %d argument(s), got %d", name, arity, len(args))
		}
		return &Call{Fn: name, Args: args}, nil
	}
	if _, ok := constValue[name]; ok {
		return &Const{Name: name}, nil
	}
	if !qualified && varNames[name] {
		return &Var{Name: name}, nil
	}
	return nil, unknownErr(t.pos, t.text)
}
