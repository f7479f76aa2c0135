package expr

import (
	"strconv"
	"strings"
)

// Notation selects the surface syntax for function and constant names.
type Notation string

const (
	// NotationBare writes plain names: sin(x), PI.
	NotationBare Notation = "bare"
	// NotationQualified writes namespace-prefixed names: Math.sin(x), Math.PI.
	NotationQualified Notation = "qualified"
)

// Unparse renders n in the requested notation. Parentheses come from
// operator precedence, not the source text, so the output always reparses
// to an equivalent tree.
func Unparse(n Node, style Notation) string {
	var b strings.Builder
	writeNode(&b, n, style, 1)
	return b.String()
}

// writeNode emits n, parenthesizing whenever its precedence falls below
// min, the loosest binding the surrounding context allows.
func writeNode(b *strings.Builder, n Node, style Notation, min int) {
	switch v := n.(type) {
	case *Num:
		b.WriteString(strconv.FormatFloat(v.Value, 'g', -1, 64))
	case *Var:
		b.WriteString(v.Name)
	case *Const:
		if style == NotationQualified {
			b.WriteString(namespacePrefix)
		}
		b.WriteString(v.Name)
	case *Unary:
		paren := 2 < min
		if paren {
			b.WriteByte('(')
		}
		b.WriteByte('-')
		writeNode(b, v.X, style, 3)
		if paren {
			b.WriteByte(')')
		}
	case *Binary:
		prec := binPrec(string(v.Op))
		paren := prec < min
		if paren {
			b.WriteByte('(')
		}
		leftMin, rightMin := prec, prec+1
		if v.Op == '^' {
			leftMin, rightMin = prec+1, prec
		}
		writeNode(b, v.X, style, leftMin)
		b.WriteByte(' ')
		b.WriteByte(v.Op)
		b.WriteByte(' ')
		writeNode(b, v.Y, style, rightMin)
		if paren {
			b.WriteByte(')')
		}
	case *Call:
		if style == NotationQualified {
			b.WriteString(namespacePrefix)
		}
		b.WriteString(v.Fn)
		b.WriteByte('(')
		for i, a := range v.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeNode(b, a, style, 1)
		}
		b.WriteByte(')')
	}
}
