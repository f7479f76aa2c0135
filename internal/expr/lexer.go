package expr

import "strconv"

type tokKind int

const (
	tokEOF tokKind = iota
	tokNum
	tokIdent
	tokOp
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokKind
	pos  int
	text string
	val  float64
}

// lex splits s into tokens. Identifiers may carry a single dotted segment
// (Math.sin) which the parser resolves against the namespace prefix.
func lex(s string) ([]token, *EvalError) {
	var toks []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || (c == '.' && i+1 < len(s) && isDigit(s[i+1])):
			start := i
			for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
				i++
			}
			if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
				j := i + 1
				if j < len(s) && (s[j] == '+' || s[j] == '-') {
					j++
				}
				if j < len(s) && isDigit(s[j]) {
					i = j
					for i < len(s) && isDigit(s[i]) {
						i++
					}
				}
			}
			v, err := strconv.ParseFloat(s[start:i], 64)
			if err != nil {
				return nil, syntaxErr(start, "malformed number %q", s[start:i])
			}
			toks = append(toks, token{kind: tokNum, pos: start, text: s[start:i], val: v})
		case isAlpha(c):
			start := i
			for i < len(s) && isAlnum(s[i]) {
				i++
			}
			if i < len(s) && s[i] == '.' && i+1 < len(s) && isAlpha(s[i+1]) {
				i++
				for i < len(s) && isAlnum(s[i]) {
					i++
				}
			}
			toks = append(toks, token{kind: tokIdent, pos: start, text: s[start:i]})
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '^':
			toks = append(toks, token{kind: tokOp, pos: i, text: string(c)})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, pos: i, text: "("})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, pos: i, text: ")"})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokComma, pos: i, text: ","})
			i++
		default:
			return nil, syntaxErr(i, "unexpected character %q", string(c))
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(s)})
	return toks, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isAlnum(c byte) bool { return isAlpha(c) || isDigit(c) }
