package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/henryhcooperr/Math-LLM-sub001/internal/expr"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/viz"
)

// Free-text recovery is an ordered list of independent rules. Each rule
// fills what it can find and leaves the rest for the defaults merge, so
// any rule may silently find nothing.

var freeTextRules = []func(string, *viz.Response){
	ruleExplanation,
	ruleSections,
	ruleExpression,
}

func freeTextResponse(raw string) viz.Response {
	var r viz.Response
	text := strings.TrimSpace(raw)
	if text == "" {
		return r
	}
	for _, rule := range freeTextRules {
		rule(text, &r)
	}
	return r
}

var (
	headerRe  = regexp.MustCompile(`(?i)^\s*(?:#{1,6}\s*)?(?:\*\*)?\s*(key insights?|steps?|follow[\s-]?up questions?|questions?)\s*:?\s*(?:\*\*)?\s*:?\s*$`)
	itemRe    = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+(.+)$`)
	funcDefRe = regexp.MustCompile(`(?i)\b([a-z])\s*\(\s*([a-z])\s*\)\s*=\s*([^\n]+)`)
	assignRe  = regexp.MustCompile(`(?i)\b([yz])\s*=\s*([^\n]+)`)
	subjectRe = regexp.MustCompile(`(?i)\b(?:graph|plot|draw|show|visuali[sz]e|sketch)\b(?:\s+(?:me|a|an|the|of))*\s+([^.!?\n]{3,80})`)
)

// ruleExplanation takes the leading paragraph, stopping at the first
// section header or list item.
func ruleExplanation(text string, r *viz.Response) {
	para := text
	if i := strings.Index(text, "\n\n"); i >= 0 {
		para = text[:i]
	}
	var keep []string
	for _, line := range strings.Split(para, "\n") {
		if headerRe.MatchString(line) || itemRe.MatchString(line) {
			break
		}
		keep = append(keep, strings.TrimSpace(line))
	}
	if p := strings.TrimSpace(strings.Join(keep, " ")); p != "" {
		r.Explanation = p
	}
}

// ruleSections collects list items under recognized headers. Headers are
// case-insensitive and tolerate singular/plural forms, markdown marks and
// a trailing colon; items may use numbers, dashes or bullets.
func ruleSections(text string, r *viz.Response) {
	section := ""
	for _, line := range strings.Split(text, "\n") {
		if m := headerRe.FindStringSubmatch(line); m != nil {
			section = sectionKind(m[1])
			continue
		}
		if section == "" {
			continue
		}
		if m := itemRe.FindStringSubmatch(line); m != nil {
			item := strings.TrimSpace(m[1])
			switch section {
			case "insights":
				r.Educational.KeyInsights = append(r.Educational.KeyInsights, item)
			case "steps":
				n := len(r.Educational.Steps) + 1
				r.Educational.Steps = append(r.Educational.Steps, viz.Step{
					Title:   fmt.Sprintf("Step %d", n),
					Content: item,
				})
			case "questions":
				r.FollowUpQuestions = append(r.FollowUpQuestions, item)
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		section = ""
	}
}

func sectionKind(header string) string {
	h := strings.ToLower(header)
	switch {
	case strings.Contains(h, "insight"):
		return "insights"
	case strings.Contains(h, "question"):
		return "questions"
	case strings.Contains(h, "step"):
		return "steps"
	}
	return ""
}

// ruleExpression looks for a plottable expression: an f(x) = ... form, a
// y = ... form, then any line that parses whole. When one is found the
// spec becomes a function2D (function3D for z = ...); otherwise geometry,
// titled after the stated subject when one is recognizable.
func ruleExpression(text string, r *viz.Response) {
	if r.Params.Expression != "" {
		return
	}
	if m := funcDefRe.FindStringSubmatch(text); m != nil {
		if src := longestParsable(m[3]); src != "" {
			fillExpression(r, src, fmt.Sprintf("%s(%s) = %s", m[1], m[2], src), "function2D")
			return
		}
	}
	if m := assignRe.FindStringSubmatch(text); m != nil {
		if src := longestParsable(m[2]); src != "" {
			typ := "function2D"
			if strings.EqualFold(m[1], "z") {
				typ = "function3D"
			}
			fillExpression(r, src, fmt.Sprintf("%s = %s", strings.ToLower(m[1]), src), typ)
			return
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.ContainsAny(line, "+-*/^(") {
			continue
		}
		if src := longestParsable(line); src != "" {
			fillExpression(r, src, src, "function2D")
			return
		}
	}
	if r.Params.Type == "" {
		r.Params.Type = "geometry"
	}
	if r.Params.Title == "" {
		if m := subjectRe.FindStringSubmatch(text); m != nil {
			r.Params.Title = capitalizeFirst(strings.TrimSpace(m[1]))
		}
	}
}

func fillExpression(r *viz.Response, src, subject, typ string) {
	r.Params.Expression = src
	if r.Params.Type == "" {
		r.Params.Type = typ
	}
	if r.Params.Title == "" {
		r.Params.Title = "Plot of " + subject
	}
}

// longestParsable trims candidate text word by word from the right until
// it parses, so trailing prose after an expression does not defeat
// detection. The result is re-emitted in bare notation.
func longestParsable(s string) string {
	words := strings.Fields(s)
	for n := len(words); n > 0; n-- {
		cand := strings.TrimRight(strings.Join(words[:n], " "), ".,;:!?")
		if cand == "" {
			continue
		}
		node, err := expr.Parse(cand)
		if err != nil {
			continue
		}
		return expr.Unparse(node, expr.NotationBare)
	}
	return ""
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[size:]
}
