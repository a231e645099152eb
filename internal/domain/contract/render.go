package contract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Data maps placeholder names to values. Missing keys and nil values render empty.
type Data map[string]any

type tokenKind int

const (
	tokText tokenKind = iota
	tokVar
	tokOpenIf
	tokOpenUnless
	tokCloseIf
	tokCloseUnless
)

type token struct {
	kind tokenKind
	key  string
	raw  string
}

type nodeKind int

const (
	nodeText nodeKind = iota
	nodeVar
	nodeIf
	nodeUnless
)

type node struct {
	kind     nodeKind
	text     string
	key      string
	children []node
}

var (
	identPattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	openIfPattern = regexp.MustCompile(`^#(if|unless)\s+([A-Za-z_][A-Za-z0-9_]*)$`)
)

// Render substitutes {{key}} placeholders and evaluates {{#if key}}…{{/if}} and
// {{#unless key}}…{{/unless}} blocks. Conditions read the raw values in data,
// never the substituted text. Unmatched block markers are kept verbatim.
func Render(body string, data Data) string {
	nodes := parse(tokenize(body))
	var sb strings.Builder
	sb.Grow(len(body))
	eval(&sb, nodes, data)
	return sb.String()
}

func tokenize(body string) []token {
	var tokens []token
	rest := body
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			break
		}
		end := strings.Index(rest[start+2:], "}}")
		if end < 0 {
			break
		}
		end += start + 2
		if start > 0 {
			tokens = append(tokens, token{kind: tokText, raw: rest[:start]})
		}
		raw := rest[start : end+2]
		tokens = append(tokens, classify(raw, strings.TrimSpace(rest[start+2:end])))
		rest = rest[end+2:]
	}
	if rest != "" {
		tokens = append(tokens, token{kind: tokText, raw: rest})
	}
	return tokens
}

func classify(raw, inner string) token {
	switch {
	case inner == "/if":
		return token{kind: tokCloseIf, raw: raw}
	case inner == "/unless":
		return token{kind: tokCloseUnless, raw: raw}
	case identPattern.MatchString(inner):
		return token{kind: tokVar, key: inner, raw: raw}
	}
	if m := openIfPattern.FindStringSubmatch(inner); m != nil {
		if m[1] == "if" {
			return token{kind: tokOpenIf, key: m[2], raw: raw}
		}
		return token{kind: tokOpenUnless, key: m[2], raw: raw}
	}
	return token{kind: tokText, raw: raw}
}

type frame struct {
	open     token
	children []node
}

func parse(tokens []token) []node {
	stack := []*frame{{}}
	top := func() *frame { return stack[len(stack)-1] }

	for _, tok := range tokens {
		switch tok.kind {
		case tokText:
			top().children = append(top().children, node{kind: nodeText, text: tok.raw})
		case tokVar:
			top().children = append(top().children, node{kind: nodeVar, key: tok.key})
		case tokOpenIf, tokOpenUnless:
			stack = append(stack, &frame{open: tok})
		case tokCloseIf, tokCloseUnless:
			want := tokOpenIf
			if tok.kind == tokCloseUnless {
				want = tokOpenUnless
			}
			idx := -1
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].open.kind == want {
					idx = i
					break
				}
			}
			if idx < 0 {
				top().children = append(top().children, node{kind: nodeText, text: tok.raw})
				continue
			}
			for len(stack)-1 > idx {
				stack = unwind(stack)
			}
			f := top()
			stack = stack[:len(stack)-1]
			kind := nodeIf
			if f.open.kind == tokOpenUnless {
				kind = nodeUnless
			}
			top().children = append(top().children, node{kind: kind, key: f.open.key, children: f.children})
		}
	}
	for len(stack) > 1 {
		stack = unwind(stack)
	}
	return stack[0].children
}

// unwind turns an unclosed block back into literal text in its parent.
func unwind(stack []*frame) []*frame {
	f := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	parent := stack[len(stack)-1]
	parent.children = append(parent.children, node{kind: nodeText, text: f.open.raw})
	parent.children = append(parent.children, f.children...)
	return stack
}

func eval(sb *strings.Builder, nodes []node, data Data) {
	for _, n := range nodes {
		switch n.kind {
		case nodeText:
			sb.WriteString(n.text)
		case nodeVar:
			sb.WriteString(format(data[n.key]))
		case nodeIf:
			if truthy(data[n.key]) {
				eval(sb, n.children, data)
			}
		case nodeUnless:
			if !truthy(data[n.key]) {
				eval(sb, n.children, data)
			}
		}
	}
}

func format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case decimal.Decimal:
		return x.StringFixed(2)
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return x.StringFixed(2)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case *string:
		return x != nil && *x != ""
	case bool:
		return x
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	case decimal.Decimal:
		return !x.IsZero()
	case *decimal.Decimal:
		return x != nil && !x.IsZero()
	default:
		return true
	}
}
