package tree

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Newick returns the tree as Newick text with branch lengths and comments.
func (t *Tree) Newick() string { return t.format(true) }

// Topology returns Newick text without branch lengths or comments.
func (t *Tree) Topology() string { return t.format(false) }

// String is Newick.
func (t *Tree) String() string { return t.Newick() }

func (t *Tree) format(full bool) string {
	if t == nil || t.Root == nil {
		return ";"
	}
	var b strings.Builder
	type frame struct {
		n    *Node
		next int
	}
	stack := []frame{{n: t.Root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == 0 && !top.n.IsLeaf() {
			b.WriteByte('(')
		}
		if top.next < len(top.n.Children) {
			if top.next > 0 {
				b.WriteByte(',')
			}
			child := top.n.Children[top.next]
			top.next++
			stack = append(stack, frame{n: child})
			continue
		}
		if !top.n.IsLeaf() {
			b.WriteByte(')')
		}
		writeNode(&b, top.n, full)
		stack = stack[:len(stack)-1]
	}
	b.WriteByte(';')

	return b.String()
}

func writeNode(b *strings.Builder, n *Node, full bool) {
	b.WriteString(quoteLabel(n.Name))
	if !full {
		return
	}
	if n.HasLength {
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(n.Length, 'g', -1, 64))
	}
	if n.Comment != "" {
		b.WriteByte('[')
		b.WriteString(n.Comment)
		b.WriteByte(']')
	}
}

const newickSpecial = "()[]':;, \t\r\n"

// quoteLabel single-quotes labels that hold Newick punctuation or blanks,
// doubling inner quotes.
func quoteLabel(s string) string {
	if !strings.ContainsAny(s, newickSpecial) {
		return s
	}

	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// ParseNewick reads one Newick tree terminated by ';'.
//
// Accepted: nested children of any arity, unquoted and single-quoted labels
// (a doubled quote is a literal quote), names on internal nodes,
// ":length" suffixes, and bracketed comments, which are kept on the node they
// follow. Branch lengths must be finite and nonnegative.
func ParseNewick(s string) (*Tree, error) {
	p := newickParser{src: s}

	return p.parse()
}

type newickParser struct {
	src string
	pos int
}

func (p *newickParser) errorf(format string, args ...any) error {
	return fmt.Errorf("offset %d: %s: %w", p.pos, fmt.Sprintf(format, args...), ErrNewick)
}

func (p *newickParser) skipSpace() {
	for p.pos < len(p.src) && strings.IndexByte(" \t\r\n", p.src[p.pos]) >= 0 {
		p.pos++
	}
}

func (p *newickParser) parse() (*Tree, error) {
	root := &Node{}
	cur := root
	var parents []*Node
	closed := false // cur was just completed by ')'; its children are fixed

	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.errorf("missing ';'")
		}
		c := p.src[p.pos]
		switch c {
		case '(':
			if cur.Name != "" || cur.HasLength || closed {
				return nil, p.errorf("unexpected '('")
			}
			p.pos++
			parents = append(parents, cur)
			child := &Node{}
			cur.Children = append(cur.Children, child)
			cur = child
		case ',':
			if len(parents) == 0 {
				return nil, p.errorf("',' outside parentheses")
			}
			p.pos++
			parent := parents[len(parents)-1]
			child := &Node{}
			parent.Children = append(parent.Children, child)
			cur, closed = child, false
		case ')':
			if len(parents) == 0 {
				return nil, p.errorf("unbalanced ')'")
			}
			p.pos++
			cur = parents[len(parents)-1]
			parents = parents[:len(parents)-1]
			closed = true
		case ':':
			if cur.HasLength {
				return nil, p.errorf("duplicate branch length")
			}
			p.pos++
			v, err := p.number()
			if err != nil {
				return nil, err
			}
			cur.Length, cur.HasLength = v, true
		case '[':
			text, err := p.comment()
			if err != nil {
				return nil, err
			}
			if cur.Comment != "" {
				cur.Comment += " "
			}
			cur.Comment += text
		case ';':
			if len(parents) != 0 {
				return nil, p.errorf("unclosed '('")
			}
			p.pos++
			p.skipSpace()
			if p.pos != len(p.src) {
				return nil, p.errorf("trailing text after ';'")
			}

			return &Tree{Root: root}, nil
		case ']':
			return nil, p.errorf("unbalanced ']'")
		default:
			if cur.Name != "" || cur.HasLength {
				return nil, p.errorf("unexpected label")
			}
			name, err := p.label()
			if err != nil {
				return nil, err
			}
			cur.Name = name
		}
	}
}

func (p *newickParser) label() (string, error) {
	if p.src[p.pos] != '\'' {
		start := p.pos
		for p.pos < len(p.src) && !strings.ContainsRune(newickSpecial, rune(p.src[p.pos])) {
			p.pos++
		}

		return p.src[start:p.pos], nil
	}

	var b strings.Builder
	p.pos++ // opening quote
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		p.pos++
		if c != '\'' {
			b.WriteByte(c)
			continue
		}
		if p.pos < len(p.src) && p.src[p.pos] == '\'' {
			b.WriteByte('\'')
			p.pos++
			continue
		}
		if b.Len() == 0 {
			return "", p.errorf("empty quoted label")
		}

		return b.String(), nil
	}

	return "", p.errorf("unterminated quoted label")
}

func (p *newickParser) number() (float64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune(newickSpecial, rune(p.src[p.pos])) {
		p.pos++
	}
	text := p.src[start:p.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, p.errorf("bad branch length %q", text)
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, p.errorf("branch length %q out of range", text)
	}

	return v, nil
}

func (p *newickParser) comment() (string, error) {
	start := p.pos + 1
	end := strings.IndexByte(p.src[start:], ']')
	if end < 0 {
		return "", p.errorf("unterminated comment")
	}
	p.pos = start + end + 1

	return p.src[start : start+end], nil
}
