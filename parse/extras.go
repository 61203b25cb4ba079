package parse

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kotast/kotast/ast"
)

type builderOptions struct {
	log logrus.FieldLogger
}

// BuilderOption configures an ExtrasBuilder.
type BuilderOption func(*builderOptions)

// WithLogger makes the builder trace every attribution at debug level.
func WithLogger(log logrus.FieldLogger) BuilderOption {
	return func(o *builderOptions) { o.log = log }
}

// ExtrasBuilder attributes the trivia elements of a front end's syntax tree
// to the AST nodes converted from it. The converter reports each produced
// node through OnNode, children before parents; every trivia element is
// claimed by exactly one node. When the converter maps one element to several
// nodes in turn, the extras follow the last one.
type ExtrasBuilder struct {
	extras *ast.ExtrasMap
	log    logrus.FieldLogger

	parent  map[Element]Element
	index   map[Element]int
	byElem  map[Element]ast.Node
	claimed map[Element]bool
}

// NewExtrasBuilder indexes the tree rooted at root and returns a builder
// ready to receive OnNode calls for nodes converted from that tree.
func NewExtrasBuilder(root Element, opts ...BuilderOption) *ExtrasBuilder {
	var o builderOptions
	for _, opt := range opts {
		opt(&o)
	}
	b := &ExtrasBuilder{
		extras:  ast.NewExtrasMap(),
		log:     o.log,
		parent:  make(map[Element]Element),
		index:   make(map[Element]int),
		byElem:  make(map[Element]ast.Node),
		claimed: make(map[Element]bool),
	}
	b.indexTree(root)
	return b
}

func (b *ExtrasBuilder) indexTree(e Element) {
	for i, c := range e.Children() {
		b.parent[c] = e
		b.index[c] = i
		b.indexTree(c)
	}
}

// Extras returns the map being built. It is live; further OnNode calls keep
// extending it.
func (b *ExtrasBuilder) Extras() *ast.ExtrasMap {
	return b.extras
}

// OnNode records that n was converted from e and attributes the unclaimed
// trivia around and inside e to n. Revisiting an element moves its extras to
// the newest node.
func (b *ExtrasBuilder) OnNode(n ast.Node, e Element) {
	if ast.IsNil(n) || e == nil {
		return
	}
	if old, ok := b.byElem[e]; ok && old != n {
		b.extras.Move(old, n)
	}
	b.byElem[e] = n

	before := b.collectBefore(e)
	within := b.collectWithin(e)
	after := b.collectAfter(e)
	if len(before) > 0 {
		b.extras.AppendBefore(n, before...)
	}
	if len(within) > 0 {
		b.extras.AppendWithin(n, within...)
	}
	if len(after) > 0 {
		b.extras.AppendAfter(n, after...)
	}
	if b.log != nil && (len(before) > 0 || len(within) > 0 || len(after) > 0) {
		b.log.WithFields(logrus.Fields{
			"node":   kindOf(n),
			"before": len(before),
			"within": len(within),
			"after":  len(after),
		}).Debug("attributed extras")
	}
}

func kindOf(n ast.Node) string {
	name := fmt.Sprintf("%T", n)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// collectBefore claims the contiguous run of unclaimed trivia siblings
// immediately preceding e.
func (b *ExtrasBuilder) collectBefore(e Element) []ast.ExtraNode {
	p, ok := b.parent[e]
	if !ok {
		return nil
	}
	sibs := p.Children()
	i := b.index[e]
	j := i - 1
	for j >= 0 && sibs[j].IsTrivia() && !b.claimed[sibs[j]] {
		j--
	}
	run := sibs[j+1 : i]
	if len(run) == 0 {
		return nil
	}
	nlBefore := j < 0 || strings.HasSuffix(sibs[j].Text(), "\n")
	for _, t := range run {
		b.claimed[t] = true
	}
	return convertRun(run, nlBefore, false)
}

// collectAfter claims the unclaimed trivia siblings following e up to and
// including the first one containing a line break.
func (b *ExtrasBuilder) collectAfter(e Element) []ast.ExtraNode {
	p, ok := b.parent[e]
	if !ok {
		return nil
	}
	sibs := p.Children()
	var run []Element
	j := b.index[e] + 1
	for ; j < len(sibs) && sibs[j].IsTrivia() && !b.claimed[sibs[j]]; j++ {
		run = append(run, sibs[j])
		if strings.Contains(sibs[j].Text(), "\n") {
			j++
			break
		}
	}
	if len(run) == 0 {
		return nil
	}
	nlAfter := j < len(sibs) && sibs[j].IsTrivia() &&
		strings.HasPrefix(sibs[j].Text(), "\n")
	for _, t := range run {
		b.claimed[t] = true
	}
	return convertRun(run, false, nlAfter)
}

// collectWithin claims e's trivia children that no converted child claimed.
// Conversion runs child-first, so whatever is left belongs strictly inside e.
func (b *ExtrasBuilder) collectWithin(e Element) []ast.ExtraNode {
	kids := e.Children()
	var out []ast.ExtraNode
	nlBefore := false
	for i := 0; i < len(kids); i++ {
		c := kids[i]
		if !c.IsTrivia() || b.claimed[c] {
			nlBefore = strings.HasSuffix(c.Text(), "\n")
			continue
		}
		var run []Element
		j := i
		for ; j < len(kids) && kids[j].IsTrivia() && !b.claimed[kids[j]]; j++ {
			run = append(run, kids[j])
		}
		nlAfter := j < len(kids) && strings.HasPrefix(kids[j].Text(), "\n")
		for _, t := range run {
			b.claimed[t] = true
		}
		out = append(out, convertRun(run, nlBefore, nlAfter)...)
		nlBefore = strings.HasSuffix(kids[j-1].Text(), "\n")
		i = j - 1
	}
	return out
}

// convertRun turns a run of raw trivia elements into extra nodes. Whitespace
// with two or more line breaks collapses into BlankLines; comment line flags
// come from the surrounding breaks, nlBefore and nlAfter standing in for text
// outside the run.
func convertRun(run []Element, nlBefore, nlAfter bool) []ast.ExtraNode {
	out := make([]ast.ExtraNode, 0, len(run))
	for i, t := range run {
		switch t.Kind() {
		case KindWhitespace:
			text := t.Text()
			if breaks := strings.Count(text, "\n"); breaks >= 2 {
				out = append(out, ast.NewBlankLines(breaks-1))
			} else {
				out = append(out, ast.NewWhitespace(text))
			}
			nlBefore = strings.Contains(text, "\n")
		case KindComment:
			endsLine := nlAfter
			if i+1 < len(run) {
				endsLine = strings.HasPrefix(run[i+1].Text(), "\n")
			}
			out = append(out, ast.NewComment(t.Text(), nlBefore, endsLine))
			nlBefore = false
		case KindSemicolon:
			out = append(out, ast.NewSemicolon())
			nlBefore = false
		case KindComma:
			out = append(out, ast.NewTrailingComma())
			nlBefore = false
		default:
			// an unrecognized trivia kind keeps its text so round-trips stay
			// lossless
			out = append(out, ast.NewWhitespace(t.Text()))
			nlBefore = strings.HasSuffix(t.Text(), "\n")
		}
	}
	return out
}
