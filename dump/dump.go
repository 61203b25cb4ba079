// Package dump renders an AST as an indented structural outline, one node per
// line, for debugging and golden tests.
package dump

import (
	"fmt"
	"strings"

	"github.com/kotast/kotast/ast"
)

type options struct {
	extras  *ast.ExtrasMap
	verbose bool
}

// Option configures a Dump call.
type Option func(*options)

// WithExtras interleaves the extras attached to each node into the outline:
// before extras above the node line, within extras indented under it after its
// children, after extras below at the node's own depth.
func WithExtras(m *ast.ExtrasMap) Option {
	return func(o *options) { o.extras = m }
}

// WithVerbose appends the scalar attributes of each node to its line.
func WithVerbose() Option {
	return func(o *options) { o.verbose = true }
}

// Dump renders the tree rooted at root. Every line is the node's kind name at
// an indent of two spaces per depth level.
func Dump(root ast.Node, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	d := &dumper{opts: o}
	d.node(root, 0)
	return d.b.String()
}

type dumper struct {
	b    strings.Builder
	opts options
}

func (d *dumper) line(depth int, text string) {
	for i := 0; i < depth; i++ {
		d.b.WriteString("  ")
	}
	d.b.WriteString(text)
	d.b.WriteByte('\n')
}

func (d *dumper) extraLines(slot string, list []ast.ExtraNode, depth int) {
	for _, e := range list {
		d.line(depth, slot+": "+d.describe(e))
	}
}

func (d *dumper) node(n ast.Node, depth int) {
	if ast.IsNil(n) {
		return
	}
	d.extraLines("BEFORE", d.opts.extras.Before(n), depth)
	d.line(depth, d.describe(n))
	ast.EachChild(n, func(c ast.Node) {
		d.node(c, depth+1)
	})
	d.extraLines("WITHIN", d.opts.extras.Within(n), depth+1)
	d.extraLines("AFTER", d.opts.extras.After(n), depth)
}

// kindName is the node's type name without the package qualifier.
func kindName(n ast.Node) string {
	name := fmt.Sprintf("%T", n)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func (d *dumper) describe(n ast.Node) string {
	name := kindName(n)
	if !d.opts.verbose {
		return name
	}
	if attrs := attrString(n); attrs != "" {
		return name + " " + attrs
	}
	return name
}

// attrString lists the scalar fields of a node as space-separated key=value
// pairs. Kinds whose identity is fully structural yield nothing.
func attrString(n ast.Node) string {
	switch x := n.(type) {
	case *ast.NameExpr:
		return fmt.Sprintf("name=%q", x.Name)
	case *ast.Keyword:
		return fmt.Sprintf("text=%q", x.Text())
	case *ast.ConstantExpr:
		return fmt.Sprintf("value=%q form=%v", x.Value, x.Form)
	case *ast.LiteralEntry:
		return fmt.Sprintf("text=%q", x.Text)
	case *ast.EscapeEntry:
		return fmt.Sprintf("text=%q", x.Text)
	case *ast.StringTemplateExpr:
		return fmt.Sprintf("raw=%v", x.Raw)
	case *ast.ImportDirective:
		return fmt.Sprintf("wildcard=%v", x.Wildcard)
	case *ast.PropertyDecl:
		return fmt.Sprintf("delimited=%v", x.Delimited)
	case *ast.WhenBranch:
		return fmt.Sprintf("trailingComma=%v", x.TrailingComma)
	case *ast.WhenCondIn:
		return fmt.Sprintf("not=%v", x.Not)
	case *ast.WhenCondIs:
		return fmt.Sprintf("not=%v", x.Not)
	case *ast.WhileExpr:
		return fmt.Sprintf("doWhile=%v", x.DoWhile)
	case *ast.UnaryExpr:
		return fmt.Sprintf("prefix=%v", x.Prefix)
	case *ast.TypeArg:
		return fmt.Sprintf("star=%v", x.Star)
	case *ast.ValueArg:
		return fmt.Sprintf("spread=%v", x.Spread)
	case *ast.AnnotationSet:
		return fmt.Sprintf("bracketed=%v", x.Bracketed)
	case *ast.LambdaParam:
		return fmt.Sprintf("destructured=%v", x.Destructured)
	case *ast.Whitespace:
		return fmt.Sprintf("text=%q", x.Text)
	case *ast.BlankLines:
		return fmt.Sprintf("count=%d", x.Count)
	case *ast.Comment:
		return fmt.Sprintf("text=%q startsLine=%v endsLine=%v", x.Text, x.StartsLine, x.EndsLine)
	}
	return ""
}
