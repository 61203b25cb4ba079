package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotast/kotast/ast"
	"github.com/kotast/kotast/parse"
	"github.com/kotast/kotast/writer"
)

// elem is a minimal in-memory syntax element for exercising the builder.
type elem struct {
	kind     string
	text     string
	offset   int
	children []*elem
}

func (e *elem) Kind() string { return e.kind }

func (e *elem) Offset() int { return e.offset }

func (e *elem) Children() []parse.Element {
	out := make([]parse.Element, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

func (e *elem) Text() string {
	if len(e.children) == 0 {
		return e.text
	}
	var s string
	for _, c := range e.children {
		s += c.Text()
	}
	return s
}

func (e *elem) IsTrivia() bool {
	switch e.kind {
	case parse.KindWhitespace, parse.KindComment, parse.KindSemicolon, parse.KindComma:
		return true
	}
	return false
}

func ws(text string) *elem { return &elem{kind: parse.KindWhitespace, text: text} }

func comment(text string) *elem { return &elem{kind: parse.KindComment, text: text} }

func tok(kind, text string) *elem { return &elem{kind: kind, text: text} }

func tree(kind string, children ...*elem) *elem {
	return &elem{kind: kind, children: children}
}

func name(s string) *ast.NameExpr { return ast.NewNameExpr(s) }

func TestBuilderAfterClaimsThroughLineBreak(t *testing.T) {
	stmt1 := tok("CALL", "f()")
	stmt2 := tok("CALL", "g()")
	trailing := ws("\n")
	root := tree("FILE", stmt1, ws(" "), comment("// note"), ws("\n"), stmt2, trailing)

	b := parse.NewExtrasBuilder(root)
	n1 := name("f")
	n2 := name("g")
	b.OnNode(n1, stmt1)
	b.OnNode(n2, stmt2)

	after := b.Extras().After(n1)
	require.Len(t, after, 3)
	assert.Equal(t, " ", after[0].(*ast.Whitespace).Text)
	c := after[1].(*ast.Comment)
	assert.Equal(t, "// note", c.Text)
	assert.False(t, c.StartsLine)
	assert.True(t, c.EndsLine)
	assert.Equal(t, "\n", after[2].(*ast.Whitespace).Text)

	// everything between the statements was already claimed
	assert.Empty(t, b.Extras().Before(n2))
	require.Len(t, b.Extras().After(n2), 1)
}

func TestBuilderBeforeClaimsLeadingRun(t *testing.T) {
	stmt := tok("CALL", "f()")
	root := tree("FILE", ws("\n"), comment("// header"), ws("\n"), stmt)

	b := parse.NewExtrasBuilder(root)
	n := name("f")
	b.OnNode(n, stmt)

	before := b.Extras().Before(n)
	require.Len(t, before, 3)
	c := before[1].(*ast.Comment)
	assert.True(t, c.StartsLine)
	assert.True(t, c.EndsLine)
}

func TestBuilderCollapsesBlankLines(t *testing.T) {
	stmt1 := tok("CALL", "f()")
	stmt2 := tok("CALL", "g()")
	root := tree("FILE", stmt1, ws("\n\n\n"), stmt2)

	b := parse.NewExtrasBuilder(root)
	n1 := name("f")
	b.OnNode(n1, stmt1)
	b.OnNode(name("g"), stmt2)

	after := b.Extras().After(n1)
	require.Len(t, after, 1)
	blank, ok := after[0].(*ast.BlankLines)
	require.True(t, ok)
	assert.Equal(t, 2, blank.Count)
}

func TestBuilderSingleBreakStaysWhitespace(t *testing.T) {
	stmt1 := tok("CALL", "f()")
	stmt2 := tok("CALL", "g()")
	root := tree("FILE", stmt1, ws("\n  "), stmt2)

	b := parse.NewExtrasBuilder(root)
	n1 := name("f")
	b.OnNode(n1, stmt1)

	after := b.Extras().After(n1)
	require.Len(t, after, 1)
	w, ok := after[0].(*ast.Whitespace)
	require.True(t, ok)
	assert.Equal(t, "\n  ", w.Text)
}

func TestBuilderWithinClaimsUnclaimedChildren(t *testing.T) {
	inner := ws("\n    ")
	body := tree("BLOCK", tok("LBRACE", "{"), inner, tok("RBRACE", "}"))

	b := parse.NewExtrasBuilder(tree("FILE", body))
	block := ast.NewBlockExpr(nil)
	b.OnNode(block, body)

	within := b.Extras().Within(block)
	require.Len(t, within, 1)
	assert.Equal(t, "\n    ", within[0].(*ast.Whitespace).Text)
}

func TestBuilderChildClaimsBeforeParent(t *testing.T) {
	nameEl := tok("NAME", "x")
	trailing := ws("\n")
	body := tree("PROPERTY", tok("VAL", "val"), ws(" "), nameEl, trailing)

	b := parse.NewExtrasBuilder(tree("FILE", body))
	x := name("x")
	prop := ast.NewBlockExpr(nil)
	b.OnNode(x, nameEl)
	b.OnNode(prop, body)

	// the deepest node converted first claims the trailing break
	require.Len(t, b.Extras().After(x), 1)
	assert.Empty(t, b.Extras().Within(prop))
}

func TestBuilderSemicolonAndTrailingComma(t *testing.T) {
	stmt1 := tok("CALL", "f()")
	stmt2 := tok("CALL", "g()")
	root := tree("FILE", stmt1,
		tok(parse.KindSemicolon, ";"), ws("\n"), stmt2,
		tok(parse.KindComma, ","))

	b := parse.NewExtrasBuilder(root)
	n1 := name("f")
	n2 := name("g")
	b.OnNode(n1, stmt1)
	b.OnNode(n2, stmt2)

	after := b.Extras().After(n1)
	require.Len(t, after, 2)
	assert.IsType(t, &ast.Semicolon{}, after[0])

	after = b.Extras().After(n2)
	require.Len(t, after, 1)
	assert.IsType(t, &ast.TrailingComma{}, after[0])
}

func TestBuilderRevisitMovesExtras(t *testing.T) {
	el := tok("CALL", "f()")
	root := tree("FILE", el, ws("\n"))

	b := parse.NewExtrasBuilder(root)
	first := name("f")
	second := ast.NewCallExpr(name("f"), nil, ast.NewValueArgList(nil), nil)
	b.OnNode(first, el)
	b.OnNode(second, el)

	assert.Empty(t, b.Extras().After(first))
	require.Len(t, b.Extras().After(second), 1)
}

// Attribute a hand-built element tree for "val x = 1 // note\n", then check
// the writer reproduces the source byte for byte.
func TestBuilderWriterRoundTrip(t *testing.T) {
	const src = "val x = 1 // note\n"

	valEl := tok("VAL", "val")
	nameEl := tok("NAME", "x")
	litEl := tok("INT", "1")
	propEl := tree("PROPERTY", valEl, ws(" "), nameEl, ws(" "), tok("EQ", "="), ws(" "), litEl)
	root := tree("FILE", propEl, ws(" "), comment("// note"), ws("\n"))
	require.Equal(t, src, root.Text())

	valKw := ast.NewKeyword(ast.KwVal)
	x := name("x")
	lit := ast.NewConstantExpr("1", ast.ConstInt)
	prop, err := ast.NewPropertyDecl(nil, valKw, nil, nil,
		[]*ast.Variable{ast.NewVariable(x, nil)}, false,
		nil, lit, nil, nil)
	require.NoError(t, err)
	script := ast.NewScript(nil, nil, nil, []ast.Stmt{prop})

	b := parse.NewExtrasBuilder(root)
	b.OnNode(valKw, valEl)
	b.OnNode(x, nameEl)
	b.OnNode(lit, litEl)
	b.OnNode(prop, propEl)
	b.OnNode(script, root)

	got := writer.Write(script, writer.WithExtras(b.Extras()))
	assert.Equal(t, src, got)
}
