package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotast/kotast/ast"
)

func TestExtrasMapNilSafeReads(t *testing.T) {
	var m *ast.ExtrasMap

	assert.Empty(t, m.Before(name("x")))
	assert.Empty(t, m.Within(name("x")))
	assert.Empty(t, m.After(name("x")))
}

func TestExtrasMapAppendAndRead(t *testing.T) {
	m := ast.NewExtrasMap()
	n := name("x")

	comment := ast.NewComment("// leading", true, true)
	m.AppendBefore(n, comment)
	m.AppendBefore(n, ast.NewWhitespace(" "))
	m.AppendWithin(n, ast.NewBlankLines(1))
	m.AppendAfter(n, ast.NewSemicolon())

	before := m.Before(n)
	require.Len(t, before, 2)
	assert.Same(t, comment, before[0])
	assert.Len(t, m.Within(n), 1)
	assert.Len(t, m.After(n), 1)
	assert.Equal(t, 1, m.Len())

	// an identical but distinct node shares nothing
	assert.Empty(t, m.Before(name("x")))
}

func TestExtrasMapMove(t *testing.T) {
	m := ast.NewExtrasMap()
	old := name("x")
	repl := name("y")

	m.AppendBefore(old, ast.NewWhitespace(" "))
	m.AppendAfter(old, ast.NewSemicolon())
	m.AppendAfter(repl, ast.NewWhitespace("\n"))

	m.Move(old, repl)

	assert.Empty(t, m.Before(old))
	assert.Empty(t, m.After(old))
	assert.Len(t, m.Before(repl), 1)
	// existing entries stay ahead of the moved ones
	after := m.After(repl)
	require.Len(t, after, 2)
	assert.IsType(t, &ast.Whitespace{}, after[0])
	assert.IsType(t, &ast.Semicolon{}, after[1])
	assert.Equal(t, 1, m.Len())
}

func TestExtrasMapClear(t *testing.T) {
	m := ast.NewExtrasMap()
	n := name("x")
	m.AppendBefore(n, ast.NewWhitespace(" "))

	m.Clear(n)

	assert.Empty(t, m.Before(n))
	assert.Equal(t, 0, m.Len())
}

func TestExtraText(t *testing.T) {
	tests := []struct {
		extra ast.ExtraNode
		want  string
	}{
		{ast.NewWhitespace("  \n"), "  \n"},
		{ast.NewBlankLines(1), "\n\n"},
		{ast.NewBlankLines(2), "\n\n\n"},
		{ast.NewComment("// c", false, true), "// c"},
		{ast.NewComment("/* c */", false, false), "/* c */"},
		{ast.NewSemicolon(), ";"},
		{ast.NewTrailingComma(), ","},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ast.ExtraText(tt.extra))
	}
}

func TestNewCommentLineCommentEndsLine(t *testing.T) {
	c := ast.NewComment("// note", false, false)
	assert.True(t, c.EndsLine)

	block := ast.NewComment("/* note */", false, false)
	assert.False(t, block.EndsLine)
}
