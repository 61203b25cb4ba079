package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotast/kotast/ast"
)

func propDecl(t *testing.T, binding string, value string) *ast.PropertyDecl {
	t.Helper()

	prop, err := ast.NewPropertyDecl(nil, kw(ast.KwVal), nil, nil,
		[]*ast.Variable{ast.NewVariable(name(binding), nil)}, false,
		nil, intLit(value), nil, nil)
	require.NoError(t, err)
	return prop
}

func TestRewriteIdentity(t *testing.T) {
	file := ast.NewFile(nil, nil, nil, []ast.Decl{propDecl(t, "x", "1")})

	out := ast.Rewrite(file, ast.WithPost(func(p *ast.Path) ast.Node {
		return p.Node
	}))

	assert.Same(t, file, out)
}

func TestRewriteRenameSharesUntouchedSubtrees(t *testing.T) {
	first := propDecl(t, "x", "1")
	second := propDecl(t, "y", "2")
	file := ast.NewFile(nil, nil, nil, []ast.Decl{first, second})

	out := ast.Rewrite(file, ast.WithPost(func(p *ast.Path) ast.Node {
		if n, ok := p.Node.(*ast.NameExpr); ok && n.Name == "x" {
			return name("a")
		}
		return p.Node
	}))

	require.NotSame(t, ast.Node(file), out)
	got, ok := out.(*ast.File)
	require.True(t, ok)
	require.Len(t, got.Decls, 2)

	renamed, ok := got.Decls[0].(*ast.PropertyDecl)
	require.True(t, ok)
	assert.NotSame(t, first, renamed)
	assert.Equal(t, "a", renamed.Vars[0].Name.Name)

	// the first binding's original subtree is untouched
	assert.Equal(t, "x", first.Vars[0].Name.Name)
	// the initializer did not change, so the copy shares it
	assert.Same(t, first.Initializer, renamed.Initializer)
	// the second declaration did not change at all and is shared wholesale
	assert.Same(t, ast.Decl(second), got.Decls[1])
}

func TestRewriteMovesExtrasToReplacement(t *testing.T) {
	prop := propDecl(t, "x", "1")
	file := ast.NewFile(nil, nil, nil, []ast.Decl{prop})

	extras := ast.NewExtrasMap()
	oldName := prop.Vars[0].Name
	comment := ast.NewComment("// keep me", true, true)
	extras.AppendBefore(oldName, comment)
	extras.AppendAfter(prop, ast.NewSemicolon())

	out := ast.Rewrite(file,
		ast.WithExtras(extras),
		ast.WithPost(func(p *ast.Path) ast.Node {
			if n, ok := p.Node.(*ast.NameExpr); ok && n.Name == "x" {
				return name("renamed")
			}
			return p.Node
		}))

	got := out.(*ast.File)
	newProp := got.Decls[0].(*ast.PropertyDecl)
	newName := newProp.Vars[0].Name

	assert.Empty(t, extras.Before(oldName))
	before := extras.Before(newName)
	require.Len(t, before, 1)
	assert.Same(t, comment, before[0])

	// the rebuilt ancestor copies inherit their extras too
	assert.Len(t, extras.After(newProp), 1)
	assert.Empty(t, extras.After(prop))
}

func TestRewritePreReplacesSubtree(t *testing.T) {
	call := ast.NewCallExpr(name("f"), nil, ast.NewValueArgList(nil), nil)
	prop, err := ast.NewPropertyDecl(nil, kw(ast.KwVal), nil, nil,
		[]*ast.Variable{ast.NewVariable(name("x"), nil)}, false,
		nil, call, nil, nil)
	require.NoError(t, err)
	file := ast.NewFile(nil, nil, nil, []ast.Decl{prop})

	visitedCallee := false
	out := ast.Rewrite(file,
		ast.WithPre(func(p *ast.Path) ast.Node {
			if _, ok := p.Node.(*ast.CallExpr); ok {
				return intLit("42")
			}
			return p.Node
		}),
		ast.WithPost(func(p *ast.Path) ast.Node {
			if n, ok := p.Node.(*ast.NameExpr); ok && n.Name == "f" {
				visitedCallee = true
			}
			return p.Node
		}))

	got := out.(*ast.File).Decls[0].(*ast.PropertyDecl)
	lit, ok := got.Initializer.(*ast.ConstantExpr)
	require.True(t, ok)
	assert.Equal(t, "42", lit.Value)
	// the pre hook replaced the call, so its subtree is never entered
	assert.False(t, visitedCallee)
}

func TestRewriteNilReplacementPanics(t *testing.T) {
	file := ast.NewFile(nil, nil, nil, []ast.Decl{propDecl(t, "x", "1")})

	assert.Panics(t, func() {
		ast.Rewrite(file, ast.WithPost(func(p *ast.Path) ast.Node {
			if _, ok := p.Node.(*ast.NameExpr); ok {
				return nil
			}
			return p.Node
		}))
	})
}

func TestRewriteWrongKindPanics(t *testing.T) {
	file := ast.NewFile(nil, nil, nil, []ast.Decl{propDecl(t, "x", "1")})

	assert.Panics(t, func() {
		ast.Rewrite(file, ast.WithPost(func(p *ast.Path) ast.Node {
			// a NameExpr slot typed *NameExpr cannot hold a constant
			if n, ok := p.Node.(*ast.NameExpr); ok && n.Name == "x" {
				return intLit("1")
			}
			return p.Node
		}))
	})
}

func TestRewritePathsCarryParents(t *testing.T) {
	file := ast.NewFile(nil, nil, nil, []ast.Decl{propDecl(t, "x", "1")})

	ast.Rewrite(file, ast.WithPost(func(p *ast.Path) ast.Node {
		if n, ok := p.Node.(*ast.NameExpr); ok && n.Name == "x" {
			assert.IsType(t, &ast.Variable{}, p.ParentNode())
		}
		return p.Node
	}))
}
