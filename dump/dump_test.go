package dump_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotast/kotast/ast"
	"github.com/kotast/kotast/dump"
)

func name(s string) *ast.NameExpr { return ast.NewNameExpr(s) }

func propDecl(t *testing.T, binding, value string) *ast.PropertyDecl {
	t.Helper()

	prop, err := ast.NewPropertyDecl(nil, ast.NewKeyword(ast.KwVal), nil, nil,
		[]*ast.Variable{ast.NewVariable(name(binding), nil)}, false,
		nil, ast.NewConstantExpr(value, ast.ConstInt), nil, nil)
	require.NoError(t, err)
	return prop
}

func TestDumpStructure(t *testing.T) {
	file := ast.NewFile(nil, nil, nil, []ast.Decl{propDecl(t, "x", "1")})

	want := "" +
		"File\n" +
		"  PropertyDecl\n" +
		"    Keyword\n" +
		"    Variable\n" +
		"      NameExpr\n" +
		"    ConstantExpr\n"
	assert.Equal(t, want, dump.Dump(file))
}

func TestDumpVerbose(t *testing.T) {
	file := ast.NewFile(nil, nil, nil, []ast.Decl{propDecl(t, "x", "1")})

	want := "" +
		"File\n" +
		"  PropertyDecl delimited=false\n" +
		"    Keyword text=\"val\"\n" +
		"    Variable\n" +
		"      NameExpr name=\"x\"\n" +
		"    ConstantExpr value=\"1\" form=int\n"
	assert.Equal(t, want, dump.Dump(file, dump.WithVerbose()))
}

func TestDumpWithExtrasOrdering(t *testing.T) {
	prop := propDecl(t, "x", "1")
	file := ast.NewFile(nil, nil, nil, []ast.Decl{prop})

	extras := ast.NewExtrasMap()
	extras.AppendBefore(prop, ast.NewComment("// leading", true, true))
	extras.AppendWithin(prop, ast.NewWhitespace(" "))
	extras.AppendAfter(prop, ast.NewSemicolon(), ast.NewBlankLines(1))

	want := "" +
		"File\n" +
		"  BEFORE: Comment\n" +
		"  PropertyDecl\n" +
		"    Keyword\n" +
		"    Variable\n" +
		"      NameExpr\n" +
		"    ConstantExpr\n" +
		"    WITHIN: Whitespace\n" +
		"  AFTER: Semicolon\n" +
		"  AFTER: BlankLines\n"
	assert.Equal(t, want, dump.Dump(file, dump.WithExtras(extras)))
}

// val x = "" // x is empty
func TestDumpTrailingCommentFollowsLiteral(t *testing.T) {
	str := ast.NewStringTemplateExpr(false, nil)
	prop, err := ast.NewPropertyDecl(nil, ast.NewKeyword(ast.KwVal), nil, nil,
		[]*ast.Variable{ast.NewVariable(name("x"), nil)}, false,
		nil, str, nil, nil)
	require.NoError(t, err)

	extras := ast.NewExtrasMap()
	extras.AppendAfter(str,
		ast.NewWhitespace(" "),
		ast.NewComment("// x is empty", false, true))

	want := "" +
		"PropertyDecl\n" +
		"  Keyword\n" +
		"  Variable\n" +
		"    NameExpr\n" +
		"  StringTemplateExpr\n" +
		"  AFTER: Whitespace\n" +
		"  AFTER: Comment\n"
	assert.Equal(t, want, dump.Dump(prop, dump.WithExtras(extras)))
}

func TestDumpSkipsAbsentSlots(t *testing.T) {
	ifExpr := ast.NewIfExpr(name("cond"), ast.NewBlockExpr(nil), nil)

	want := "" +
		"IfExpr\n" +
		"  NameExpr\n" +
		"  BlockExpr\n"
	assert.Equal(t, want, dump.Dump(ifExpr))
}
