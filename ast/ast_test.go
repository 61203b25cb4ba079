package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotast/kotast/ast"
)

func name(s string) *ast.NameExpr { return ast.NewNameExpr(s) }

func kw(k ast.KeywordKind) *ast.Keyword { return ast.NewKeyword(k) }

func simpleType(t *testing.T, names ...string) *ast.SimpleType {
	t.Helper()

	pieces := make([]*ast.SimpleTypePiece, len(names))
	for i, n := range names {
		pieces[i] = ast.NewSimpleTypePiece(name(n), nil)
	}
	st, err := ast.NewSimpleType(pieces)
	require.NoError(t, err)
	return st
}

func intLit(s string) *ast.ConstantExpr {
	return ast.NewConstantExpr(s, ast.ConstInt)
}

func requireInvariant(t *testing.T, err error, kind string) {
	t.Helper()

	require.Error(t, err)
	var inv *ast.InvariantError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, kind, inv.Kind)
}

func TestImportDirectiveWildcardAliasExclusive(t *testing.T) {
	alias := ast.NewImportAlias(name("io"))

	_, err := ast.NewImportDirective([]*ast.NameExpr{name("kotlin"), name("io")}, true, alias)
	requireInvariant(t, err, "ImportDirective")

	dir, err := ast.NewImportDirective([]*ast.NameExpr{name("kotlin"), name("io")}, true, nil)
	require.NoError(t, err)
	assert.True(t, dir.Wildcard)

	dir, err = ast.NewImportDirective([]*ast.NameExpr{name("kotlin"), name("io")}, false, alias)
	require.NoError(t, err)
	assert.Same(t, alias, dir.Alias)
}

func TestClassDeclKeyword(t *testing.T) {
	_, err := ast.NewClassDecl(nil, kw(ast.KwFun), name("C"), nil, nil, nil, nil, nil)
	requireInvariant(t, err, "ClassDecl")

	cls, err := ast.NewClassDecl(nil, kw(ast.KwInterface), name("C"), nil, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, cls.IsInterface())
	assert.False(t, cls.IsClass())
	assert.False(t, cls.IsObject())
}

func TestClassParentArgsDelegateExclusive(t *testing.T) {
	typ := simpleType(t, "Base")
	args := ast.NewValueArgList(nil)

	_, err := ast.NewClassParent(typ, args, name("impl"))
	requireInvariant(t, err, "ClassParent")

	parent, err := ast.NewClassParent(typ, args, nil)
	require.NoError(t, err)
	assert.Same(t, args, parent.Args)
}

func TestPropertyDeclInvariants(t *testing.T) {
	val := kw(ast.KwVal)
	one := []*ast.Variable{ast.NewVariable(name("x"), nil)}
	two := []*ast.Variable{
		ast.NewVariable(name("x"), nil),
		ast.NewVariable(name("y"), nil),
	}

	tests := []struct {
		name      string
		vars      []*ast.Variable
		delimited bool
		init      ast.Expr
		delegate  ast.Expr
		accessors []ast.Accessor
		ok        bool
	}{
		{name: "single binding", vars: one, init: intLit("1"), ok: true},
		{name: "destructured pair", vars: two, delimited: true, init: intLit("1"), ok: true},
		{name: "pair without delimiters", vars: two},
		{name: "single binding with delimiters", vars: one, delimited: true},
		{name: "initializer and delegate", vars: one, init: intLit("1"), delegate: name("lazy")},
		{name: "two getters", vars: one, accessors: []ast.Accessor{
			ast.NewGetter(nil, nil, nil),
			ast.NewGetter(nil, nil, nil),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ast.NewPropertyDecl(nil, val, nil, nil, tt.vars, tt.delimited,
				nil, tt.init, tt.delegate, tt.accessors)
			if tt.ok {
				require.NoError(t, err)
			} else {
				requireInvariant(t, err, "PropertyDecl")
			}
		})
	}
}

func TestPropertyDeclAccessorLookup(t *testing.T) {
	getter := ast.NewGetter(nil, nil, nil)
	setter, err := ast.NewSetter(nil, nil, nil)
	require.NoError(t, err)

	prop, err := ast.NewPropertyDecl(nil, kw(ast.KwVar), nil, nil,
		[]*ast.Variable{ast.NewVariable(name("x"), nil)}, false,
		nil, intLit("1"), nil, []ast.Accessor{getter, setter})
	require.NoError(t, err)

	assert.False(t, prop.ReadOnly())
	assert.Same(t, getter, prop.Getter())
	assert.Same(t, setter, prop.Setter())
}

func TestSetterParamBodyTogether(t *testing.T) {
	param, err := ast.NewFuncParam(nil, nil, name("value"), nil, nil)
	require.NoError(t, err)

	_, err = ast.NewSetter(nil, param, nil)
	requireInvariant(t, err, "Setter")

	_, err = ast.NewSetter(nil, nil, ast.NewBlockBody(ast.NewBlockExpr(nil)))
	requireInvariant(t, err, "Setter")
}

func TestWhenBranchInvariants(t *testing.T) {
	cond := ast.NewWhenCondExpr(intLit("1"))
	body := ast.NewBlockExpr(nil)

	_, err := ast.NewWhenBranch([]ast.WhenCond{cond}, kw(ast.KwElse), false, body)
	requireInvariant(t, err, "WhenBranch")

	_, err = ast.NewWhenBranch(nil, nil, false, body)
	requireInvariant(t, err, "WhenBranch")

	_, err = ast.NewWhenBranch(nil, kw(ast.KwElse), true, body)
	requireInvariant(t, err, "WhenBranch")

	branch, err := ast.NewWhenBranch(nil, kw(ast.KwElse), false, body)
	require.NoError(t, err)
	assert.True(t, branch.IsElse())

	branch, err = ast.NewWhenBranch([]ast.WhenCond{cond}, nil, true, body)
	require.NoError(t, err)
	assert.False(t, branch.IsElse())
}

func TestEscapeEntryRequiresBackslash(t *testing.T) {
	_, err := ast.NewEscapeEntry("n")
	requireInvariant(t, err, "EscapeEntry")

	entry, err := ast.NewEscapeEntry(`\n`)
	require.NoError(t, err)
	assert.Equal(t, `\n`, entry.Text)
}

func TestAnnotationSetGrouping(t *testing.T) {
	ann := ast.NewAnnotation(simpleType(t, "Test"), nil)

	_, err := ast.NewAnnotationSet(nil, false, nil)
	requireInvariant(t, err, "AnnotationSet")

	_, err = ast.NewAnnotationSet(nil, false, []*ast.Annotation{ann, ann})
	requireInvariant(t, err, "AnnotationSet")

	set, err := ast.NewAnnotationSet(nil, true, []*ast.Annotation{ann, ann})
	require.NoError(t, err)
	assert.True(t, set.Bracketed)
}

func TestTypeArgStarProjection(t *testing.T) {
	_, err := ast.NewTypeArg(nil, simpleType(t, "T"), true)
	requireInvariant(t, err, "TypeArg")

	_, err = ast.NewTypeArg(ast.NewModifiers(nil), nil, true)
	requireInvariant(t, err, "TypeArg")

	_, err = ast.NewTypeArg(nil, nil, false)
	requireInvariant(t, err, "TypeArg")

	arg, err := ast.NewTypeArg(nil, nil, true)
	require.NoError(t, err)
	assert.True(t, arg.Star)
}

func TestObjectLitExprUnnamedOnly(t *testing.T) {
	named, err := ast.NewClassDecl(nil, kw(ast.KwObject), name("Singleton"),
		nil, nil, nil, nil, nil)
	require.NoError(t, err)

	_, err = ast.NewObjectLitExpr(named)
	requireInvariant(t, err, "ObjectLitExpr")

	anon, err := ast.NewClassDecl(nil, kw(ast.KwObject), nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	lit, err := ast.NewObjectLitExpr(anon)
	require.NoError(t, err)
	assert.Same(t, anon, lit.Decl)
}

func TestAnonFuncExprUnnamedOnly(t *testing.T) {
	named := ast.NewFuncDecl(nil, nil, nil, name("f"), nil, nil, nil, nil, nil)

	_, err := ast.NewAnonFuncExpr(named)
	requireInvariant(t, err, "AnonFuncExpr")

	anon := ast.NewFuncDecl(nil, nil, nil, nil, nil, nil, nil, nil,
		ast.NewBlockBody(ast.NewBlockExpr(nil)))
	fn, err := ast.NewAnonFuncExpr(anon)
	require.NoError(t, err)
	assert.Same(t, anon, fn.Func)
}

func TestCallableRefReceiverKind(t *testing.T) {
	// a Variable is a node but neither an expression nor a type
	_, err := ast.NewCallableRefExpr(ast.NewVariable(name("x"), nil), name("f"))
	requireInvariant(t, err, "CallableRefExpr")

	ref, err := ast.NewCallableRefExpr(name("list"), name("size"))
	require.NoError(t, err)
	assert.NotNil(t, ref)

	_, err = ast.NewClassLitExpr(ast.NewVariable(name("x"), nil))
	requireInvariant(t, err, "ClassLitExpr")

	lit, err := ast.NewClassLitExpr(simpleType(t, "String"))
	require.NoError(t, err)
	assert.NotNil(t, lit)
}

func TestLambdaParamInvariants(t *testing.T) {
	x := ast.NewVariable(name("x"), nil)
	y := ast.NewVariable(name("y"), nil)

	_, err := ast.NewLambdaParam(nil, false, nil)
	requireInvariant(t, err, "LambdaParam")

	_, err = ast.NewLambdaParam([]*ast.Variable{x, y}, false, nil)
	requireInvariant(t, err, "LambdaParam")

	_, err = ast.NewLambdaParam([]*ast.Variable{x}, false, simpleType(t, "Pair"))
	requireInvariant(t, err, "LambdaParam")

	param, err := ast.NewLambdaParam([]*ast.Variable{x, y}, true, nil)
	require.NoError(t, err)
	assert.True(t, param.Destructured)
}

func TestConstructorDelegationTarget(t *testing.T) {
	_, err := ast.NewConstructorDelegationCall(kw(ast.KwVal), nil)
	requireInvariant(t, err, "ConstructorDelegationCall")

	call, err := ast.NewConstructorDelegationCall(kw(ast.KwThis), nil)
	require.NoError(t, err)
	assert.Equal(t, "this", call.Target.Text())
}

func TestKeywordText(t *testing.T) {
	tests := []struct {
		kind ast.KeywordKind
		text string
	}{
		{ast.KwVal, "val"},
		{ast.KwObject, "object"},
		{ast.KwCompanion, "companion"},
		{ast.KwIn, "in"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.text, ast.NewKeyword(tt.kind).Text())
	}
}

func TestIsModifierText(t *testing.T) {
	assert.True(t, ast.IsModifierText("private"))
	assert.True(t, ast.IsModifierText("suspend"))
	assert.False(t, ast.IsModifierText("fun"))
	assert.False(t, ast.IsModifierText("println"))
}
