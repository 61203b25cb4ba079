// Package writer serializes an AST back into source text. With the extras
// map produced at parse time it reproduces the original text byte for byte;
// without it, it emits the minimal lexically valid rendering, synthesizing
// spaces, newlines and semicolons only where omitting them would change the
// token stream.
package writer

import (
	"fmt"
	"strings"

	"github.com/kotast/kotast/ast"
)

type options struct {
	extras *ast.ExtrasMap
}

// Option configures a Write call.
type Option func(*options)

// WithExtras supplies the extras map to replay verbatim. Round-trip fidelity
// is guaranteed only with the map produced while parsing the same tree.
func WithExtras(m *ast.ExtrasMap) Option {
	return func(o *options) { o.extras = m }
}

// Write renders the tree rooted at root as source text.
func Write(root ast.Node, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	w := &writer{extras: o.extras}
	w.node(root)
	return w.b.String()
}

type writer struct {
	b      strings.Builder
	extras *ast.ExtrasMap

	last byte // last emitted byte, 0 at start
	// nlSince and semiSince track whether a line break or semicolon has been
	// emitted since the last token; heuristic statement separation keys off
	// them.
	nlSince    bool
	semiSince  bool
	pendingSep bool // next node must start on a fresh statement boundary
}

// raw emits verbatim text: extras, string-template content, synthesized
// separators. It never inserts heuristic spaces.
func (w *writer) raw(s string) {
	if s == "" {
		return
	}
	w.b.WriteString(s)
	w.last = s[len(s)-1]
	if strings.ContainsRune(s, '\n') {
		w.nlSince = true
	}
	if strings.ContainsRune(s, ';') {
		w.semiSince = true
	}
}

// tok emits one lexical token, inserting a single space when gluing it to the
// previous byte would change lexical meaning.
func (w *writer) tok(s string) {
	if s == "" {
		return
	}
	if needSpace(w.last, s[0]) {
		w.b.WriteByte(' ')
	}
	w.b.WriteString(s)
	w.last = s[len(s)-1]
	w.nlSince = false
	w.semiSince = false
}

func identish(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c >= 0x80
}

func needSpace(prev, next byte) bool {
	switch {
	case prev == 0:
		return false
	case identish(prev) && identish(next):
		return true
	case prev == '>' && next == '=':
		// avoid forming >=
		return true
	case prev == '-' && next == '-', prev == '+' && next == '+':
		// avoid forming -- / ++
		return true
	}
	return false
}

func (w *writer) ensureSpace() {
	switch w.last {
	case 0, ' ', '\t', '\n':
	default:
		w.b.WriteByte(' ')
		w.last = ' '
	}
}

func (w *writer) extraList(list []ast.ExtraNode) {
	for _, e := range list {
		w.raw(ast.ExtraText(e))
	}
}

// stmtSeparatorRules is the ordered, extensible list of "does this statement
// adjacency need a synthesized terminator" predicates. Each rule fires on the
// already-written statement and the one about to be written.
var stmtSeparatorRules = []func(prev, next ast.Node) bool{
	// A bare name that spells a modifier keyword would be re-parsed as a
	// modifier of a following declaration.
	func(prev, next ast.Node) bool {
		name, ok := prev.(*ast.NameExpr)
		if !ok || !ast.IsModifierText(name.Name) {
			return false
		}
		_, isDecl := next.(ast.Decl)
		return isDecl
	},
	// A call without a trailing lambda would absorb a following standalone
	// lambda as its trailing-lambda argument.
	func(prev, next ast.Node) bool {
		call, ok := prev.(*ast.CallExpr)
		if !ok || call.Lambda != nil {
			return false
		}
		_, isLambda := next.(*ast.LambdaExpr)
		return isLambda
	},
}

// seq writes a statement-like sequence: every element after the first must
// land on a fresh statement boundary, synthesized when extras do not provide
// one.
func (w *writer) seq(items []ast.Node) {
	var prev ast.Node
	for i, n := range items {
		if i > 0 {
			for _, rule := range stmtSeparatorRules {
				if rule(prev, n) {
					if !w.semiSince {
						w.raw(";")
					}
					break
				}
			}
			w.pendingSep = true
		}
		w.node(n)
		prev = n
	}
}

func stmtNodes(stmts []ast.Stmt) []ast.Node {
	out := make([]ast.Node, 0, len(stmts))
	for _, s := range stmts {
		if !ast.IsNil(s) {
			out = append(out, s)
		}
	}
	return out
}

// node writes one node: its before extras, a synthesized statement separator
// if one is still owed, its literal content, then its within and after
// extras. Brace-delimited kinds emit within extras inside their braces.
func (w *writer) node(n ast.Node) {
	if ast.IsNil(n) {
		return
	}
	w.extraList(w.extras.Before(n))
	if w.pendingSep {
		w.pendingSep = false
		if !w.nlSince && !w.semiSince {
			w.raw("\n")
		}
	}
	withinDone := w.emit(n)
	if !withinDone {
		w.extraList(w.extras.Within(n))
	}
	w.extraList(w.extras.After(n))
}

func (w *writer) within(n ast.Node) {
	w.extraList(w.extras.Within(n))
}

func (w *writer) annList(anns []*ast.AnnotationSet) {
	for i, a := range anns {
		if i > 0 {
			w.ensureSpace()
		}
		w.node(a)
	}
}

// emit writes the literal content of n, recursing into children in the same
// order EachChild enumerates them. It reports whether it already emitted n's
// within extras (brace-delimited kinds place them inside the braces). An
// unknown kind is an internal consistency error.
func (w *writer) emit(n ast.Node) bool {
	switch x := n.(type) {
	case *ast.File:
		var items []ast.Node
		for _, a := range x.Anns {
			items = append(items, a)
		}
		if x.Package != nil {
			items = append(items, x.Package)
		}
		for _, im := range x.Imports {
			items = append(items, im)
		}
		for _, d := range x.Decls {
			items = append(items, d)
		}
		w.seq(items)

	case *ast.Script:
		var items []ast.Node
		for _, a := range x.Anns {
			items = append(items, a)
		}
		if x.Package != nil {
			items = append(items, x.Package)
		}
		for _, im := range x.Imports {
			items = append(items, im)
		}
		for _, s := range x.Stmts {
			if !ast.IsNil(s) {
				items = append(items, s)
			}
		}
		w.seq(items)

	case *ast.PackageDirective:
		w.tok("package")
		for i, name := range x.Names {
			if i > 0 {
				w.tok(".")
			}
			w.node(name)
		}

	case *ast.ImportDirective:
		w.tok("import")
		for i, name := range x.Names {
			if i > 0 {
				w.tok(".")
			}
			w.node(name)
		}
		if x.Wildcard {
			w.tok(".")
			w.tok("*")
		}
		w.node(x.Alias)

	case *ast.ImportAlias:
		w.tok("as")
		w.node(x.Name)

	case *ast.ClassDecl:
		w.node(x.Mods)
		w.node(x.Keyword)
		w.node(x.Name)
		w.node(x.TypeParams)
		w.node(x.PrimaryCtor)
		if len(x.Parents) > 0 {
			w.tok(":")
			for i, par := range x.Parents {
				if i > 0 {
					w.tok(",")
				}
				w.node(par)
			}
		}
		w.node(x.Constraints)
		w.node(x.Body)

	case *ast.ClassParent:
		w.node(x.Type)
		w.node(x.Args)
		if !ast.IsNil(x.Delegate) {
			w.tok("by")
			w.node(x.Delegate)
		}

	case *ast.PrimaryConstructor:
		w.node(x.Mods)
		w.node(x.Keyword)
		if x.Params != nil {
			w.node(x.Params)
		} else {
			w.tok("(")
			w.tok(")")
		}

	case *ast.ClassBody:
		w.tok("{")
		for i, e := range x.EnumEntries {
			if i > 0 {
				w.tok(",")
			}
			w.node(e)
		}
		if len(x.EnumEntries) > 0 && len(x.Decls) > 0 {
			w.raw(";")
		}
		var decls []ast.Node
		for _, d := range x.Decls {
			decls = append(decls, d)
		}
		if len(x.EnumEntries) > 0 && len(decls) > 0 {
			// the first member after the entry list still needs a boundary
			w.pendingSep = true
		}
		w.seq(decls)
		w.within(x)
		w.tok("}")
		return true

	case *ast.EnumEntry:
		w.node(x.Mods)
		w.node(x.Name)
		w.node(x.Args)
		w.node(x.Body)

	case *ast.InitBlock:
		w.node(x.Mods)
		w.tok("init")
		w.node(x.Block)

	case *ast.FuncDecl:
		w.node(x.Mods)
		w.tok("fun")
		w.node(x.TypeParams)
		if !ast.IsNil(x.Receiver) {
			w.node(x.Receiver)
			w.tok(".")
		}
		w.node(x.Name)
		if x.Params != nil {
			w.node(x.Params)
		} else {
			w.tok("(")
			w.tok(")")
		}
		if !ast.IsNil(x.ReturnType) {
			w.tok(":")
			w.node(x.ReturnType)
		}
		w.node(x.Constraints)
		w.node(x.Contract)
		w.node(x.Body)

	case *ast.BlockBody:
		w.node(x.Block)

	case *ast.ExprBody:
		w.tok("=")
		w.node(x.Expr)

	case *ast.FuncParam:
		w.node(x.Mods)
		w.node(x.ValOrVar)
		w.node(x.Name)
		if !ast.IsNil(x.Type) {
			w.tok(":")
			w.node(x.Type)
		}
		if !ast.IsNil(x.Default) {
			w.tok("=")
			w.node(x.Default)
		}

	case *ast.FuncParamList:
		w.tok("(")
		for i, par := range x.Params {
			if i > 0 {
				w.tok(",")
			}
			w.node(par)
		}
		w.within(x)
		w.tok(")")
		return true

	case *ast.PropertyDecl:
		w.node(x.Mods)
		w.node(x.ValOrVar)
		w.node(x.TypeParams)
		if !ast.IsNil(x.Receiver) {
			w.node(x.Receiver)
			w.tok(".")
		}
		if x.Delimited {
			w.tok("(")
		}
		for i, v := range x.Vars {
			if i > 0 {
				w.tok(",")
			}
			w.node(v)
		}
		if x.Delimited {
			w.tok(")")
		}
		w.node(x.Constraints)
		if !ast.IsNil(x.Initializer) {
			w.tok("=")
			w.node(x.Initializer)
		}
		if !ast.IsNil(x.Delegate) {
			w.tok("by")
			w.node(x.Delegate)
		}
		prevExprBody := false
		for i, a := range x.Accessors {
			// an accessor after an expression-valued initializer, delegate or
			// accessor body must start its own line to stop the expression
			// from continuing
			if !ast.IsNil(x.Initializer) || !ast.IsNil(x.Delegate) || (i > 0 && prevExprBody) {
				w.pendingSep = true
			}
			w.node(a)
			prevExprBody = accessorHasExprBody(a)
		}

	case *ast.Getter:
		w.node(x.Mods)
		w.tok("get")
		if !ast.IsNil(x.Body) {
			w.tok("(")
			w.tok(")")
			if !ast.IsNil(x.Type) {
				w.tok(":")
				w.node(x.Type)
			}
			w.node(x.Body)
		}

	case *ast.Setter:
		w.node(x.Mods)
		w.tok("set")
		if x.Param != nil {
			w.tok("(")
			w.node(x.Param)
			w.tok(")")
			w.node(x.Body)
		}

	case *ast.Variable:
		w.node(x.Name)
		if !ast.IsNil(x.Type) {
			w.tok(":")
			w.node(x.Type)
		}

	case *ast.TypeAliasDecl:
		w.node(x.Mods)
		w.tok("typealias")
		w.node(x.Name)
		w.node(x.TypeParams)
		w.tok("=")
		w.node(x.Type)

	case *ast.SecondaryConstructor:
		w.node(x.Mods)
		w.node(x.Keyword)
		if x.Params != nil {
			w.node(x.Params)
		} else {
			w.tok("(")
			w.tok(")")
		}
		if x.DelegationCall != nil {
			w.tok(":")
			w.node(x.DelegationCall)
		}
		w.node(x.Block)

	case *ast.ConstructorDelegationCall:
		w.node(x.Target)
		if x.Args != nil {
			w.node(x.Args)
		} else {
			w.tok("(")
			w.tok(")")
		}

	case *ast.SimpleType:
		for i, piece := range x.Pieces {
			if i > 0 {
				w.tok(".")
			}
			w.node(piece)
		}

	case *ast.SimpleTypePiece:
		w.node(x.Name)
		w.node(x.TypeArgs)

	case *ast.NullableType:
		w.node(x.Inner)
		w.tok("?")

	case *ast.ParenType:
		w.tok("(")
		w.node(x.Inner)
		w.tok(")")

	case *ast.FuncType:
		if !ast.IsNil(x.Receiver) {
			w.node(x.Receiver)
			w.tok(".")
		}
		w.tok("(")
		for i, par := range x.Params {
			if i > 0 {
				w.tok(",")
			}
			w.node(par)
		}
		w.tok(")")
		w.tok("->")
		w.node(x.Return)

	case *ast.FuncTypeParam:
		if x.Name != nil {
			w.node(x.Name)
			w.tok(":")
		}
		w.node(x.Type)

	case *ast.DynamicType:
		w.tok("dynamic")

	case *ast.TypeParam:
		w.node(x.Mods)
		w.node(x.Name)
		if !ast.IsNil(x.Type) {
			w.tok(":")
			w.node(x.Type)
		}

	case *ast.TypeParamList:
		w.tok("<")
		for i, par := range x.Params {
			if i > 0 {
				w.tok(",")
			}
			w.node(par)
		}
		w.tok(">")

	case *ast.TypeArg:
		if x.Star {
			w.tok("*")
		} else {
			w.node(x.Mods)
			w.node(x.Type)
		}

	case *ast.TypeArgList:
		w.tok("<")
		for i, a := range x.Args {
			if i > 0 {
				w.tok(",")
			}
			w.node(a)
		}
		w.tok(">")

	case *ast.ValueArg:
		if x.Name != nil {
			w.node(x.Name)
			w.tok("=")
		}
		if x.Spread {
			w.tok("*")
		}
		w.node(x.Expr)

	case *ast.ValueArgList:
		w.tok("(")
		for i, a := range x.Args {
			if i > 0 {
				w.tok(",")
			}
			w.node(a)
		}
		w.within(x)
		w.tok(")")
		return true

	case *ast.TypeConstraint:
		w.annList(x.Anns)
		w.node(x.Name)
		w.tok(":")
		w.node(x.Type)

	case *ast.TypeConstraintList:
		w.tok("where")
		for i, c := range x.Constraints {
			if i > 0 {
				w.tok(",")
			}
			w.node(c)
		}

	case *ast.Contract:
		w.tok("contract")
		w.tok("[")
		for i, e := range x.Effects {
			if i > 0 {
				w.tok(",")
			}
			w.node(e)
		}
		w.tok("]")

	case *ast.Modifiers:
		for i, m := range x.Elems {
			if i > 0 {
				w.ensureSpace()
			}
			w.node(m)
		}

	case *ast.AnnotationSet:
		w.tok("@")
		if x.Target != nil {
			w.node(x.Target)
			w.tok(":")
		}
		if x.Bracketed {
			w.tok("[")
			for i, a := range x.Anns {
				if i > 0 {
					w.ensureSpace()
				}
				w.node(a)
			}
			w.tok("]")
		} else {
			for _, a := range x.Anns {
				w.node(a)
			}
		}

	case *ast.Annotation:
		w.node(x.Type)
		w.node(x.Args)

	case *ast.IfExpr:
		w.tok("if")
		w.tok("(")
		w.node(x.Cond)
		w.tok(")")
		w.node(x.Then)
		if !ast.IsNil(x.Else) {
			w.tok("else")
			w.node(x.Else)
		}

	case *ast.WhenExpr:
		w.tok("when")
		if x.Subject != nil {
			w.tok("(")
			w.node(x.Subject)
			w.tok(")")
		}
		w.tok("{")
		for i, b := range x.Branches {
			if i > 0 {
				// every branch after the first needs its own line unless a
				// separator was already emitted
				w.pendingSep = true
			}
			w.node(b)
		}
		w.within(x)
		w.tok("}")
		return true

	case *ast.WhenSubject:
		w.annList(x.Anns)
		if x.Var != nil {
			w.tok("val")
			w.node(x.Var)
			w.tok("=")
		}
		w.node(x.Expr)

	case *ast.WhenBranch:
		if x.Else != nil {
			w.node(x.Else)
		} else {
			for i, c := range x.Conds {
				if i > 0 {
					w.tok(",")
				}
				w.node(c)
			}
			if x.TrailingComma {
				w.tok(",")
			}
		}
		w.tok("->")
		w.node(x.Body)

	case *ast.WhenCondExpr:
		w.node(x.Expr)

	case *ast.WhenCondIn:
		if x.Not {
			w.tok("!in")
		} else {
			w.tok("in")
		}
		w.node(x.Expr)

	case *ast.WhenCondIs:
		if x.Not {
			w.tok("!is")
		} else {
			w.tok("is")
		}
		w.node(x.Type)

	case *ast.TryExpr:
		w.tok("try")
		w.node(x.Block)
		for _, c := range x.Catches {
			w.node(c)
		}
		if x.Finally != nil {
			w.tok("finally")
			w.node(x.Finally)
		}

	case *ast.CatchClause:
		w.tok("catch")
		if x.Params != nil {
			w.node(x.Params)
		} else {
			w.tok("(")
			w.tok(")")
		}
		w.node(x.Block)

	case *ast.ForExpr:
		w.tok("for")
		w.tok("(")
		w.node(x.Param)
		w.tok("in")
		w.node(x.Range)
		w.tok(")")
		w.node(x.Body)

	case *ast.WhileExpr:
		if x.DoWhile {
			w.tok("do")
			w.node(x.Body)
			w.tok("while")
			w.tok("(")
			w.node(x.Cond)
			w.tok(")")
		} else {
			w.tok("while")
			w.tok("(")
			w.node(x.Cond)
			w.tok(")")
			w.node(x.Body)
		}

	case *ast.BinaryExpr:
		w.node(x.LHS)
		w.node(x.Oper)
		w.node(x.RHS)

	case *ast.UnaryExpr:
		if x.Prefix {
			w.node(x.Oper)
			w.node(x.Expr)
		} else {
			w.node(x.Expr)
			w.node(x.Oper)
		}

	case *ast.BinaryTypeExpr:
		w.node(x.LHS)
		w.node(x.Oper)
		w.node(x.RHS)

	case *ast.CallableRefExpr:
		w.node(x.Recv)
		w.tok("::")
		w.node(x.Name)

	case *ast.ClassLitExpr:
		w.node(x.Recv)
		w.tok("::")
		w.tok("class")

	case *ast.ParenExpr:
		w.tok("(")
		w.node(x.Expr)
		w.tok(")")

	case *ast.StringTemplateExpr:
		quote := `"`
		if x.Raw {
			quote = `"""`
		}
		w.tok(quote)
		for _, e := range x.Entries {
			w.node(e)
		}
		w.tok(quote)

	case *ast.LiteralEntry:
		w.raw(x.Text)

	case *ast.EscapeEntry:
		w.raw(x.Text)

	case *ast.ShortTemplateEntry:
		w.raw("$")
		w.node(x.Target)

	case *ast.LongTemplateEntry:
		w.raw("${")
		w.node(x.Expr)
		w.tok("}")

	case *ast.ConstantExpr:
		w.tok(x.Value)

	case *ast.LambdaExpr:
		w.tok("{")
		for i, par := range x.Params {
			if i > 0 {
				w.tok(",")
			}
			w.node(par)
		}
		if len(x.Params) > 0 {
			w.tok("->")
		}
		w.seq(stmtNodes(x.Stmts))
		w.within(x)
		w.tok("}")
		return true

	case *ast.LambdaParam:
		if x.Destructured {
			w.tok("(")
			for i, v := range x.Vars {
				if i > 0 {
					w.tok(",")
				}
				w.node(v)
			}
			w.tok(")")
			if !ast.IsNil(x.Type) {
				w.tok(":")
				w.node(x.Type)
			}
		} else {
			w.node(x.Vars[0])
		}

	case *ast.ThisExpr:
		w.tok("this")
		if x.Label != nil {
			w.tok("@")
			w.node(x.Label)
		}

	case *ast.SuperExpr:
		w.tok("super")
		if !ast.IsNil(x.TypeArg) {
			w.tok("<")
			w.node(x.TypeArg)
			w.tok(">")
		}
		if x.Label != nil {
			w.tok("@")
			w.node(x.Label)
		}

	case *ast.ObjectLitExpr:
		w.node(x.Decl)

	case *ast.ThrowExpr:
		w.tok("throw")
		w.node(x.Expr)

	case *ast.ReturnExpr:
		w.tok("return")
		if x.Label != nil {
			w.tok("@")
			w.node(x.Label)
		}
		w.node(x.Expr)

	case *ast.ContinueExpr:
		w.tok("continue")
		if x.Label != nil {
			w.tok("@")
			w.node(x.Label)
		}

	case *ast.BreakExpr:
		w.tok("break")
		if x.Label != nil {
			w.tok("@")
			w.node(x.Label)
		}

	case *ast.CollLitExpr:
		w.tok("[")
		for i, e := range x.Exprs {
			if i > 0 {
				w.tok(",")
			}
			w.node(e)
		}
		w.tok("]")

	case *ast.NameExpr:
		w.tok(x.Name)

	case *ast.LabeledExpr:
		w.node(x.Label)
		w.tok("@")
		w.node(x.Stmt)

	case *ast.AnnotatedExpr:
		w.annList(x.Anns)
		w.node(x.Stmt)

	case *ast.CallExpr:
		w.node(x.Callee)
		w.node(x.TypeArgs)
		w.node(x.Args)
		w.node(x.Lambda)

	case *ast.TrailingLambda:
		w.annList(x.Anns)
		if x.Label != nil {
			w.node(x.Label)
			w.tok("@")
		}
		w.node(x.Expr)

	case *ast.IndexExpr:
		w.node(x.Expr)
		w.tok("[")
		for i, e := range x.Indices {
			if i > 0 {
				w.tok(",")
			}
			w.node(e)
		}
		w.tok("]")

	case *ast.AnonFuncExpr:
		w.node(x.Func)

	case *ast.BlockExpr:
		w.tok("{")
		w.seq(stmtNodes(x.Stmts))
		w.within(x)
		w.tok("}")
		return true

	case *ast.Keyword:
		w.tok(x.Text())

	case *ast.Whitespace, *ast.BlankLines, *ast.Comment, *ast.Semicolon, *ast.TrailingComma:
		w.raw(ast.ExtraText(x.(ast.ExtraNode)))

	default:
		panic(fmt.Sprintf("writer: unknown node kind %T", n))
	}
	return false
}

func accessorHasExprBody(a ast.Accessor) bool {
	switch acc := a.(type) {
	case *ast.Getter:
		_, ok := acc.Body.(*ast.ExprBody)
		return ok
	case *ast.Setter:
		_, ok := acc.Body.(*ast.ExprBody)
		return ok
	}
	return false
}
